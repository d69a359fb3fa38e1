// Package pipeline runs one full analysis: load the CSV, build the teammate
// graph, run every analysis concurrently, and assemble a report.Result.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/rostergraph/astar"
	"github.com/katalvlaran/rostergraph/builder"
	"github.com/katalvlaran/rostergraph/centrality"
	"github.com/katalvlaran/rostergraph/core"
	"github.com/katalvlaran/rostergraph/degree"
	"github.com/katalvlaran/rostergraph/dfs"
	"github.com/katalvlaran/rostergraph/internal/config"
	"github.com/katalvlaran/rostergraph/internal/loader"
	"github.com/katalvlaran/rostergraph/internal/report"
	"github.com/katalvlaran/rostergraph/pathsample"
	"github.com/katalvlaran/rostergraph/similarity"
	"github.com/katalvlaran/rostergraph/spanning"
)

// ErrEmptyDataset is returned when the input yields no usable records.
var ErrEmptyDataset = errors.New("pipeline: dataset has no usable records")

// Runner executes analysis runs for one configuration.
type Runner struct {
	cfg    config.Config
	logger *slog.Logger
	now    func() time.Time
}

// NewRunner validates cfg and returns a Runner. A nil logger uses slog.Default().
func NewRunner(cfg config.Config, logger *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{cfg: cfg, logger: logger, now: time.Now}, nil
}

// Run loads the configured input and analyzes it. Each call gets its own
// run ID, attached to every log line and to the result.
func (r *Runner) Run(ctx context.Context) (report.Result, error) {
	start := r.now()
	runID := uuid.NewString()
	log := r.logger.With(slog.String("run_id", runID))
	a := r.cfg.Analysis

	log.Info("run started",
		slog.String("input", r.cfg.Input),
		slog.Int("workers", a.Workers),
		slog.String("edge_cost", a.EdgeCost))

	records, st, err := loader.Load(ctx, r.cfg.Input)
	if err != nil {
		return report.Result{}, err
	}
	log.Info("dataset loaded",
		slog.Int("rows", st.Rows),
		slog.Int("kept", st.Kept),
		slog.Int("incomplete", st.Incomplete),
		slog.Int("skipped", st.Skipped),
		slog.Bool("by_header", st.ByHeader))
	if st.BadStats > 0 {
		log.Warn("unparsable stats read as 0", slog.Int("cells", st.BadStats))
	}

	res, err := r.Analyze(ctx, records, log)
	if err != nil {
		return report.Result{}, err
	}
	res.RunID = runID
	res.Input = r.cfg.Input
	res.Load = st
	res.Elapsed = r.now().Sub(start)

	log.Info("run completed", slog.Duration("duration", res.Elapsed))

	return res, nil
}

// Analyze builds the graph from records and runs every analysis.
// log may be nil.
func (r *Runner) Analyze(ctx context.Context, records []builder.Record, log *slog.Logger) (report.Result, error) {
	if log == nil {
		log = r.logger
	}
	if len(records) == 0 {
		return report.Result{}, ErrEmptyDataset
	}
	a := r.cfg.Analysis

	res := report.Result{
		Overview: report.Overview(records),
		Snapshot: report.Snapshot(records),
		BinWidth: a.BinWidth,
	}

	t := r.now()
	g, err := builder.Build(records,
		builder.WithMinRosterSize(a.MinRosterSize),
		builder.WithVertexHint(res.Overview.Players))
	if err != nil {
		return report.Result{}, fmt.Errorf("pipeline: build: %w", err)
	}
	gs := g.Stats()
	res.Graph = report.GraphFacts{
		Vertices:    gs.VertexCount,
		Edges:       gs.EdgeCount,
		Density:     g.Density(),
		TotalWeight: gs.TotalWeight,
		MaxWeight:   gs.MaxWeight,
		Isolated:    gs.IsolatedCount,
	}
	log.Info("graph built",
		slog.Int("vertices", gs.VertexCount),
		slog.Int("edges", gs.EdgeCount),
		slog.Duration("duration", r.now().Sub(t)))

	cost, costName := r.edgeCost(gs.MaxWeight)
	seed := a.Seed
	if seed == 0 {
		seed = r.now().UnixNano()
		log.Info("sampling seed chosen", slog.Int64("seed", seed))
	}

	// Stages write disjoint fields of res.
	eg, ctx := errgroup.WithContext(ctx)
	stage := func(name string, fn func(context.Context) error) {
		eg.Go(func() error {
			t := r.now()
			if err := fn(ctx); err != nil {
				return fmt.Errorf("pipeline: %s: %w", name, err)
			}
			log.Debug("stage completed", slog.String("stage", name), slog.Duration("duration", r.now().Sub(t)))

			return nil
		})
	}

	stage("degree", func(context.Context) error {
		return r.degree(g, &res, log)
	})
	stage("components", func(ctx context.Context) error {
		comps, err := dfs.Components(g, dfs.WithContext(ctx))
		if err != nil {
			return err
		}
		res.Components = dfs.Summarize(comps, g.VertexCount())

		return nil
	})
	stage("centrality", func(ctx context.Context) error {
		opts := []centrality.Option{centrality.WithWorkers(a.Workers), centrality.WithContext(ctx)}
		if cost != nil {
			opts = append(opts, centrality.WithEdgeCost(cost))
		}
		scores, err := centrality.Closeness(g, opts...)
		if err != nil {
			return err
		}
		res.Centrality = centrality.Top(scores, a.Top)
		res.CentralityStats = moments(scores)

		return nil
	})
	if a.PageRank {
		stage("pagerank", func(context.Context) error {
			ranks, err := centrality.PageRank(g, a.Damping, centrality.DefaultTolerance, a.EdgeCost != config.EdgeCostUnit)
			if err != nil {
				return err
			}
			res.PageRank = centrality.Top(ranks, a.Top)

			return nil
		})
	}
	stage("separation", func(ctx context.Context) error {
		opts := []pathsample.Option{pathsample.WithWorkers(a.Workers), pathsample.WithContext(ctx)}
		if cost != nil {
			opts = append(opts, pathsample.WithEdgeCost(cost))
		}
		est, err := pathsample.SampleAverageDistance(g, a.Samples, rand.New(rand.NewSource(seed)), opts...)
		switch {
		case errors.Is(err, pathsample.ErrNoData):
			log.Warn("no connected pair sampled", slog.Int("drawn", est.Drawn))
			return nil
		case err != nil:
			return err
		}
		res.Separation = &report.Separation{Estimate: est, Samples: a.Samples, Seed: seed, EdgeCost: costName}

		return nil
	})
	stage("similarity", func(ctx context.Context) error {
		pair, err := similarity.MostSimilarPair(g, similarity.WithWorkers(a.Workers), similarity.WithContext(ctx))
		switch {
		case errors.Is(err, similarity.ErrNoPair):
			return nil
		case err != nil:
			return err
		}
		res.Similar = &pair

		return nil
	})
	stage("backbone", func(context.Context) error {
		f, err := spanning.Kruskal(g)
		if err != nil {
			return err
		}
		res.Backbone = report.Backbone{
			Edges:       len(f.Edges),
			TotalWeight: f.TotalWeight,
			Strongest:   spanning.Strongest(g, f, a.Top),
		}

		return nil
	})

	if err := eg.Wait(); err != nil {
		return report.Result{}, err
	}

	return res, nil
}

// degree fills the histogram, log-log series and fit.
func (r *Runner) degree(g *core.Graph, res *report.Result, log *slog.Logger) error {
	hist := degree.Histogram(g)
	buckets, err := degree.Binned(hist, r.cfg.Analysis.BinWidth)
	if err != nil {
		return err
	}
	res.Histogram = buckets
	res.LogLog = degree.LogLog(hist)
	res.Degree = degree.Summarize(hist)

	fit, err := degree.FitLogLog(res.LogLog)
	switch {
	case errors.Is(err, degree.ErrTooFewPoints):
		log.Debug("log-log fit skipped", slog.Int("points", len(res.LogLog)))
	case err != nil:
		return err
	default:
		res.Fit = &fit
	}

	return nil
}

// edgeCost maps the configured mode to a cost function. Unit cost returns
// nil so the analyses keep their BFS fast path.
func (r *Runner) edgeCost(maxWeight int64) (astar.CostFunc, string) {
	a := r.cfg.Analysis
	switch a.EdgeCost {
	case config.EdgeCostWeight:
		return astar.WeightCost, config.EdgeCostWeight
	case config.EdgeCostInverse:
		scale := a.InverseScale
		if scale == 0 {
			scale = maxWeight
		}
		if scale < 1 {
			scale = 1
		}
		return astar.InverseWeightCost(scale), fmt.Sprintf("%s/%d", config.EdgeCostInverse, scale)
	default:
		return nil, config.EdgeCostUnit
	}
}

func moments(scores map[string]float64) report.Moments {
	if len(scores) == 0 {
		return report.Moments{}
	}
	xs := make([]float64, 0, len(scores))
	for _, v := range scores {
		xs = append(xs, v)
	}
	sort.Float64s(xs)
	m := report.Moments{Mean: stat.Mean(xs, nil)}
	if len(xs) > 1 {
		m.StdDev = stat.StdDev(xs, nil)
	}

	return m
}
