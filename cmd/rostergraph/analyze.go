package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rostergraph/internal/config"
	"github.com/katalvlaran/rostergraph/internal/pipeline"
	"github.com/katalvlaran/rostergraph/internal/report"
)

// analyzeFlags mirrors the config keys that can be overridden on the
// command line. Only flags the user actually set are applied.
type analyzeFlags struct {
	configPath    string
	input         string
	output        string
	samples       int
	seed          int64
	workers       int
	top           int
	binWidth      int
	minRoster     int
	edgeCost      string
	weightedCosts bool
	noPageRank    bool
	logLevel      string
	logFormat     string
	noColor       bool
}

func newAnalyzeCmd() *cobra.Command {
	var f analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Build the teammate graph and report its structure",
		Long: `Load the player-season CSV, build the teammate graph and run every
analysis. A console summary goes to stdout, JSON series to the output
directory and logs to stderr.

Flags override the configuration file, which overrides the defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", defaultConfigPath, "configuration file")
	fl.StringVarP(&f.input, "input", "i", "", "player-season CSV")
	fl.StringVarP(&f.output, "output", "o", "", "directory for JSON output")
	fl.IntVarP(&f.samples, "samples", "n", 0, "pairs drawn by the path sampler")
	fl.Int64Var(&f.seed, "seed", 0, "sampling seed (0 picks one from the clock)")
	fl.IntVarP(&f.workers, "workers", "w", 0, "goroutines per analysis")
	fl.IntVar(&f.top, "top", 0, "ranked entries kept in the report")
	fl.IntVar(&f.binWidth, "bin-width", 0, "degree histogram bin width")
	fl.IntVar(&f.minRoster, "min-roster", 0, "ignore rosters smaller than this")
	fl.StringVar(&f.edgeCost, "edge-cost", "", "path cost per edge: unit|weight|inverse")
	fl.BoolVar(&f.weightedCosts, "weighted-costs", false, "shorthand for --edge-cost inverse")
	fl.BoolVar(&f.noPageRank, "no-pagerank", false, "skip the PageRank ranking")
	fl.StringVar(&f.logLevel, "log-level", "", "debug|info|warn|error")
	fl.StringVar(&f.logFormat, "log-format", "", "text|json")
	fl.BoolVar(&f.noColor, "no-color", false, "disable colored console output")
	cmd.MarkFlagsMutuallyExclusive("edge-cost", "weighted-costs")

	return cmd
}

func runAnalyze(cmd *cobra.Command, f analyzeFlags) error {
	cfg, err := config.Load(f.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	f.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return analyze(ctx, cfg, logger, cmd.OutOrStdout(), useColor(cmd.OutOrStdout(), f.noColor))
}

func analyze(ctx context.Context, cfg config.Config, logger *slog.Logger, out io.Writer, color bool) error {
	runner, err := pipeline.NewRunner(cfg, logger)
	if err != nil {
		return err
	}
	res, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	files, err := report.WriteJSON(cfg.Output, res)
	if err != nil {
		return err
	}
	logger.Info("results written", slog.String("dir", cfg.Output), slog.Int("files", len(files)))

	return report.NewPrinter(out, color).Print(res, files)
}

// apply copies every flag the user set onto cfg.
func (f analyzeFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	set := cmd.Flags().Changed
	a := &cfg.Analysis
	if set("input") {
		cfg.Input = f.input
	}
	if set("output") {
		cfg.Output = f.output
	}
	if set("samples") {
		a.Samples = f.samples
	}
	if set("seed") {
		a.Seed = f.seed
	}
	if set("workers") {
		a.Workers = f.workers
	}
	if set("top") {
		a.Top = f.top
	}
	if set("bin-width") {
		a.BinWidth = f.binWidth
	}
	if set("min-roster") {
		a.MinRosterSize = f.minRoster
	}
	if set("edge-cost") {
		a.EdgeCost = f.edgeCost
	}
	if f.weightedCosts {
		a.EdgeCost = config.EdgeCostInverse
	}
	if f.noPageRank {
		a.PageRank = false
	}
	if set("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if set("log-format") {
		cfg.Log.Format = f.logFormat
	}
}

func newLogger(w io.Writer, lc config.LogConfig) (*slog.Logger, error) {
	level, err := config.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch lc.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: log.format %q", config.ErrInvalidConfig, lc.Format)
	}
}

// useColor reports whether w is a terminal that should get styled output.
// NO_COLOR (https://no-color.org) and --no-color both turn it off.
func useColor(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
