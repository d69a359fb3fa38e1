// Package pathsample estimates the average shortest-path length of a graph
// from a random sample of vertex pairs instead of all V² pairs.
//
// Each pair is answered with a goal-directed astar.Search (zero heuristic,
// unit cost by default), which stops as soon as the target is settled.
//
// Complexity:
//
//   - Time:  O(k · (V + E) log V) for k = sampleSize.
//   - Space: O(k + V) per worker.
package pathsample

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/rostergraph/astar"
	"github.com/katalvlaran/rostergraph/core"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// noPath marks a drawn pair whose endpoints lie in different components.
const noPath int64 = -1

// pair is one ordered draw of distinct vertex indices.
type pair struct{ a, b int }

// SampleAverageDistance draws sampleSize ordered pairs of distinct vertices
// uniformly with replacement from rng and averages the shortest-path cost
// over the pairs that are connected.
//
// Implementation:
//   - Stage 1: Validate input; fewer than two vertices → ErrNoData.
//   - Stage 2: Draw all pairs sequentially from rng, redrawing b while a == b.
//     Vertices are drawn from the name-sorted order, so the same seed picks
//     the same players regardless of insertion order.
//   - Stage 3: Search every pair, fanned out over Workers goroutines.
//   - Stage 4: Reduce in draw order; disconnected pairs are skipped.
//
// Returns ErrNoData when no drawn pair is connected.
func SampleAverageDistance(g *core.Graph, sampleSize int, rng *rand.Rand, opts ...Option) (Estimate, error) {
	if g == nil {
		return Estimate{}, ErrGraphNil
	}
	if sampleSize < 1 {
		return Estimate{}, fmt.Errorf("%w: got %d", ErrBadSampleSize, sampleSize)
	}
	if rng == nil {
		return Estimate{}, ErrNilRand
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	order := g.SortedIndices()
	if len(order) < 2 {
		return Estimate{}, fmt.Errorf("%w: graph has %d vertices", ErrNoData, len(order))
	}

	pairs := draw(order, sampleSize, rng)
	costs, err := search(g, pairs, o)
	if err != nil {
		return Estimate{}, err
	}

	return reduce(costs)
}

// draw picks k ordered pairs of distinct entries of order.
func draw(order []int, k int, rng *rand.Rand) []pair {
	n := len(order)
	pairs := make([]pair, k)
	for i := range pairs {
		a := rng.Intn(n)
		b := rng.Intn(n)
		for b == a {
			b = rng.Intn(n)
		}
		pairs[i] = pair{a: order[a], b: order[b]}
	}

	return pairs
}

// search answers every pair; costs[i] is noPath for disconnected pairs.
func search(g *core.Graph, pairs []pair, o options) ([]int64, error) {
	costs := make([]int64, len(pairs))
	eg, ctx := errgroup.WithContext(o.ctx)
	eg.SetLimit(o.workers)
	for i, p := range pairs {
		i, p := i, p
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("pathsample: pair %d: %w", i, err)
			}
			res, err := astar.Search(g, p.a, p.b, astar.WithEdgeCost(o.cost))
			switch {
			case errors.Is(err, astar.ErrNoPath):
				costs[i] = noPath
			case err != nil:
				return fmt.Errorf("pathsample: pair %d→%d: %w", p.a, p.b, err)
			default:
				costs[i] = res.Cost
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return costs, nil
}

// reduce averages the connected costs in draw order.
func reduce(costs []int64) (Estimate, error) {
	est := Estimate{Drawn: len(costs)}
	found := make([]float64, 0, len(costs))
	for _, c := range costs {
		if c == noPath {
			continue
		}
		found = append(found, float64(c))
		if c > est.Max {
			est.Max = c
		}
	}
	est.Found = len(found)
	if est.Found == 0 {
		return est, fmt.Errorf("%w: %d pairs drawn, none connected", ErrNoData, est.Drawn)
	}

	est.Mean = stat.Mean(found, nil)
	if est.Found > 1 {
		est.StdDev = stat.StdDev(found, nil)
	}

	return est, nil
}
