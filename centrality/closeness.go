// Package centrality computes closeness centrality for every vertex of a
// teammate graph.
//
// For a source s with reachable set R (s included) and distance sum S over
// R \ {s}, the score is (|R| - 1) / S, or 0 when S is 0. Normalising by the
// reachable count rather than V keeps scores in [0, 1] on disconnected
// graphs: a vertex adjacent to everything it can reach scores exactly 1.
//
// Complexity:
//
//   - Unit cost:  O(V · (V + E)) time, one BFS per vertex.
//   - Edge cost:  O(V · (V + E) log V) time, one Dijkstra run per vertex.
//   - Space:      O(V + E) per worker.
package centrality

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rostergraph/astar"
	"github.com/katalvlaran/rostergraph/bfs"
	"github.com/katalvlaran/rostergraph/core"
	"golang.org/x/sync/errgroup"
)

// Closeness returns the closeness centrality of every vertex keyed by name.
//
// Implementation:
//   - Stage 1: Validate g, resolve options.
//   - Stage 2: Snapshot adjacency once so traversals skip the graph lock.
//   - Stage 3: Run one traversal per source, fanned out over Workers
//     goroutines via errgroup; each writes only its own slot.
//   - Stage 4: Key the slots by vertex name.
//
// Returns ErrGraphNil, a wrapped context error, or a traversal error.
// An empty graph yields an empty map.
func Closeness(g *core.Graph, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	scores := make([]float64, n)
	if n > 0 {
		adj := g.AdjacencyList()
		eg, ctx := errgroup.WithContext(o.ctx)
		eg.SetLimit(o.workers)
		for s := 0; s < n; s++ {
			s := s
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("centrality: source %d: %w", s, err)
				}
				v, err := closenessFrom(ctx, g, adj, s, o)
				if err != nil {
					return err
				}
				scores[s] = v

				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	out := make(map[string]float64, n)
	for i, v := range scores {
		id, err := g.VertexID(i)
		if err != nil {
			return nil, fmt.Errorf("centrality: %w", err)
		}
		out[id] = v
	}

	return out, nil
}

// closenessFrom scores a single source.
func closenessFrom(ctx context.Context, g *core.Graph, adj [][]int, s int, o options) (float64, error) {
	var (
		reached int
		sum     int64
	)
	if o.cost == nil {
		res, err := bfs.BFS(g, s, bfs.WithAdjacency(adj), bfs.WithContext(ctx))
		if err != nil {
			return 0, fmt.Errorf("centrality: bfs from %d: %w", s, err)
		}
		reached, sum = res.Reached(), res.DistanceSum()
	} else {
		dist, err := astar.Distances(g, s, astar.WithEdgeCost(o.cost))
		if err != nil {
			return 0, fmt.Errorf("centrality: distances from %d: %w", s, err)
		}
		for _, d := range dist {
			if d == astar.Unreachable {
				continue
			}
			reached++
			sum += d
		}
	}

	return score(reached, sum), nil
}

// score is (reached-1)/sum, guarded against an empty reachable set.
func score(reached int, sum int64) float64 {
	if sum <= 0 {
		return 0
	}

	return float64(reached-1) / float64(sum)
}
