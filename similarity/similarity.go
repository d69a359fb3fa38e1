// Package similarity finds the pair of players whose teammate sets overlap
// the most, measured by the Jaccard index of their open neighborhoods.
//
// Every unordered pair is scored, so the cost is quadratic in V. Vertices
// are visited in name order and only a strictly greater score replaces the
// current best, which makes the winner among ties the first pair in that
// order.
//
// Complexity:
//
//   - Time:  O(V² · d) for average degree d (sorted-merge intersection).
//   - Space: O(V + E) for the adjacency snapshot.
package similarity

import (
	"fmt"

	"github.com/katalvlaran/rostergraph/core"
	"golang.org/x/sync/errgroup"
)

// candidate is a pair by canonical positions.
type candidate struct {
	i, j  int // positions in canonical order, i < j
	score float64
}

// better reports whether c beats best: strictly higher score, or equal
// score at an earlier canonical position.
func (c candidate) better(best candidate) bool {
	if c.score != best.score {
		return c.score > best.score
	}
	if c.i != best.i {
		return c.i < best.i
	}

	return c.j < best.j
}

// MostSimilarPair returns the pair with the highest Jaccard similarity of
// neighbor sets.
//
// Implementation:
//   - Stage 1: Validate; fewer than two vertices → ErrNoPair.
//   - Stage 2: Snapshot sorted neighbor lists and the name order.
//   - Stage 3: For each canonical position i, scan j > i keeping the first
//     maximum; rows are fanned out over Workers goroutines.
//   - Stage 4: Merge the row winners; ties resolve to the earliest pair.
//
// Isolated vertices have an empty union and score 0, so a graph of N ≥ 2
// isolated vertices yields the first two names with Score 0.
func MostSimilarPair(g *core.Graph, opts ...Option) (Pair, error) {
	if g == nil {
		return Pair{}, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	order := g.SortedIndices()
	n := len(order)
	if n < 2 {
		return Pair{}, fmt.Errorf("%w: got %d", ErrNoPair, n)
	}
	adj := g.AdjacencyList()

	// rows[i] is the best pair (i, j>i); the last position has no row.
	rows := make([]candidate, n-1)
	eg, ctx := errgroup.WithContext(o.ctx)
	eg.SetLimit(o.workers)
	for i := 0; i < n-1; i++ {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("similarity: row %d: %w", i, err)
			}
			a := adj[order[i]]
			best := candidate{i: i, j: i + 1, score: Jaccard(a, adj[order[i+1]])}
			for j := i + 2; j < n; j++ {
				s := Jaccard(a, adj[order[j]])
				if s > best.score {
					best = candidate{i: i, j: j, score: s}
				}
			}
			rows[i] = best

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Pair{}, err
	}

	best := rows[0]
	for _, c := range rows[1:] {
		if c.better(best) {
			best = c
		}
	}

	a, err := g.VertexID(order[best.i])
	if err != nil {
		return Pair{}, fmt.Errorf("similarity: %w", err)
	}
	b, err := g.VertexID(order[best.j])
	if err != nil {
		return Pair{}, fmt.Errorf("similarity: %w", err)
	}

	return Pair{A: a, B: b, Score: best.score}, nil
}

// Jaccard returns |a ∩ b| / |a ∪ b| for sorted slices without duplicates,
// or 0 when both are empty.
// Complexity: O(len(a) + len(b)).
func Jaccard(a, b []int) float64 {
	var inter, i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			inter++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}

	return float64(inter) / float64(union)
}
