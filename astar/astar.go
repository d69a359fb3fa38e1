// Package astar implements goal-directed shortest-path search (A*) and
// single-source shortest distances on a core.Graph.
//
// The search processes vertices in order of f(v) = g(v) + h(v) using a
// min-heap priority queue and stops as soon as the target is popped.
// With the default zero heuristic and unit edge cost it visits vertices in
// exactly the order of breadth-first search, so the returned cost equals the
// hop count of a shortest path.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy decrease-key keeps stale heap entries)
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when popped.
//   - Negative costs are detected at relaxation time and abort the search.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/rostergraph/core"
)

// Search finds a least-cost path from source to target.
//
// Returns:
//
//   - *Result with Cost and Path on success.
//   - ErrNoPath (wrapped with both indices) when target is unreachable.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and target must be valid indices (ErrVertexNotFound).
//
// source == target yields a zero-cost single-vertex path.
func Search(g *core.Graph, source, target int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}

	r := newRunner(g, cfg, n, target)
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}
	if r.dist[target] == Unreachable {
		return nil, fmt.Errorf("%w: %d → %d", ErrNoPath, source, target)
	}

	return &Result{
		Source: source,
		Target: target,
		Cost:   r.dist[target],
		Path:   r.path(target),
	}, nil
}

// Distances computes least-cost distances from source to every vertex.
// Unreachable vertices hold Unreachable. The heuristic option is ignored
// because there is no single target to direct the search at.
func Distances(g *core.Graph, source int, opts ...Option) ([]int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Heuristic = ZeroHeuristic
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}

	r := newRunner(g, cfg, n, -1)
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within the search.
	options Options     // Heuristic and cost function.
	target  int         // Goal index, or -1 for an exhaustive run.
	dist    []int64     // Best known cost from the source.
	prev    []int       // Predecessor on the best path, -1 for none.
	closed  []bool      // Whether a vertex's cost is final.
	pq      nodePQ      // Min-heap of *nodeItem ordered by f = g + h.
}

func newRunner(g *core.Graph, cfg Options, n, target int) *runner {
	return &runner{
		g:       g,
		options: cfg,
		target:  target,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		closed:  make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// init sets every distance to Unreachable and pushes the source with cost 0.
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = Unreachable
		r.prev[v] = -1
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{v: source, g: 0, f: r.options.Heuristic(source)})
}

// process pops vertices in f order until the heap empties or the target is finalized.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.v

		// Skip stale heap entries.
		if r.closed[u] {
			continue
		}
		r.closed[u] = true
		if u == r.target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the cost of every neighbor of u.
func (r *runner) relax(u int) error {
	edges, err := r.g.IncidentEdges(u)
	if err != nil {
		return fmt.Errorf("astar: failed to get neighbors of %d: %w", u, err)
	}
	for _, e := range edges {
		v := e.Other(u)
		if r.closed[v] {
			continue
		}
		w := r.options.Cost(e)
		if w < 0 {
			return fmt.Errorf("%w: edge %d–%d cost=%d", ErrNegativeCost, e.From, e.To, w)
		}
		newDist := r.dist[u] + w
		// Strictly better only; equal-cost alternatives keep the first predecessor.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{v: v, g: newDist, f: newDist + r.options.Heuristic(v)})
	}

	return nil
}

// path walks prev links back from target and returns source→target order.
func (r *runner) path(target int) []int {
	var out []int
	for cur := target; cur != -1; cur = r.prev[cur] {
		out = append(out, cur)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// nodeItem is a heap entry: vertex v with path cost g and priority f = g + h(v).
type nodeItem struct {
	v int
	g int64
	f int64
}

// nodePQ is a min-heap of *nodeItem ordered by f, then by g descending
// (deeper entries first among equal f), then by vertex index for determinism.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g > pq[j].g
	}

	return pq[i].v < pq[j].v
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
