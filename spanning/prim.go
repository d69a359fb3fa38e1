package spanning

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/rostergraph/core"
)

// Prim grows a spanning tree of root's connected component, always taking
// the best edge (heaviest by default) that reaches a new vertex.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root visited and push its incident edges onto the heap.
//  3. Pop the best edge; skip it if its far end is already visited,
//     otherwise accept it and push the far end's edges.
//  4. Stop when the heap drains. Vertices outside root's component are
//     not covered, so Trees is always 1.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root int, opts ...Option) (Forest, error) {
	if g == nil {
		return Forest{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.VertexCount()
	if root < 0 || root >= n {
		return Forest{}, fmt.Errorf("%w: index %d", ErrRootNotFound, root)
	}

	visited := make([]bool, n)
	pq := &edgePQ{minimize: o.Minimize}
	f := Forest{Trees: 1}

	grow := func(v int) error {
		visited[v] = true
		inc, err := g.IncidentEdges(v)
		if err != nil {
			return err
		}
		for _, e := range inc {
			if !visited[e.Other(v)] {
				heap.Push(pq, e)
			}
		}

		return nil
	}
	if err := grow(root); err != nil {
		return Forest{}, err
	}

	for pq.Len() > 0 && len(f.Edges) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		var next int
		switch {
		case !visited[e.To]:
			next = e.To
		case !visited[e.From]:
			next = e.From
		default:
			continue
		}
		f.Edges = append(f.Edges, e)
		f.TotalWeight += e.Weight
		if err := grow(next); err != nil {
			return Forest{}, err
		}
	}

	return f, nil
}

// edgePQ implements heap.Interface over core.Edge, best edge first.
type edgePQ struct {
	items    []core.Edge
	minimize bool
}

func (pq edgePQ) Len() int           { return len(pq.items) }
func (pq edgePQ) Less(i, j int) bool { return better(pq.items[i], pq.items[j], pq.minimize) }
func (pq edgePQ) Swap(i, j int)      { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *edgePQ) Push(x any) { pq.items = append(pq.items, x.(core.Edge)) }

func (pq *edgePQ) Pop() any {
	old := pq.items
	n := len(old)
	e := old[n-1]
	pq.items = old[:n-1]

	return e
}
