// Package bfs provides breadth-first search over a core.Graph,
// returning unit-cost shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with an optional visit hook and depth limit. Edge weights are never read:
// every edge costs exactly one hop.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/rostergraph/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from vertex index start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: index %d", ErrStartVertexNotFound, start)
	}
	if o.Adjacency != nil && len(o.Adjacency) != n {
		return nil, fmt.Errorf("%w: adjacency snapshot has %d rows, graph has %d vertices",
			ErrOptionViolation, len(o.Adjacency), n)
	}

	// Prepare walker
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, Unreached)
	// Main loop
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks v discovered at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// neighbors returns the sorted neighbor indices of v, from the snapshot when present.
func (w *walker) neighbors(v int) ([]int, error) {
	if w.opts.Adjacency != nil {
		return w.opts.Adjacency[v], nil
	}
	nbrs, err := w.graph.NeighborIndices(v)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, v, err)
	}

	return nbrs, nil
}

// enqueueNeighbors applies MaxDepth and enqueues each undiscovered neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	nbrs, err := w.neighbors(item.v)
	if err != nil {
		return err
	}
	for _, nbr := range nbrs {
		// first time seen?
		if w.res.Depth[nbr] == Unreached {
			w.enqueue(nbr, nextDepth, item.v)
		}
	}

	return nil
}
