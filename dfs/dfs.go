// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and result slices.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is out of range in single-source mode.
//   - ErrOptionViolation        for a bad option or a mismatched adjacency snapshot.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/rostergraph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
	tree  int         // position of the current root in res.Roots
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components and start is ignored; otherwise, it
// starts only from start.
// On a hook error or cancellation the partial result is returned with Order cleared.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Single-source mode: verify start
	n := g.VertexCount()
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("%w: index %d", ErrStartVertexNotFound, start)
	}
	if dopts.Adjacency != nil && len(dopts.Adjacency) != n {
		return nil, fmt.Errorf("%w: adjacency snapshot has %d rows, graph has %d vertices",
			ErrOptionViolation, len(dopts.Adjacency), n)
	}

	// 4. Initialize result
	res := &DFSResult{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
		Tree:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = Unvisited
		res.Parent[i] = Unvisited
		res.Tree[i] = Unvisited
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	roots := []int{start}
	if dopts.FullTraversal {
		roots = g.SortedIndices()
	}
	for _, v := range roots {
		if res.Visited(v) {
			continue
		}
		walker.tree = len(res.Roots)
		res.Roots = append(res.Roots, v)
		if err := walker.traverse(v, 0); err != nil {
			res.Order = nil
			res.SkippedNeighbors = walker.opts.SkippedNeighbors

			return res, err
		}
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// neighbors returns v's neighbor indices, from the snapshot when present.
func (w *dfsWalker) neighbors(v int) ([]int, error) {
	if w.opts.Adjacency != nil {
		return w.opts.Adjacency[v], nil
	}

	return w.graph.NeighborIndices(v)
}

// traverse visits vertex v at given depth, recursing to neighbors.
// It honors context cancellation, depth limit, hooks and filtering.
func (w *dfsWalker) traverse(v, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Depth[v] = depth
	w.res.Tree[v] = w.tree

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 4. Explore neighbors unless the depth limit is reached
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.neighbors(v)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %d: %w", v, err)
		}
		for _, nb := range nbs {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
				w.opts.SkippedNeighbors++
				continue
			}
			if w.res.Depth[nb] != Unvisited {
				continue
			}
			w.res.Parent[nb] = v
			if err = w.traverse(nb, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, v)

	return nil
}
