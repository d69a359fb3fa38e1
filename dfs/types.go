// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
)

// Unvisited marks a vertex the traversal never reached, in DFSResult.Depth,
// DFSResult.Parent and DFSResult.Tree. Tree roots also carry Unvisited as Parent.
const Unvisited = -1

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start index is out of range.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-graph mode, and diagnostics.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(v int) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex in the graph,
	// covering disconnected components (forest traversal). Roots are tried in
	// ascending vertex-name order, so each tree is rooted at the
	// lexicographically smallest name it contains. Default is false.
	FullTraversal bool

	// Adjacency, if non-nil, is a pre-built neighbor snapshot
	// (see core.Graph.AdjacencyList) used instead of per-vertex graph lookups.
	Adjacency [][]int

	// SkippedNeighbors tracks how many neighbor vertices were skipped
	// due to FilterNeighbor returning false. Useful for diagnostics.
	SkippedNeighbors int

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a vertex is first discovered.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a vertex's descendants have been fully explored.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited; -1 removes the limit.
// Anything below -1 is recorded as ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < -1 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(v) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(v int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// When set, DFS will restart from each unvisited vertex, covering disconnected components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// WithAdjacency makes DFS read neighbors from adj instead of the graph.
// adj must come from the same graph (len(adj) == VertexCount()).
func WithAdjacency(adj [][]int) Option {
	return func(o *DFSOptions) {
		o.Adjacency = adj
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// Slices are indexed by vertex index and sized VertexCount().
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Depth is each vertex's tree depth from its root, or Unvisited.
	Depth []int

	// Parent is the vertex from which each vertex was first discovered.
	// Roots and unreached vertices hold Unvisited.
	Parent []int

	// Roots lists the tree roots in the order they were started.
	// Single-source traversal has exactly one root.
	Roots []int

	// Tree maps each vertex to the position of its root in Roots, or Unvisited.
	Tree []int

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}

// Visited reports whether v was reached. Out-of-range indices report false.
func (r *DFSResult) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unvisited
}
