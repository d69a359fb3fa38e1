// Package astar defines core types and configuration options
// for goal-directed shortest-path search on a core.Graph.
//
// Options:
//
//	– Heuristic: admissible lower bound h(v) on the remaining cost to the target.
//	             Default is the zero heuristic, which turns A* into Dijkstra.
//	– EdgeCost:  maps a stored edge to its traversal cost.
//	             Default is UnitCost: every edge costs 1 and Edge.Weight is ignored.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrVertexNotFound if the source or target index is out of range.
//	– ErrNegativeCost   if the cost function returns a negative value.
//	– ErrNoPath         if the target is unreachable from the source.
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/rostergraph/core"
)

// Sentinel errors returned by the search implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrVertexNotFound indicates that the source or target index does not exist.
	ErrVertexNotFound = errors.New("astar: vertex not found in graph")

	// ErrNegativeCost indicates that the cost function produced a negative edge cost.
	ErrNegativeCost = errors.New("astar: negative edge cost encountered")

	// ErrNoPath indicates that no path connects source and target.
	ErrNoPath = errors.New("astar: no path between vertices")
)

// Unreachable is the distance reported by Distances for vertices the source cannot reach.
const Unreachable int64 = math.MaxInt64

// CostFunc maps an edge to a non-negative traversal cost.
type CostFunc func(e core.Edge) int64

// Heuristic estimates the remaining cost from vertex v to the target.
// It must never overestimate, or the returned path may not be shortest.
type Heuristic func(v int) int64

// UnitCost treats every edge as a single hop regardless of weight.
func UnitCost(core.Edge) int64 { return 1 }

// WeightCost uses the stored edge weight as the traversal cost.
func WeightCost(e core.Edge) int64 { return e.Weight }

// InverseWeightCost makes frequently shared rosters "closer":
// cost = ceil(scale / weight), so heavier edges are cheaper to cross.
// Panics when scale < 1.
func InverseWeightCost(scale int64) CostFunc {
	if scale < 1 {
		panic("astar: InverseWeightCost scale must be >= 1")
	}

	return func(e core.Edge) int64 {
		if e.Weight <= 0 {
			return scale
		}

		return (scale + e.Weight - 1) / e.Weight
	}
}

// ZeroHeuristic is the trivial admissible heuristic h(v) = 0.
func ZeroHeuristic(int) int64 { return 0 }

// Options configures the behavior of the search.
type Options struct {
	Heuristic Heuristic // remaining-cost estimate; ZeroHeuristic by default
	Cost      CostFunc  // edge traversal cost; UnitCost by default
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithHeuristic sets the A* heuristic. A nil heuristic is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithEdgeCost sets the edge cost function. A nil function is ignored.
func WithEdgeCost(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// DefaultOptions returns the unit-cost, zero-heuristic configuration.
func DefaultOptions() Options {
	return Options{
		Heuristic: ZeroHeuristic,
		Cost:      UnitCost,
	}
}

// Result is the outcome of a successful Search.
type Result struct {
	Source int   // start vertex index
	Target int   // goal vertex index
	Cost   int64 // total path cost under the configured CostFunc
	Path   []int // vertex indices from Source to Target inclusive
}

// Hops returns the number of edges on the path.
func (r *Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}
