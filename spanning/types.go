// Package spanning defines configuration options, sentinel errors and the
// Forest result for spanning-forest computation.
package spanning

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rostergraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("spanning: graph is nil")

	// ErrRootNotFound indicates that the Prim root index is out of range.
	ErrRootNotFound = errors.New("spanning: root vertex not found")

	// ErrBadMethod is returned by Compute for an unknown method name.
	ErrBadMethod = errors.New("spanning: unknown method")
)

// MethodPrim selects Prim's algorithm (grow one tree from a root using a heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which algorithm runs, its Prim root and the weight order.
// Use DefaultOptions() to get the default setup (Kruskal, maximum weight).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex index for Prim's algorithm. Unused by Kruskal.
	Root int

	// Minimize selects the lightest forest instead of the heaviest.
	Minimize bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithMinimum returns an Option that selects the minimum-weight forest.
func WithMinimum() Option {
	return func(opts *MSTOptions) {
		opts.Minimize = true
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal with maximum weight.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Forest is a spanning forest: one tree per connected component that the
// algorithm covered.
type Forest struct {
	// Edges are the chosen edges, in the order they were accepted.
	Edges []core.Edge

	// TotalWeight sums Edges' weights.
	TotalWeight int64

	// Trees counts the trees, isolated vertices included.
	Trees int
}

// Tie is a named forest edge, ready for reporting.
type Tie struct {
	A      string `json:"a"`
	B      string `json:"b"`
	Weight int64  `json:"weight"`
}

// Compute selects and runs the algorithm based on opts.
//
//	– MethodKruskal: spanning forest over every component.
//	– MethodPrim:    spanning tree of the root's component.
func Compute(g *core.Graph, opts ...Option) (Forest, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g, opts...)
	case MethodPrim:
		return Prim(g, o.Root, opts...)
	default:
		return Forest{}, fmt.Errorf("%w: %q", ErrBadMethod, o.Method)
	}
}

// better orders edges for the chosen direction, with endpoint indices as the
// deterministic tie-break.
func better(a, b core.Edge, minimize bool) bool {
	if a.Weight != b.Weight {
		if minimize {
			return a.Weight < b.Weight
		}
		return a.Weight > b.Weight
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}
