// Package centrality defines options, sentinel errors and result types for
// per-vertex centrality scores.
//
// Options:
//
//	– Workers:  number of goroutines sharing the per-source traversals (default 1).
//	– Context:  cancellation for long runs; checked between traversals.
//	– EdgeCost: nil (default) means unit cost, every edge is one hop.
//	            A non-nil astar.CostFunc switches to weighted distances.
//
// Errors (sentinel):
//
//	– ErrGraphNil   if the provided graph pointer is nil.
//	– ErrBadDamping if PageRank damping lies outside (0, 1).
package centrality

import (
	"context"
	"errors"

	"github.com/katalvlaran/rostergraph/astar"
)

// Sentinel errors for centrality computations.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrBadDamping indicates a PageRank damping factor outside (0, 1).
	ErrBadDamping = errors.New("centrality: damping must be in (0,1)")
)

// Option configures a centrality computation.
type Option func(*options)

// options holds the resolved configuration.
type options struct {
	ctx     context.Context
	workers int
	cost    astar.CostFunc
}

func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		workers: 1,
	}
}

// WithWorkers spreads the per-source traversals over n goroutines.
// Results are identical to the sequential run. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("centrality: WithWorkers(n<1)")
	}

	return func(o *options) {
		o.workers = n
	}
}

// WithContext sets a context that aborts the computation when cancelled.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithEdgeCost switches from hop counts to weighted distances computed by
// astar.Distances under fn. A nil fn restores unit cost.
func WithEdgeCost(fn astar.CostFunc) Option {
	return func(o *options) {
		o.cost = fn
	}
}

// Score pairs a vertex name with its centrality value.
type Score struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
