// Package pathsample defines options, sentinel errors and the estimate type
// for sampled average shortest-path length.
//
// Errors (sentinel):
//
//	– ErrGraphNil       if the provided graph pointer is nil.
//	– ErrBadSampleSize  if the requested sample size is < 1.
//	– ErrNilRand        if no random source was supplied.
//	– ErrNoData         if the graph has < 2 vertices or no sampled pair is connected.
package pathsample

import (
	"context"
	"errors"

	"github.com/katalvlaran/rostergraph/astar"
)

// Sentinel errors for path sampling.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("pathsample: graph is nil")

	// ErrBadSampleSize indicates a sample size below one.
	ErrBadSampleSize = errors.New("pathsample: sample size must be >= 1")

	// ErrNilRand indicates a nil *rand.Rand.
	ErrNilRand = errors.New("pathsample: random source is nil")

	// ErrNoData indicates that no average can be computed: fewer than two
	// vertices, or every sampled pair was disconnected.
	ErrNoData = errors.New("pathsample: no connected pair sampled")
)

// Estimate is the outcome of a sampling run.
type Estimate struct {
	Mean   float64 `json:"mean"`    // average path cost over Found pairs
	StdDev float64 `json:"std_dev"` // sample standard deviation of those costs (0 when Found < 2)
	Max    int64   `json:"max"`     // longest sampled path cost
	Found  int     `json:"found"`   // pairs that had a path
	Drawn  int     `json:"drawn"`   // pairs drawn, repeats counted
}

// Option configures a sampling run.
type Option func(*options)

type options struct {
	ctx     context.Context
	workers int
	cost    astar.CostFunc
}

func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		workers: 1,
		cost:    astar.UnitCost,
	}
}

// WithWorkers runs the per-pair searches on n goroutines. Pairs are still
// drawn sequentially from the single random source, so the estimate does not
// depend on n. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("pathsample: WithWorkers(n<1)")
	}

	return func(o *options) {
		o.workers = n
	}
}

// WithContext sets a context that aborts the run when cancelled.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithEdgeCost replaces unit cost with fn. A nil fn restores unit cost.
func WithEdgeCost(fn astar.CostFunc) Option {
	return func(o *options) {
		if fn == nil {
			fn = astar.UnitCost
		}
		o.cost = fn
	}
}
