// Package similarity defines options, sentinel errors and the result type
// for neighborhood-similarity analysis.
package similarity

import (
	"context"
	"errors"
)

// Sentinel errors for similarity analysis.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("similarity: graph is nil")

	// ErrNoPair indicates a graph with fewer than two vertices.
	ErrNoPair = errors.New("similarity: fewer than two vertices")
)

// Pair is the most similar vertex pair. A sorts before B.
type Pair struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Score float64 `json:"score"`
}

// Option configures MostSimilarPair.
type Option func(*options)

type options struct {
	ctx     context.Context
	workers int
}

func defaultOptions() options {
	return options{ctx: context.Background(), workers: 1}
}

// WithWorkers splits the outer loop over n goroutines. Each worker keeps
// the first maximum of its rows and the row winners are merged in canonical
// order, so the chosen pair does not depend on n. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("similarity: WithWorkers(n<1)")
	}

	return func(o *options) {
		o.workers = n
	}
}

// WithContext sets a context checked once per outer-loop row.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
