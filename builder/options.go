// SPDX-License-Identifier: MIT
// Package: rostergraph/builder
//
// options.go: functional options and the resolved builder configuration.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Build itself never panics.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Defaults:
//   • minRosterSize = 1 (every roster contributes, singletons add a vertex only)
//   • vertexHint    = 0 (arena grows on demand)

package builder

// Option customizes Build by mutating a builderConfig before the graph is built.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// builderConfig is passed by value to the build stages.
type builderConfig struct {
	// Rosters with fewer distinct players than this are skipped entirely.
	minRosterSize int
	// Preallocation hint for the vertex arena; 0 means "grow on demand".
	vertexHint int
}

const (
	// DefaultMinRosterSize keeps every roster, including single-player ones.
	DefaultMinRosterSize = 1

	// MethodBuild is the error-context token used by Build.
	MethodBuild = "Build"
)

// newBuilderConfig resolves opts on top of the defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{minRosterSize: DefaultMinRosterSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMinRosterSize skips rosters whose deduplicated size is below n.
// A skipped roster contributes neither vertices nor edges.
// Panics if n < 1.
// Complexity: O(1) time, O(1) space.
func WithMinRosterSize(n int) Option {
	if n < 1 {
		panic("builder: WithMinRosterSize(n<1)")
	}

	return func(c *builderConfig) {
		c.minRosterSize = n
	}
}

// WithVertexHint preallocates the vertex arena for roughly n players.
// Panics if n < 0.
func WithVertexHint(n int) Option {
	if n < 0 {
		panic("builder: WithVertexHint(n<0)")
	}

	return func(c *builderConfig) {
		c.vertexHint = n
	}
}
