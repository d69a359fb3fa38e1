// SPDX-License-Identifier: MIT
// Package: rostergraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context (record position, field name) is attached with %w at the
//     failure site, never baked into the sentinel.
//   • Build never panics; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrEmptyField indicates that a record carries an empty Player, Team or
// Season. Well-formed upstream input (the loader drops such rows) never
// triggers it.
// Usage: if errors.Is(err, ErrEmptyField) { /* reject the dataset */ }.
var ErrEmptyField = errors.New("builder: record field is empty")

// builderErrorf wraps a sentinel with method context.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>".
//
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
