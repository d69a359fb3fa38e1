// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for rostergraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep method-level tests stdlib-only.
//   - Never call *testing.T from spawned goroutines.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/rostergraph/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "Alice"
	VertexB = "Bob"
	VertexC = "Carol"
	VertexD = "Dave"

	VertexX = "Xavier"
)

// Common weights used across core tests.
const (
	Weight0 = 0
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
)

// Concurrency sizes.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// mustVertex adds id and returns its index, failing the test on error.
func mustVertex(t *testing.T, g *core.Graph, id string) int {
	t.Helper()
	idx, err := g.AddVertex(id)
	MustNoError(t, err, "AddVertex("+id+")")

	return idx
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
//
// Notes:
//   - Use only for sentinel-style contracts (core.Err*).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d; want %d", op, got, want)
}

// MustEqualBool FAILS the test if got != want.
func MustEqualBool(t *testing.T, got, want bool, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %v; want %v", op, got, want)
}

// MustEqualInts FAILS the test if the slices differ in length or content.
func MustEqualInts(t *testing.T, got, want []int, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: len=%d; want %d (got %v, want %v)", op, len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: [%d]=%d; want %d (got %v, want %v)", op, i, got[i], want[i], got, want)
		}
	}
}

// MustEqualStrings FAILS the test if the slices differ in length or content.
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: len=%d; want %d (got %v, want %v)", op, len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: [%d]=%q; want %q (got %v, want %v)", op, i, got[i], want[i], got, want)
		}
	}
}
