// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - SortedIndices() returns indices ordered by their IDs.
//
// Concurrency:
//   - AddVertex under mu write lock; queries under mu read lock.
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing and returns its index (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under mu write lock, return the existing index or append a new arena slot.
//
// Returns:
//   - int: arena index of the vertex (new or existing).
//   - error: ErrEmptyVertexID on invalid input.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) (int, error) {
	if id == "" {
		return -1, ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if idx, ok := g.index[id]; ok {
		return idx, nil // no-op for existing vertex
	}

	idx := len(g.vertices)
	g.vertices = append(g.vertices, Vertex{Index: idx, ID: id})
	g.index[id] = idx
	g.adjacency = append(g.adjacency, make(map[int]int))

	return idx, nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.VertexIndex(id)

	return ok
}

// VertexIndex resolves a vertex ID to its arena index.
// Complexity: O(1).
func (g *Graph) VertexIndex(id string) (int, bool) {
	if id == "" {
		return -1, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.index[id]

	return idx, ok
}

// VertexID returns the name stored at arena index i.
// Returns ErrVertexNotFound for an out-of-range index.
func (g *Graph) VertexID(i int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.validIndex(i) {
		return "", fmt.Errorf("%w: index %d", ErrVertexNotFound, i)
	}

	return g.vertices[i].ID, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.vertices))
	for i := range g.vertices {
		out[i] = g.vertices[i].ID
	}
	sort.Strings(out)

	return out
}

// SortedIndices returns every vertex index ordered by vertex ID ascending.
// This is the canonical iteration order for algorithms whose tie-breaking
// must not depend on insertion order.
// Complexity: O(V log V).
func (g *Graph) SortedIndices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, len(g.vertices))
	for i := range out {
		out[i] = i
	}
	sort.Slice(out, func(a, b int) bool {
		return g.vertices[out[a]].ID < g.vertices[out[b]].ID
	})

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to vertex i.
// Weight never affects degree: a pair that co-occurred five times is still one edge.
// Complexity: O(1).
func (g *Graph) Degree(i int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.validIndex(i) {
		return 0, fmt.Errorf("%w: index %d", ErrVertexNotFound, i)
	}

	return len(g.adjacency[i]), nil
}

// validIndex reports whether i addresses an arena slot. Caller holds mu.
func (g *Graph) validIndex(i int) bool {
	return i >= 0 && i < len(g.vertices)
}
