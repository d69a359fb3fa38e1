// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types of the
// index-arena graph and the sentinel errors shared by every method.
//
// Vertices and edges live in arena slices addressed by integer index;
// a name→index map resolves player names. Adjacency is a per-vertex map from
// neighbor index to edge index, so the u–v lookup is O(1) and no vertex
// holds a pointer to another.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - vertex index or ID does not exist.
//	ErrBadWeight      - non-positive weight increment.
//	ErrLoopNotAllowed - edge from a vertex to itself.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a weight increment that is zero or negative.
	ErrBadWeight = errors.New("core: weight increment must be positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex is one arena slot.
type Vertex struct {
	// Index is the arena position of this vertex; stable for the graph's lifetime.
	Index int

	// ID is the unique name of this vertex.
	ID string
}

// Edge is an undirected connection between two distinct vertices.
//
// From and To hold vertex indices in canonical order (From < To).
// Weight accumulates every IncrementEdge call on the same pair.
type Edge struct {
	// Index is the arena position of this edge.
	Index int

	// From is the smaller endpoint index.
	From int

	// To is the larger endpoint index.
	To int

	// Weight is the accumulated co-occurrence count.
	Weight int64
}

// Other returns the endpoint of e opposite to v.
// The result is meaningless when v is not an endpoint of e.
func (e Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}

	return e.From
}

// Graph is the in-memory undirected weighted graph.
//
// Invariants:
//   - len(index) == len(vertices); index[vertices[i].ID] == i.
//   - len(adjacency) == len(vertices).
//   - adjacency[u][v] == adjacency[v][u] == edge index of {u,v}; u != v always.
//   - at most one edge per unordered pair.
//
// mu guards every field; readers take RLock, so a built graph may be shared
// by concurrent analyses without further synchronization.
type Graph struct {
	mu sync.RWMutex

	vertices []Vertex      // index → Vertex
	index    map[string]int // ID → index
	edges    []Edge         // index → Edge

	// adjacency[u][v] = edge index of {u,v}
	adjacency []map[int]int
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	VertexCount   int   // number of vertices
	EdgeCount     int   // number of edges
	TotalWeight   int64 // sum of all edge weights
	MaxWeight     int64 // heaviest edge weight (0 for an edgeless graph)
	IsolatedCount int   // vertices with no incident edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make([]Vertex, 0),
		index:     make(map[string]int),
		edges:     make([]Edge, 0),
		adjacency: make([]map[int]int, 0),
	}
}

// NewGraphWithCapacity creates an empty Graph with arena slices
// preallocated for the expected vertex and edge counts.
func NewGraphWithCapacity(vertexHint, edgeHint int) *Graph {
	if vertexHint < 0 {
		vertexHint = 0
	}
	if edgeHint < 0 {
		edgeHint = 0
	}

	return &Graph{
		vertices:  make([]Vertex, 0, vertexHint),
		index:     make(map[string]int, vertexHint),
		edges:     make([]Edge, 0, edgeHint),
		adjacency: make([]map[int]int, 0, vertexHint),
	}
}
