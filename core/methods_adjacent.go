// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIndices, NeighborIDs, AdjacencyList).
// Determinism:
//   - NeighborIndices() returns indices sorted ascending.
//   - NeighborIDs() returns names sorted lexicographically ascending.
// Concurrency:
//   - All methods hold mu read lock for a consistent snapshot.

package core

import (
	"fmt"
	"sort"
)

// NeighborIndices returns the indices of vertices adjacent to i, sorted ascending.
//
// Behavior highlights:
//   - Open neighborhood: i itself never appears (the graph holds no loops).
//   - Each neighbor appears once regardless of edge weight.
//   - The returned slice is freshly allocated; callers may keep or mutate it.
//
// Errors:
//   - ErrVertexNotFound: if i is out of range.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIndices(i int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.validIndex(i) {
		return nil, fmt.Errorf("%w: index %d", ErrVertexNotFound, i)
	}

	out := make([]int, 0, len(g.adjacency[i]))
	for nbr := range g.adjacency[i] {
		out = append(out, nbr)
	}
	sort.Ints(out)

	return out, nil
}

// IncidentEdges returns copies of the edges touching i, ordered by the
// neighbor index on the far side.
// Complexity: O(d log d).
func (g *Graph) IncidentEdges(i int) ([]Edge, error) {
	nbrs, err := g.NeighborIndices(i)
	if err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(nbrs))
	for _, nbr := range nbrs {
		eid, ok := g.adjacency[i][nbr]
		if !ok {
			continue // graph is build-once; a concurrent writer is a caller bug
		}
		out = append(out, g.edges[eid])
	}

	return out, nil
}

// NeighborIDs returns the names of vertices adjacent to id, sorted ascending.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	out := make([]string, 0, len(g.adjacency[idx]))
	for nbr := range g.adjacency[idx] {
		out = append(out, g.vertices[nbr].ID)
	}
	sort.Strings(out)

	return out, nil
}

// AdjacencyList returns a snapshot mapping each vertex index to its sorted
// neighbor indices. Slices are independent of graph storage.
//
// Analyses that touch every neighborhood many times (similarity, all-sources
// traversal) take this snapshot once instead of locking per lookup.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([][]int, len(g.adjacency))
	for u, nbrs := range g.adjacency {
		list := make([]int, 0, len(nbrs))
		for v := range nbrs {
			list = append(list, v)
		}
		sort.Ints(list)
		out[u] = list
	}

	return out
}
