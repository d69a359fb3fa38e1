// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves every vertex and edge index, so index-based results
//     computed on the source remain valid on the clone.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with the same vertices (same indices) but
// no edges.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraphWithCapacity(len(g.vertices), 0)
	clone.vertices = append(clone.vertices, g.vertices...)
	for i := range g.vertices {
		clone.index[g.vertices[i].ID] = i
		clone.adjacency = append(clone.adjacency, make(map[int]int))
	}

	return clone
}

// Clone returns a deep copy of the Graph: vertices, edges with their weights,
// and adjacency. Later mutations of either graph do not affect the other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraphWithCapacity(len(g.vertices), len(g.edges))
	clone.vertices = append(clone.vertices, g.vertices...)
	clone.edges = append(clone.edges, g.edges...)
	for i := range g.vertices {
		clone.index[g.vertices[i].ID] = i
		nbrs := make(map[int]int, len(g.adjacency[i]))
		for v, eid := range g.adjacency[i] {
			nbrs[v] = eid
		}
		clone.adjacency = append(clone.adjacency, nbrs)
	}

	return clone
}
