// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary getters over the arena.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// Stats produces a read-only snapshot of catalog sizes and weight totals.
//
// Implementation:
//   - Stage 1: Acquire mu.RLock.
//   - Stage 2: Scan the edge arena once for weight totals.
//   - Stage 3: Scan adjacency once for isolated vertices.
//
// Returns:
//   - GraphStats: value snapshot (safe to keep after the graph changes).
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for i := range g.edges {
		w := g.edges[i].Weight
		stats.TotalWeight += w
		if w > stats.MaxWeight {
			stats.MaxWeight = w
		}
	}
	for _, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			stats.IsolatedCount++
		}
	}

	return stats
}

// Density returns 2E / (V(V-1)) for the simple undirected graph, or 0 when
// fewer than two vertices exist.
// Complexity: O(1).
func (g *Graph) Density() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := len(g.vertices)
	if n < 2 {
		return 0
	}

	return 2 * float64(len(g.edges)) / (float64(n) * float64(n-1))
}
