// File: methods_edges.go
// Role: Edge lifecycle & queries: IncrementEdge/HasEdge/Edge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in arena order (creation order).
//   - Edge endpoints are stored canonically (From < To).
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "fmt"

// IncrementEdge adds delta to the weight of the undirected edge {u,v},
// creating the edge with weight delta when the pair is not yet connected.
//
// Steps:
//  1. Validate delta > 0 (ErrBadWeight).
//  2. Reject u == v (ErrLoopNotAllowed).
//  3. Lock mu, validate both indices (ErrVertexNotFound).
//  4. If adjacency[u][v] exists, bump its weight; otherwise append a new
//     arena edge and link it in both adjacency maps.
//
// Returns the arena index of the edge.
// Complexity: O(1) amortized.
func (g *Graph) IncrementEdge(u, v int, delta int64) (int, error) {
	if delta <= 0 {
		return -1, fmt.Errorf("%w: delta=%d", ErrBadWeight, delta)
	}
	if u == v {
		return -1, fmt.Errorf("%w: vertex %d", ErrLoopNotAllowed, u)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validIndex(u) {
		return -1, fmt.Errorf("%w: index %d", ErrVertexNotFound, u)
	}
	if !g.validIndex(v) {
		return -1, fmt.Errorf("%w: index %d", ErrVertexNotFound, v)
	}

	if eid, ok := g.adjacency[u][v]; ok {
		g.edges[eid].Weight += delta

		return eid, nil
	}

	from, to := u, v
	if from > to {
		from, to = to, from
	}
	eid := len(g.edges)
	g.edges = append(g.edges, Edge{Index: eid, From: from, To: to, Weight: delta})
	g.adjacency[u][v] = eid
	g.adjacency[v][u] = eid

	return eid, nil
}

// Connect resolves two vertex IDs (creating missing vertices) and increments
// their edge by one. It is the by-name convenience over AddVertex+IncrementEdge.
func (g *Graph) Connect(a, b string) (int, error) {
	u, err := g.AddVertex(a)
	if err != nil {
		return -1, err
	}
	v, err := g.AddVertex(b)
	if err != nil {
		return -1, err
	}

	return g.IncrementEdge(u, v, 1)
}

// HasEdge reports whether vertices u and v are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Edge(u, v)

	return ok
}

// Edge returns a copy of the edge connecting u and v.
// Complexity: O(1).
func (g *Graph) Edge(u, v int) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.validIndex(u) || !g.validIndex(v) {
		return Edge{}, false
	}
	eid, ok := g.adjacency[u][v]
	if !ok {
		return Edge{}, false
	}

	return g.edges[eid], true
}

// Edges returns a copy of the edge arena in creation order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
