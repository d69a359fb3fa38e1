// Package spanning computes spanning forests of the teammate graph with
// Kruskal's and Prim's algorithms.
//
// What & Why
//
//   - The default is the MAXIMUM-weight forest: edge weights count shared
//     rosters, so the heaviest forest keeps the longest-running partnerships
//     while still connecting every player to their component. It is the
//     "backbone" of the league's teammate network.
//
//   - WithMinimum computes the classic minimum spanning forest instead.
//
// Algorithms Provided
//
//   - Kruskal(g, opts...) (Forest, error)
//
//   - Strategy: sort all edges by weight, then merge components with a
//     disjoint-set (union-find), skipping edges inside one component.
//
//   - Covers every component: Trees == |V| - len(Edges).
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g, root, opts...) (Forest, error)
//
//   - Strategy: grow a single tree from root with a heap of candidate edges.
//
//   - Covers root's component only.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Compute(g, opts...) dispatches on WithMethod.
//
//   - Strongest(g, forest, n) names the n heaviest forest edges.
//
// Determinism
//
//	Equal weights break ties on (From, To) vertex indices in both
//	algorithms, so the same graph always yields the same forest and, on a
//	connected graph, Kruskal and Prim agree on TotalWeight.
//
// Error Conditions
//
//   - ErrGraphNil     graph is nil.
//   - ErrRootNotFound Prim root out of range.
//   - ErrBadMethod    Compute with an unknown method.
//
// A disconnected graph is not an error: the result is a forest.
package spanning
