// Package astar provides goal-directed shortest-path search over a
// core.Graph with pluggable edge costs and heuristics.
//
// Overview:
//
//   - Search(g, s, t) finds a least-cost s→t path in O((V + E) log V) time
//     and stops as soon as t is finalized.
//   - Distances(g, s) runs the same engine without a target, i.e. Dijkstra,
//     and returns the cost to every vertex.
//   - The defaults (UnitCost, ZeroHeuristic) make Search behave exactly like
//     breadth-first search: Result.Cost is the hop count.
//
// When to use:
//
//   - Sampling pairwise distances, where each query has one concrete target.
//   - Weighted closeness, where edges should cost something other than one hop
//     (WithEdgeCost(WeightCost) or WithEdgeCost(InverseWeightCost(k))).
//
// Key features:
//
//   - Functional options: WithEdgeCost, WithHeuristic.
//   - Deterministic tie-breaking in the heap (f, then deeper g, then index),
//     so equal-cost paths are reconstructed identically across runs.
//   - Read-only: the graph is never mutated and may be shared by many
//     concurrent searches.
//
// Errors:
//
//   - ErrNilGraph, ErrVertexNotFound, ErrNegativeCost, ErrNoPath.
//
// Example usage:
//
//	res, err := astar.Search(g, alice, dave)
//	if errors.Is(err, astar.ErrNoPath) {
//	    // different components
//	}
//	fmt.Println(res.Cost, res.Path)
package astar
