// Package builder turns (player, team, season) records into the undirected
// teammate graph.
//
// Every (team, season) pair is a roster. Each roster contributes one
// increment to the edge between every two distinct players on it, so an edge
// weight counts the rosters two players shared.
//
// The package offers:
//
//   - Build(records, opts...):  records → *core.Graph.
//   - Rosters(records):         the grouping Build uses, in first-appearance order.
//   - Options:
//     – WithMinRosterSize(n):  skip rosters with fewer than n distinct players.
//     – WithVertexHint(n):     preallocate the vertex arena.
//
// Guarantees:
//
//   - Deterministic: equal input slices produce identical vertex/edge indices.
//   - No self-loops: a player listed twice on one roster is counted once.
//   - An empty input yields an empty, non-nil graph.
//   - Only ErrEmptyField is returned for well-typed input.
//
// Complexity: O(R + Σ k²) for R records and rosters of size k.
package builder
