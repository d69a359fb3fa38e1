// SPDX-License-Identifier: MIT
// Package: rostergraph/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - Build groups records into rosters and turns every roster into a clique
//     of weight-1 increments on a fresh core.Graph.
//   - Determinism: rosters are processed in first-appearance order and
//     players in input order, so equal inputs yield identical vertex and edge
//     indices.
//   - Safety: never panic; return sentinel errors wrapped with context.

package builder

import (
	"github.com/katalvlaran/rostergraph/core"
)

// Build constructs the teammate graph from records.
//
// Implementation:
//   - Stage 1: Validate records (ErrEmptyField on the first empty field).
//   - Stage 2: Group into rosters keyed by (Team, Season), first-appearance order.
//   - Stage 3: Per roster, deduplicate players and skip rosters below the
//     configured minimum size.
//   - Stage 4: Resolve names to vertex indices (AddVertex is idempotent).
//   - Stage 5: For every unordered pair i<j of distinct indices call
//     IncrementEdge(u, v, 1). Final weight = number of shared rosters.
//
// Returns:
//   - *core.Graph: empty (not nil) for empty input.
//   - error: ErrEmptyField wrapped with the record position, or a core error
//     wrapped with the roster key (unreachable for validated input).
//
// Complexity:
//   - Time O(R + Σ k²) where R = len(records) and k = roster size.
//   - Space O(V + E).
func Build(records []Record, opts ...Option) (*core.Graph, error) {
	if err := validateRecords(MethodBuild, records); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	g := core.NewGraphWithCapacity(cfg.vertexHint, 0)
	for _, roster := range Rosters(records) {
		if err := addRoster(g, roster, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Rosters groups records by (Team, Season). Groups appear in the order their
// first record appears; within a group, players keep input order and
// duplicates are preserved.
//
// Complexity: O(len(records)) time and space.
func Rosters(records []Record) []Roster {
	pos := make(map[RosterKey]int)
	out := make([]Roster, 0)
	for i := range records {
		key := RosterKey{Team: records[i].Team, Season: records[i].Season}
		at, ok := pos[key]
		if !ok {
			at = len(out)
			pos[key] = at
			out = append(out, Roster{Key: key})
		}
		out[at].Players = append(out[at].Players, records[i].Player)
	}

	return out
}

// addRoster links every distinct pair of players in roster.
func addRoster(g *core.Graph, roster Roster, cfg builderConfig) error {
	names := distinct(roster.Players)
	if len(names) < cfg.minRosterSize {
		return nil
	}

	idx := make([]int, 0, len(names))
	for _, name := range names {
		i, err := g.AddVertex(name)
		if err != nil {
			return builderErrorf(MethodBuild, err, "roster %s/%s", roster.Key.Team, roster.Key.Season)
		}
		idx = append(idx, i)
	}

	for i := 0; i < len(idx); i++ {
		for j := i + 1; j < len(idx); j++ {
			u, v := idx[i], idx[j]
			// Duplicates are already removed; the guard keeps IncrementEdge
			// from ever seeing a loop.
			if u == v {
				continue
			}
			if _, err := g.IncrementEdge(u, v, 1); err != nil {
				return builderErrorf(MethodBuild, err, "roster %s/%s", roster.Key.Team, roster.Key.Season)
			}
		}
	}

	return nil
}

// distinct returns names without repeats, preserving first occurrence order.
func distinct(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out
}
