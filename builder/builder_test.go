// Package builder_test contains functional tests for Build and Rosters,
// verifying vertex sets, edge weights, deduplication and error reporting.
package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/rostergraph/builder"
	"github.com/katalvlaran/rostergraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edgeKey identifies an edge by its endpoint names (sorted).
type edgeKey struct{ U, V string }

// edgeWeights returns a map from edgeKey to weight for all edges in g.
func edgeWeights(t *testing.T, g *core.Graph) map[edgeKey]int64 {
	t.Helper()
	m := make(map[edgeKey]int64)
	for _, e := range g.Edges() {
		u, err := g.VertexID(e.From)
		require.NoError(t, err)
		v, err := g.VertexID(e.To)
		require.NoError(t, err)
		if u > v {
			u, v = v, u
		}
		m[edgeKey{U: u, V: v}] = e.Weight
	}

	return m
}

func rec(player, team, season string) builder.Record {
	return builder.Record{Player: player, Team: team, Season: season}
}

// lakersHeat is the two-roster fixture: Alice played with Bob, then with Carol.
var lakersHeat = []builder.Record{
	rec("Alice", "LAL", "2020"),
	rec("Bob", "LAL", "2020"),
	rec("Alice", "MIA", "2021"),
	rec("Carol", "MIA", "2021"),
}

func TestBuild_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		records   []builder.Record
		opts      []builder.Option
		wantV     []string
		wantEdges map[edgeKey]int64
	}{
		{
			name:      "Empty",
			records:   nil,
			wantV:     []string{},
			wantEdges: map[edgeKey]int64{},
		},
		{
			name:    "LakersHeat",
			records: lakersHeat,
			wantV:   []string{"Alice", "Bob", "Carol"},
			wantEdges: map[edgeKey]int64{
				{"Alice", "Bob"}:   1,
				{"Alice", "Carol"}: 1,
			},
		},
		{
			name: "SameRosterTwiceDoublesWeights",
			records: []builder.Record{
				rec("Alice", "LAL", "2020"), rec("Bob", "LAL", "2020"), rec("Carol", "LAL", "2020"),
				rec("Alice", "LAL", "2021"), rec("Bob", "LAL", "2021"), rec("Carol", "LAL", "2021"),
			},
			wantV: []string{"Alice", "Bob", "Carol"},
			wantEdges: map[edgeKey]int64{
				{"Alice", "Bob"}:   2,
				{"Alice", "Carol"}: 2,
				{"Bob", "Carol"}:   2,
			},
		},
		{
			name: "DuplicatePlayerNoLoop",
			records: []builder.Record{
				rec("Alice", "LAL", "2020"), rec("Alice", "LAL", "2020"), rec("Bob", "LAL", "2020"),
			},
			wantV:     []string{"Alice", "Bob"},
			wantEdges: map[edgeKey]int64{{"Alice", "Bob"}: 1},
		},
		{
			name:      "SingletonRosterAddsIsolatedVertex",
			records:   []builder.Record{rec("Solo", "BOS", "1999")},
			wantV:     []string{"Solo"},
			wantEdges: map[edgeKey]int64{},
		},
		{
			name: "MinRosterSizeSkipsSmallRosters",
			records: []builder.Record{
				rec("Solo", "BOS", "1999"),
				rec("Alice", "LAL", "2020"), rec("Bob", "LAL", "2020"),
			},
			opts:      []builder.Option{builder.WithMinRosterSize(2)},
			wantV:     []string{"Alice", "Bob"},
			wantEdges: map[edgeKey]int64{{"Alice", "Bob"}: 1},
		},
		{
			name: "SameTeamDifferentSeasonsAreSeparateRosters",
			records: []builder.Record{
				rec("Alice", "LAL", "2020"), rec("Bob", "LAL", "2021"),
			},
			wantV:     []string{"Alice", "Bob"},
			wantEdges: map[edgeKey]int64{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(tc.records, tc.opts...)
			require.NoError(t, err)
			require.NotNil(t, g)

			assert.Equal(t, tc.wantV, g.Vertices())
			assert.Equal(t, tc.wantEdges, edgeWeights(t, g))
			for _, e := range g.Edges() {
				assert.NotEqual(t, e.From, e.To, "self-loop on edge %d", e.Index)
			}
		})
	}
}

func TestBuild_DeterministicIndices(t *testing.T) {
	g1, err := builder.Build(lakersHeat)
	require.NoError(t, err)
	g2, err := builder.Build(lakersHeat)
	require.NoError(t, err)

	assert.Equal(t, g1.Edges(), g2.Edges())
	for _, name := range g1.Vertices() {
		i1, _ := g1.VertexIndex(name)
		i2, _ := g2.VertexIndex(name)
		assert.Equal(t, i1, i2, name)
	}

	// First appearance wins: Alice is 0, Bob 1, Carol 2.
	i, ok := g1.VertexIndex("Carol")
	require.True(t, ok)
	assert.Equal(t, 2, i)
}

func TestBuild_EmptyField(t *testing.T) {
	cases := []builder.Record{
		rec("", "LAL", "2020"),
		rec("Alice", "", "2020"),
		rec("Alice", "LAL", ""),
	}
	for _, bad := range cases {
		_, err := builder.Build([]builder.Record{rec("Bob", "LAL", "2020"), bad})
		require.Error(t, err)
		assert.True(t, errors.Is(err, builder.ErrEmptyField), "got %v", err)
		assert.Contains(t, err.Error(), "record 1")
	}
}

func TestRosters_FirstAppearanceOrder(t *testing.T) {
	records := []builder.Record{
		rec("Alice", "MIA", "2021"),
		rec("Bob", "LAL", "2020"),
		rec("Carol", "MIA", "2021"),
		rec("Bob", "LAL", "2020"),
	}
	rosters := builder.Rosters(records)
	require.Len(t, rosters, 2)

	assert.Equal(t, builder.RosterKey{Team: "MIA", Season: "2021"}, rosters[0].Key)
	assert.Equal(t, []string{"Alice", "Carol"}, rosters[0].Players)
	assert.Equal(t, builder.RosterKey{Team: "LAL", Season: "2020"}, rosters[1].Key)
	assert.Equal(t, []string{"Bob", "Bob"}, rosters[1].Players)

	assert.Empty(t, builder.Rosters(nil))
}

func TestOptions_PanicOnMeaninglessValues(t *testing.T) {
	assert.Panics(t, func() { builder.WithMinRosterSize(0) })
	assert.Panics(t, func() { builder.WithVertexHint(-1) })
	assert.NotPanics(t, func() { builder.WithVertexHint(0) })
}
