package centrality_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/rostergraph/centrality"
	"github.com/katalvlaran/rostergraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRank_Validation(t *testing.T) {
	_, err := centrality.PageRank(nil, centrality.DefaultDamping, centrality.DefaultTolerance, false)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)

	g := complete(t, 3)
	for _, d := range []float64{0, 1, -0.5, 1.5} {
		_, err = centrality.PageRank(g, d, centrality.DefaultTolerance, false)
		assert.ErrorIs(t, err, centrality.ErrBadDamping, "d=%v", d)
	}

	ranks, err := centrality.PageRank(core.NewGraph(), centrality.DefaultDamping, centrality.DefaultTolerance, false)
	require.NoError(t, err)
	assert.Empty(t, ranks)
}

func TestPageRank_SymmetricCycleIsUniform(t *testing.T) {
	g := core.NewGraph()
	const n = 6
	for i := 0; i < n; i++ {
		_, _ = g.Connect(fmt.Sprintf("P%d", i), fmt.Sprintf("P%d", (i+1)%n))
	}
	ranks, err := centrality.PageRank(g, centrality.DefaultDamping, 1e-9, false)
	require.NoError(t, err)
	require.Len(t, ranks, n)
	for name, r := range ranks {
		assert.InDelta(t, 1.0/n, r, 1e-4, name)
	}
}

func TestPageRank_StarHubLeads(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 8; i++ {
		_, _ = g.Connect("hub", fmt.Sprintf("leaf%d", i))
	}
	for _, weighted := range []bool{false, true} {
		ranks, err := centrality.PageRank(g, centrality.DefaultDamping, 1e-9, weighted)
		require.NoError(t, err)

		sum := 0.0
		for _, r := range ranks {
			sum += r
		}
		assert.InDelta(t, 1.0, sum, 1e-3)

		top := centrality.Top(ranks, 1)
		require.Len(t, top, 1)
		assert.Equal(t, "hub", top[0].Name)
	}
}

func TestPageRank_WeightShiftsRank(t *testing.T) {
	// Path A–B–C where A–B is heavy: with weights, B sends more rank to A.
	g := core.NewGraph()
	for i := 0; i < 9; i++ {
		_, _ = g.Connect("A", "B")
	}
	_, _ = g.Connect("B", "C")

	plain, err := centrality.PageRank(g, centrality.DefaultDamping, 1e-9, false)
	require.NoError(t, err)
	assert.InDelta(t, plain["A"], plain["C"], 1e-4)

	weighted, err := centrality.PageRank(g, centrality.DefaultDamping, 1e-9, true)
	require.NoError(t, err)
	assert.Greater(t, weighted["A"], weighted["C"])
}

func TestPageRank_UnweightedIgnoresWeights(t *testing.T) {
	// 4-cycle A–B–C–D with a heavy A–B tie.
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		_, _ = g.Connect("A", "B")
	}
	_, _ = g.Connect("B", "C")
	_, _ = g.Connect("C", "D")
	_, _ = g.Connect("D", "A")

	plain, err := centrality.PageRank(g, centrality.DefaultDamping, 1e-9, false)
	require.NoError(t, err)
	require.Len(t, plain, 4)
	for name, r := range plain {
		assert.InDelta(t, 0.25, r, 1e-4, name)
	}

	weighted, err := centrality.PageRank(g, centrality.DefaultDamping, 1e-9, true)
	require.NoError(t, err)
	assert.Greater(t, weighted["A"], weighted["C"]+0.1)
	assert.InDelta(t, weighted["A"], weighted["B"], 1e-4)
}
