package converters_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rostergraph/converters"
	"github.com/katalvlaran/rostergraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

func fixture(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.Connect("Alice", "Bob")
	require.NoError(t, err)
	_, err = g.Connect("Alice", "Bob")
	require.NoError(t, err)
	_, err = g.Connect("Bob", "Carol")
	require.NoError(t, err)
	_, err = g.AddVertex("Dave")
	require.NoError(t, err)

	return g
}

func TestToGonum(t *testing.T) {
	g := fixture(t)
	wg := converters.ToGonum(g)

	assert.Equal(t, 4, wg.Nodes().Len())
	assert.Equal(t, 2, wg.Edges().Len())
	w, ok := wg.Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
	w, ok = wg.Weight(1, 0)
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
	_, ok = wg.Weight(0, 3)
	assert.False(t, ok)

	ug := converters.ToGonumUnweighted(g)
	assert.Equal(t, 4, ug.Nodes().Len())
	assert.True(t, ug.HasEdgeBetween(1, 2))

	dg := converters.ToGonumDirected(g)
	assert.True(t, dg.HasEdgeFromTo(0, 1))
	assert.True(t, dg.HasEdgeFromTo(1, 0))
	assert.Equal(t, 4, dg.Edges().Len())

	assert.Equal(t, 0, converters.ToGonum(nil).Nodes().Len())
}

func TestToGonumDirectedUnweighted(t *testing.T) {
	g := fixture(t)
	dg := converters.ToGonumDirectedUnweighted(g)

	assert.Equal(t, 4, dg.Nodes().Len())
	assert.Equal(t, 4, dg.Edges().Len())
	assert.True(t, dg.HasEdgeFromTo(1, 2))
	assert.True(t, dg.HasEdgeFromTo(2, 1))
	assert.False(t, dg.HasEdgeFromTo(0, 3))

	var v interface{} = dg
	_, weighted := v.(graph.WeightedDirected)
	assert.False(t, weighted, "weights must not leak into unweighted algorithms")

	assert.Equal(t, 0, converters.ToGonumDirectedUnweighted(nil).Nodes().Len())
}

func TestFromGonum_RoundTrip(t *testing.T) {
	g := fixture(t)
	names := map[int64]string{0: "Alice", 1: "Bob", 2: "Carol", 3: "Dave"}

	back, err := converters.FromGonum(converters.ToGonum(g), func(id int64) string { return names[id] })
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestFromGonum_Unweighted(t *testing.T) {
	src := simple.NewUndirectedGraph()
	src.SetEdge(src.NewEdge(simple.Node(5), simple.Node(2)))
	src.AddNode(simple.Node(9))

	g, err := converters.FromGonum(src, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "5", "9"}, g.Vertices())
	e, ok := g.Edge(0, 1)
	require.True(t, ok)
	assert.Equal(t, int64(1), e.Weight)
}

func TestFromGonum_Errors(t *testing.T) {
	_, err := converters.FromGonum(nil, nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)

	for _, w := range []float64{0.5, 0, -2, math.Inf(1)} {
		src := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		src.SetWeightedEdge(src.NewWeightedEdge(simple.Node(0), simple.Node(1), w))
		_, err = converters.FromGonum(src, nil)
		assert.ErrorIs(t, err, converters.ErrNonIntegralWeight, "w=%v", w)
	}
}

func TestNames(t *testing.T) {
	g := fixture(t)
	got := converters.Names(g, map[int64]float64{0: 0.5, 2: 0.25, 42: 1})
	assert.Equal(t, map[string]float64{"Alice": 0.5, "Carol": 0.25}, got)
}
