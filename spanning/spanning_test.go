package spanning_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rostergraph/core"
	"github.com/katalvlaran/rostergraph/dfs"
	"github.com/katalvlaran/rostergraph/spanning"
)

// buildTriangle constructs A-B (1), B-C (2), A-C (3).
func buildTriangle(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, name := range []string{"A", "B", "C"} {
		_, err := g.AddVertex(name)
		require.NoError(t, err)
	}
	for _, e := range []struct {
		u, v int
		w    int64
	}{{0, 1, 1}, {1, 2, 2}, {0, 2, 3}} {
		_, err := g.IncrementEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

// buildRandom creates n vertices, a weighted chain for connectivity when
// connected is set, and extra random edges with weights in [1,20].
func buildRandom(t testing.TB, n, extra int, connected bool, seed int64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, err := g.AddVertex(fmt.Sprintf("V%03d", i))
		require.NoError(t, err)
	}
	r := rand.New(rand.NewSource(seed))
	if connected {
		for i := 1; i < n; i++ {
			_, err := g.IncrementEdge(i-1, i, int64(1+r.Intn(20)))
			require.NoError(t, err)
		}
	}
	for k := 0; k < extra; k++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		_, err := g.IncrementEdge(u, v, int64(1+r.Intn(20)))
		require.NoError(t, err)
	}

	return g
}

func edgeNames(t *testing.T, g *core.Graph, f spanning.Forest) map[string]bool {
	t.Helper()
	out := make(map[string]bool, len(f.Edges))
	for _, e := range f.Edges {
		a, err := g.VertexID(e.From)
		require.NoError(t, err)
		b, err := g.VertexID(e.To)
		require.NoError(t, err)
		out[a+"-"+b] = true
	}

	return out
}

func TestValidation(t *testing.T) {
	_, err := spanning.Kruskal(nil)
	assert.ErrorIs(t, err, spanning.ErrGraphNil)
	_, err = spanning.Prim(nil, 0)
	assert.ErrorIs(t, err, spanning.ErrGraphNil)

	g := buildTriangle(t)
	_, err = spanning.Prim(g, 3)
	assert.ErrorIs(t, err, spanning.ErrRootNotFound)
	_, err = spanning.Compute(g, spanning.WithMethod("boruvka"))
	assert.ErrorIs(t, err, spanning.ErrBadMethod)
}

func TestEmptyAndSingleVertex(t *testing.T) {
	f, err := spanning.Kruskal(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, f.Edges)
	assert.Zero(t, f.Trees)

	g := core.NewGraph()
	_, _ = g.AddVertex("X")
	f, err = spanning.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, f.Edges)
	assert.Equal(t, 1, f.Trees)

	f, err = spanning.Prim(g, 0)
	require.NoError(t, err)
	assert.Empty(t, f.Edges)
	assert.Zero(t, f.TotalWeight)
}

func TestTriangle(t *testing.T) {
	g := buildTriangle(t)

	tests := []struct {
		name  string
		opts  []spanning.Option
		total int64
		edges []string
	}{
		{"KruskalMax", nil, 5, []string{"A-C", "B-C"}},
		{"KruskalMin", []spanning.Option{spanning.WithMinimum()}, 3, []string{"A-B", "B-C"}},
		{"PrimMax", []spanning.Option{spanning.WithMethod(spanning.MethodPrim)}, 5, []string{"A-C", "B-C"}},
		{"PrimMin", []spanning.Option{spanning.WithMethod(spanning.MethodPrim), spanning.WithRoot(2), spanning.WithMinimum()}, 3, []string{"A-B", "B-C"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := spanning.Compute(g, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.total, f.TotalWeight)
			assert.Equal(t, 1, f.Trees)
			got := edgeNames(t, g, f)
			assert.Len(t, got, len(tc.edges))
			for _, e := range tc.edges {
				assert.True(t, got[e], "edge %s must be in the forest", e)
			}
		})
	}
}

// TestKruskalMatchesPrim compares total weights on connected random graphs,
// where both algorithms must find an optimum of the same value.
func TestKruskalMatchesPrim(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := buildRandom(t, 60, 200, true, seed)
		for _, minimize := range []bool{false, true} {
			var opts []spanning.Option
			if minimize {
				opts = append(opts, spanning.WithMinimum())
			}
			k, err := spanning.Kruskal(g, opts...)
			require.NoError(t, err)
			p, err := spanning.Prim(g, int(seed), opts...)
			require.NoError(t, err)

			assert.Equal(t, k.TotalWeight, p.TotalWeight, "seed %d minimize=%v", seed, minimize)
			assert.Len(t, k.Edges, 59)
			assert.Len(t, p.Edges, 59)
		}
	}
}

// TestKruskal_Forest checks the forest against the component count.
func TestKruskal_Forest(t *testing.T) {
	g := buildRandom(t, 80, 50, false, 9)

	f, err := spanning.Kruskal(g)
	require.NoError(t, err)
	comps, err := dfs.Components(g)
	require.NoError(t, err)

	assert.Equal(t, len(comps), f.Trees)
	assert.Equal(t, g.VertexCount()-len(comps), len(f.Edges))

	// Prim only covers its root's component.
	p, err := spanning.Prim(g, comps[0][0])
	require.NoError(t, err)
	assert.Len(t, p.Edges, len(comps[0])-1)
}

func TestDeterministic(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}} {
		_, err := g.Connect(e[0], e[1])
		require.NoError(t, err)
	}

	first, err := spanning.Kruskal(g)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := spanning.Kruskal(g)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	// All weights equal: (From, To) order picks A-B then A-C.
	assert.Equal(t, map[string]bool{"A-B": true, "A-C": true}, edgeNames(t, g, first))
}

func TestStrongest(t *testing.T) {
	g := buildTriangle(t)
	f, err := spanning.Kruskal(g)
	require.NoError(t, err)

	assert.Equal(t, []spanning.Tie{{A: "A", B: "C", Weight: 3}, {A: "B", B: "C", Weight: 2}}, spanning.Strongest(g, f, 0))
	assert.Equal(t, []spanning.Tie{{A: "A", B: "C", Weight: 3}}, spanning.Strongest(g, f, 1))
	assert.Nil(t, spanning.Strongest(nil, f, 1))
}
