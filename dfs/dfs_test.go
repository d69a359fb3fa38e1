package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rostergraph/bfs"
	"github.com/katalvlaran/rostergraph/core"
	"github.com/katalvlaran/rostergraph/dfs"
)

// buildChain creates the path N0–N1–…–N(n-1).
func buildChain(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, err := g.AddVertex(fmt.Sprintf("N%05d", i))
		require.NoError(t, err)
	}
	for i := 0; i+1 < n; i++ {
		_, err := g.IncrementEdge(i, i+1, 1)
		require.NoError(t, err)
	}

	return g
}

// buildDiamond creates
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
func buildDiamond(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"D", "F"}} {
		_, err := g.Connect(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func names(t *testing.T, g *core.Graph, idx []int) []string {
	t.Helper()
	out := make([]string, len(idx))
	for i, v := range idx {
		id, err := g.VertexID(v)
		require.NoError(t, err)
		out[i] = id
	}

	return out
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph()
	res, err := dfs.DFS(g, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	g = buildChain(t, 2)
	_, err = dfs.DFS(g, -1)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_BadOptions(t *testing.T) {
	g := buildChain(t, 3)
	_, err := dfs.DFS(g, 0, dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)

	_, err = dfs.DFS(g, 0, dfs.WithAdjacency([][]int{{1}}))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestDFS_SingleVertex_NoEdges(t *testing.T) {
	g := buildChain(t, 1)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.True(t, res.Visited(0))
	assert.Equal(t, 0, res.Depth[0])
	assert.Equal(t, dfs.Unvisited, res.Parent[0], "start vertex should have no parent")
	assert.Equal(t, []int{0}, res.Roots)
}

func TestDFS_DiamondPostOrder(t *testing.T) {
	g := buildDiamond(t)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "E", "F", "D", "B", "A"}, names(t, g, res.Order))

	d, _ := g.VertexIndex("D")
	c, _ := g.VertexIndex("C")
	b, _ := g.VertexIndex("B")
	assert.Equal(t, 2, res.Depth[d])
	assert.Equal(t, b, res.Parent[d])
	assert.Equal(t, d, res.Parent[c], "C is reached through D before A revisits it")
}

func TestDFS_ChainDepthParent(t *testing.T) {
	const n = 10
	g := buildChain(t, n)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)

	want := make([]int, n)
	for i := range want {
		want[i] = n - 1 - i
	}
	assert.Equal(t, want, res.Order, "chain post-order reversed")
	assert.Equal(t, n-1, res.Depth[n-1])
	assert.Equal(t, n-2, res.Parent[n-1])
}

func TestDFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Connect("A", "B")
	require.NoError(t, err)
	c, err := g.AddVertex("C")
	require.NoError(t, err)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Order)
	assert.False(t, res.Visited(c), "disconnected vertex should not be visited")
	assert.Equal(t, dfs.Unvisited, res.Tree[c])
	assert.False(t, res.Visited(99))
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(t, 4)

	res, err := dfs.DFS(g, 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.False(t, res.Visited(1))

	res, err = dfs.DFS(g, 0, dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, res.Order)
	assert.False(t, res.Visited(3))
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.Connect("A", "B")
	_, _ = g.Connect("A", "C")

	res, err := dfs.DFS(g, 0, dfs.WithFilterNeighbor(func(v int) bool {
		return v != 2
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Order)
	assert.False(t, res.Visited(2), "filtered neighbor should not be visited")
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_Hooks(t *testing.T) {
	g := buildDiamond(t)

	var pre []int
	var post []int
	res, err := dfs.DFS(g, 0,
		dfs.WithOnVisit(func(v, _ int) error { pre = append(pre, v); return nil }),
		dfs.WithOnExit(func(v int) error { post = append(post, v); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Order, post)
	assert.Equal(t, []string{"A", "B", "D", "C", "E", "F"}, names(t, g, pre))
}

func TestDFS_OnExitError(t *testing.T) {
	g := buildChain(t, 2)

	res, err := dfs.DFS(g, 0, dfs.WithOnExit(func(v int) error {
		if v == 1 {
			return errors.New("halt on exit")
		}

		return nil
	}))
	require.NotNil(t, res)
	assert.ErrorContains(t, err, "OnExit hook for 1")
	assert.Empty(t, res.Order, "no post-order on hook error")
}

func TestDFS_Cancellation(t *testing.T) {
	g := buildChain(t, 1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dfs.DFS(g, 0, dfs.WithContext(ctx))
	require.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order, "no completion when canceled immediately")
}

func TestDFS_SnapshotMatchesGraph(t *testing.T) {
	g := buildDiamond(t)

	live, err := dfs.DFS(g, 3)
	require.NoError(t, err)
	snap, err := dfs.DFS(g, 3, dfs.WithAdjacency(g.AdjacencyList()))
	require.NoError(t, err)
	assert.Equal(t, live, snap)
}

func TestDFS_FullTraversalRoots(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.Connect("Zed", "Yan") // 0,1
	_, _ = g.Connect("Ann", "Bob") // 2,3
	_, _ = g.Connect("Bob", "Cat") // 3,4
	_, _ = g.AddVertex("Dan")      // 5

	res, err := dfs.DFS(g, -7, dfs.WithFullTraversal())
	require.NoError(t, err, "start is ignored in forest mode")
	assert.Equal(t, []string{"Ann", "Dan", "Yan"}, names(t, g, res.Roots))
	assert.Equal(t, []int{2, 2, 0, 0, 0, 1}, res.Tree)
	assert.Len(t, res.Order, 6)
}

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.Connect("Zed", "Yan")
	_, _ = g.Connect("Ann", "Bob")
	_, _ = g.Connect("Bob", "Cat")
	_, _ = g.AddVertex("Dan")

	comps, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 3, 4}, {0, 1}, {5}}, comps)

	s := dfs.Summarize(comps, g.VertexCount())
	assert.Equal(t, dfs.ComponentSummary{Count: 3, Largest: 3, Isolated: 1, Coverage: 0.5}, s)
}

func TestComponents_Edges(t *testing.T) {
	_, err := dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	comps, err := dfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)
	assert.Equal(t, dfs.ComponentSummary{}, dfs.Summarize(comps, 0))
}

// TestComponents_MatchBFS checks every component against BFS reachability.
func TestComponents_MatchBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := core.NewGraph()
	const n = 80
	for i := 0; i < n; i++ {
		_, err := g.AddVertex(fmt.Sprintf("p%02d", i))
		require.NoError(t, err)
	}
	for k := 0; k < 60; k++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u != v {
			_, err := g.IncrementEdge(u, v, 1)
			require.NoError(t, err)
		}
	}

	comps, err := dfs.Components(g)
	require.NoError(t, err)

	seen := 0
	for i, c := range comps {
		if i > 0 {
			assert.GreaterOrEqual(t, len(comps[i-1]), len(c))
		}
		res, err := bfs.BFS(g, c[0])
		require.NoError(t, err)
		assert.Equal(t, len(c), res.Reached(), "component %d", i)
		for _, v := range c {
			assert.NotEqual(t, bfs.Unreached, res.Depth[v])
		}
		seen += len(c)
	}
	assert.Equal(t, n, seen)
}
