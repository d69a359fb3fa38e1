package dfs_test

import (
	"testing"

	"github.com/katalvlaran/rostergraph/dfs"
)

// BenchmarkDFS_Chain10000 measures recursion depth cost on a 10,000-vertex path.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(b, 10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkComponents_Chain10000 measures a full forest pass with the snapshot.
func BenchmarkComponents_Chain10000(b *testing.B) {
	g := buildChain(b, 10000)
	adj := g.AdjacencyList()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Components(g, dfs.WithAdjacency(adj))
	}
}
