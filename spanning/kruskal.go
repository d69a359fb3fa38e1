package spanning

import (
	"sort"

	"github.com/katalvlaran/rostergraph/core"
)

// Kruskal computes a spanning forest of g with a disjoint-set (union-find)
// structure using path compression and union by rank. By default the forest
// has maximum total weight: the strongest teammate ties that keep every
// component connected. WithMinimum flips the order.
//
// Steps:
//  1. Validate: graph != nil.
//  2. Copy the edge arena and sort it by weight, breaking ties on (From, To).
//  3. Initialize parent[] and rank[] for every vertex index.
//  4. Accept each edge whose endpoints are in different sets.
//  5. Stop once |V|-1 edges are accepted; a disconnected graph simply yields fewer.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(g *core.Graph, opts ...Option) (Forest, error) {
	if g == nil {
		return Forest{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	if n == 0 {
		return Forest{}, nil
	}
	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool {
		return better(edges[i], edges[j], o.Minimize)
	})

	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	f := Forest{Edges: make([]core.Edge, 0, n-1)}
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		// Attach smaller-rank tree under larger-rank root.
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		f.Edges = append(f.Edges, e)
		f.TotalWeight += e.Weight
		if len(f.Edges) == n-1 {
			break
		}
	}
	f.Trees = n - len(f.Edges)

	return f, nil
}
