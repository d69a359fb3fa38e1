package dfs

import (
	"sort"

	"github.com/katalvlaran/rostergraph/core"
)

// ComponentSummary condenses a component partition for reporting.
type ComponentSummary struct {
	Count    int     `json:"count"`    // number of connected components
	Largest  int     `json:"largest"`  // vertices in the biggest component
	Isolated int     `json:"isolated"` // components of a single vertex
	Coverage float64 `json:"coverage"` // Largest / |V|; 0 for an empty graph
}

// Components partitions g into connected components with a full DFS forest.
//
// Each component lists its vertex indices in ascending order. Components are
// ordered by size descending; equal sizes keep the order of their
// lexicographically smallest member name.
//
// Complexity: O(V + E + C log C) for C components.
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	opts = append(opts, WithFullTraversal())
	res, err := DFS(g, 0, opts...)
	if err != nil {
		return nil, err
	}

	comps := make([][]int, len(res.Roots))
	for v, t := range res.Tree {
		if t != Unvisited {
			comps[t] = append(comps[t], v)
		}
	}
	sort.SliceStable(comps, func(i, j int) bool {
		return len(comps[i]) > len(comps[j])
	})

	return comps, nil
}

// Summarize reports count, largest size and singleton count of comps over
// a graph of n vertices.
func Summarize(comps [][]int, n int) ComponentSummary {
	s := ComponentSummary{Count: len(comps)}
	for _, c := range comps {
		if len(c) > s.Largest {
			s.Largest = len(c)
		}
		if len(c) == 1 {
			s.Isolated++
		}
	}
	if n > 0 {
		s.Coverage = float64(s.Largest) / float64(n)
	}

	return s
}
