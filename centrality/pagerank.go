package centrality

import (
	"fmt"

	"github.com/katalvlaran/rostergraph/converters"
	"github.com/katalvlaran/rostergraph/core"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/network"
)

// DefaultDamping and DefaultTolerance are the customary PageRank parameters.
const (
	DefaultDamping   = 0.85
	DefaultTolerance = 1e-6
)

// PageRank scores every vertex with gonum's power-iteration PageRank over
// the symmetric arc set of g. When weighted is true, arcs are weighted by
// co-occurrence count, so frequent teammates pass more rank to each other.
//
// Scores sum to 1 over a non-empty graph. An empty graph yields an empty map.
// Returns ErrGraphNil or ErrBadDamping.
// Complexity: O(k · (V + E)) for k power iterations over a sparse matrix.
func PageRank(g *core.Graph, damping, tol float64, weighted bool) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if damping <= 0 || damping >= 1 {
		return nil, fmt.Errorf("%w: got %g", ErrBadDamping, damping)
	}
	if g.VertexCount() == 0 {
		return map[string]float64{}, nil
	}

	// PageRankSparse weights arcs only when handed a graph.WeightedDirected.
	var dg graph.Directed = converters.ToGonumDirectedUnweighted(g)
	if weighted {
		dg = converters.ToGonumDirected(g)
	}
	ranks := network.PageRankSparse(dg, damping, tol)

	return converters.Names(g, ranks), nil
}
