package converters

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/rostergraph/core"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Sentinel errors for conversions.
var (
	// ErrNilGraph indicates that a nil source graph was passed.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrNonIntegralWeight indicates a gonum edge weight that is not a
	// positive whole number and so cannot become a co-occurrence count.
	ErrNonIntegralWeight = errors.New("converters: weight is not a positive integer")
)

// ToGonum copies g into a gonum weighted undirected graph. Node IDs are the
// core vertex indices; edge weights are the co-occurrence counts.
// A nil g yields an empty graph.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) *simple.WeightedUndirectedGraph {
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	if g == nil {
		return dst
	}
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		dst.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		dst.SetWeightedEdge(dst.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), float64(e.Weight)))
	}

	return dst
}

// ToGonumUnweighted copies g into a gonum undirected graph, dropping weights.
// gonum's path algorithms treat every edge of it as cost 1.
// Complexity: O(V + E).
func ToGonumUnweighted(g *core.Graph) *simple.UndirectedGraph {
	dst := simple.NewUndirectedGraph()
	if g == nil {
		return dst
	}
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		dst.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		dst.SetEdge(dst.NewEdge(simple.Node(e.From), simple.Node(e.To)))
	}

	return dst
}

// ToGonumDirectedUnweighted copies g into a gonum directed graph holding
// both arcs u→v and v→u for every edge, dropping weights.
// Complexity: O(V + E).
func ToGonumDirectedUnweighted(g *core.Graph) *simple.DirectedGraph {
	dst := simple.NewDirectedGraph()
	if g == nil {
		return dst
	}
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		dst.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		dst.SetEdge(dst.NewEdge(simple.Node(e.From), simple.Node(e.To)))
		dst.SetEdge(dst.NewEdge(simple.Node(e.To), simple.Node(e.From)))
	}

	return dst
}

// ToGonumDirected copies g into a gonum weighted directed graph holding
// both arcs u→v and v→u for every edge.
// Complexity: O(V + E).
func ToGonumDirected(g *core.Graph) *simple.WeightedDirectedGraph {
	dst := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	if g == nil {
		return dst
	}
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		dst.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		w := float64(e.Weight)
		dst.SetWeightedEdge(dst.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), w))
		dst.SetWeightedEdge(dst.NewWeightedEdge(simple.Node(e.To), simple.Node(e.From), w))
	}

	return dst
}

// FromGonum imports an undirected gonum graph. name maps node IDs to vertex
// names; nil means the decimal ID. Nodes are added in ascending ID order and
// edges by ascending (u, v), so the result is deterministic.
//
// When src implements graph.Weighted, each weight must be a positive whole
// number (ErrNonIntegralWeight); otherwise every edge gets weight 1.
// Complexity: O(V log V + E log E).
func FromGonum(src graph.Undirected, name func(id int64) string) (*core.Graph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}
	if name == nil {
		name = func(id int64) string { return strconv.FormatInt(id, 10) }
	}
	weighted, _ := src.(graph.Weighted)

	nodes := graph.NodesOf(src.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	dst := core.NewGraphWithCapacity(len(nodes), 0)
	index := make(map[int64]int, len(nodes))
	for _, nd := range nodes {
		i, err := dst.AddVertex(name(nd.ID()))
		if err != nil {
			return nil, fmt.Errorf("converters: node %d: %w", nd.ID(), err)
		}
		index[nd.ID()] = i
	}

	for _, u := range nodes {
		nbrs := graph.NodesOf(src.From(u.ID()))
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i].ID() < nbrs[j].ID() })
		for _, v := range nbrs {
			if v.ID() <= u.ID() {
				continue
			}
			delta := int64(1)
			if weighted != nil {
				w, ok := weighted.Weight(u.ID(), v.ID())
				if !ok || w < 1 || w != math.Trunc(w) || w >= math.MaxInt64 {
					return nil, fmt.Errorf("%w: edge %d–%d weight=%g", ErrNonIntegralWeight, u.ID(), v.ID(), w)
				}
				delta = int64(w)
			}
			if _, err := dst.IncrementEdge(index[u.ID()], index[v.ID()], delta); err != nil {
				return nil, fmt.Errorf("converters: edge %d–%d: %w", u.ID(), v.ID(), err)
			}
		}
	}

	return dst, nil
}

// Names re-keys a gonum result map (node ID = vertex index) by vertex name.
// IDs that are not valid vertex indices are dropped.
func Names(g *core.Graph, scores map[int64]float64) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for id, s := range scores {
		name, err := g.VertexID(int(id))
		if err != nil {
			continue
		}
		out[name] = s
	}

	return out
}
