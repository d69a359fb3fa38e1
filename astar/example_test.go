// Package astar_test provides examples demonstrating goal-directed search.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/rostergraph/astar"
	"github.com/katalvlaran/rostergraph/core"
)

// ExampleSearch_unitCost demonstrates that the default search counts hops,
// even when an edge carries a large co-occurrence weight.
func ExampleSearch_unitCost() {
	g := core.NewGraph()
	_, _ = g.Connect("Alice", "Bob")
	_, _ = g.Connect("Bob", "Carol")
	_, _ = g.Connect("Alice", "Dave")
	_, _ = g.Connect("Dave", "Carol")
	a, _ := g.VertexIndex("Alice")
	b, _ := g.VertexIndex("Bob")
	_, _ = g.IncrementEdge(a, b, 9)

	c, _ := g.VertexIndex("Carol")
	res, err := astar.Search(g, a, c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost, "hops:", res.Hops())

	// Output: cost: 2 hops: 2
}

// ExampleDistances_weighted shows single-source distances using stored weights.
func ExampleDistances_weighted() {
	g := core.NewGraph()
	_, _ = g.Connect("A", "B") // weight 1
	_, _ = g.Connect("B", "C") // weight 1
	_, _ = g.Connect("A", "C")
	_, _ = g.Connect("A", "C")
	_, _ = g.Connect("A", "C") // weight 3

	dist, err := astar.Distances(g, 0, astar.WithEdgeCost(astar.WeightCost))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)

	// Output: [0 1 2]
}
