// Package centrality ranks the players of a teammate graph.
//
// Overview:
//
//   - Closeness(g, opts...) runs one traversal per vertex and reports
//     (|R|-1)/S, where R is the reachable set and S the distance sum.
//     Unit cost by default: edge weights are ignored, every edge is one hop.
//   - WithEdgeCost(astar.WeightCost) or WithEdgeCost(astar.InverseWeightCost(k))
//     opts into weighted distances.
//   - WithWorkers(n) shares the traversals between n goroutines; every
//     traversal writes only its own slot, so the result does not depend on n.
//   - PageRank(g, damping, tol, weighted) delegates to gonum/graph/network.
//   - Top(scores, n) orders scores descending with a name tie-break.
//
// Example usage:
//
//	scores, err := centrality.Closeness(g, centrality.WithWorkers(runtime.NumCPU()))
//	if err != nil {
//	    return err
//	}
//	for _, s := range centrality.Top(scores, 10) {
//	    fmt.Printf("%s %.4f\n", s.Name, s.Value)
//	}
package centrality
