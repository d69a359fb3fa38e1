// Package bfs provides breadth-first search over a core.Graph,
// returning unit-cost shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex index.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: Depth[v] = hops from start, or Unreached
//   - Parent: predecessor in the BFS tree, or Unreached
//   - Reached() and DistanceSum() summarise the reachable set, which is
//     exactly what closeness centrality needs.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Unit-cost shortest paths in O(V + E) time.
//   - Edge weights (co-occurrence counts) are deliberately ignored; every
//     edge is one hop.
//
// Determinism
//
//	core.NeighborIndices returns neighbors sorted ascending and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Snapshots
//
//	Callers that run BFS from every vertex should take one
//	core.Graph.AdjacencyList() snapshot and pass it via WithAdjacency; the
//	walker then never touches the graph lock.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start)
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithAdjacency(g.AdjacencyList()),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth,
//     adjacency snapshot of the wrong size).
//   - ErrNeighbors            if a neighbor lookup fails.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
