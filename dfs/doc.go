// Package dfs implements depth-first search traversal and connected-component
// discovery on a core.Graph.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every vertex (WithFullTraversal)
//   - Components: partitions the teammate graph into connected components,
//     one DFS tree per component.
//   - Summarize: component count, largest component and its share of the
//     graph, and isolated players.
//
// Why:
//   - Distinguish "no path" from "long path" when sampling separations
//   - Report how much of the league one giant component covers
//
// Key Types & Constants:
//
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor, Adjacency
//   - DFSResult: post-order, Depth, Parent, Roots and Tree slices indexed by vertex
//   - Unvisited: marker for vertices never reached (-1)
//
// Complexity:
//
//   - DFS:        Time O(V+E), Memory O(V)
//   - Components: Time O(V+E+C log C), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start index out of range
//   - ErrOptionViolation      negative MaxDepth below -1, bad adjacency snapshot
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
