// Package converters provides two-way adapters between core.Graph and
// gonum/graph, so gonum's network and path algorithms can run on a
// teammate graph and their results can be mapped back to player names.
//
//   - ToGonum(g):           weighted undirected copy, node ID = vertex index.
//   - ToGonumUnweighted(g): unweighted undirected copy (every edge one hop).
//   - ToGonumDirected(g):   each undirected edge as two weighted arcs, for
//     algorithms that are defined on directed graphs only (PageRank).
//   - FromGonum(src, name): imports any gonum undirected graph whose weights
//     are positive whole numbers.
//   - Names(g, scores):     re-keys an int64-ID result map by vertex name.
package converters
