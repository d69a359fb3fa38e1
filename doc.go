// Package rostergraph turns NBA player-season records into a teammate
// network and measures how that network is shaped.
//
// Two players are linked when they appeared on the same team in the same
// season; the link weight counts how many such rosters they shared.
//
// Layout:
//
//	core/          thread-safe weighted undirected graph (index arena, name lookup)
//	builder/       records → graph, grouped by (team, season)
//	bfs/, dfs/     traversals; dfs also labels connected components
//	astar/         point-to-point search with pluggable edge cost
//	degree/        degree histogram, binning, log-log series and fit
//	centrality/    closeness (parallel) and PageRank via gonum
//	pathsample/    sampled average shortest-path length
//	similarity/    most similar pair by neighborhood Jaccard
//	spanning/      maximum spanning forest, the strongest-tie backbone
//	converters/    bridge to gonum graph types
//	internal/      config, CSV loader, report, pipeline
//	cmd/rostergraph   the CLI
//
// Quick example:
//
//	Alice, Bob   LAL 2019-20
//	Alice, Carol MIA 2020-21
//
//	    Bob───Alice───Carol
//
// Alice has closeness 1.0, Bob and Carol 2/3.
//
//	go install github.com/katalvlaran/rostergraph/cmd/rostergraph@latest
package rostergraph
