// Command rostergraph builds the NBA teammate network from a player-season
// CSV and reports its structure: degree distribution, closeness centrality,
// sampled degrees of separation and the most similar pair of players.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
