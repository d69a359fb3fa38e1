package report

import (
	"time"

	"github.com/katalvlaran/rostergraph/centrality"
	"github.com/katalvlaran/rostergraph/degree"
	"github.com/katalvlaran/rostergraph/dfs"
	"github.com/katalvlaran/rostergraph/internal/loader"
	"github.com/katalvlaran/rostergraph/pathsample"
	"github.com/katalvlaran/rostergraph/similarity"
	"github.com/katalvlaran/rostergraph/spanning"
)

// GraphFacts are the size figures of the teammate graph.
type GraphFacts struct {
	Vertices    int     `json:"vertices"`
	Edges       int     `json:"edges"`
	Density     float64 `json:"density"`
	TotalWeight int64   `json:"total_weight"`
	MaxWeight   int64   `json:"max_weight"`
	Isolated    int     `json:"isolated"`
}

// Separation is a sampled path-length estimate and how it was drawn.
// Estimate.Max is a lower bound on the diameter of the sampled component(s).
type Separation struct {
	pathsample.Estimate
	Samples  int    `json:"samples"`
	Seed     int64  `json:"seed"`
	EdgeCost string `json:"edge_cost"`
}

// Backbone summarizes the maximum-weight spanning forest.
type Backbone struct {
	Edges       int            `json:"edges"`
	TotalWeight int64          `json:"total_weight"`
	Strongest   []spanning.Tie `json:"strongest"`
}

// Result is everything one analysis run produced.
//
// Series tagged `json:"-"` are exported to their own files by WriteJSON and
// kept out of summary.json.
type Result struct {
	RunID   string        `json:"run_id"`
	Input   string        `json:"input"`
	Elapsed time.Duration `json:"elapsed_ns"`

	Load     loader.Stats    `json:"load"`
	Overview DatasetOverview `json:"overview"`
	Snapshot DataSnapshot    `json:"snapshot"`

	Graph      GraphFacts           `json:"graph"`
	Components dfs.ComponentSummary `json:"components"`

	Degree    degree.Summary  `json:"degree"`
	BinWidth  int             `json:"bin_width"`
	Histogram []degree.Bucket `json:"-"`
	LogLog    []degree.Point  `json:"-"`
	Fit       *degree.Fit     `json:"loglog_fit,omitempty"`

	Centrality      []centrality.Score `json:"-"`
	CentralityStats Moments            `json:"centrality"`
	PageRank        []centrality.Score `json:"-"`

	// Separation is nil when no sampled pair was connected.
	Separation *Separation `json:"separation,omitempty"`

	// Similar is nil when the graph has fewer than two players.
	Similar *similarity.Pair `json:"most_similar,omitempty"`

	Backbone Backbone `json:"backbone"`
}
