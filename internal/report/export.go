package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/rostergraph/degree"
)

// Output file names written by WriteJSON.
const (
	FileSummary      = "summary.json"
	FileDegreeDist   = "degree_distribution.json"
	FileDegreeLogLog = "degree_loglog.json"
	FileCentrality   = "centrality_top.json"
	FilePageRank     = "pagerank_top.json"
	FileBackbone     = "backbone.json"
)

type outFile struct {
	name string
	v    any
}

type degreeDistribution struct {
	BinWidth int             `json:"bin_width"`
	Buckets  []degree.Bucket `json:"buckets"`
}

type degreeLogLog struct {
	Points []degree.Point `json:"points"`
	Fit    *degree.Fit    `json:"fit,omitempty"`
}

// WriteJSON writes r into dir as indented JSON files and returns their
// paths in write order. dir is created when missing. The PageRank file is
// only written when r carries PageRank scores.
func WriteJSON(dir string, r Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report: failed to create %s: %w", dir, err)
	}

	files := []outFile{
		{FileSummary, r},
		{FileDegreeDist, degreeDistribution{BinWidth: r.BinWidth, Buckets: nonNil(r.Histogram)}},
		{FileDegreeLogLog, degreeLogLog{Points: nonNil(r.LogLog), Fit: r.Fit}},
		{FileCentrality, nonNil(r.Centrality)},
		{FileBackbone, r.Backbone},
	}
	if len(r.PageRank) > 0 {
		files = append(files, outFile{FilePageRank, r.PageRank})
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeFile(path, f.v); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

func writeFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("report: failed to encode %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("report: failed to write %s: %w", path, err)
	}

	return nil
}

// nonNil makes empty series encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
