// Package config holds the run configuration of the rostergraph CLI: where
// the dataset lives, where results go, and the knobs of every analysis.
//
// Configuration is YAML. Load overlays a file onto Default(), so a file
// only needs the keys it changes.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// ErrInvalidConfig is returned by Validate, wrapped with the offending field.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Edge-cost modes accepted by AnalysisConfig.EdgeCost.
const (
	EdgeCostUnit    = "unit"    // every edge is one hop (default)
	EdgeCostWeight  = "weight"  // cost = co-occurrence count
	EdgeCostInverse = "inverse" // cost = ceil(scale / count); frequent teammates are closer
)

// Config is the root of the YAML document.
type Config struct {
	// Input is the CSV dataset path.
	Input string `yaml:"input"`

	// Output is the directory receiving JSON series.
	Output string `yaml:"output"`

	Analysis AnalysisConfig `yaml:"analysis"`
	Log      LogConfig      `yaml:"log"`
}

// AnalysisConfig tunes the graph build and the analyses.
type AnalysisConfig struct {
	Samples       int     `yaml:"samples"`         // pairs drawn by the path sampler
	Seed          int64   `yaml:"seed"`            // 0 → time-based seed, logged for replay
	Workers       int     `yaml:"workers"`         // goroutines per analysis
	Top           int     `yaml:"top"`             // centrality entries kept in the report
	BinWidth      int     `yaml:"bin_width"`       // degree histogram bin width
	MinRosterSize int     `yaml:"min_roster_size"` // skip smaller rosters
	EdgeCost      string  `yaml:"edge_cost"`       // unit | weight | inverse
	InverseScale  int64   `yaml:"inverse_scale"`   // 0 → heaviest edge weight in the graph
	PageRank      bool    `yaml:"pagerank"`        // also rank players by PageRank
	Damping       float64 `yaml:"damping"`         // PageRank damping factor
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Input:  "data/all_seasons.csv",
		Output: "output",
		Analysis: AnalysisConfig{
			Samples:       100,
			Seed:          0,
			Workers:       runtime.NumCPU(),
			Top:           20,
			BinWidth:      10,
			MinRosterSize: 1,
			EdgeCost:      EdgeCostUnit,
			InverseScale:  0,
			PageRank:      true,
			Damping:       0.85,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks every field and reports the first violation.
func (c Config) Validate() error {
	a := c.Analysis
	switch {
	case strings.TrimSpace(c.Input) == "":
		return fmt.Errorf("%w: input is empty", ErrInvalidConfig)
	case strings.TrimSpace(c.Output) == "":
		return fmt.Errorf("%w: output is empty", ErrInvalidConfig)
	case a.Samples < 1:
		return fmt.Errorf("%w: analysis.samples must be >= 1, got %d", ErrInvalidConfig, a.Samples)
	case a.Workers < 1:
		return fmt.Errorf("%w: analysis.workers must be >= 1, got %d", ErrInvalidConfig, a.Workers)
	case a.Top < 1:
		return fmt.Errorf("%w: analysis.top must be >= 1, got %d", ErrInvalidConfig, a.Top)
	case a.BinWidth < 1:
		return fmt.Errorf("%w: analysis.bin_width must be >= 1, got %d", ErrInvalidConfig, a.BinWidth)
	case a.MinRosterSize < 1:
		return fmt.Errorf("%w: analysis.min_roster_size must be >= 1, got %d", ErrInvalidConfig, a.MinRosterSize)
	case a.InverseScale < 0:
		return fmt.Errorf("%w: analysis.inverse_scale must be >= 0, got %d", ErrInvalidConfig, a.InverseScale)
	case a.PageRank && (a.Damping <= 0 || a.Damping >= 1):
		return fmt.Errorf("%w: analysis.damping must be in (0,1), got %g", ErrInvalidConfig, a.Damping)
	}

	switch a.EdgeCost {
	case EdgeCostUnit, EdgeCostWeight, EdgeCostInverse:
	default:
		return fmt.Errorf("%w: analysis.edge_cost %q (want unit|weight|inverse)", ErrInvalidConfig, a.EdgeCost)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text|json)", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log.level %q (want debug|info|warn|error)", ErrInvalidConfig, name)
	}
}
