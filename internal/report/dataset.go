// Package report turns loaded records and analysis results into the console
// summary and the JSON series written to the output directory.
package report

import (
	"unicode/utf8"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/rostergraph/builder"
)

// SampleSize is how many leading records Overview keeps as samples.
const SampleSize = 5

// DatasetOverview counts what the loaded dataset covers.
type DatasetOverview struct {
	Records int              `json:"records"`
	Players int              `json:"players"`
	Teams   int              `json:"teams"`
	Seasons int              `json:"seasons"`
	Samples []builder.Record `json:"samples"`
}

// Overview counts records and distinct players, teams and seasons, and keeps
// the first SampleSize records in input order.
func Overview(records []builder.Record) DatasetOverview {
	players := make(map[string]struct{})
	teams := make(map[string]struct{})
	seasons := make(map[string]struct{})
	for _, r := range records {
		players[r.Player] = struct{}{}
		teams[r.Team] = struct{}{}
		seasons[r.Season] = struct{}{}
	}

	n := min(SampleSize, len(records))
	samples := make([]builder.Record, n)
	copy(samples, records[:n])

	return DatasetOverview{
		Records: len(records),
		Players: len(players),
		Teams:   len(teams),
		Seasons: len(seasons),
		Samples: samples,
	}
}

// Moments is the mean and sample standard deviation of one per-game stat.
type Moments struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// DataSnapshot averages record fields. Lengths are in characters, not bytes.
type DataSnapshot struct {
	AvgNameLength float64 `json:"avg_name_length"`
	AvgTeamLength float64 `json:"avg_team_length"`
	Points        Moments `json:"pts"`
	Rebounds      Moments `json:"reb"`
	Assists       Moments `json:"ast"`
}

// Snapshot computes DataSnapshot over records. An empty slice yields zeros.
func Snapshot(records []builder.Record) DataSnapshot {
	if len(records) == 0 {
		return DataSnapshot{}
	}

	names := make([]float64, len(records))
	teams := make([]float64, len(records))
	pts := make([]float64, len(records))
	reb := make([]float64, len(records))
	ast := make([]float64, len(records))
	for i, r := range records {
		names[i] = float64(utf8.RuneCountInString(r.Player))
		teams[i] = float64(utf8.RuneCountInString(r.Team))
		pts[i] = r.Points
		reb[i] = r.Rebounds
		ast[i] = r.Assists
	}

	return DataSnapshot{
		AvgNameLength: stat.Mean(names, nil),
		AvgTeamLength: stat.Mean(teams, nil),
		Points:        moments(pts),
		Rebounds:      moments(reb),
		Assists:       moments(ast),
	}
}

func moments(xs []float64) Moments {
	m := Moments{Mean: stat.Mean(xs, nil)}
	if len(xs) > 1 {
		m.StdDev = stat.StdDev(xs, nil)
	}

	return m
}
