// Package loader reads NBA player-season rows from CSV into builder records.
//
// The expected file is the public "all_seasons.csv" export: one row per
// player per season, with a header row. Columns are located by header name
// and fall back to that export's positional layout when a name is missing.
package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/rostergraph/builder"
)

var (
	// ErrNoHeader is returned when the input has no header row.
	ErrNoHeader = errors.New("loader: missing header row")

	// ErrBadColumns is returned when a configured column layout is unusable.
	ErrBadColumns = errors.New("loader: invalid column layout")
)

// Columns maps each field to its zero-based CSV column.
type Columns struct {
	Player   int
	Team     int
	Season   int
	Points   int
	Rebounds int
	Assists  int
}

// DefaultColumns is the positional layout of all_seasons.csv.
var DefaultColumns = Columns{
	Player:   1,
	Team:     2,
	Season:   21,
	Points:   12,
	Rebounds: 13,
	Assists:  14,
}

// headerNames lists the accepted header spellings per field, lowercased.
var headerNames = struct {
	player, team, season, points, rebounds, assists []string
}{
	player:   []string{"player_name", "player", "name"},
	team:     []string{"team_abbreviation", "team"},
	season:   []string{"season"},
	points:   []string{"pts", "points"},
	rebounds: []string{"reb", "rebounds"},
	assists:  []string{"ast", "assists"},
}

// Stats describes what a load kept and dropped.
type Stats struct {
	Rows       int  `json:"rows"`       // data rows read, header excluded
	Kept       int  `json:"kept"`       // rows returned as records
	Incomplete int  `json:"incomplete"` // rows dropped for an empty player, team or season
	Skipped    int  `json:"skipped"`    // malformed CSV lines
	BadStats   int  `json:"bad_stats"`  // numeric cells that did not parse and became 0
	ByHeader   bool `json:"by_header"`  // columns resolved from the header row
}

// Option configures a load.
type Option func(*options)

type options struct {
	columns  *Columns
	limit    int
	checkGap int
}

// WithColumns forces a positional layout and disables header lookup.
func WithColumns(c Columns) Option {
	return func(o *options) {
		cc := c
		o.columns = &cc
	}
}

// WithLimit stops after n kept records. n <= 0 means no limit.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// Load opens path and reads it with Read.
func Load(ctx context.Context, path string, opts ...Option) ([]builder.Record, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("loader: failed to open %s: %w", path, err)
	}
	defer f.Close()

	recs, st, err := Read(ctx, f, opts...)
	if err != nil {
		return nil, st, fmt.Errorf("%s: %w", path, err)
	}

	return recs, st, nil
}

// Read parses CSV from r.
//
// Rows with an empty player, team or season are dropped. A numeric cell that
// fails to parse counts as 0 and is tallied in Stats.BadStats. Lines the CSV
// reader rejects (bad quoting) and rows too short for the identifier columns
// are skipped and tallied in Stats.Skipped. ctx is checked every few thousand
// rows.
func Read(ctx context.Context, r io.Reader, opts ...Option) ([]builder.Record, Stats, error) {
	o := options{checkGap: 4096}
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var st Stats
	header, err := cr.Read()
	switch {
	case errors.Is(err, io.EOF):
		return nil, st, ErrNoHeader
	case err != nil:
		return nil, st, fmt.Errorf("loader: failed to read header: %w", err)
	}

	cols := DefaultColumns
	if o.columns != nil {
		cols = *o.columns
	} else {
		cols, st.ByHeader = resolve(header)
	}
	if err := cols.validate(); err != nil {
		return nil, st, err
	}

	var out []builder.Record
	for {
		if st.Rows%o.checkGap == 0 {
			if err := ctx.Err(); err != nil {
				return nil, st, err
			}
		}

		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		st.Rows++
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				st.Skipped++
				continue
			}

			return nil, st, fmt.Errorf("loader: failed to read row %d: %w", st.Rows, err)
		}

		rec, ok := cols.record(row, &st)
		if !ok {
			continue
		}
		out = append(out, rec)
		st.Kept++
		if o.limit > 0 && st.Kept >= o.limit {
			break
		}
	}

	return out, st, nil
}

// resolve finds each field in header. Any field not found by name keeps its
// default position; byHeader reports whether all identifier columns matched.
func resolve(header []string) (Columns, bool) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	find := func(names []string, fallback int) (int, bool) {
		for _, n := range names {
			if i, ok := idx[n]; ok {
				return i, true
			}
		}

		return fallback, false
	}

	var c Columns
	var okP, okT, okS bool
	c.Player, okP = find(headerNames.player, DefaultColumns.Player)
	c.Team, okT = find(headerNames.team, DefaultColumns.Team)
	c.Season, okS = find(headerNames.season, DefaultColumns.Season)
	c.Points, _ = find(headerNames.points, DefaultColumns.Points)
	c.Rebounds, _ = find(headerNames.rebounds, DefaultColumns.Rebounds)
	c.Assists, _ = find(headerNames.assists, DefaultColumns.Assists)

	return c, okP && okT && okS
}

func (c Columns) validate() error {
	for _, i := range []int{c.Player, c.Team, c.Season, c.Points, c.Rebounds, c.Assists} {
		if i < 0 {
			return fmt.Errorf("%w: negative column %d", ErrBadColumns, i)
		}
	}
	if c.Player == c.Team || c.Player == c.Season || c.Team == c.Season {
		return fmt.Errorf("%w: player, team and season must be distinct columns", ErrBadColumns)
	}

	return nil
}

// record converts one row. Missing stat columns read as 0.
func (c Columns) record(row []string, st *Stats) (builder.Record, bool) {
	maxID := c.Player
	if c.Team > maxID {
		maxID = c.Team
	}
	if c.Season > maxID {
		maxID = c.Season
	}
	if maxID >= len(row) {
		st.Skipped++
		return builder.Record{}, false
	}

	rec := builder.Record{
		Player: strings.TrimSpace(row[c.Player]),
		Team:   strings.TrimSpace(row[c.Team]),
		Season: strings.TrimSpace(row[c.Season]),
	}
	if rec.Player == "" || rec.Team == "" || rec.Season == "" {
		st.Incomplete++
		return builder.Record{}, false
	}
	rec.Points = stat(row, c.Points, st)
	rec.Rebounds = stat(row, c.Rebounds, st)
	rec.Assists = stat(row, c.Assists, st)

	return rec, true
}

func stat(row []string, i int, st *Stats) float64 {
	if i >= len(row) {
		return 0
	}
	cell := strings.TrimSpace(row[i])
	if cell == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		st.BadStats++
		return 0
	}

	return v
}
