// SPDX-License-Identifier: MIT
// Package: rostergraph/builder
//
// types.go: input records and the roster grouping.

package builder

// Record is one player-season row.
//
// Only Player, Team and Season shape the graph. The per-game stats ride
// along for reporting and are never read by Build.
type Record struct {
	Player string `json:"player"` // player name; becomes the vertex ID
	Team   string `json:"team"`   // team abbreviation, e.g. "LAL"
	Season string `json:"season"` // season label, e.g. "2019-20"

	Points   float64 `json:"pts"` // points per game
	Rebounds float64 `json:"reb"` // rebounds per game
	Assists  float64 `json:"ast"` // assists per game
}

// RosterKey identifies one group: a team in a season.
type RosterKey struct {
	Team   string
	Season string
}

// Roster is every record sharing one (Team, Season), in input order.
// Players may repeat; Build deduplicates before pairing.
type Roster struct {
	Key     RosterKey
	Players []string
}
