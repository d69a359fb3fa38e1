package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/rostergraph/centrality"
)

// ConsoleTop caps the ranked lists printed to the console; the JSON files
// carry the full lists.
const ConsoleTop = 10

const labelWidth = 25

// Palette, deep teals.
var (
	colorTitle  = lipgloss.Color("#2CD7C7")
	colorHeader = lipgloss.Color("#20B9B4")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorWarn   = lipgloss.Color("#F4D03F")
)

// Printer renders a Result as a human-readable summary.
type Printer struct {
	w io.Writer

	title  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
	warn   lipgloss.Style
	rule   lipgloss.Style
}

// NewPrinter returns a Printer writing to w. With color off every style is
// plain text, which keeps output stable for files and pipes.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	plain := r.NewStyle()
	p := &Printer{
		w:      w,
		title:  plain,
		header: plain,
		label:  plain,
		value:  plain,
		muted:  plain,
		warn:   plain,
		rule:   plain,
	}
	if color {
		p.title = r.NewStyle().Bold(true).Foreground(colorTitle)
		p.header = r.NewStyle().Bold(true).Foreground(colorHeader)
		p.label = r.NewStyle().Foreground(colorHeader)
		p.value = r.NewStyle().Bold(true)
		p.muted = r.NewStyle().Foreground(colorMuted)
		p.warn = r.NewStyle().Foreground(colorWarn)
		p.rule = r.NewStyle().Foreground(colorBorder)
	}

	return p
}

// Print writes the full summary in one write.
func (p *Printer) Print(res Result, files []string) error {
	var b strings.Builder
	p.dataset(&b, res)
	p.network(&b, res)
	p.rankings(&b, res)
	p.footer(&b, res, files)

	_, err := io.WriteString(p.w, b.String())

	return err
}

func (p *Printer) section(b *strings.Builder, name string) {
	b.WriteString("\n")
	b.WriteString(p.header.Render(name))
	b.WriteString("\n")
	b.WriteString(p.rule.Render(strings.Repeat("─", len(name))))
	b.WriteString("\n")
}

func (p *Printer) row(b *strings.Builder, label, format string, args ...any) {
	b.WriteString("  ")
	b.WriteString(p.label.Render(fmt.Sprintf("%-*s ", labelWidth, label)))
	b.WriteString(p.value.Render(fmt.Sprintf(format, args...)))
	b.WriteString("\n")
}

func (p *Printer) note(b *strings.Builder, format string, args ...any) {
	b.WriteString("  ")
	b.WriteString(p.muted.Render(fmt.Sprintf(format, args...)))
	b.WriteString("\n")
}

func (p *Printer) dataset(b *strings.Builder, res Result) {
	b.WriteString(p.title.Render("NBA Teammate Network"))
	b.WriteString("\n")
	if res.RunID != "" {
		p.note(b, "run %s", res.RunID)
	}

	p.section(b, "Dataset")
	o := res.Overview
	p.row(b, "Player-season records", "%d", o.Records)
	if res.Load.Incomplete+res.Load.Skipped > 0 {
		p.note(b, "%d rows dropped (%d incomplete, %d malformed)",
			res.Load.Incomplete+res.Load.Skipped, res.Load.Incomplete, res.Load.Skipped)
	}
	p.row(b, "Unique players", "%d", o.Players)
	p.row(b, "Unique teams", "%d", o.Teams)
	p.row(b, "Seasons covered", "%d", o.Seasons)
	if len(o.Samples) > 0 {
		p.row(b, "Sample players", "")
		for _, r := range o.Samples {
			p.note(b, "  %s | %s | %s", r.Player, r.Team, r.Season)
		}
	}

	p.section(b, "Snapshot")
	s := res.Snapshot
	p.row(b, "Average name length", "%.2f characters", s.AvgNameLength)
	p.row(b, "Average team code length", "%.2f characters", s.AvgTeamLength)
	p.row(b, "Points per game", "%.2f (sd %.2f)", s.Points.Mean, s.Points.StdDev)
	p.row(b, "Rebounds per game", "%.2f (sd %.2f)", s.Rebounds.Mean, s.Rebounds.StdDev)
	p.row(b, "Assists per game", "%.2f (sd %.2f)", s.Assists.Mean, s.Assists.StdDev)
}

func (p *Printer) network(b *strings.Builder, res Result) {
	p.section(b, "Graph")
	g := res.Graph
	p.row(b, "Players (vertices)", "%d", g.Vertices)
	p.row(b, "Teammate links (edges)", "%d", g.Edges)
	p.row(b, "Density", "%.5f", g.Density)
	p.row(b, "Heaviest tie", "%d shared rosters", g.MaxWeight)
	c := res.Components
	p.row(b, "Connected components", "%d", c.Count)
	p.row(b, "Largest component", "%d (%.1f%%)", c.Largest, 100*c.Coverage)
	p.row(b, "Isolated players", "%d", g.Isolated)

	p.section(b, "Degree")
	d := res.Degree
	p.row(b, "Mean degree", "%.2f (sd %.2f)", d.Mean, d.StdDev)
	p.row(b, "Min / max degree", "%d / %d", d.Min, d.Max)
	for _, bk := range res.Histogram {
		p.note(b, "%4d-%-4d %6d", bk.Low, bk.High, bk.Count)
	}
	if res.Fit != nil {
		p.row(b, "Log-log slope", "%.3f (R² %.3f)", res.Fit.Slope, res.Fit.RSquared)
	}

	p.section(b, "Separation")
	if sep := res.Separation; sep != nil {
		p.row(b, "Average shortest path", "%.3f (sd %.3f)", sep.Mean, sep.StdDev)
		p.row(b, "Longest sampled path", "%d", sep.Max)
		p.row(b, "Connected pairs", "%d / %d", sep.Found, sep.Drawn)
		p.note(b, "seed %d, %s edge cost; the longest path bounds the diameter from below",
			sep.Seed, sep.EdgeCost)
	} else {
		b.WriteString("  ")
		b.WriteString(p.warn.Render("no connected pair sampled"))
		b.WriteString("\n")
	}
}

func (p *Printer) rankings(b *strings.Builder, res Result) {
	p.section(b, "Top closeness centrality")
	p.scores(b, res.Centrality)
	if res.CentralityStats.Mean > 0 {
		p.note(b, "league mean %.4f (sd %.4f)", res.CentralityStats.Mean, res.CentralityStats.StdDev)
	}

	if len(res.PageRank) > 0 {
		p.section(b, "Top PageRank")
		p.scores(b, res.PageRank)
	}

	p.section(b, "Most similar pair")
	if res.Similar != nil {
		p.row(b, res.Similar.A+" & "+res.Similar.B, "Jaccard %.3f", res.Similar.Score)
	} else {
		b.WriteString("  ")
		b.WriteString(p.warn.Render("fewer than two players"))
		b.WriteString("\n")
	}

	p.section(b, "Strongest ties")
	for i, t := range res.Backbone.Strongest {
		if i == ConsoleTop {
			break
		}
		p.row(b, t.A+" – "+t.B, "%d shared rosters", t.Weight)
	}
	p.note(b, "backbone: %d ties, total weight %d", res.Backbone.Edges, res.Backbone.TotalWeight)
}

func (p *Printer) scores(b *strings.Builder, scores []centrality.Score) {
	for i, s := range scores {
		if i == ConsoleTop {
			break
		}
		p.row(b, fmt.Sprintf("%2d. %s", i+1, s.Name), "%.4f", s.Value)
	}
}

func (p *Printer) footer(b *strings.Builder, res Result, files []string) {
	if len(files) > 0 {
		p.section(b, "Output")
		for _, f := range files {
			p.note(b, "%s", f)
		}
	}
	b.WriteString("\n")
	p.note(b, "done in %s", res.Elapsed.Round(time.Millisecond))
}
