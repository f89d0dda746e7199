// Package renderer turns analyzer report sections into the console report:
// boxed section headers, key metric grids, distribution bars and the
// per-student and per-subject row listings.
package renderer

import (
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/terminal"
)

// SectionRenderer renders ReportSection to formatted terminal output.
type SectionRenderer struct {
	config  terminal.Config
	verbose bool
}

// Compact mode layout.
const (
	CompactBarWidth   = 10
	CompactTitleWidth = 14
)

// Full mode layout.
const (
	IndentWidth          = 2
	SummaryPrefix        = "Summary: "
	MetricsLabel         = "Key Metrics"
	MetricsPerRow        = 2
	MetricLabelWidth     = 20
	MetricValueWidth     = 14
	DistributionLabel    = "Distribution"
	DistributionBarWidth = 40
	DistLabelWidth       = 18
	TopRowsLabel         = "Top Entries"
	AllRowsLabel         = "All Entries"
	DefaultTopRows       = 5
	RowNameWidth         = 22
	RowDetailWidth       = 38
)

// NewSectionRenderer creates a renderer with the given configuration.
func NewSectionRenderer(width int, verbose, noColor bool) *SectionRenderer {
	return &SectionRenderer{
		config: terminal.Config{
			Width:   width,
			NoColor: noColor,
		},
		verbose: verbose,
	}
}

// ColorForSeverity maps a row severity string to a terminal color.
func ColorForSeverity(severity string) terminal.Color {
	switch severity {
	case analyze.SeverityGood:
		return terminal.ColorGreen
	case analyze.SeverityFair:
		return terminal.ColorYellow
	case analyze.SeverityPoor:
		return terminal.ColorRed
	default:
		return terminal.ColorBlue
	}
}

// RenderCompact produces single-line output for narrow terminals.
// Format: "Students       [████████░░] 85.00 pts  Message".
func (r *SectionRenderer) RenderCompact(section analyze.ReportSection) string {
	title := terminal.PadRight(section.SectionTitle(), CompactTitleWidth)

	fraction := section.Score()
	if fraction < 0 {
		return title + " " + section.StatusMessage()
	}

	bar := terminal.FormatPointsBar(fraction*terminal.PointsMax, CompactBarWidth)
	bar = r.config.Colorize(bar, terminal.ColorForScore(fraction))

	return fmt.Sprintf("%s %s  %s", title, bar, section.StatusMessage())
}

// indent is the left margin applied to every body line.
func (r *SectionRenderer) indent() string {
	return strings.Repeat(" ", IndentWidth)
}

// blockHeader opens a labeled block: blank line, gray label, separator.
func (r *SectionRenderer) blockHeader(label string) []string {
	return []string{
		"",
		r.indent() + r.config.Colorize(label, terminal.ColorGray),
		r.indent() + terminal.DrawSeparator(r.config.Width-IndentWidth*2),
	}
}

// Render produces the full formatted output for a ReportSection.
func (r *SectionRenderer) Render(section analyze.ReportSection) string {
	title := r.config.Colorize(section.SectionTitle(), terminal.ColorBlue)

	var meanText string
	if fraction := section.Score(); fraction >= 0 {
		meanText = r.config.Colorize("Mean: "+section.ScoreLabel(), terminal.ColorForScore(fraction))
	}

	parts := []string{
		terminal.DrawHeader(title, meanText, r.config.Width),
		"\n" + r.indent() + SummaryPrefix + section.StatusMessage(),
	}

	if metrics := section.KeyMetrics(); len(metrics) > 0 {
		parts = append(parts, r.renderMetrics(metrics))
	}

	if distribution := section.Distribution(); len(distribution) > 0 {
		parts = append(parts, r.renderDistribution(distribution))
	}

	label, rows := r.sectionRows(section)
	if len(rows) > 0 {
		parts = append(parts, r.renderRows(rows, label))
	}

	return strings.Join(parts, "\n")
}

// sectionRows picks the row listing: every row in verbose mode, the top
// entries otherwise.
func (r *SectionRenderer) sectionRows(section analyze.ReportSection) (string, []analyze.Row) {
	if r.verbose {
		return AllRowsLabel, section.AllRows()
	}

	return TopRowsLabel, section.TopRows(DefaultTopRows)
}

// renderMetrics lays out key metrics two per line.
func (r *SectionRenderer) renderMetrics(metrics []analyze.Metric) string {
	lines := r.blockHeader(MetricsLabel)

	for i := 0; i < len(metrics); i += MetricsPerRow {
		var row strings.Builder

		row.WriteString(r.indent())

		for j := 0; j < MetricsPerRow && i+j < len(metrics); j++ {
			m := metrics[i+j]
			row.WriteString(terminal.PadRight(m.Label, MetricLabelWidth))
			row.WriteString(terminal.PadRight(m.Value, MetricValueWidth))
		}

		lines = append(lines, row.String())
	}

	return strings.Join(lines, "\n")
}

// renderDistribution draws one percent bar per category.
func (r *SectionRenderer) renderDistribution(items []analyze.DistributionItem) string {
	lines := r.blockHeader(DistributionLabel)

	for _, item := range items {
		bar := terminal.DrawPercentBar(item.Label, item.Percent, item.Count, DistLabelWidth, DistributionBarWidth)
		lines = append(lines, r.indent()+bar)
	}

	return strings.Join(lines, "\n")
}

// renderRows lists per-group rows with severity-colored values.
func (r *SectionRenderer) renderRows(rows []analyze.Row, label string) string {
	lines := r.blockHeader(label)

	for _, row := range rows {
		name := terminal.PadRight(terminal.TruncateWithEllipsis(row.Name, RowNameWidth), RowNameWidth)
		detail := terminal.PadRight(terminal.TruncateWithEllipsis(row.Detail, RowDetailWidth), RowDetailWidth)
		value := r.config.Colorize(row.Value, ColorForSeverity(row.Severity))
		line := fmt.Sprintf("%s%s %s %s", r.indent(), name, detail, value)

		if len(row.Values) > 0 {
			line += "  " + r.config.Colorize(fmt.Sprint(row.Values), terminal.ColorGray)
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
