package renderer

import (
	"strings"

	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/terminal"
)

// Executive summary layout.
const (
	MinSectionsForSummary = 2
	SummaryTitle          = "GRADE ANALYSIS REPORT"
	SummaryOverallPrefix  = "Overall: "
	SummaryAnalyzerCol    = "Analyzer"
	SummaryMeanCol        = "Mean"
	SummaryStatusCol      = "Status"
	SummaryAnalyzerWidth  = 16
	SummaryMeanWidth      = 12
)

// ExecutiveSummary aggregates section scores into one overall mean. It heads
// the text report whenever more than one analyzer ran.
type ExecutiveSummary struct {
	Sections []analyze.ReportSection
}

// NewExecutiveSummary creates an ExecutiveSummary from report sections.
func NewExecutiveSummary(sections []analyze.ReportSection) *ExecutiveSummary {
	if sections == nil {
		sections = []analyze.ReportSection{}
	}

	return &ExecutiveSummary{Sections: sections}
}

// OverallScore averages the scored sections as a 0-1 fraction. Info-only
// sections do not count; with no scored section at all the summary itself
// is info-only.
func (s *ExecutiveSummary) OverallScore() float64 {
	var total float64

	var scored int

	for _, section := range s.Sections {
		if fraction := section.Score(); fraction >= 0 {
			total += fraction
			scored++
		}
	}

	if scored == 0 {
		return analyze.ScoreInfoOnly
	}

	return total / float64(scored)
}

// OverallScoreLabel returns the formatted overall mean ("N pts" or "Info").
func (s *ExecutiveSummary) OverallScoreLabel() string {
	fraction := s.OverallScore()
	if fraction < 0 {
		return analyze.ScoreLabelInfo
	}

	return terminal.FormatPoints(fraction * terminal.PointsMax)
}

// scoreCell colorizes a score label by its quality; info labels stay plain.
func (r *SectionRenderer) scoreCell(label string, fraction float64) string {
	if fraction < 0 {
		return label
	}

	return r.config.Colorize(label, terminal.ColorForScore(fraction))
}

// RenderSummary produces the executive summary block: a boxed title with the
// overall mean, then one line per analyzer with its mean and status.
func (r *SectionRenderer) RenderSummary(summary *ExecutiveSummary) string {
	var b strings.Builder

	title := r.config.Colorize(SummaryTitle, terminal.ColorBlue)
	overall := SummaryOverallPrefix + r.scoreCell(summary.OverallScoreLabel(), summary.OverallScore())
	b.WriteString(terminal.DrawHeader(title, overall, r.config.Width))

	indent := strings.Repeat(" ", IndentWidth)

	columns := terminal.PadRight(SummaryAnalyzerCol, SummaryAnalyzerWidth) +
		terminal.PadRight(SummaryMeanCol, SummaryMeanWidth) +
		SummaryStatusCol
	b.WriteString("\n\n" + indent + r.config.Colorize(columns, terminal.ColorGray))

	b.WriteString("\n" + indent + terminal.DrawSeparator(r.config.Width-IndentWidth*2))

	for _, section := range summary.Sections {
		mean := r.scoreCell(section.ScoreLabel(), section.Score())

		b.WriteString("\n" + indent +
			terminal.PadRight(section.SectionTitle(), SummaryAnalyzerWidth) +
			terminal.PadRight(mean, SummaryMeanWidth) +
			section.StatusMessage())
	}

	return b.String()
}
