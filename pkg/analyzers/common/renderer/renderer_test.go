package renderer_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/renderer"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/terminal"
	"github.com/Sumatoshi-tech/gradefang/pkg/stats"
)

// fakeSection is a configurable ReportSection for renderer tests.
type fakeSection struct {
	analyze.BaseReportSection

	metrics      []analyze.Metric
	distribution []analyze.DistributionItem
	rows         []analyze.Row
}

func (s *fakeSection) KeyMetrics() []analyze.Metric { return s.metrics }

func (s *fakeSection) Distribution() []analyze.DistributionItem { return s.distribution }

func (s *fakeSection) TopRows(n int) []analyze.Row {
	if n > len(s.rows) {
		n = len(s.rows)
	}

	return s.rows[:n]
}

func (s *fakeSection) AllRows() []analyze.Row { return s.rows }

func newStudentsSection() *fakeSection {
	return &fakeSection{
		BaseReportSection: analyze.BaseReportSection{
			Title:      "STUDENTS",
			Message:    "2 students analyzed",
			ScoreValue: 0.775,
		},
		metrics: []analyze.Metric{
			{Label: "Students", Value: "2"},
			{Label: "Class Mean", Value: "77.50"},
		},
		distribution: []analyze.DistributionItem{
			{Label: "Great (80-89)", Percent: 0.5, Count: 1},
			{Label: "Fair (70-79)", Percent: 0.5, Count: 1},
		},
		rows: []analyze.Row{
			{Name: "Alice", Detail: "max 90 min 80 tests 2", Value: "85.00 pts", Severity: analyze.SeverityGood, Values: []int{80, 90}},
			{Name: "Bob", Detail: "max 70 min 70 tests 1", Value: "70.00 pts", Severity: analyze.SeverityFair, Values: []int{70}},
		},
	}
}

func newInfoSection() *fakeSection {
	return &fakeSection{
		BaseReportSection: analyze.BaseReportSection{
			Title:      "OVERVIEW",
			Message:    "3 records loaded",
			ScoreValue: analyze.ScoreInfoOnly,
		},
	}
}

func TestRenderContainsAllParts(t *testing.T) {
	t.Parallel()

	r := renderer.NewSectionRenderer(terminal.DefaultWidth, false, true)
	out := r.Render(newStudentsSection())

	assert.Contains(t, out, "STUDENTS")
	assert.Contains(t, out, "Mean: 77.50 pts")
	assert.Contains(t, out, "Summary: 2 students analyzed")
	assert.Contains(t, out, renderer.MetricsLabel)
	assert.Contains(t, out, "Class Mean")
	assert.Contains(t, out, renderer.DistributionLabel)
	assert.Contains(t, out, "Great (80-89)")
	assert.Contains(t, out, renderer.TopRowsLabel)
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "85.00 pts")
	assert.Contains(t, out, "[80 90]")
	assert.Contains(t, out, "[70]")
}

func TestRenderInfoSectionOmitsMean(t *testing.T) {
	t.Parallel()

	r := renderer.NewSectionRenderer(terminal.DefaultWidth, false, true)
	out := r.Render(newInfoSection())

	assert.Contains(t, out, "OVERVIEW")
	assert.NotContains(t, out, "Mean:")
	assert.NotContains(t, out, renderer.TopRowsLabel)
}

func TestRenderVerboseShowsAllRows(t *testing.T) {
	t.Parallel()

	r := renderer.NewSectionRenderer(terminal.DefaultWidth, true, true)
	out := r.Render(newStudentsSection())

	assert.Contains(t, out, renderer.AllRowsLabel)
	assert.Contains(t, out, "Bob")
}

func TestRenderCompact(t *testing.T) {
	t.Parallel()

	r := renderer.NewSectionRenderer(terminal.DefaultWidth, false, true)

	scored := r.RenderCompact(newStudentsSection())
	assert.Contains(t, scored, "STUDENTS")
	assert.Contains(t, scored, "77.50 pts")
	assert.Contains(t, scored, "2 students analyzed")

	info := r.RenderCompact(newInfoSection())
	assert.Contains(t, info, "OVERVIEW")
	assert.NotContains(t, info, "pts")
}

func TestColorForSeverity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, terminal.ColorGreen, renderer.ColorForSeverity(analyze.SeverityGood))
	assert.Equal(t, terminal.ColorYellow, renderer.ColorForSeverity(analyze.SeverityFair))
	assert.Equal(t, terminal.ColorRed, renderer.ColorForSeverity(analyze.SeverityPoor))
	assert.Equal(t, terminal.ColorBlue, renderer.ColorForSeverity(analyze.SeverityInfo))
	assert.Equal(t, terminal.ColorBlue, renderer.ColorForSeverity("unknown"))
}

func TestExecutiveSummaryOverallScore(t *testing.T) {
	t.Parallel()

	high := newStudentsSection()
	low := newStudentsSection()
	low.ScoreValue = 0.625

	summary := renderer.NewExecutiveSummary([]analyze.ReportSection{high, low, newInfoSection()})
	assert.InDelta(t, 0.7, summary.OverallScore(), 0.001)
	assert.Equal(t, "70.00 pts", summary.OverallScoreLabel())
}

func TestExecutiveSummaryInfoOnly(t *testing.T) {
	t.Parallel()

	summary := renderer.NewExecutiveSummary([]analyze.ReportSection{newInfoSection()})
	assert.InDelta(t, analyze.ScoreInfoOnly, summary.OverallScore(), 0.001)
	assert.Equal(t, analyze.ScoreLabelInfo, summary.OverallScoreLabel())

	empty := renderer.NewExecutiveSummary(nil)
	assert.InDelta(t, analyze.ScoreInfoOnly, empty.OverallScore(), 0.001)
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	r := renderer.NewSectionRenderer(terminal.DefaultWidth, false, true)
	summary := renderer.NewExecutiveSummary([]analyze.ReportSection{newStudentsSection(), newInfoSection()})
	out := r.RenderSummary(summary)

	assert.Contains(t, out, renderer.SummaryTitle)
	assert.Contains(t, out, "Overall: ")
	assert.Contains(t, out, "STUDENTS")
	assert.Contains(t, out, "OVERVIEW")
	assert.Contains(t, out, analyze.ScoreLabelInfo)
}

func TestSectionsToJSON(t *testing.T) {
	t.Parallel()

	report := renderer.SectionsToJSON([]analyze.ReportSection{newStudentsSection(), newInfoSection()})

	assert.InDelta(t, 0.775, report.OverallMean, 0.001)
	require.Len(t, report.Sections, 2)

	students := report.Sections[0]
	assert.Equal(t, "STUDENTS", students.Title)
	assert.Equal(t, "85.00 pts", students.Rows[0].Value)
	assert.Equal(t, []int{80, 90}, students.Rows[0].Values)
	assert.Len(t, students.Metrics, 2)
	assert.Len(t, students.Distribution, 2)

	overview := report.Sections[1]
	assert.Equal(t, analyze.ScoreLabelInfo, overview.MeanLabel)
	assert.Empty(t, overview.Rows)
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := renderer.RenderJSON([]analyze.ReportSection{newStudentsSection()}, &buf)
	require.NoError(t, err)

	var decoded renderer.JSONReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "STUDENTS", decoded.Sections[0].Title)
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := renderer.RenderText([]analyze.ReportSection{newStudentsSection(), newInfoSection()}, false, true, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, renderer.SummaryTitle)
	assert.Contains(t, out, "STUDENTS")
	assert.Contains(t, out, "OVERVIEW")
}

func TestRenderTextSingleSectionSkipsSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := renderer.RenderText([]analyze.ReportSection{newStudentsSection()}, false, true, &buf)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), renderer.SummaryTitle)
}

func TestRenderCompactWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := renderer.RenderCompact([]analyze.ReportSection{newStudentsSection(), newInfoSection()}, true, &buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
}

func TestRankingTable(t *testing.T) {
	t.Parallel()

	entries := []stats.Entry{
		{Key: "Alice", Stats: stats.AggregateStats{Mean: 85, Max: 90, Min: 80, Count: 2}},
		{Key: "Bob", Stats: stats.AggregateStats{Mean: 70, Max: 70, Min: 70, Count: 1}},
	}

	out := renderer.RankingTable("Ranking", entries, len(entries))

	assert.Contains(t, out, "Ranking:")
	assert.Contains(t, out, "🥇 1")
	assert.Contains(t, out, "🥈 2")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "85.00")
	assert.Contains(t, out, "Total: 2 groups")

	aliceIdx := strings.Index(out, "Alice")
	bobIdx := strings.Index(out, "Bob")
	assert.Less(t, aliceIdx, bobIdx)
}

func TestRankingTableTruncatedFooter(t *testing.T) {
	t.Parallel()

	entries := []stats.Entry{
		{Key: "Alice", Stats: stats.AggregateStats{Mean: 85, Max: 90, Min: 80, Count: 2}},
	}

	out := renderer.RankingTable("Ranking", entries, 3)

	assert.Contains(t, out, "Top 1 of 3 groups")
	assert.NotContains(t, out, "Total:")
}
