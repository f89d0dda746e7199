package subjects_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/reportutil"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/subjects"
	"github.com/Sumatoshi-tech/gradefang/pkg/gradebook"
	"github.com/Sumatoshi-tech/gradefang/pkg/stats"
)

func testDataset(t *testing.T) *gradebook.Dataset {
	t.Helper()

	return gradebook.NewDataset([]gradebook.Record{
		{Name: "Alice", Date: "2026-01-10", Subject: "Math", Score: 80},
		{Name: "Alice", Date: "2026-02-10", Subject: "Math", Score: 90},
		{Name: "Bob", Date: "2026-01-10", Subject: "Science", Score: 70},
	})
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	analyzer := subjects.NewAnalyzer()
	assert.Equal(t, "subjects", analyzer.Name())

	report, err := analyzer.Analyze(testDataset(t))
	require.NoError(t, err)

	entries := reportutil.GetEntries(report, subjects.KeySubjects)
	require.Len(t, entries, 2)

	math := entries[0]
	assert.Equal(t, "Math", reportutil.MapString(math, subjects.KeyEntryName))
	assert.InDelta(t, 85.0, reportutil.MapFloat64(math, subjects.KeyEntryMean), 0.001)
	assert.Equal(t, 90, reportutil.MapInt(math, subjects.KeyEntryMax))
	assert.Equal(t, 80, reportutil.MapInt(math, subjects.KeyEntryMin))
	assert.Equal(t, 2, reportutil.MapInt(math, subjects.KeyEntryCount))

	assert.Equal(t, 2, reportutil.GetInt(report, subjects.KeySubjectCount))
	assert.InDelta(t, 77.5, reportutil.GetFloat64(report, subjects.KeyOverallMean), 0.001)

	ranking := reportutil.GetEntries(report, subjects.KeyRanking)
	require.Len(t, ranking, 2)
	assert.Equal(t, "Math", reportutil.MapString(ranking[0], subjects.KeyEntryName))
	assert.Equal(t, "Science", reportutil.MapString(ranking[1], subjects.KeyEntryName))
}

func TestAnalyzeEmptyDataset(t *testing.T) {
	t.Parallel()

	analyzer := subjects.NewAnalyzer()

	_, err := analyzer.Analyze(gradebook.NewDataset(nil))
	require.ErrorIs(t, err, stats.ErrEmptyInput)
}

func TestReportSection(t *testing.T) {
	t.Parallel()

	analyzer := subjects.NewAnalyzer()
	report, err := analyzer.Analyze(testDataset(t))
	require.NoError(t, err)

	section := analyzer.CreateReportSection(report)

	assert.Equal(t, subjects.SectionTitle, section.SectionTitle())
	assert.InDelta(t, 0.775, section.Score(), 0.001)
	assert.Equal(t, "77.50 pts", section.ScoreLabel())

	metrics := section.KeyMetrics()
	require.Len(t, metrics, 4)
	assert.Equal(t, "2", metrics[0].Value)
	assert.Equal(t, "77.50", metrics[1].Value)

	distribution := section.Distribution()
	require.Len(t, distribution, 2)
	assert.Equal(t, "Math", distribution[0].Label)
	assert.InDelta(t, 2.0/3.0, distribution[0].Percent, 0.001)

	rows := section.AllRows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Math", rows[0].Name)
	assert.Equal(t, "85.00 pts", rows[0].Value)
	assert.Equal(t, []int{80, 90}, rows[0].Values)
	assert.Equal(t, analyze.SeverityGood, rows[0].Severity)
	assert.Equal(t, analyze.SeverityFair, rows[1].Severity)
}

func TestFormatReportPlot(t *testing.T) {
	t.Parallel()

	analyzer := subjects.NewAnalyzer()
	report, err := analyzer.Analyze(testDataset(t))
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, analyzer.FormatReportPlot(report, &buf))
	assert.Contains(t, buf.String(), "Math")
	assert.Contains(t, buf.String(), "echarts")
}
