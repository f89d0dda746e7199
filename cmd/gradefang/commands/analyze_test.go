package commands

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/renderer"
	"github.com/Sumatoshi-tech/gradefang/pkg/gradebook"
	"github.com/Sumatoshi-tech/gradefang/pkg/stats"
)

const validCSV = `name,date,subject,score
Alice,2026-01-10,Math,80
Alice,2026-02-10,Math,90
Bob,2026-01-10,Science,70
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scores.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestAnalyzeTextOutput(t *testing.T) {
	path := writeCSV(t, validCSV)

	out, _, err := executeCommand(t, NewAnalyzeCommand(), "--no-color", path)
	require.NoError(t, err)

	assert.Contains(t, out, "GRADE ANALYSIS REPORT")
	assert.Contains(t, out, "OVERVIEW")
	assert.Contains(t, out, "STUDENTS")
	assert.Contains(t, out, "SUBJECTS")
	assert.Contains(t, out, "Student Ranking")
	assert.Contains(t, out, "Subject Ranking")
	assert.Contains(t, out, "🥇 1")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Math")
	assert.Contains(t, out, "85.00")
	assert.Contains(t, out, "Total: 2 groups")
}

func TestAnalyzeJSONOutput(t *testing.T) {
	path := writeCSV(t, validCSV)

	out, _, err := executeCommand(t, NewAnalyzeCommand(), "--format", "json", path)
	require.NoError(t, err)

	var report renderer.JSONReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Sections, 3)
	assert.Equal(t, "OVERVIEW", report.Sections[0].Title)
	assert.Equal(t, "STUDENTS", report.Sections[1].Title)
	assert.Equal(t, "SUBJECTS", report.Sections[2].Title)
	assert.InDelta(t, 0.775, report.OverallMean, 0.001)
}

func TestAnalyzeCompactOutput(t *testing.T) {
	path := writeCSV(t, validCSV)

	out, _, err := executeCommand(t, NewAnalyzeCommand(), "--format", "compact", "--no-color", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "77.50 pts")
}

func TestAnalyzePlotOutputToFile(t *testing.T) {
	path := writeCSV(t, validCSV)
	outPath := filepath.Join(t.TempDir(), "report.html")

	_, _, err := executeCommand(t, NewAnalyzeCommand(), "--format", "plot", "-o", outPath, path)
	require.NoError(t, err)

	html, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "echarts")
	assert.Contains(t, string(html), "Alice")
	assert.Contains(t, string(html), "Math")
}

func TestAnalyzeSelection(t *testing.T) {
	path := writeCSV(t, validCSV)

	out, _, err := executeCommand(t, NewAnalyzeCommand(), "-a", "students", "--format", "json", path)
	require.NoError(t, err)

	var report renderer.JSONReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Sections, 1)
	assert.Equal(t, "STUDENTS", report.Sections[0].Title)
}

func TestAnalyzeSelectionGlob(t *testing.T) {
	path := writeCSV(t, validCSV)

	out, _, err := executeCommand(t, NewAnalyzeCommand(), "-a", "s*", "--format", "json", path)
	require.NoError(t, err)

	var report renderer.JSONReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Sections, 2)
	assert.Equal(t, "STUDENTS", report.Sections[0].Title)
	assert.Equal(t, "SUBJECTS", report.Sections[1].Title)
}

func TestAnalyzeUnknownAnalyzer(t *testing.T) {
	path := writeCSV(t, validCSV)

	_, _, err := executeCommand(t, NewAnalyzeCommand(), "-a", "teachers", path)
	require.ErrorIs(t, err, analyze.ErrUnknownAnalyzerID)
}

func TestAnalyzeMissingFile(t *testing.T) {
	_, _, err := executeCommand(t, NewAnalyzeCommand(), filepath.Join(t.TempDir(), "nope.csv"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestAnalyzeMalformedScore(t *testing.T) {
	path := writeCSV(t, "name,date,subject,score\nAlice,2026-01-10,Math,eighty\n")

	_, _, err := executeCommand(t, NewAnalyzeCommand(), path)
	require.Error(t, err)

	var malformed *gradebook.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 2, malformed.Line)
	assert.Equal(t, gradebook.ColumnScore, malformed.Column)
}

func TestAnalyzeHeaderOnlyInput(t *testing.T) {
	path := writeCSV(t, "name,date,subject,score\n")

	_, _, err := executeCommand(t, NewAnalyzeCommand(), path)
	require.ErrorIs(t, err, stats.ErrEmptyInput)
}

func TestAnalyzeUnsupportedFormat(t *testing.T) {
	path := writeCSV(t, validCSV)

	_, _, err := executeCommand(t, NewAnalyzeCommand(), "--format", "xml", path)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestAnalyzeTopFlagLimitsRanking(t *testing.T) {
	path := writeCSV(t, validCSV)

	out, _, err := executeCommand(t, NewAnalyzeCommand(), "--top", "1", "--no-color", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Top 1 of 2 groups")
	assert.NotContains(t, out, "🥈")
}

func TestAnalyzeVerboseListsScores(t *testing.T) {
	csv := "name,date,subject,score\n" +
		"Alice,2026-01-10,Math,80\n" +
		"Alice,2026-02-10,Math,85\n" +
		"Alice,2026-03-10,Math,91\n" +
		"Alice,2026-04-10,Math,96\n"
	path := writeCSV(t, csv)

	out, _, err := executeCommand(t, NewAnalyzeCommand(), "--verbose", "--no-color", path)
	require.NoError(t, err)

	assert.Contains(t, out, "[80 85 91 96]")
}

func TestAnalyzeJSONIncludesScores(t *testing.T) {
	path := writeCSV(t, validCSV)

	out, _, err := executeCommand(t, NewAnalyzeCommand(), "--format", "json", path)
	require.NoError(t, err)

	var report renderer.JSONReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Sections, 3)

	students := report.Sections[1]
	require.NotEmpty(t, students.Rows)
	assert.Equal(t, "Alice", students.Rows[0].Name)
	assert.Equal(t, []int{80, 90}, students.Rows[0].Values)
}
