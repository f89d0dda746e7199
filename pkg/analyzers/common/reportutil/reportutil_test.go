package reportutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/reportutil"
)

func TestGetFloat64(t *testing.T) {
	t.Parallel()

	report := analyze.Report{
		"float":  85.5,
		"int":    70,
		"string": "not a number",
	}

	assert.InDelta(t, 85.5, reportutil.GetFloat64(report, "float"), 0.001)
	assert.InDelta(t, 70.0, reportutil.GetFloat64(report, "int"), 0.001)
	assert.InDelta(t, 0.0, reportutil.GetFloat64(report, "string"), 0.001)
	assert.InDelta(t, 0.0, reportutil.GetFloat64(report, "missing"), 0.001)
}

func TestGetInt(t *testing.T) {
	t.Parallel()

	report := analyze.Report{
		"int":   42,
		"float": 85.9,
	}

	assert.Equal(t, 42, reportutil.GetInt(report, "int"))
	assert.Equal(t, 85, reportutil.GetInt(report, "float"))
	assert.Equal(t, 0, reportutil.GetInt(report, "missing"))
}

func TestGetString(t *testing.T) {
	t.Parallel()

	report := analyze.Report{
		"name": "Alice",
		"int":  7,
	}

	assert.Equal(t, "Alice", reportutil.GetString(report, "name"))
	assert.Empty(t, reportutil.GetString(report, "int"))
	assert.Empty(t, reportutil.GetString(report, "missing"))
}

func TestGetEntries(t *testing.T) {
	t.Parallel()

	entries := []map[string]any{
		{"name": "Alice", "mean": 85.0},
		{"name": "Bob", "mean": 70.0},
	}
	report := analyze.Report{"students": entries, "other": "value"}

	got := reportutil.GetEntries(report, "students")
	assert.Len(t, got, 2)
	assert.Equal(t, "Alice", reportutil.MapString(got[0], "name"))

	assert.Nil(t, reportutil.GetEntries(report, "other"))
	assert.Nil(t, reportutil.GetEntries(report, "missing"))
}

func TestMapAccessors(t *testing.T) {
	t.Parallel()

	m := map[string]any{
		"name":   "Math",
		"mean":   83.33,
		"count":  3,
		"values": []int{80, 90, 80},
	}

	assert.Equal(t, "Math", reportutil.MapString(m, "name"))
	assert.InDelta(t, 83.33, reportutil.MapFloat64(m, "mean"), 0.001)
	assert.Equal(t, 3, reportutil.MapInt(m, "count"))
	assert.Equal(t, []int{80, 90, 80}, reportutil.MapIntSlice(m, "values"))

	assert.Empty(t, reportutil.MapString(m, "missing"))
	assert.Equal(t, 0, reportutil.MapInt(m, "missing"))
	assert.InDelta(t, 0.0, reportutil.MapFloat64(m, "missing"), 0.001)
	assert.InDelta(t, 3.0, reportutil.MapFloat64(m, "count"), 0.001)
}

func TestFormatters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", reportutil.FormatInt(42))
	assert.Equal(t, "85.00", reportutil.FormatFloat(85.0))
	assert.Equal(t, "83.33", reportutil.FormatFloat(83.33))
	assert.Equal(t, "50.0%", reportutil.FormatPercent(0.5))
}

func TestPct(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.5, reportutil.Pct(1, 2), 0.001)
	assert.InDelta(t, 0.0, reportutil.Pct(1, 0), 0.001)
}
