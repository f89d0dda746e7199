package students

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"

	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/plotpage"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/reportutil"
)

// Chart labels.
const (
	plotPageTitle  = "Student Grade Analysis"
	plotChartTitle = "Scores by Student"
	plotYAxisLabel = "Points"

	seriesMean = "Mean"
	seriesMax  = "Max"
	seriesMin  = "Min"
)

// Chart builds a bar chart of per-student statistics from a report.
func (a *Analyzer) Chart(report analyze.Report) *charts.Bar {
	entries := reportutil.GetEntries(report, KeyStudents)

	labels := make([]string, 0, len(entries))
	means := make([]plotpage.SeriesData, 0, len(entries))
	maxes := make([]plotpage.SeriesData, 0, len(entries))
	mins := make([]plotpage.SeriesData, 0, len(entries))

	for _, entry := range entries {
		labels = append(labels, reportutil.MapString(entry, KeyEntryName))
		means = append(means, reportutil.MapFloat64(entry, KeyEntryMean))
		maxes = append(maxes, reportutil.MapInt(entry, KeyEntryMax))
		mins = append(mins, reportutil.MapInt(entry, KeyEntryMin))
	}

	series := []plotpage.BarSeries{
		{Name: seriesMean, Data: means},
		{Name: seriesMax, Data: maxes},
		{Name: seriesMin, Data: mins},
	}

	subtitle := reportutil.GetString(report, KeyMessage)

	return plotpage.BuildBarChart(plotChartTitle, subtitle, labels, series, plotYAxisLabel)
}

// FormatReportPlot generates a standalone HTML page with the student chart.
func (a *Analyzer) FormatReportPlot(report analyze.Report, w io.Writer) error {
	page := plotpage.NewPage(plotPageTitle)
	page.Add(a.Chart(report))

	return page.Render(w)
}
