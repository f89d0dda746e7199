package subjects

import (
	"fmt"

	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/reportutil"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/terminal"
)

// Section rendering constants.
const (
	SectionTitle = "SUBJECTS"

	MetricSubjects    = "Subjects"
	MetricOverallMean = "Overall Mean"
	MetricBest        = "Best Subject Mean"
	MetricLowest      = "Lowest Score"

	DefaultStatusMessage = "No subject data available"
)

// ReportSection implements analyze.ReportSection for the subjects analyzer.
type ReportSection struct {
	analyze.BaseReportSection
	report analyze.Report
}

// NewReportSection creates a ReportSection from a subjects report.
func NewReportSection(report analyze.Report) *ReportSection {
	if report == nil {
		report = analyze.Report{}
	}

	msg := reportutil.GetString(report, KeyMessage)
	if msg == "" {
		msg = DefaultStatusMessage
	}

	return &ReportSection{
		BaseReportSection: analyze.BaseReportSection{
			Title:      SectionTitle,
			Message:    msg,
			ScoreValue: reportutil.GetFloat64(report, KeyOverallMean) / terminal.PointsMax,
		},
		report: report,
	}
}

// KeyMetrics returns the cross-subject metrics.
func (s *ReportSection) KeyMetrics() []analyze.Metric {
	return []analyze.Metric{
		{Label: MetricSubjects, Value: reportutil.FormatInt(reportutil.GetInt(s.report, KeySubjectCount))},
		{Label: MetricOverallMean, Value: reportutil.FormatFloat(reportutil.GetFloat64(s.report, KeyOverallMean))},
		{Label: MetricBest, Value: reportutil.FormatFloat(reportutil.GetFloat64(s.report, KeyOverallMax))},
		{Label: MetricLowest, Value: reportutil.FormatFloat(reportutil.GetFloat64(s.report, KeyOverallMin))},
	}
}

// Distribution shows how recorded tests split across subjects.
func (s *ReportSection) Distribution() []analyze.DistributionItem {
	entries := reportutil.GetEntries(s.report, KeySubjects)
	if len(entries) == 0 {
		return nil
	}

	var total int
	for _, entry := range entries {
		total += reportutil.MapInt(entry, KeyEntryCount)
	}

	items := make([]analyze.DistributionItem, 0, len(entries))

	for _, entry := range entries {
		count := reportutil.MapInt(entry, KeyEntryCount)
		items = append(items, analyze.DistributionItem{
			Label:   reportutil.MapString(entry, KeyEntryName),
			Percent: reportutil.Pct(count, total),
			Count:   count,
		})
	}

	return items
}

// TopRows returns the top N subjects by mean.
func (s *ReportSection) TopRows(n int) []analyze.Row {
	rows := s.buildRows()
	if n >= len(rows) {
		return rows
	}

	return rows[:n]
}

// AllRows returns all subjects ordered by mean.
func (s *ReportSection) AllRows() []analyze.Row {
	return s.buildRows()
}

// buildRows converts the ranking into display rows, best mean first.
func (s *ReportSection) buildRows() []analyze.Row {
	ranking := reportutil.GetEntries(s.report, KeyRanking)
	subjects := reportutil.GetEntries(s.report, KeySubjects)

	byName := make(map[string]map[string]any, len(subjects))
	for _, entry := range subjects {
		byName[reportutil.MapString(entry, KeyEntryName)] = entry
	}

	rows := make([]analyze.Row, 0, len(ranking))

	for _, ranked := range ranking {
		name := reportutil.MapString(ranked, KeyEntryName)

		entry, ok := byName[name]
		if !ok {
			continue
		}

		mean := reportutil.MapFloat64(entry, KeyEntryMean)
		detail := fmt.Sprintf("max %d min %d tests %d",
			reportutil.MapInt(entry, KeyEntryMax),
			reportutil.MapInt(entry, KeyEntryMin),
			reportutil.MapInt(entry, KeyEntryCount),
		)

		rows = append(rows, analyze.Row{
			Name:     name,
			Detail:   detail,
			Value:    terminal.FormatPoints(mean),
			Severity: analyze.SeverityForScore(mean / terminal.PointsMax),
			Values:   reportutil.MapIntSlice(entry, KeyEntryValues),
		})
	}

	return rows
}

// CreateReportSection creates a ReportSection from report data.
func (a *Analyzer) CreateReportSection(report analyze.Report) analyze.ReportSection {
	return NewReportSection(report)
}
