package overview

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/reportutil"
)

// Section rendering constants.
const (
	SectionTitle = "OVERVIEW"

	MetricTotalRecords = "Total Records"
	MetricStudents     = "Students"
	MetricSubjects     = "Subjects"
	MetricDateRange    = "Date Range"

	DefaultStatusMessage = "No dataset loaded"
)

// ReportSection implements analyze.ReportSection for the overview analyzer.
// The section is info-only and carries no score.
type ReportSection struct {
	analyze.BaseReportSection
	report analyze.Report
}

// NewReportSection creates a ReportSection from an overview report.
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
			ScoreValue: analyze.ScoreInfoOnly,
		},
		report: report,
	}
}

// KeyMetrics returns the dataset shape metrics.
func (s *ReportSection) KeyMetrics() []analyze.Metric {
	first := reportutil.GetString(s.report, KeyFirstDate)
	last := reportutil.GetString(s.report, KeyLastDate)

	return []analyze.Metric{
		{Label: MetricTotalRecords, Value: humanize.Comma(int64(reportutil.GetInt(s.report, KeyTotalRecords)))},
		{Label: MetricStudents, Value: reportutil.FormatInt(reportutil.GetInt(s.report, KeyStudents))},
		{Label: MetricSubjects, Value: reportutil.FormatInt(reportutil.GetInt(s.report, KeySubjects))},
		{Label: MetricDateRange, Value: fmt.Sprintf("%s to %s", first, last)},
	}
}

// Distribution returns how records split across subjects.
func (s *ReportSection) Distribution() []analyze.DistributionItem {
	total := reportutil.GetInt(s.report, KeyTotalRecords)
	if total == 0 {
		return nil
	}

	perSubject := reportutil.GetEntries(s.report, KeyPerSubject)

	items := make([]analyze.DistributionItem, 0, len(perSubject))
	for _, entry := range perSubject {
		count := reportutil.MapInt(entry, "count")
		items = append(items, analyze.DistributionItem{
			Label:   reportutil.MapString(entry, "subject"),
			Percent: reportutil.Pct(count, total),
			Count:   count,
		})
	}

	return items
}

// CreateReportSection creates a ReportSection from report data.
func (a *Analyzer) CreateReportSection(report analyze.Report) analyze.ReportSection {
	return NewReportSection(report)
}
