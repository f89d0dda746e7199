package students

import (
	"fmt"

	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/reportutil"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/terminal"
)

// Section rendering constants.
const (
	SectionTitle = "STUDENTS"

	MetricStudents  = "Students"
	MetricClassMean = "Class Mean"
	MetricBest      = "Best Student Mean"
	MetricLowest    = "Lowest Score"

	DefaultStatusMessage = "No student data available"
)

// Grade band boundaries for the distribution chart.
const (
	bandExcellent = 90
	bandGood      = 80
	bandFair      = 70
)

// Grade band labels.
const (
	DistLabelExcellent = "Excellent (90+)"
	DistLabelGood      = "Good (80-89)"
	DistLabelFair      = "Fair (70-79)"
	DistLabelPoor      = "Poor (<70)"
)

// ReportSection implements analyze.ReportSection for the students analyzer.
type ReportSection struct {
	analyze.BaseReportSection
	report analyze.Report
}

// NewReportSection creates a ReportSection from a students report.
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
			ScoreValue: reportutil.GetFloat64(report, KeyClassMean) / terminal.PointsMax,
		},
		report: report,
	}
}

// KeyMetrics returns the class-level metrics.
func (s *ReportSection) KeyMetrics() []analyze.Metric {
	return []analyze.Metric{
		{Label: MetricStudents, Value: reportutil.FormatInt(reportutil.GetInt(s.report, KeyStudentCount))},
		{Label: MetricClassMean, Value: reportutil.FormatFloat(reportutil.GetFloat64(s.report, KeyClassMean))},
		{Label: MetricBest, Value: reportutil.FormatFloat(reportutil.GetFloat64(s.report, KeyClassMax))},
		{Label: MetricLowest, Value: reportutil.FormatFloat(reportutil.GetFloat64(s.report, KeyClassMin))},
	}
}

// Distribution buckets student means into grade bands.
func (s *ReportSection) Distribution() []analyze.DistributionItem {
	entries := reportutil.GetEntries(s.report, KeyStudents)
	if len(entries) == 0 {
		return nil
	}

	var excellent, good, fair, poor int

	for _, entry := range entries {
		mean := reportutil.MapFloat64(entry, KeyEntryMean)

		switch {
		case mean >= bandExcellent:
			excellent++
		case mean >= bandGood:
			good++
		case mean >= bandFair:
			fair++
		default:
			poor++
		}
	}

	total := len(entries)

	return []analyze.DistributionItem{
		{Label: DistLabelExcellent, Percent: reportutil.Pct(excellent, total), Count: excellent},
		{Label: DistLabelGood, Percent: reportutil.Pct(good, total), Count: good},
		{Label: DistLabelFair, Percent: reportutil.Pct(fair, total), Count: fair},
		{Label: DistLabelPoor, Percent: reportutil.Pct(poor, total), Count: poor},
	}
}

// TopRows returns the top N students by mean.
func (s *ReportSection) TopRows(n int) []analyze.Row {
	rows := s.buildRows()
	if n >= len(rows) {
		return rows
	}

	return rows[:n]
}

// AllRows returns all students ordered by mean.
func (s *ReportSection) AllRows() []analyze.Row {
	return s.buildRows()
}

// buildRows converts the ranking into display rows, best mean first.
func (s *ReportSection) buildRows() []analyze.Row {
	ranking := reportutil.GetEntries(s.report, KeyRanking)
	students := reportutil.GetEntries(s.report, KeyStudents)

	byName := make(map[string]map[string]any, len(students))
	for _, entry := range students {
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
