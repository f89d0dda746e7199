// Package students analyzes per-student score statistics: mean, max, min and
// test count per student, a class-level summary and a ranking by mean.
package students

import (
	"fmt"

	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gradefang/pkg/gradebook"
	"github.com/Sumatoshi-tech/gradefang/pkg/stats"
)

// AnalyzerID identifies this analyzer in the registry.
const AnalyzerID = "students"

// Report key names.
const (
	KeyStudents     = "students"
	KeyRanking      = "ranking"
	KeyStudentCount = "student_count"
	KeyClassMean    = "class_mean"
	KeyClassMax     = "class_max"
	KeyClassMin     = "class_min"
	KeyMessage      = "message"

	KeyEntryName   = "name"
	KeyEntryMean   = "mean"
	KeyEntryMax    = "max"
	KeyEntryMin    = "min"
	KeyEntryCount  = "count"
	KeyEntryValues = "values"
	KeyEntryRank   = "rank"
)

// Analyzer computes per-student statistics from a dataset.
type Analyzer struct{}

// NewAnalyzer creates a students Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Name returns the analyzer identifier.
func (a *Analyzer) Name() string {
	return AnalyzerID
}

// Description returns a human-readable description.
func (a *Analyzer) Description() string {
	return "Per-student statistics, class summary and ranking by mean"
}

// Analyze groups records by student and produces the students report.
func (a *Analyzer) Analyze(dataset *gradebook.Dataset) (analyze.Report, error) {
	if dataset == nil {
		return nil, stats.ErrEmptyInput
	}

	grouped, err := stats.Aggregate(dataset.Records(), stats.ByStudent)
	if err != nil {
		return nil, fmt.Errorf("aggregate by student: %w", err)
	}

	summary, err := stats.Summarize(grouped)
	if err != nil {
		return nil, fmt.Errorf("summarize students: %w", err)
	}

	ranking := stats.Rank(grouped)

	return buildReport(grouped, summary, ranking), nil
}

func buildReport(grouped *stats.Grouped, summary stats.Summary, ranking []stats.Entry) analyze.Report {
	entries := make([]map[string]any, 0, grouped.Len())

	for _, name := range grouped.Keys() {
		groupStats, _ := grouped.Get(name)
		entries = append(entries, map[string]any{
			KeyEntryName:   name,
			KeyEntryMean:   groupStats.Mean,
			KeyEntryMax:    groupStats.Max,
			KeyEntryMin:    groupStats.Min,
			KeyEntryCount:  groupStats.Count,
			KeyEntryValues: groupStats.Values,
		})
	}

	rankingEntries := make([]map[string]any, 0, len(ranking))
	for i, entry := range ranking {
		rankingEntries = append(rankingEntries, map[string]any{
			KeyEntryRank: i + 1,
			KeyEntryName: entry.Key,
			KeyEntryMean: entry.Stats.Mean,
		})
	}

	message := fmt.Sprintf("%d students analyzed, class mean %.2f", summary.Groups, summary.Mean)

	return analyze.Report{
		KeyStudents:     entries,
		KeyRanking:      rankingEntries,
		KeyStudentCount: summary.Groups,
		KeyClassMean:    summary.Mean,
		KeyClassMax:     summary.Max,
		KeyClassMin:     summary.Min,
		KeyMessage:      message,
	}
}

// Ranking recomputes the best-first ordering for a dataset. Commands use it
// to render the medal table without reparsing the report maps.
func (a *Analyzer) Ranking(dataset *gradebook.Dataset) ([]stats.Entry, error) {
	grouped, err := stats.Aggregate(dataset.Records(), stats.ByStudent)
	if err != nil {
		return nil, fmt.Errorf("aggregate by student: %w", err)
	}

	return stats.Rank(grouped), nil
}
