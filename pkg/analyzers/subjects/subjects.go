// Package subjects analyzes per-subject score statistics: mean, max, min and
// test count per subject, a cross-subject summary and a ranking by mean.
package subjects

import (
	"fmt"

	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gradefang/pkg/gradebook"
	"github.com/Sumatoshi-tech/gradefang/pkg/stats"
)

// AnalyzerID identifies this analyzer in the registry.
const AnalyzerID = "subjects"

// Report key names.
const (
	KeySubjects     = "subjects"
	KeyRanking      = "ranking"
	KeySubjectCount = "subject_count"
	KeyOverallMean  = "overall_mean"
	KeyOverallMax   = "overall_max"
	KeyOverallMin   = "overall_min"
	KeyMessage      = "message"

	KeyEntryName   = "name"
	KeyEntryMean   = "mean"
	KeyEntryMax    = "max"
	KeyEntryMin    = "min"
	KeyEntryCount  = "count"
	KeyEntryValues = "values"
	KeyEntryRank   = "rank"
)

// Analyzer computes per-subject statistics from a dataset.
type Analyzer struct{}

// NewAnalyzer creates a subjects Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Name returns the analyzer identifier.
func (a *Analyzer) Name() string {
	return AnalyzerID
}

// Description returns a human-readable description.
func (a *Analyzer) Description() string {
	return "Per-subject statistics, cross-subject summary and ranking by mean"
}

// Analyze groups records by subject and produces the subjects report.
func (a *Analyzer) Analyze(dataset *gradebook.Dataset) (analyze.Report, error) {
	if dataset == nil {
		return nil, stats.ErrEmptyInput
	}

	grouped, err := stats.Aggregate(dataset.Records(), stats.BySubject)
	if err != nil {
		return nil, fmt.Errorf("aggregate by subject: %w", err)
	}

	summary, err := stats.Summarize(grouped)
	if err != nil {
		return nil, fmt.Errorf("summarize subjects: %w", err)
	}

	ranking := stats.Rank(grouped)

	return buildReport(grouped, summary, ranking), nil
}

func buildReport(grouped *stats.Grouped, summary stats.Summary, ranking []stats.Entry) analyze.Report {
	entries := make([]map[string]any, 0, grouped.Len())

	for _, subject := range grouped.Keys() {
		groupStats, _ := grouped.Get(subject)
		entries = append(entries, map[string]any{
			KeyEntryName:   subject,
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

	message := fmt.Sprintf("%d subjects analyzed, overall mean %.2f", summary.Groups, summary.Mean)

	return analyze.Report{
		KeySubjects:     entries,
		KeyRanking:      rankingEntries,
		KeySubjectCount: summary.Groups,
		KeyOverallMean:  summary.Mean,
		KeyOverallMax:   summary.Max,
		KeyOverallMin:   summary.Min,
		KeyMessage:      message,
	}
}

// Ranking recomputes the best-first ordering for a dataset.
func (a *Analyzer) Ranking(dataset *gradebook.Dataset) ([]stats.Entry, error) {
	grouped, err := stats.Aggregate(dataset.Records(), stats.BySubject)
	if err != nil {
		return nil, fmt.Errorf("aggregate by subject: %w", err)
	}

	return stats.Rank(grouped), nil
}
