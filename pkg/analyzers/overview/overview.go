// Package overview provides a dataset-level summary analyzer: record and
// group counts plus the covered date range.
package overview

import (
	"fmt"

	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gradefang/pkg/gradebook"
	"github.com/Sumatoshi-tech/gradefang/pkg/stats"
)

// AnalyzerID identifies this analyzer in the registry.
const AnalyzerID = "overview"

// Report key names.
const (
	KeyTotalRecords = "total_records"
	KeyStudents     = "students"
	KeySubjects     = "subjects"
	KeyFirstDate    = "first_date"
	KeyLastDate     = "last_date"
	KeyPerSubject   = "records_per_subject"
	KeyMessage      = "message"
)

// Analyzer summarizes dataset shape without scoring anything.
type Analyzer struct{}

// NewAnalyzer creates an overview Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Name returns the analyzer identifier.
func (a *Analyzer) Name() string {
	return AnalyzerID
}

// Description returns a human-readable description.
func (a *Analyzer) Description() string {
	return "Dataset overview: record counts, group counts and date range"
}

// Analyze produces the overview report for a dataset.
func (a *Analyzer) Analyze(dataset *gradebook.Dataset) (analyze.Report, error) {
	if dataset == nil || dataset.Len() == 0 {
		return nil, stats.ErrEmptyInput
	}

	first, last := dataset.DateRange()
	students := dataset.Students()
	subjects := dataset.Subjects()

	perSubject := make([]map[string]any, 0, len(subjects))

	counts := make(map[string]int, len(subjects))
	for _, record := range dataset.Records() {
		counts[record.Subject]++
	}

	for _, subject := range subjects {
		perSubject = append(perSubject, map[string]any{
			"subject": subject,
			"count":   counts[subject],
		})
	}

	message := fmt.Sprintf("%d records from %d students across %d subjects",
		dataset.Len(), len(students), len(subjects))

	return analyze.Report{
		KeyTotalRecords: dataset.Len(),
		KeyStudents:     len(students),
		KeySubjects:     len(subjects),
		KeyFirstDate:    first,
		KeyLastDate:     last,
		KeyPerSubject:   perSubject,
		KeyMessage:      message,
	}, nil
}
