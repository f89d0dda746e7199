// Package analyze provides the analyzer framework: the Report map, the
// Analyzer contract over a loaded dataset, and the registry used for
// analyzer selection.
package analyze

import "github.com/Sumatoshi-tech/gradefang/pkg/gradebook"

// Report is a map of string keys to arbitrary values representing analysis output.
type Report = map[string]any

// Analyzer is the contract for all dataset analyzers.
type Analyzer interface {
	// Name returns the short analyzer ID (e.g. "students").
	Name() string

	// Description returns a one-line human description.
	Description() string

	// Analyze reduces the dataset to a Report.
	Analyze(dataset *gradebook.Dataset) (Report, error)
}
