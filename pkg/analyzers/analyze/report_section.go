package analyze

import "github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/terminal"

// Metric represents a key-value metric for display.
type Metric struct {
	Label string // Display label (e.g., "Class Average").
	Value string // Pre-formatted value (e.g., "85.00").
}

// DistributionItem represents a category in a distribution chart.
type DistributionItem struct {
	Label   string  // Category label (e.g., "Excellent (90+)").
	Percent float64 // Percentage as 0-1.
	Count   int     // Absolute count.
}

// Severity constants for Row classification.
const (
	SeverityGood = "good"
	SeverityFair = "fair"
	SeverityPoor = "poor"
	SeverityInfo = "info"
)

// Row represents one entity line in a section (a student or a subject).
type Row struct {
	Name     string // Entity name (e.g., student name).
	Detail   string // Supplementary text (e.g., "max 90 min 80 tests 2").
	Value    string // Headline value (e.g., "85.00 pts").
	Severity string // "good", "fair", "poor", or "info".
	Values   []int  // Recorded scores in input order.
}

// SeverityForScore maps a 0-1 score fraction to a severity bucket using the
// same thresholds the terminal colorizer uses.
func SeverityForScore(score float64) string {
	switch {
	case score >= terminal.ScoreThresholdGood:
		return SeverityGood
	case score >= terminal.ScoreThresholdFair:
		return SeverityFair
	default:
		return SeverityPoor
	}
}

// ScoreInfoOnly indicates a section has no score (info only).
const ScoreInfoOnly = -1.0

// ScoreLabelInfo is the label shown for info-only sections.
const ScoreLabelInfo = "Info"

// ReportSection provides a standardized structure for analyzer reports.
// Analyzers implement this to enable unified rendering.
type ReportSection interface {
	// SectionTitle returns the display title (e.g., "STUDENTS").
	SectionTitle() string

	// Score returns the section's mean as a 0-1 fraction of the full
	// point scale, or ScoreInfoOnly for info-only sections.
	Score() float64

	// ScoreLabel returns the formatted score (e.g., "85.00 pts" or "Info").
	ScoreLabel() string

	// StatusMessage returns a summary message.
	StatusMessage() string

	// KeyMetrics returns ordered key metrics for display.
	KeyMetrics() []Metric

	// Distribution returns distribution data for bar charts.
	Distribution() []DistributionItem

	// TopRows returns the top N entity rows to highlight.
	TopRows(n int) []Row

	// AllRows returns all entity rows for verbose mode.
	AllRows() []Row
}

// ReportSectionProvider can create a ReportSection from report data.
type ReportSectionProvider interface {
	CreateReportSection(report Report) ReportSection
}

// BaseReportSection provides default implementations for ReportSection.
// Analyzers embed this and override specific methods.
type BaseReportSection struct {
	Title      string
	Message    string
	ScoreValue float64
}

// SectionTitle returns the display title.
func (b *BaseReportSection) SectionTitle() string {
	return b.Title
}

// Score returns the score value.
func (b *BaseReportSection) Score() float64 {
	return b.ScoreValue
}

// ScoreLabel returns the formatted point score or "Info" for info-only sections.
func (b *BaseReportSection) ScoreLabel() string {
	if b.ScoreValue < 0 {
		return ScoreLabelInfo
	}

	return terminal.FormatPoints(b.ScoreValue * terminal.PointsMax)
}

// StatusMessage returns the summary message.
func (b *BaseReportSection) StatusMessage() string {
	return b.Message
}

// KeyMetrics returns nil by default. Override to provide metrics.
func (b *BaseReportSection) KeyMetrics() []Metric {
	return nil
}

// Distribution returns nil by default. Override to provide distribution data.
func (b *BaseReportSection) Distribution() []DistributionItem {
	return nil
}

// TopRows returns nil by default. Override to provide top rows.
func (b *BaseReportSection) TopRows(_ int) []Row {
	return nil
}

// AllRows returns nil by default. Override to provide all rows.
func (b *BaseReportSection) AllRows() []Row {
	return nil
}
