// Package gradebook loads delimited score records and derives dataset-level
// summary data (distinct students, subjects, date range).
package gradebook

// Record is one observation: a student's score for a subject on a date.
// Records are immutable once loaded.
type Record struct {
	// Name identifies the student.
	Name string
	// Date is an opaque, lexically comparable date string (e.g. "2024-01-15").
	Date string
	// Subject is the test category.
	Subject string
	// Score is the achieved point count.
	Score int
}
