// Package stats implements grouping and aggregate arithmetic over score
// records: per-group mean/max/min/count, cross-group summaries and mean
// rankings. All operations are pure functions over immutable input.
package stats

import (
	"errors"
	"math"

	"github.com/Sumatoshi-tech/gradefang/pkg/gradebook"
)

// meanPrecision is the scale factor for rounding means to 2 decimal places.
const meanPrecision = 100

// ErrEmptyInput is returned when an aggregation is asked to reduce zero
// records. Mean, max and min are undefined on an empty group, so the
// operation fails explicitly instead of producing garbage.
var ErrEmptyInput = errors.New("no records to aggregate")

// KeyFunc extracts the grouping key from a record.
type KeyFunc func(gradebook.Record) string

// ByStudent groups records by student name.
func ByStudent(r gradebook.Record) string { return r.Name }

// BySubject groups records by subject.
func BySubject(r gradebook.Record) string { return r.Subject }

// AggregateStats summarizes the scores of one group.
type AggregateStats struct {
	// Mean is the arithmetic average rounded to 2 decimal places
	// (round half away from zero).
	Mean float64
	// Max and Min are the extreme scores of the group.
	Max int
	Min int
	// Count is the number of records in the group.
	Count int
	// Values holds the group's scores in original input order.
	Values []int
}

// Grouped maps group keys to their AggregateStats. Keys are enumerable in
// first-seen input order, which makes ranking ties reproducible.
type Grouped struct {
	keys  []string
	stats map[string]AggregateStats
}

// Keys returns the distinct group keys in first-seen input order.
func (g *Grouped) Keys() []string {
	keys := make([]string, len(g.keys))
	copy(keys, g.keys)

	return keys
}

// Get returns the stats for key.
func (g *Grouped) Get(key string) (AggregateStats, bool) {
	stats, ok := g.stats[key]

	return stats, ok
}

// Len returns the number of distinct groups.
func (g *Grouped) Len() int {
	return len(g.keys)
}

// Aggregate groups records by the given key selector and reduces each group
// to its AggregateStats in a single pass. Each group's Values preserve the
// input order of the matching records. Returns ErrEmptyInput for an empty
// record slice; a non-empty input cannot produce empty groups since keys are
// derived from the records themselves.
func Aggregate(records []gradebook.Record, key KeyFunc) (*Grouped, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	grouped := &Grouped{stats: make(map[string]AggregateStats)}
	values := make(map[string][]int)

	for _, record := range records {
		k := key(record)
		if _, seen := values[k]; !seen {
			grouped.keys = append(grouped.keys, k)
		}

		values[k] = append(values[k], record.Score)
	}

	for _, k := range grouped.keys {
		grouped.stats[k] = reduce(values[k])
	}

	return grouped, nil
}

// reduce computes the AggregateStats of a non-empty score slice.
func reduce(scores []int) AggregateStats {
	sum := 0
	maxScore := scores[0]
	minScore := scores[0]

	for _, score := range scores {
		sum += score

		if score > maxScore {
			maxScore = score
		}

		if score < minScore {
			minScore = score
		}
	}

	return AggregateStats{
		Mean:   RoundMean(float64(sum) / float64(len(scores))),
		Max:    maxScore,
		Min:    minScore,
		Count:  len(scores),
		Values: scores,
	}
}

// RoundMean rounds a mean to 2 decimal places, half away from zero.
func RoundMean(v float64) float64 {
	return math.Round(v*meanPrecision) / meanPrecision
}
