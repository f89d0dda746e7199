// Package reportutil provides type-safe accessors for analyze.Report fields.
package reportutil

import (
	"fmt"

	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"
)

// PercentMultiplier converts a 0-1 fraction to a percentage.
const PercentMultiplier = 100

// number coerces the numeric types analyzers store in reports. Reports that
// round-trip through JSON carry float64 where the analyzer wrote int.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// typed returns m[key] when it holds a T, and T's zero value otherwise.
func typed[T any](m map[string]any, key string) T {
	var zero T

	v, ok := m[key]
	if !ok {
		return zero
	}

	t, ok := v.(T)
	if !ok {
		return zero
	}

	return t
}

// GetFloat64 returns a float64 value from the report, coercing ints.
func GetFloat64(report analyze.Report, key string) float64 {
	f, _ := number(report[key])

	return f
}

// GetInt returns an int value from the report, coercing float64s.
func GetInt(report analyze.Report, key string) int {
	f, _ := number(report[key])

	return int(f)
}

// GetString returns a string value from the report.
func GetString(report analyze.Report, key string) string {
	return typed[string](report, key)
}

// GetEntries returns the []map[string]any collection for the given key.
func GetEntries(report analyze.Report, key string) []map[string]any {
	return typed[[]map[string]any](report, key)
}

// MapString returns a string from a report entry.
func MapString(m map[string]any, key string) string {
	return typed[string](m, key)
}

// MapInt returns an int from a report entry, coercing float64s.
func MapInt(m map[string]any, key string) int {
	f, _ := number(m[key])

	return int(f)
}

// MapFloat64 returns a float64 from a report entry, coercing ints.
func MapFloat64(m map[string]any, key string) float64 {
	f, _ := number(m[key])

	return f
}

// MapIntSlice returns a []int from a report entry.
func MapIntSlice(m map[string]any, key string) []int {
	return typed[[]int](m, key)
}

// FormatInt formats an int as a string.
func FormatInt(v int) string {
	return fmt.Sprintf("%d", v) //nolint:perfsprint // fmt.Sprintf is clearer than string concat.
}

// FormatFloat formats a float64 with 2 decimal places, matching the mean
// rounding policy.
func FormatFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatPercent formats a float64 (0-1) as a percentage string.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*PercentMultiplier)
}

// Pct calculates the fraction count/total, or 0 for an empty total.
func Pct(count, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(count) / float64(total)
}
