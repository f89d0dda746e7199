package terminal

import "fmt"

// PointsMax is the full point scale for a single test score.
const PointsMax = 100

// FormatPoints formats a point value with 2 decimal places, matching the
// rounding applied to group means.
func FormatPoints(points float64) string {
	return fmt.Sprintf("%.2f pts", points)
}

// FormatPointsBar formats a point value with a visual bar:
// "[████████░░] 85.00 pts". fraction is points relative to PointsMax.
func FormatPointsBar(points float64, barWidth int) string {
	bar := DrawProgressBar(points/PointsMax, barWidth)

	return fmt.Sprintf("[%s] %s", bar, FormatPoints(points))
}
