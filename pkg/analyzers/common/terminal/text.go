package terminal

import (
	"fmt"
	"strings"
)

// Ellipsis marks truncated text, e.g. a long student name in a fixed column.
const Ellipsis = "..."

// EllipsisLen is the length of the ellipsis string.
const EllipsisLen = len(Ellipsis)

// TruncateWithEllipsis shortens s to at most maxWidth characters, replacing
// the tail with "..." when it does not fit. Widths at or below EllipsisLen
// degrade to a run of dots.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if len(s) <= maxWidth {
		return s
	}

	if maxWidth <= EllipsisLen {
		return strings.Repeat(".", maxWidth)
	}

	keep := maxWidth - EllipsisLen

	return s[:keep] + Ellipsis
}

// PadRight left-aligns s in a field of the given width. Strings already at
// or over the width pass through unchanged.
func PadRight(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

// PadLeft right-aligns s in a field of the given width. Strings already at
// or over the width pass through unchanged.
func PadLeft(s string, width int) string {
	return fmt.Sprintf("%*s", width, s)
}
