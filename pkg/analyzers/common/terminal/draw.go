package terminal

import (
	"fmt"
	"math"
	"strings"
)

// Box drawing runes: thin rules for in-section separators, a heavy frame for
// section headers.
const (
	BoxHorizontal       = "─"
	BoxHeavyHorizontal  = "━"
	BoxHeavyVertical    = "┃"
	BoxHeavyTopLeft     = "┏"
	BoxHeavyTopRight    = "┓"
	BoxHeavyBottomLeft  = "┗"
	BoxHeavyBottomRight = "┛"
)

// Progress bar runes.
const (
	ProgressFilled = "█"
	ProgressEmpty  = "░"
)

// HeaderPadding is the space between the frame and the header content.
const HeaderPadding = 1

// headerFrameCols counts the non-content columns of a header line: two
// border runes plus the padding on each side.
const headerFrameCols = 2 + HeaderPadding*2

// DrawSeparator draws a thin horizontal rule.
func DrawSeparator(width int) string {
	if width <= 0 {
		return ""
	}

	return strings.Repeat(BoxHorizontal, width)
}

// DrawHeader frames a section title, with optional right-aligned text such
// as the section mean:
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ STUDENTS      Mean: 77.50 pts ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
//
// The frame widens as needed so the content never collides.
func DrawHeader(title, rightText string, width int) string {
	if need := len(title) + len(rightText) + headerFrameCols + 2; width < need {
		width = need
	}

	inner := width - 2

	var content string

	switch {
	case rightText == "":
		content = PadRight(title, inner-HeaderPadding*2)
	default:
		gap := inner - HeaderPadding*2 - len(title) - len(rightText)
		if gap < 1 {
			gap = 1
		}

		content = title + strings.Repeat(" ", gap) + rightText
	}

	pad := strings.Repeat(" ", HeaderPadding)
	rule := strings.Repeat(BoxHeavyHorizontal, inner)

	lines := []string{
		BoxHeavyTopLeft + rule + BoxHeavyTopRight,
		BoxHeavyVertical + pad + content + pad + BoxHeavyVertical,
		BoxHeavyBottomLeft + rule + BoxHeavyBottomRight,
	}

	return strings.Join(lines, "\n")
}

// DrawProgressBar fills width cells proportionally to value, clamped to
// [0, 1]. DrawProgressBar(0.7, 10) yields "███████░░░".
func DrawProgressBar(value float64, width int) string {
	clamped := math.Min(math.Max(value, 0), 1)
	filled := int(clamped * float64(width))

	return strings.Repeat(ProgressFilled, filled) + strings.Repeat(ProgressEmpty, width-filled)
}

// PercentMultiplier converts 0-1 to 0-100.
const PercentMultiplier = 100

// DrawPercentBar renders one distribution category:
// "Good (80-89)    ████████████████░░░░  68%  (17)".
func DrawPercentBar(label string, percent float64, count, labelWidth, barWidth int) string {
	return fmt.Sprintf("%s %s %3d%%  (%d)",
		PadRight(label, labelWidth),
		DrawProgressBar(percent, barWidth),
		int(percent*PercentMultiplier),
		count)
}
