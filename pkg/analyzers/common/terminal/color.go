package terminal

// Color selects one of the ANSI colors used in the report.
type Color int

// Report colors. Green/yellow/red encode score quality, blue marks titles
// and info-only output, gray marks secondary labels.
const (
	ColorNone Color = iota
	ColorGreen
	ColorYellow
	ColorRed
	ColorBlue
	ColorGray
)

const ansiReset = "\033[0m"

// ansiCodes maps each Color to its SGR escape sequence.
var ansiCodes = map[Color]string{
	ColorGreen:  "\033[32m",
	ColorYellow: "\033[33m",
	ColorRed:    "\033[31m",
	ColorBlue:   "\033[34m",
	ColorGray:   "\033[90m",
}

// Score thresholds as fractions of the 100-point scale. A mean of 80 points
// or better renders green, 50-79 yellow, below 50 red.
const (
	ScoreThresholdGood = 0.8
	ScoreThresholdFair = 0.5
)

// Colorize wraps text in the escape codes for color. Unknown colors and
// NoColor configurations leave the text untouched.
func (c Config) Colorize(text string, color Color) string {
	if c.NoColor {
		return text
	}

	code, ok := ansiCodes[color]
	if !ok {
		return text
	}

	return code + text + ansiReset
}

// ColorForScore maps a 0-1 score fraction to its quality color.
func ColorForScore(score float64) Color {
	switch {
	case score >= ScoreThresholdGood:
		return ColorGreen
	case score >= ScoreThresholdFair:
		return ColorYellow
	default:
		return ColorRed
	}
}
