// Package terminal renders the console report primitives: ANSI colors keyed
// to score quality, box-drawing headers, progress and percent bars, and
// point formatting on the 100-point grade scale.
package terminal

import (
	"os"
	"strconv"
)

// Report width bounds in columns.
const (
	DefaultWidth = 80
	MinWidth     = 60
	MaxWidth     = 120
)

// Config holds terminal rendering configuration.
type Config struct {
	Width   int
	NoColor bool
}

// NewConfig builds a Config from the environment, honoring the NO_COLOR
// convention and the COLUMNS variable.
func NewConfig() Config {
	return Config{
		Width:   DetectWidth(),
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// DetectWidth reads the terminal width from COLUMNS, clamped to the report
// width bounds. Missing or unparsable values fall back to DefaultWidth.
func DetectWidth() int {
	width, err := strconv.Atoi(os.Getenv("COLUMNS"))
	if err != nil {
		return DefaultWidth
	}

	if width < MinWidth {
		return MinWidth
	}

	if width > MaxWidth {
		return MaxWidth
	}

	return width
}
