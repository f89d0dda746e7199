package renderer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/terminal"
)

// newOutputRenderer builds a SectionRenderer from the terminal environment,
// letting an explicit noColor flag override color detection.
func newOutputRenderer(verbose, noColor bool) *SectionRenderer {
	env := terminal.NewConfig()

	return NewSectionRenderer(env.Width, verbose, noColor || env.NoColor)
}

// RenderText writes the full text report: the executive summary when more
// than one section is present, then each section in order.
func RenderText(sections []analyze.ReportSection, verbose, noColor bool, writer io.Writer) error {
	r := newOutputRenderer(verbose, noColor)

	if len(sections) >= MinSectionsForSummary {
		fmt.Fprintln(writer, r.RenderSummary(NewExecutiveSummary(sections)))
	}

	for _, section := range sections {
		fmt.Fprintln(writer)
		fmt.Fprintln(writer, r.Render(section))
	}

	return nil
}

// RenderCompact writes one line per section.
func RenderCompact(sections []analyze.ReportSection, noColor bool, writer io.Writer) error {
	r := newOutputRenderer(false, noColor)

	for _, section := range sections {
		fmt.Fprintln(writer, r.RenderCompact(section))
	}

	return nil
}

// RenderJSON writes the indented JSON report.
func RenderJSON(sections []analyze.ReportSection, writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(SectionsToJSON(sections)); err != nil {
		return fmt.Errorf("encode report JSON: %w", err)
	}

	return nil
}
