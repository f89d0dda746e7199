// Package commands implements CLI command handlers for gradefang.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/plotpage"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/common/renderer"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/overview"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/students"
	"github.com/Sumatoshi-tech/gradefang/pkg/analyzers/subjects"
	"github.com/Sumatoshi-tech/gradefang/pkg/config"
	"github.com/Sumatoshi-tech/gradefang/pkg/gradebook"
	"github.com/Sumatoshi-tech/gradefang/pkg/stats"
	"github.com/Sumatoshi-tech/gradefang/pkg/observability"
)

// ErrUnsupportedFormat indicates the requested output format is not known.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// plotPageTitle heads the combined plot output.
const plotPageTitle = "Grade Analysis Report"

// Titles of the medal tables appended to text output.
const (
	studentRankingTitle = "Student Ranking"
	subjectRankingTitle = "Subject Ranking"
)

// sectionProvider is implemented by analyzers that render report sections.
type sectionProvider interface {
	CreateReportSection(report analyze.Report) analyze.ReportSection
}

// chartProvider is implemented by analyzers that contribute plot charts.
type chartProvider interface {
	Chart(report analyze.Report) *charts.Bar
}

// AnalyzeCommand holds configuration and dependencies for the analyze command.
type AnalyzeCommand struct {
	format      string
	analyzerIDs []string
	configPath  string
	outputPath  string
	topN        int
	verbose     bool
	noColor     bool
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	ac := &AnalyzeCommand{}

	cmd := &cobra.Command{
		Use:   "analyze <scores.csv>",
		Short: "Run grade analyzers over a CSV file",
		Long: `Analyze student test scores from a CSV file.

The input must have a header row with name, date, subject and score columns.

Examples:
  gradefang analyze scores.csv
  gradefang analyze -a students --format json scores.csv
  gradefang analyze --format plot -o report.html scores.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ac.run(cmd, args[0])
		},
	}

	cmd.Flags().StringSliceVarP(&ac.analyzerIDs, "analyzers", "a", nil,
		"Analyzer IDs or glob patterns (example: students,subjects or s*)")
	cmd.Flags().StringVar(&ac.format, "format", "", "Output format: text, compact, json, plot")
	cmd.Flags().StringVar(&ac.configPath, "config", "", "Config file path")
	cmd.Flags().StringVarP(&ac.outputPath, "output", "o", "", "Write output to file instead of stdout")
	cmd.Flags().IntVar(&ac.topN, "top", 0, "Limit ranking tables to the best N groups (0 = all)")
	cmd.Flags().BoolVarP(&ac.verbose, "verbose", "v", false, "Show all entries per section")
	cmd.Flags().BoolVar(&ac.noColor, "no-color", false, "Disable colored output")

	return cmd
}

// defaultAnalyzers returns all analyzers in display order.
func defaultAnalyzers() []analyze.Analyzer {
	return []analyze.Analyzer{
		overview.NewAnalyzer(),
		students.NewAnalyzer(),
		subjects.NewAnalyzer(),
	}
}

func (ac *AnalyzeCommand) run(cmd *cobra.Command, inputPath string) error {
	cfg, err := config.LoadConfig(ac.configPath)
	if err != nil {
		return err
	}

	ac.applyConfig(cmd, cfg)

	logger := observability.NewLogger(cfg.Logging)
	tracer := observability.Tracer()

	ctx, span := tracer.Start(cmd.Context(), "analyze",
		trace.WithAttributes(attribute.String("input.path", inputPath)))
	defer span.End()

	dataset, err := ac.loadDataset(ctx, logger, tracer, inputPath, cfg)
	if err != nil {
		return err
	}

	analyzers := defaultAnalyzers()

	registry, err := analyze.NewRegistry(analyzers)
	if err != nil {
		return err
	}

	ids, err := registry.SelectedIDs(ac.analyzerIDs)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "analyzers selected", "count", len(ids))

	selected := selectAnalyzers(analyzers, ids)

	reports, err := ac.runAnalyzers(ctx, logger, tracer, selected, dataset)
	if err != nil {
		return err
	}

	writer, closeWriter, err := ac.resolveWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeWriter()

	renderCtx, renderSpan := tracer.Start(ctx, "render",
		trace.WithAttributes(attribute.String("report.format", ac.format)))
	defer renderSpan.End()

	err = ac.render(selected, reports, dataset, writer)
	if err != nil {
		return err
	}

	logger.InfoContext(renderCtx, "report rendered", "format", ac.format)

	return nil
}

// applyConfig fills unset flags from the loaded configuration.
func (ac *AnalyzeCommand) applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if ac.format == "" {
		ac.format = cfg.Report.Format
	}

	if !cmd.Flags().Changed("top") {
		ac.topN = cfg.Report.TopN
	}

	if !cmd.Flags().Changed("verbose") {
		ac.verbose = cfg.Report.Verbose
	}

	if !cmd.Flags().Changed("no-color") {
		ac.noColor = cfg.Report.NoColor
	}
}

func (ac *AnalyzeCommand) loadDataset(
	ctx context.Context,
	logger *slog.Logger,
	tracer trace.Tracer,
	inputPath string,
	cfg *config.Config,
) (*gradebook.Dataset, error) {
	loadCtx, loadSpan := tracer.Start(ctx, "load")
	defer loadSpan.End()

	records, err := gradebook.LoadDelimited(inputPath, rune(cfg.Input.Delimiter[0]))
	if err != nil {
		return nil, err
	}

	dataset := gradebook.NewDataset(records)
	loadSpan.SetAttributes(attribute.Int("input.records", dataset.Len()))
	logger.InfoContext(loadCtx, "dataset loaded",
		"records", dataset.Len(),
		"students", len(dataset.Students()),
		"subjects", len(dataset.Subjects()))

	return dataset, nil
}

// selectAnalyzers filters analyzers to the selected IDs, preserving order.
func selectAnalyzers(analyzers []analyze.Analyzer, ids []string) []analyze.Analyzer {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	selected := make([]analyze.Analyzer, 0, len(ids))

	for _, analyzer := range analyzers {
		if _, ok := wanted[analyzer.Name()]; ok {
			selected = append(selected, analyzer)
		}
	}

	return selected
}

func (ac *AnalyzeCommand) runAnalyzers(
	ctx context.Context,
	logger *slog.Logger,
	tracer trace.Tracer,
	analyzers []analyze.Analyzer,
	dataset *gradebook.Dataset,
) ([]analyze.Report, error) {
	reports := make([]analyze.Report, 0, len(analyzers))

	for _, analyzer := range analyzers {
		spanCtx, span := tracer.Start(ctx, "analyzer."+analyzer.Name())

		report, err := analyzer.Analyze(dataset)
		if err != nil {
			span.End()

			return nil, fmt.Errorf("analyzer %s: %w", analyzer.Name(), err)
		}

		logger.DebugContext(spanCtx, "analyzer finished", "analyzer", analyzer.Name())
		span.End()

		reports = append(reports, report)
	}

	return reports, nil
}

// resolveWriter returns the output writer and a close function.
func (ac *AnalyzeCommand) resolveWriter(stdout io.Writer) (io.Writer, func(), error) {
	if ac.outputPath == "" {
		return stdout, func() {}, nil
	}

	file, err := os.Create(ac.outputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("create output %s: %w", ac.outputPath, err)
	}

	return file, func() { file.Close() }, nil
}

func (ac *AnalyzeCommand) render(
	analyzers []analyze.Analyzer,
	reports []analyze.Report,
	dataset *gradebook.Dataset,
	writer io.Writer,
) error {
	switch ac.format {
	case config.FormatText:
		return ac.renderText(analyzers, reports, dataset, writer)
	case config.FormatCompact:
		return renderer.RenderCompact(buildSections(analyzers, reports), ac.noColor, writer)
	case config.FormatJSON:
		return renderer.RenderJSON(buildSections(analyzers, reports), writer)
	case config.FormatPlot:
		return ac.renderPlot(analyzers, reports, writer)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ac.format)
	}
}

// buildSections converts reports to display sections in analyzer order.
func buildSections(analyzers []analyze.Analyzer, reports []analyze.Report) []analyze.ReportSection {
	sections := make([]analyze.ReportSection, 0, len(analyzers))

	for i, analyzer := range analyzers {
		provider, ok := analyzer.(sectionProvider)
		if !ok {
			continue
		}

		sections = append(sections, provider.CreateReportSection(reports[i]))
	}

	return sections
}

// renderText writes the full text report plus a medal table per ranking
// analyzer. Tables show every group unless --top caps them.
func (ac *AnalyzeCommand) renderText(
	analyzers []analyze.Analyzer,
	reports []analyze.Report,
	dataset *gradebook.Dataset,
	writer io.Writer,
) error {
	err := renderer.RenderText(buildSections(analyzers, reports), ac.verbose, ac.noColor, writer)
	if err != nil {
		return err
	}

	for _, analyzer := range analyzers {
		var (
			title   string
			ranking []stats.Entry
			rankErr error
		)

		switch ranked := analyzer.(type) {
		case *students.Analyzer:
			title = studentRankingTitle
			ranking, rankErr = ranked.Ranking(dataset)
		case *subjects.Analyzer:
			title = subjectRankingTitle
			ranking, rankErr = ranked.Ranking(dataset)
		default:
			continue
		}

		if rankErr != nil {
			return rankErr
		}

		total := len(ranking)
		if ac.topN > 0 && total > ac.topN {
			ranking = ranking[:ac.topN]
		}

		fmt.Fprintln(writer)
		fmt.Fprintln(writer, renderer.RankingTable(title, ranking, total))
	}

	return nil
}

// renderPlot writes a combined HTML page with one chart per plotting analyzer.
func (ac *AnalyzeCommand) renderPlot(
	analyzers []analyze.Analyzer,
	reports []analyze.Report,
	writer io.Writer,
) error {
	page := plotpage.NewPage(plotPageTitle)

	var added int

	for i, analyzer := range analyzers {
		provider, ok := analyzer.(chartProvider)
		if !ok {
			continue
		}

		page.Add(provider.Chart(reports[i]))

		added++
	}

	if added == 0 {
		return fmt.Errorf("%w: no selected analyzer produces charts", ErrUnsupportedFormat)
	}

	return page.Render(writer)
}
