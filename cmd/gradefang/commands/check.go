package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/gradefang/pkg/config"
	"github.com/Sumatoshi-tech/gradefang/pkg/gradebook"
)

// exitCodeValidationFailure is the exit code for validation failures.
const exitCodeValidationFailure = 2

// CheckCommand holds configuration for the check command.
type CheckCommand struct {
	configPath string
	colorize   bool
	nocolor    bool

	// exit is swapped in tests to observe the failure path.
	exit func(code int)
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return newCheckCommandWithExit(os.Exit)
}

func newCheckCommandWithExit(exit func(code int)) *cobra.Command {
	cc := &CheckCommand{exit: exit}

	cmd := &cobra.Command{
		Use:   "check <scores.csv>",
		Short: "Validate a CSV file without analyzing it",
		Long: `Validate that a CSV file parses into score records.

Examples:
  gradefang check scores.csv
  gradefang check --no-color scores.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cc.run(cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&cc.configPath, "config", "", "Config file path")
	cmd.Flags().BoolVar(&cc.colorize, "color", false, "force colored output")
	cmd.Flags().BoolVar(&cc.nocolor, "no-color", false, "disable colored output")

	return cmd
}

func (cc *CheckCommand) run(cmd *cobra.Command, inputPath string) error {
	// Color setup.
	if cc.nocolor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	} else if cc.colorize {
		color.NoColor = false //nolint:reassign // intentional override of library global
	}

	cfg, err := config.LoadConfig(cc.configPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	records, err := gradebook.LoadDelimited(inputPath, rune(cfg.Input.Delimiter[0]))
	if err != nil {
		cc.reportFailure(cmd, inputPath, err)

		return err
	}

	dataset := gradebook.NewDataset(records)
	first, last := dataset.DateRange()

	color.New(color.FgGreen).Fprintf(out, "CSV is valid (%s)\n", inputPath)
	color.New(color.FgGreen).Fprintf(out, "  Records:  %d\n", dataset.Len())
	fmt.Fprintf(out, "  Students: %d\n", len(dataset.Students()))
	fmt.Fprintf(out, "  Subjects: %d\n", len(dataset.Subjects()))

	if dataset.Len() > 0 {
		fmt.Fprintf(out, "  Dates:    %s to %s\n", first, last)
	}

	return nil
}

// reportFailure prints a colored diagnosis and exits with the validation code.
func (cc *CheckCommand) reportFailure(cmd *cobra.Command, inputPath string, err error) {
	out := cmd.ErrOrStderr()

	color.New(color.FgRed).Fprintf(out, "CSV validation failed (%s)\n", inputPath)

	var malformed *gradebook.MalformedRecordError
	if errors.As(err, &malformed) {
		color.New(color.FgYellow).Fprintf(out, "  Line %d", malformed.Line)

		if malformed.Column != "" {
			color.New(color.FgYellow).Fprintf(out, ", column %q", malformed.Column)
		}

		fmt.Fprintf(out, ": %v\n", malformed.Err)
	} else {
		fmt.Fprintf(out, "  %v\n", err)
	}

	cc.exit(exitCodeValidationFailure)
}
