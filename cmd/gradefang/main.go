// Package main provides the entry point for the gradefang CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/gradefang/cmd/gradefang/commands"
	"github.com/Sumatoshi-tech/gradefang/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gradefang",
		Short: "Gradefang Grade Analysis - Student score analysis tool",
		Long: `Gradefang analyzes student test scores from CSV files.

Commands:
  analyze   Run grade analyzers over a CSV file
  check     Validate a CSV file without analyzing it`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "gradefang %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
