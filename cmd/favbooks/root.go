package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/favbooks/internal/config"
)

// NewRootCmd creates the root command for favbooks.
// Running it without a subcommand produces the report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favbooks",
		Short: "Report on the favorite books of library visitors",
		Long: `favbooks reads a JSON list of library visitors and their favorite books
and prints five reports in a fixed order:

  1. the visitors and their count
  2. the unique favorite books and their count
  3. the unique books sorted by year of publication
  4. whether any favorite book is by a given author (default: Jane Austen)
  5. the maximum number of favorite books held by one visitor

A missing or malformed input file is reported on stderr and every report is
produced over an empty visitor list.

Examples:
  # Report on resources/books.json
  favbooks

  # Read another file and look for another author
  favbooks -i visitors.json -a "Leo Tolstoy"

  # Markdown report written to a file
  favbooks --markdown -o report/books.md

  # Excel workbook, with the plain report on the terminal as well
  favbooks -f xlsx -o report/books.xlsx --tee

  # JSON log records for log collectors
  favbooks -v --log-format json

Configuration file (.favbooks) example:
  input: resources/books.json
  author: Jane Austen
  format: text
  uniqueOrder: title`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		RunE:          runReportCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("log-format", string(config.DefaultLogFormat),
		"Log record format on stderr: text or json")

	// Input flags
	cmd.Flags().StringP(config.FlagInput, "i", config.DefaultInputPath,
		"Path of the visitor list JSON file")
	cmd.Flags().StringP(config.FlagAuthor, "a", config.DefaultAuthor,
		"Author to look for among the favorite books")
	cmd.Flags().String(config.FlagOrder, string(config.DefaultUniqueOrder),
		"Order of the unique books: title or appearance")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .favbooks in current or home directory)")

	// Report flags
	cmd.Flags().StringP(config.FlagFormat, "f", string(config.DefaultFormat),
		"Report format: text, markdown, json or xlsx")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("tee", false,
		"With --output, also print the plain report to stdout")

	// Add subcommands
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
