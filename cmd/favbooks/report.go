package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/favbooks/internal/analysis"
	"github.com/nao1215/favbooks/internal/config"
	"github.com/nao1215/favbooks/internal/loader"
	"github.com/nao1215/favbooks/internal/log"
	"github.com/nao1215/favbooks/internal/model"
	"github.com/nao1215/favbooks/internal/pipeline"
	"github.com/nao1215/favbooks/internal/report"
)

// runReportCmd executes the root command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cfg, cmd.ErrOrStderr())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runReport(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// newLogger returns the privacy-masking logger in the configured format.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	if cfg.LogFormat == config.LogFormatJSON {
		return log.NewJSONLogger(w, cfg.Verbose)
	}
	return log.NewLogger(w, cfg.Verbose)
}

// buildConfig creates a Config from cobra command flags and the config file.
// Flags set on the command line win over the file, the file wins over defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error

	cfg.InputPath, err = flags.GetString(config.FlagInput)
	if err != nil {
		return nil, err
	}

	cfg.Author, err = flags.GetString(config.FlagAuthor)
	if err != nil {
		return nil, err
	}

	order, err := flags.GetString(config.FlagOrder)
	if err != nil {
		return nil, err
	}
	cfg.UniqueOrder = analysis.Order(order)

	format, err := flags.GetString(config.FlagFormat)
	if err != nil {
		return nil, err
	}
	cfg.Format = config.Format(format)

	cfg.JSONReport, err = flags.GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = flags.GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = flags.GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Tee, err = flags.GetBool("tee")
	if err != nil {
		return nil, err
	}

	logFormat, err := flags.GetString("log-format")
	if err != nil {
		return nil, err
	}
	cfg.LogFormat = config.LogFormat(logFormat)

	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// If the user named a config file it must exist.
	// Otherwise a missing file silently leaves the flag values in place.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg, flags.Changed)
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	return cfg, nil
}

// runReport loads the visitors, runs the report pipeline and writes the result.
// A load failure is reported on errOut and the reports run over an empty list.
func runReport(ctx context.Context, cfg *config.Config, out, errOut io.Writer, logger *slog.Logger) error {
	logger.Debug("starting report",
		"input", cfg.InputPath,
		"author", cfg.Author,
		"format", cfg.OutputFormat(),
		"order", cfg.UniqueOrder,
	)

	libraryReport := model.NewLibraryReport(cfg.InputPath)

	visitors, err := loader.LoadOrEmpty(cfg.InputPath, errOut, logger)
	if err != nil {
		libraryReport.LoadError = err.Error()
	}

	p := pipeline.NewLibraryPipeline(visitors, pipeline.LibraryOptions{
		Author:      cfg.Author,
		UniqueOrder: cfg.UniqueOrder,
		Logger:      logger,
	})
	logger.Debug("running report steps",
		"count", p.StepCount(),
		"steps", p.StepNames(),
	)
	if err := p.Execute(ctx, libraryReport); err != nil {
		return fmt.Errorf("report failed: %w", err)
	}

	return outputReport(cfg, libraryReport, out)
}

// outputReport writes the report in the requested format.
// With cfg.ReportFile set the report goes to that file, otherwise to out.
// cfg.Tee adds the plain report on out next to the file.
func outputReport(cfg *config.Config, libraryReport *model.LibraryReport, out io.Writer) error {
	output := out
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// The report lists visitors by name, so only the owner may read it.
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	writer, err := newReportWriter(cfg.OutputFormat(), output)
	if err != nil {
		return err
	}
	if cfg.Tee && cfg.ReportFile != "" {
		writer = report.NewMultiWriter(writer, report.NewSimpleWriter(out))
	}

	if _, err := writer.Write(libraryReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// newReportWriter returns the writer for a format.
func newReportWriter(format config.Format, output io.Writer) (report.Writer, error) {
	switch format {
	case config.FormatText:
		return report.NewSimpleWriter(output), nil
	case config.FormatMarkdown:
		return report.NewMarkdownWriter(output), nil
	case config.FormatJSON:
		return report.NewJSONWriter(output, report.WithPrettyPrint()), nil
	case config.FormatXLSX:
		return report.NewXLSXWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownFormat, format)
	}
}
