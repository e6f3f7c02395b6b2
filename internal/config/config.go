package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/nao1215/favbooks/internal/analysis"
)

// Format is a report output format.
type Format string

// Supported report formats.
const (
	// FormatText is the plain console report.
	FormatText Format = "text"

	// FormatMarkdown is GitHub Flavored Markdown with tables and a pie chart.
	FormatMarkdown Format = "markdown"

	// FormatJSON is a single JSON object.
	FormatJSON Format = "json"

	// FormatXLSX is an Excel workbook. It is binary and needs an output file.
	FormatXLSX Format = "xlsx"
)

// LogFormat is the encoding of diagnostic log records on stderr.
type LogFormat string

// Supported log formats.
const (
	// LogFormatText is slog's key=value text output.
	LogFormatText LogFormat = "text"

	// LogFormatJSON is one JSON object per record.
	LogFormatJSON LogFormat = "json"
)

// Default configuration values.
const (
	// DefaultInputPath is the visitor list read when no input is given.
	DefaultInputPath = "resources/books.json"

	// DefaultAuthor is the author the presence check looks for.
	DefaultAuthor = analysis.DefaultAuthor

	// DefaultFormat is the plain console report.
	DefaultFormat = FormatText

	// DefaultUniqueOrder collates unique books by title.
	DefaultUniqueOrder = analysis.OrderTitle

	// DefaultLogFormat is slog text output.
	DefaultLogFormat = LogFormatText

	// AppName is the application name used for XDG directory paths.
	AppName = "favbooks"
)

// Config holds all configuration options for favbooks.
// It is populated from CLI flags and the optional config file, then passed
// through the application rather than kept in global state.
type Config struct {
	// InputPath is the JSON file holding the visitor list.
	InputPath string

	// Author is the author looked up by the presence check.
	// Matching is exact and case-sensitive.
	Author string

	// Format selects the report writer.
	// JSONReport and MarkdownReport take precedence when set.
	Format Format

	// UniqueOrder selects the order of the unique books section.
	UniqueOrder analysis.Order

	// JSONReport is the --json shorthand for FormatJSON.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport is the --markdown shorthand for FormatMarkdown.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// Tee also prints the plain report to stdout when ReportFile is set.
	Tee bool

	// LogFormat selects text or JSON log records.
	LogFormat LogFormat

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the search order of FindConfigFile applies.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
// The defaults reproduce the plain report over resources/books.json.
func NewConfig() *Config {
	return &Config{
		InputPath:   DefaultInputPath,
		Author:      DefaultAuthor,
		Format:      DefaultFormat,
		UniqueOrder: DefaultUniqueOrder,
		LogFormat:   DefaultLogFormat,
	}
}

// OutputFormat returns the format the report is rendered in.
// The --json and --markdown shorthands override Format.
func (c *Config) OutputFormat() Format {
	switch {
	case c.JSONReport:
		return FormatJSON
	case c.MarkdownReport:
		return FormatMarkdown
	default:
		return c.Format
	}
}

// XDGConfigDir returns the XDG config directory for favbooks.
// On Linux: ~/.config/favbooks
// On macOS: ~/Library/Application Support/favbooks
// On Windows: %APPDATA%\favbooks
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the config file path inside XDGConfigDir.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), "config.yaml")
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a sentinel error.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return ErrEmptyInputPath
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	switch c.OutputFormat() {
	case FormatText, FormatMarkdown, FormatJSON:
	case FormatXLSX:
		if c.ReportFile == "" {
			return ErrBinaryFormatNeedsOutput
		}
	default:
		return ErrUnknownFormat
	}

	if _, err := analysis.ParseOrder(string(c.UniqueOrder)); err != nil {
		return ErrUnknownOrder
	}

	if c.Tee && c.ReportFile == "" {
		return ErrTeeNeedsOutput
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return ErrUnknownLogFormat
	}

	return nil
}
