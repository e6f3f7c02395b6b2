package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so callers can use
// errors.Is() while users still get a readable message.
var (
	// ErrEmptyInputPath is returned when the input path is blank.
	ErrEmptyInputPath = errors.New("empty input path: use --input to name the visitor list")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrUnknownFormat is returned when --format names no known writer.
	ErrUnknownFormat = errors.New("unknown report format: use text, markdown, json or xlsx")

	// ErrBinaryFormatNeedsOutput is returned when xlsx is requested without
	// --output. The workbook is not written to a terminal.
	ErrBinaryFormatNeedsOutput = errors.New("xlsx report needs an output file: use --output")

	// ErrUnknownOrder is returned when the unique books order is unknown.
	ErrUnknownOrder = errors.New("unknown unique books order: use title or appearance")

	// ErrTeeNeedsOutput is returned when --tee is given without --output.
	ErrTeeNeedsOutput = errors.New("--tee needs an output file: use --output")

	// ErrUnknownLogFormat is returned when --log-format is not text or json.
	ErrUnknownLogFormat = errors.New("unknown log format: use text or json")
)
