package loader

import "errors"

// ErrLoadFailure is wrapped by every error Load returns.
// The input file was missing, unreadable or not a valid visitor document.
var ErrLoadFailure = errors.New("failed to load visitors")

var (
	// errEmptyDocument is returned for an empty or whitespace-only input.
	errEmptyDocument = errors.New("empty document")

	// errMalformed is returned when the input is not well-formed JSON.
	errMalformed = errors.New("malformed JSON document")

	// errNotArray is returned when the top-level JSON value is not an array.
	errNotArray = errors.New("expected a JSON array of visitors")
)
