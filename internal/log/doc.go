// Package log provides logging for favbooks built on the standard slog
// package, with patron-identifying values masked before they are written.
//
// Visitor lists name real people. Debug logs may be shared in bug reports,
// so the PrivacyHandler replaces attributes that identify a patron:
//   - attributes keyed surname, visitor, patron, email, phone or address
//   - keys containing one of those words (visitor_name, home_address)
//   - string values that look like an e-mail address or a phone number
//
// First names, book titles, authors and counts pass through unchanged.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("visitor loaded", "name", v.Name, "surname", v.Surname)
//	// surname=***REDACTED***
//
//	slog.SetDefault(logger)
package log
