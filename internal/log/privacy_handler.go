package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// personalKeys contains attribute keys that are always masked.
var personalKeys = map[string]bool{
	"surname":    true,
	"lastname":   true,
	"last_name":  true,
	"visitor":    true,
	"patron":     true,
	"email":      true,
	"e-mail":     true,
	"phone":      true,
	"telephone":  true,
	"address":    true,
	"birth_date": true,
	"birthdate":  true,
}

// personalKeywords mask any key that contains them.
var personalKeywords = []string{
	"surname", "visitor", "patron", "email", "phone", "address",
}

// personalPatterns match values that identify a person regardless of key.
var personalPatterns = []*regexp.Regexp{
	// E-mail addresses
	regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`),

	// Phone numbers with optional country code and separators
	regexp.MustCompile(`^\+?[0-9][0-9 ().-]{6,}[0-9]$`),
}

// MaskValue is the string used to replace personal values.
const MaskValue = "***REDACTED***"

// PrivacyHandler wraps an slog.Handler and masks patron-identifying
// attributes before passing records on.
type PrivacyHandler struct {
	// handler receives the masked records.
	handler slog.Handler
}

// NewPrivacyHandler creates a new PrivacyHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewPrivacyHandler(handler slog.Handler) *PrivacyHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &PrivacyHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrivacyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it to the underlying handler.
func (h *PrivacyHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(h.maskAttr(a))
		return true
	})

	return h.handler.Handle(ctx, masked)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are masked before being added.
func (h *PrivacyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = h.maskAttr(a)
	}
	return &PrivacyHandler{handler: h.handler.WithAttrs(masked)}
}

// WithGroup returns a new handler with the given group name.
func (h *PrivacyHandler) WithGroup(name string) slog.Handler {
	return &PrivacyHandler{handler: h.handler.WithGroup(name)}
}

// maskAttr masks a single attribute, recursing into groups.
// A group keyed with a personal key is masked as a whole.
func (h *PrivacyHandler) maskAttr(a slog.Attr) slog.Attr {
	if isPersonalKey(strings.ToLower(a.Key)) {
		return slog.String(a.Key, MaskValue)
	}

	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		masked := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			masked[i] = h.maskAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(masked...)}
	}

	if a.Value.Kind() == slog.KindString && isPersonalValue(a.Value.String()) {
		return slog.String(a.Key, MaskValue)
	}

	return a
}

// isPersonalKey reports whether a lowercased key names personal data.
func isPersonalKey(key string) bool {
	if personalKeys[key] {
		return true
	}
	for _, keyword := range personalKeywords {
		if strings.Contains(key, keyword) {
			return true
		}
	}
	return false
}

// isPersonalValue reports whether a value looks like contact data.
func isPersonalValue(value string) bool {
	for _, pattern := range personalPatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}

// levelFor returns Debug when verbose, Warn otherwise.
func levelFor(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a text slog.Logger that masks patron data.
// With verbose false only warnings and errors are written.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levelFor(verbose)}
	return slog.New(NewPrivacyHandler(slog.NewTextHandler(w, opts)))
}

// NewJSONLogger creates a JSON slog.Logger that masks patron data.
// Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levelFor(verbose)}
	return slog.New(NewPrivacyHandler(slog.NewJSONHandler(w, opts)))
}
