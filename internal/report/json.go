package report

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/mailru/easyjson/jwriter"

	"github.com/nao1215/favbooks/internal/model"
)

// JSONWriter outputs reports in JSON format.
// The document is assembled field by field with easyjson's jwriter, so the
// key order is fixed and no reflection is involved.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in JSON format followed by a newline.
func (w *JSONWriter) Write(report *model.LibraryReport) (int, error) {
	data, err := MarshalReport(report)
	if err != nil {
		return 0, err
	}

	if w.indent {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, w.indentPrefix, w.indentString); err != nil {
			return 0, err
		}
		data = buf.Bytes()
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// MarshalReport encodes the report as a compact JSON object.
func MarshalReport(report *model.LibraryReport) ([]byte, error) {
	jw := jwriter.Writer{}

	jw.RawString(`{"source":`)
	jw.String(report.Source)
	jw.RawString(`,"generated_at":`)
	jw.String(report.GeneratedAt.Format(time.RFC3339))
	if report.HasLoadError() {
		jw.RawString(`,"load_error":`)
		jw.String(report.LoadError)
	}

	jw.RawString(`,"visitors":`)
	writeVisitors(&jw, report.Roster)
	jw.RawString(`,"total_visitors":`)
	jw.Int(report.VisitorCount())

	jw.RawString(`,"unique_books":`)
	writeBooks(&jw, report.UniqueBooks)
	jw.RawString(`,"total_unique_books":`)
	jw.Int(report.UniqueBookCount())

	jw.RawString(`,"books_by_year":`)
	writeBooks(&jw, report.BooksByYear)

	jw.RawString(`,"author":`)
	jw.String(report.Author)
	jw.RawString(`,"author_found":`)
	jw.Bool(report.AuthorFound)

	jw.RawString(`,"max_favorites":`)
	jw.Int(report.MaxFavorites)
	jw.RawByte('}')

	return jw.BuildBytes()
}

// writeVisitors encodes visitors using the input document's key names.
func writeVisitors(jw *jwriter.Writer, visitors []model.Visitor) {
	jw.RawByte('[')
	for i, v := range visitors {
		if i > 0 {
			jw.RawByte(',')
		}
		jw.RawString(`{"name":`)
		jw.String(v.Name)
		jw.RawString(`,"surname":`)
		jw.String(v.Surname)
		jw.RawString(`,"favoriteBooks":`)
		writeBooks(jw, v.FavoriteBooks)
		jw.RawByte('}')
	}
	jw.RawByte(']')
}

// writeBooks encodes books using the input document's key names.
func writeBooks(jw *jwriter.Writer, books []model.Book) {
	jw.RawByte('[')
	for i, b := range books {
		if i > 0 {
			jw.RawByte(',')
		}
		jw.RawString(`{"name":`)
		jw.String(b.Name)
		jw.RawString(`,"author":`)
		jw.String(b.Author)
		jw.RawString(`,"publishingYear":`)
		jw.Int(b.PublishingYear)
		jw.RawByte('}')
	}
	jw.RawByte(']')
}
