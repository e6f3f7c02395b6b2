package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/favbooks/internal/model"
)

// Console headings and labels of the plain report.
const (
	headingRoster       = "Visitors and their count:"
	labelTotalVisitors  = "Total visitors: "
	headingUniqueBooks  = "Unique favorite books and their count:"
	labelTotalUnique    = "Total unique books: "
	headingBooksByYear  = "Books sorted by year of publication:"
	labelMaxFavorites   = "Maximum number of favorite books by a visitor: "
	authorQuestionStart = "Is there any book by "
	authorQuestionEnd   = " in favorites? "
)

// SimpleWriter outputs the plain console report.
// Sections are separated by one blank line and appear in pipeline order.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report as plain text.
func (w *SimpleWriter) Write(report *model.LibraryReport) (int, error) {
	var sb strings.Builder

	w.writeRoster(&sb, report)
	sb.WriteString("\n")
	w.writeUniqueBooks(&sb, report)
	sb.WriteString("\n")
	w.writeBooksByYear(&sb, report)
	sb.WriteString("\n")
	w.writeAuthorCheck(&sb, report)
	sb.WriteString("\n")
	w.writeMaxFavorites(&sb, report)

	return io.WriteString(w.output, sb.String())
}

// writeRoster writes one "name surname" line per visitor and the total.
func (w *SimpleWriter) writeRoster(sb *strings.Builder, report *model.LibraryReport) {
	sb.WriteString(headingRoster + "\n")
	for _, v := range report.Roster {
		sb.WriteString(v.FullName() + "\n")
	}
	sb.WriteString(labelTotalVisitors + strconv.Itoa(report.VisitorCount()) + "\n")
}

// writeUniqueBooks writes one "name by author" line per book and the total.
func (w *SimpleWriter) writeUniqueBooks(sb *strings.Builder, report *model.LibraryReport) {
	sb.WriteString(headingUniqueBooks + "\n")
	for _, b := range report.UniqueBooks {
		sb.WriteString(b.String() + "\n")
	}
	sb.WriteString(labelTotalUnique + strconv.Itoa(report.UniqueBookCount()) + "\n")
}

// writeBooksByYear writes one "name (year)" line per book.
func (w *SimpleWriter) writeBooksByYear(sb *strings.Builder, report *model.LibraryReport) {
	sb.WriteString(headingBooksByYear + "\n")
	for _, b := range report.BooksByYear {
		sb.WriteString(b.TitleWithYear() + "\n")
	}
}

// writeAuthorCheck writes the author question and its true/false answer.
func (w *SimpleWriter) writeAuthorCheck(sb *strings.Builder, report *model.LibraryReport) {
	sb.WriteString(authorQuestion(report.Author) + strconv.FormatBool(report.AuthorFound) + "\n")
}

// writeMaxFavorites writes the maximum favorite count.
func (w *SimpleWriter) writeMaxFavorites(sb *strings.Builder, report *model.LibraryReport) {
	sb.WriteString(labelMaxFavorites + strconv.Itoa(report.MaxFavorites) + "\n")
}

// authorQuestion returns "Is there any book by <author> in favorites? ".
func authorQuestion(author string) string {
	return authorQuestionStart + author + authorQuestionEnd
}
