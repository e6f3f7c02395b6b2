package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/favbooks/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.LibraryReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeRoster(md, report)
	w.writeUniqueBooks(md, report)
	w.writeBooksByYear(md, report)
	w.writeAuthorCheck(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title, the summary table and any load error.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.LibraryReport) {
	md.H1("Favorite Books Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + report.Source + "`"},
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Total visitors", strconv.Itoa(report.VisitorCount())},
			{"Total unique books", strconv.Itoa(report.UniqueBookCount())},
			{"Maximum favorites by a visitor", strconv.Itoa(report.MaxFavorites)},
		},
	})
	md.PlainText("")

	if report.HasLoadError() {
		md.Cautionf("The visitor list could not be loaded, every section is empty: %s", report.LoadError)
		md.PlainText("")
	}
}

// writeRoster writes the visitors table.
func (w *MarkdownWriter) writeRoster(md *markdown.Markdown, report *model.LibraryReport) {
	md.H2("Visitors")
	md.PlainText("")

	if report.VisitorCount() == 0 {
		md.PlainText("No visitors.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Roster))
	for i, v := range report.Roster {
		rows[i] = []string{v.Name, v.Surname, strconv.Itoa(v.FavoriteCount())}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Name", "Surname", "Favorite Books"},
		Rows:   rows,
	})
	md.PlainText("")
	md.PlainTextf("Total visitors: %d", report.VisitorCount())
	md.PlainText("")
}

// writeUniqueBooks writes the unique books list and the century chart.
func (w *MarkdownWriter) writeUniqueBooks(md *markdown.Markdown, report *model.LibraryReport) {
	md.H2("Unique Favorite Books")
	md.PlainText("")

	if report.UniqueBookCount() == 0 {
		md.PlainText("No favorite books.")
		md.PlainText("")
		return
	}

	items := make([]string, len(report.UniqueBooks))
	for i, b := range report.UniqueBooks {
		items[i] = b.String()
	}
	md.BulletList(items...)
	md.PlainText("")
	md.PlainTextf("Total unique books: %d", report.UniqueBookCount())
	md.PlainText("")

	w.writePieChart(md, report)
}

// writePieChart writes a mermaid pie chart of unique books per century.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.LibraryReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Unique Books by Century"),
		piechart.WithShowData(true),
	)

	for _, c := range report.BooksByCentury() {
		chart.LabelAndIntValue(centuryLabel(c.Century), uint64(c.Count)) //nolint:gosec // Count is never negative
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeBooksByYear writes the sorted-by-year table.
func (w *MarkdownWriter) writeBooksByYear(md *markdown.Markdown, report *model.LibraryReport) {
	md.H2("Books Sorted by Year of Publication")
	md.PlainText("")

	if len(report.BooksByYear) == 0 {
		md.PlainText("No favorite books.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.BooksByYear))
	for i, b := range report.BooksByYear {
		rows[i] = []string{strconv.Itoa(b.PublishingYear), b.Name, b.Author}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Year", "Title", "Author"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeAuthorCheck writes the author presence result as an alert.
func (w *MarkdownWriter) writeAuthorCheck(md *markdown.Markdown, report *model.LibraryReport) {
	md.H2("Author Check")
	md.PlainText("")

	if report.AuthorFound {
		md.Tip(fmt.Sprintf("%s is among the favorites: %t", report.Author, report.AuthorFound))
	} else {
		md.Note(fmt.Sprintf("No favorite book by %s: %t", report.Author, report.AuthorFound))
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by favbooks*")
}

// centuryLabel returns "19th century" style labels.
func centuryLabel(century int) string {
	if century <= 0 {
		return "Unknown"
	}

	suffix := "th"
	switch century % 100 {
	case 11, 12, 13:
	default:
		switch century % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(century) + suffix + " century"
}
