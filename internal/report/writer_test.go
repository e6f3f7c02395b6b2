package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nao1215/favbooks/internal/model"
)

// createTestReport creates a report with the single-visitor sample.
func createTestReport() *model.LibraryReport {
	emma := model.Book{Name: "Emma", Author: "Jane Austen", PublishingYear: 1815}

	report := model.NewLibraryReport("resources/books.json")
	report.GeneratedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	report.Roster = []model.Visitor{
		{Name: "Ann", Surname: "Lee", FavoriteBooks: []model.Book{emma}},
	}
	report.UniqueBooks = []model.Book{emma}
	report.BooksByYear = []model.Book{emma}
	report.Author = "Jane Austen"
	report.AuthorFound = true
	report.MaxFavorites = 1
	return report
}

// createEmptyReport creates the report produced when loading failed.
func createEmptyReport() *model.LibraryReport {
	report := model.NewLibraryReport("missing.json")
	report.GeneratedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	report.LoadError = "open missing.json: no such file or directory"
	report.Author = "Jane Austen"
	return report
}

// TestSimpleWriter tests the plain console report writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes exact sample output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		n, err := w.Write(createTestReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "Visitors and their count:\n" +
			"Ann Lee\n" +
			"Total visitors: 1\n" +
			"\n" +
			"Unique favorite books and their count:\n" +
			"Emma by Jane Austen\n" +
			"Total unique books: 1\n" +
			"\n" +
			"Books sorted by year of publication:\n" +
			"Emma (1815)\n" +
			"\n" +
			"Is there any book by Jane Austen in favorites? true\n" +
			"\n" +
			"Maximum number of favorite books by a visitor: 1\n"

		if got := buf.String(); got != want {
			t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
		}
		if n != len(want) {
			t.Errorf("expected %d bytes written, got %d", len(want), n)
		}
	})

	t.Run("writes empty sections for an empty report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createEmptyReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "Visitors and their count:\n" +
			"Total visitors: 0\n" +
			"\n" +
			"Unique favorite books and their count:\n" +
			"Total unique books: 0\n" +
			"\n" +
			"Books sorted by year of publication:\n" +
			"\n" +
			"Is there any book by Jane Austen in favorites? false\n" +
			"\n" +
			"Maximum number of favorite books by a visitor: 0\n"

		if got := buf.String(); got != want {
			t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("uses configured author in question", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		report := createTestReport()
		report.Author = "Leo Tolstoy"
		report.AuthorFound = false

		if _, err := NewSimpleWriter(&buf).Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Is there any book by Leo Tolstoy in favorites? false\n") {
			t.Errorf("expected author question for Leo Tolstoy, got:\n%s", buf.String())
		}
	})
}

// TestJSONWriter tests the JSON report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes valid JSON with all keys", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var result map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("invalid JSON output: %v", err)
		}

		for _, key := range []string{
			"source", "generated_at", "visitors", "total_visitors",
			"unique_books", "total_unique_books", "books_by_year",
			"author", "author_found", "max_favorites",
		} {
			if _, ok := result[key]; !ok {
				t.Errorf("expected key %q in output", key)
			}
		}
		if _, ok := result["load_error"]; ok {
			t.Error("load_error should be omitted when loading succeeded")
		}
		if result["generated_at"] != "2026-01-02T03:04:05Z" {
			t.Errorf("unexpected generated_at: %v", result["generated_at"])
		}
		if result["author_found"] != true {
			t.Errorf("expected author_found true, got %v", result["author_found"])
		}
		if result["total_visitors"] != float64(1) {
			t.Errorf("expected total_visitors 1, got %v", result["total_visitors"])
		}
	})

	t.Run("uses input key names for nested objects", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var result struct {
			Visitors []struct {
				Name          string `json:"name"`
				Surname       string `json:"surname"`
				FavoriteBooks []struct {
					Name           string `json:"name"`
					Author         string `json:"author"`
					PublishingYear int    `json:"publishingYear"`
				} `json:"favoriteBooks"`
			} `json:"visitors"`
		}
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("invalid JSON output: %v", err)
		}

		if len(result.Visitors) != 1 {
			t.Fatalf("expected 1 visitor, got %d", len(result.Visitors))
		}
		v := result.Visitors[0]
		if v.Name != "Ann" || v.Surname != "Lee" {
			t.Errorf("unexpected visitor: %+v", v)
		}
		if len(v.FavoriteBooks) != 1 || v.FavoriteBooks[0].PublishingYear != 1815 {
			t.Errorf("unexpected favorite books: %+v", v.FavoriteBooks)
		}
	})

	t.Run("includes load error and empty arrays", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createEmptyReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, `"load_error":"open missing.json: no such file or directory"`) {
			t.Errorf("expected load_error in output, got %s", output)
		}
		if !strings.Contains(output, `"visitors":[]`) {
			t.Errorf("expected empty visitors array, got %s", output)
		}
	})

	t.Run("escapes special characters", func(t *testing.T) {
		t.Parallel()

		report := createTestReport()
		report.UniqueBooks = []model.Book{{Name: `The "Quoted" Book`, Author: "A\nB", PublishingYear: 2000}}

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !json.Valid(bytes.TrimSpace(buf.Bytes())) {
			t.Errorf("expected valid JSON, got %s", buf.String())
		}
	})

	t.Run("compact output by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := strings.TrimSuffix(buf.String(), "\n")
		if strings.Contains(output, "\n") {
			t.Error("compact output should be a single line")
		}
	})
}

// TestWithIndent tests the JSON indentation options.
func TestWithIndent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opt    JSONWriterOption
		expect string
	}{
		{name: "pretty print uses two spaces", opt: WithPrettyPrint(), expect: "\n  \"source\""},
		{name: "custom indent uses tabs", opt: WithIndent("", "\t"), expect: "\n\t\"source\""},
		{name: "custom prefix", opt: WithIndent(">", " "), expect: "\n> \"source\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if _, err := NewJSONWriter(&buf, tt.opt).Write(createTestReport()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.expect) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.expect, buf.String())
			}
		})
	}
}

// TestMarshalReport tests the raw JSON encoding.
func TestMarshalReport(t *testing.T) {
	t.Parallel()

	data, err := MarshalReport(createTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte(`{"source":"resources/books.json","generated_at":`)) {
		t.Errorf("unexpected key order: %s", data)
	}
	if !bytes.HasSuffix(data, []byte(`"max_favorites":1}`)) {
		t.Errorf("unexpected tail: %s", data)
	}
}

// TestMarkdownWriter tests the Markdown report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes sections", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		n, err := w.Write(createTestReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n == 0 {
			t.Error("expected non-zero bytes written")
		}

		output := buf.String()
		for _, want := range []string{
			"# Favorite Books Report",
			"## Visitors",
			"## Unique Favorite Books",
			"## Books Sorted by Year of Publication",
			"## Author Check",
			"`resources/books.json`",
			"Emma by Jane Austen",
			"Total visitors: 1",
			"Total unique books: 1",
			"```mermaid",
			"19th century",
			"[!TIP]",
			"*Report generated by favbooks*",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
		if strings.Contains(output, "[!CAUTION]") {
			t.Error("caution alert should only appear on load error")
		}
	})

	t.Run("writes caution and placeholders on load error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createEmptyReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "[!CAUTION]") {
			t.Error("expected caution alert")
		}
		if !strings.Contains(output, "No visitors.") {
			t.Error("expected empty roster placeholder")
		}
		if !strings.Contains(output, "[!NOTE]") {
			t.Error("expected note alert for missing author")
		}
		if strings.Contains(output, "```mermaid") {
			t.Error("pie chart should be skipped without books")
		}
	})
}

// TestCenturyLabel tests ordinal century labels.
func TestCenturyLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		century int
		want    string
	}{
		{century: 0, want: "Unknown"},
		{century: 1, want: "1st century"},
		{century: 2, want: "2nd century"},
		{century: 3, want: "3rd century"},
		{century: 11, want: "11th century"},
		{century: 12, want: "12th century"},
		{century: 19, want: "19th century"},
		{century: 21, want: "21st century"},
		{century: 22, want: "22nd century"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := centuryLabel(tt.century); got != tt.want {
				t.Errorf("centuryLabel(%d) = %q, want %q", tt.century, got, tt.want)
			}
		})
	}
}

// TestXLSXWriter tests the Excel workbook writer.
func TestXLSXWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes one sheet per section", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewXLSXWriter(&buf).Write(createTestReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("expected %d bytes written, got %d", buf.Len(), n)
		}

		f, err := excelize.OpenReader(&buf)
		if err != nil {
			t.Fatalf("failed to open workbook: %v", err)
		}
		defer f.Close()

		want := []string{SheetVisitors, SheetUniqueBooks, SheetBooksByYear, SheetSummary}
		got := f.GetSheetList()
		if len(got) != len(want) {
			t.Fatalf("expected sheets %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("sheet %d: expected %q, got %q", i, want[i], got[i])
			}
		}

		rows, err := f.GetRows(SheetVisitors)
		if err != nil {
			t.Fatalf("failed to read rows: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected header and 1 row, got %d rows", len(rows))
		}
		if rows[1][0] != "Ann" || rows[1][1] != "Lee" || rows[1][2] != "1" {
			t.Errorf("unexpected visitor row: %v", rows[1])
		}

		years, err := f.GetCellValue(SheetBooksByYear, "C2")
		if err != nil {
			t.Fatalf("failed to read cell: %v", err)
		}
		if years != "1815" {
			t.Errorf("expected year 1815, got %q", years)
		}
	})

	t.Run("summary carries load error", func(t *testing.T) {
		t.Parallel()

		f, err := BuildWorkbook(createEmptyReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer f.Close()

		rows, err := f.GetRows(SheetSummary)
		if err != nil {
			t.Fatalf("failed to read rows: %v", err)
		}
		last := rows[len(rows)-1]
		if last[0] != "Load error" {
			t.Errorf("expected load error row last, got %v", last)
		}
	})
}

// failingWriter is a Writer that always fails.
type failingWriter struct{}

func (failingWriter) Write(*model.LibraryReport) (int, error) {
	return 0, errors.New("write failed")
}

// TestMultiWriter tests writing to multiple destinations.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var buf1, buf2 bytes.Buffer
		mw := NewMultiWriter(NewSimpleWriter(&buf1), NewJSONWriter(&buf2))

		n, err := mw.Write(createTestReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf1.Len()+buf2.Len() {
			t.Errorf("expected %d total bytes, got %d", buf1.Len()+buf2.Len(), n)
		}
		if !strings.Contains(buf1.String(), "Ann Lee") {
			t.Error("expected simple output in first buffer")
		}
		if !json.Valid(bytes.TrimSpace(buf2.Bytes())) {
			t.Error("expected JSON output in second buffer")
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		mw := NewMultiWriter(failingWriter{}, NewSimpleWriter(&buf))

		if _, err := mw.Write(createTestReport()); err == nil {
			t.Fatal("expected error")
		}
		if buf.Len() != 0 {
			t.Error("later writers should not run after an error")
		}
	})
}
