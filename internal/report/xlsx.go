package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nao1215/favbooks/internal/model"
)

// Sheet names of the XLSX report.
const (
	SheetVisitors    = "Visitors"
	SheetUniqueBooks = "Unique Books"
	SheetBooksByYear = "Books By Year"
	SheetSummary     = "Summary"
)

// XLSXWriter outputs reports as an Excel workbook with one sheet per section.
// The workbook is binary and should be written to a file, not a terminal.
type XLSXWriter struct {
	baseWriter
}

// NewXLSXWriter creates an XLSXWriter that outputs to the given writer.
func NewXLSXWriter(output io.Writer) *XLSXWriter {
	return &XLSXWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report as an XLSX workbook.
func (w *XLSXWriter) Write(report *model.LibraryReport) (int, error) {
	f, err := BuildWorkbook(report)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return 0, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return w.output.Write(buf.Bytes())
}

// BuildWorkbook creates the workbook for a report.
// The caller must Close the returned file.
func BuildWorkbook(report *model.LibraryReport) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetVisitors); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	sheets := []struct {
		name   string
		header []string
		rows   [][]interface{}
		widths []float64
	}{
		{SheetVisitors, []string{"Name", "Surname", "Favorite Books"}, visitorRows(report), []float64{20, 20, 16}},
		{SheetUniqueBooks, []string{"Title", "Author", "Year"}, bookRows(report.UniqueBooks), []float64{40, 25, 10}},
		{SheetBooksByYear, []string{"Title", "Author", "Year"}, bookRows(report.BooksByYear), []float64{40, 25, 10}},
		{SheetSummary, []string{"Metric", "Value"}, summaryRows(report), []float64{45, 40}},
	}

	for _, s := range sheets {
		if s.name != SheetVisitors {
			if _, err := f.NewSheet(s.name); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("failed to create sheet %s: %w", s.name, err)
			}
		}
		if err := writeSheet(f, s.name, s.header, s.rows, headerStyle, s.widths); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return f, nil
}

// writeSheet writes a bold header row followed by the data rows.
func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}, headerStyle int, widths []float64) error {
	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write %s header: %w", sheet, err)
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
			}
		}
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("failed to size %s column %s: %w", sheet, col, err)
		}
	}
	return nil
}

// visitorRows returns one row per visitor.
func visitorRows(report *model.LibraryReport) [][]interface{} {
	rows := make([][]interface{}, len(report.Roster))
	for i, v := range report.Roster {
		rows[i] = []interface{}{v.Name, v.Surname, v.FavoriteCount()}
	}
	return rows
}

// bookRows returns one row per book.
func bookRows(books []model.Book) [][]interface{} {
	rows := make([][]interface{}, len(books))
	for i, b := range books {
		rows[i] = []interface{}{b.Name, b.Author, b.PublishingYear}
	}
	return rows
}

// summaryRows returns the counters and the author check.
func summaryRows(report *model.LibraryReport) [][]interface{} {
	rows := [][]interface{}{
		{"Source", report.Source},
		{"Generated", report.GeneratedAt.Format(time.RFC3339)},
		{"Total visitors", report.VisitorCount()},
		{"Total unique books", report.UniqueBookCount()},
		{authorQuestion(report.Author), strconv.FormatBool(report.AuthorFound)},
		{"Maximum favorites by a visitor", report.MaxFavorites},
	}
	if report.HasLoadError() {
		rows = append(rows, []interface{}{"Load error", report.LoadError})
	}
	return rows
}
