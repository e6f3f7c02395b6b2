// Package report renders a model.LibraryReport.
//
// This package contains writers for different output formats:
//   - SimpleWriter: The plain console report, five blank-line separated blocks
//   - MarkdownWriter: GitHub Flavored Markdown with tables and a pie chart
//   - JSONWriter: A JSON document for tool integration
//   - XLSXWriter: A spreadsheet with one sheet per section
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed with MultiWriter.
package report
