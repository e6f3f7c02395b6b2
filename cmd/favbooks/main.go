// Package main provides the entry point for the favbooks CLI.
//
// favbooks reads a library's visitor list, where every visitor names their
// favorite books, and prints a report: the visitors, the distinct favorite
// books, those books ordered by year of publication, whether an author is
// among the favorites, and the longest favorite list.
//
// Usage:
//
//	favbooks
//	favbooks --input visitors.json --author "Leo Tolstoy"
//	favbooks --format xlsx --output report.xlsx
//
// See --help for all available options.
package main

// main is the entry point for favbooks.
func main() {
	Execute()
}
