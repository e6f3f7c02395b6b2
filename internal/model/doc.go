// Package model defines the core data structures used throughout favbooks.
//
// This package contains the following main types:
//   - Book: A title with author and publication year, compared by value
//   - Visitor: A library visitor with an ordered list of favorite books
//   - Visitors: The loaded visitor list with flattening helpers
//   - LibraryReport: The result of one reporting run
//
// Models live in their own package so that the loader, analysis, pipeline and
// report packages can share them without import cycles.
package model
