// Package analysis computes the derived views over a visitor list.
//
// Every function is a single pure pass: it borrows the visitor list read-only,
// never fails, and degrades to empty or zero results for an empty list.
// Book identity is full-field equality (name, author and year), so two
// editions of one title with different recorded years count as two books.
package analysis
