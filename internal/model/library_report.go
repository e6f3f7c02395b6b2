package model

import (
	"sort"
	"time"
)

// LibraryReport holds everything one reporting run produced.
// Pipeline steps fill the sections; report writers render them.
type LibraryReport struct {
	// Source is the path of the input file.
	Source string `json:"source"`

	// GeneratedAt is when the report was created.
	GeneratedAt time.Time `json:"generated_at"`

	// LoadError is the load diagnostic, empty when the input loaded cleanly.
	// When set, every section reflects an empty visitor list.
	LoadError string `json:"load_error,omitempty"`

	// Roster lists the visitors in input order.
	Roster []Visitor `json:"visitors"`

	// UniqueBooks is the set of distinct favorite books.
	UniqueBooks []Book `json:"unique_books"`

	// BooksByYear is the distinct favorite books, ascending by year.
	BooksByYear []Book `json:"books_by_year"`

	// Author is the author looked up by the presence check.
	Author string `json:"author"`

	// AuthorFound is true when any favorite book is by Author.
	AuthorFound bool `json:"author_found"`

	// MaxFavorites is the largest favorite list held by one visitor.
	MaxFavorites int `json:"max_favorites"`

	// PerformedSteps records the pipeline steps that ran, in order.
	PerformedSteps []string `json:"performed_steps,omitempty"`
}

// NewLibraryReport creates an empty report for the given input path.
func NewLibraryReport(source string) *LibraryReport {
	return &LibraryReport{
		Source:         source,
		GeneratedAt:    time.Now(),
		Roster:         []Visitor{},
		UniqueBooks:    []Book{},
		BooksByYear:    []Book{},
		PerformedSteps: []string{},
	}
}

// VisitorCount returns the number of visitors in the roster.
func (r *LibraryReport) VisitorCount() int {
	return len(r.Roster)
}

// UniqueBookCount returns the number of distinct favorite books.
func (r *LibraryReport) UniqueBookCount() int {
	return len(r.UniqueBooks)
}

// FavoriteEntryCount returns the number of (visitor, book) pairs.
func (r *LibraryReport) FavoriteEntryCount() int {
	total := 0
	for _, v := range r.Roster {
		total += len(v.FavoriteBooks)
	}
	return total
}

// HasLoadError reports whether the input failed to load.
func (r *LibraryReport) HasLoadError() bool {
	return r.LoadError != ""
}

// CenturyCount is the number of unique books published in one century.
type CenturyCount struct {
	Century int
	Count   int
}

// BooksByCentury groups the unique books by century, ascending.
func (r *LibraryReport) BooksByCentury() []CenturyCount {
	counts := make(map[int]int)
	for _, b := range r.UniqueBooks {
		counts[b.Century()]++
	}

	result := make([]CenturyCount, 0, len(counts))
	for century, count := range counts {
		result = append(result, CenturyCount{Century: century, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Century < result[j].Century
	})
	return result
}
