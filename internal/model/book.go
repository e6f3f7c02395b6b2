package model

import "strconv"

// Book is a title with its author and publication year.
//
// Book is a plain value type. Two books are the same book when all three
// fields match, which is exactly what Go's == does for this struct. Book is
// therefore usable as a map key for deduplication.
type Book struct {
	// Name is the book title.
	Name string `json:"name"`

	// Author is the author's display name, compared case-sensitively.
	Author string `json:"author"`

	// PublishingYear is the year of publication.
	PublishingYear int `json:"publishingYear"`
}

// Equal reports whether b and other have the same name, author and year.
func (b Book) Equal(other Book) bool {
	return b == other
}

// String returns the book as "name by author".
func (b Book) String() string {
	return b.Name + " by " + b.Author
}

// TitleWithYear returns the book as "name (year)".
func (b Book) TitleWithYear() string {
	return b.Name + " (" + strconv.Itoa(b.PublishingYear) + ")"
}

// Century returns the 1-based century of the publishing year
// (1815 is in the 19th century, 1900 in the 19th, 1901 in the 20th).
// Years before 1 return 0.
func (b Book) Century() int {
	if b.PublishingYear < 1 {
		return 0
	}
	return (b.PublishingYear + 99) / 100
}
