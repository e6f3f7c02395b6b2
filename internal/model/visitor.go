package model

// Visitor is a library visitor and the books they marked as favorites.
type Visitor struct {
	// Name is the visitor's given name.
	Name string `json:"name"`

	// Surname is the visitor's family name.
	Surname string `json:"surname"`

	// FavoriteBooks is ordered and may contain duplicates.
	// It may be empty but is never nil once loaded.
	FavoriteBooks []Book `json:"favoriteBooks"`
}

// FullName returns "name surname".
func (v Visitor) FullName() string {
	return v.Name + " " + v.Surname
}

// FavoriteCount returns the number of favorite-book entries.
func (v Visitor) FavoriteCount() int {
	return len(v.FavoriteBooks)
}

// Visitors is the visitor list loaded for one run.
// It is read-only after loading.
type Visitors []Visitor

// Len returns the number of visitors.
func (vs Visitors) Len() int {
	return len(vs)
}

// FavoriteBooks flattens every visitor's favorites into one slice,
// preserving visitor order and then list order.
func (vs Visitors) FavoriteBooks() []Book {
	total := 0
	for _, v := range vs {
		total += len(v.FavoriteBooks)
	}

	books := make([]Book, 0, total)
	for _, v := range vs {
		books = append(books, v.FavoriteBooks...)
	}
	return books
}
