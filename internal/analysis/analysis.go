package analysis

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nao1215/favbooks/internal/model"
)

// DefaultAuthor is the author looked up by the presence check.
const DefaultAuthor = "Jane Austen"

// Order selects how UniqueBooks orders the distinct books.
type Order string

const (
	// OrderTitle collates by title, then author, then year.
	OrderTitle Order = "title"

	// OrderAppearance keeps the order of first appearance.
	OrderAppearance Order = "appearance"
)

// ParseOrder converts a configuration value into an Order.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case OrderTitle, OrderAppearance:
		return Order(s), nil
	default:
		return "", fmt.Errorf("unknown order %q: use %q or %q", s, OrderTitle, OrderAppearance)
	}
}

// Roster returns the visitors in list order.
func Roster(visitors model.Visitors) []model.Visitor {
	roster := make([]model.Visitor, len(visitors))
	copy(roster, visitors)
	return roster
}

// distinctBooks flattens all favorites and drops repeated books,
// keeping the first appearance of each.
func distinctBooks(visitors model.Visitors) []model.Book {
	all := visitors.FavoriteBooks()
	seen := make(map[model.Book]struct{}, len(all))
	distinct := make([]model.Book, 0, len(all))

	for _, b := range all {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		distinct = append(distinct, b)
	}
	return distinct
}

// UniqueBooks returns the set of distinct favorite books.
// An unknown order falls back to OrderTitle.
func UniqueBooks(visitors model.Visitors, order Order) []model.Book {
	books := distinctBooks(visitors)
	if order == OrderAppearance {
		return books
	}

	c := collate.New(language.English)
	sort.SliceStable(books, func(i, j int) bool {
		if cmp := c.CompareString(books[i].Name, books[j].Name); cmp != 0 {
			return cmp < 0
		}
		if cmp := c.CompareString(books[i].Author, books[j].Author); cmp != 0 {
			return cmp < 0
		}
		return books[i].PublishingYear < books[j].PublishingYear
	})
	return books
}

// BooksByYear returns the distinct favorite books ascending by year.
// Books sharing a year keep their order of first appearance.
func BooksByYear(visitors model.Visitors) []model.Book {
	books := distinctBooks(visitors)
	sort.SliceStable(books, func(i, j int) bool {
		return books[i].PublishingYear < books[j].PublishingYear
	})
	return books
}

// HasAuthor reports whether any favorite book has exactly the given author.
// The comparison is case-sensitive.
func HasAuthor(visitors model.Visitors, author string) bool {
	for _, v := range visitors {
		for _, b := range v.FavoriteBooks {
			if b.Author == author {
				return true
			}
		}
	}
	return false
}

// MaxFavorites returns the largest favorite list held by one visitor,
// or 0 when there are no visitors.
func MaxFavorites(visitors model.Visitors) int {
	maxCount := 0
	for _, v := range visitors {
		maxCount = max(maxCount, len(v.FavoriteBooks))
	}
	return maxCount
}
