package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/favbooks/internal/analysis"
	"github.com/nao1215/favbooks/internal/model"
)

// Step names, in the order NewLibraryPipeline runs them.
const (
	StepRoster       = "roster"
	StepUniqueBooks  = "unique_books"
	StepBooksByYear  = "books_by_year"
	StepAuthorCheck  = "author_check"
	StepMaxFavorites = "max_favorites"
)

// RosterStep lists the visitors and their count.
type RosterStep struct {
	visitors model.Visitors
}

// NewRosterStep creates a roster step over visitors.
func NewRosterStep(visitors model.Visitors) *RosterStep {
	return &RosterStep{visitors: visitors}
}

// Name returns the step name.
func (s *RosterStep) Name() string {
	return StepRoster
}

// Do stores the roster in the report.
func (s *RosterStep) Do(_ context.Context, report *model.LibraryReport) error {
	report.Roster = analysis.Roster(s.visitors)
	return nil
}

// UniqueBooksStep reduces every favorite list to the distinct books.
type UniqueBooksStep struct {
	visitors model.Visitors
	order    analysis.Order
}

// NewUniqueBooksStep creates a unique-books step with the given order.
func NewUniqueBooksStep(visitors model.Visitors, order analysis.Order) *UniqueBooksStep {
	return &UniqueBooksStep{visitors: visitors, order: order}
}

// Name returns the step name.
func (s *UniqueBooksStep) Name() string {
	return StepUniqueBooks
}

// Do stores the distinct books in the report.
func (s *UniqueBooksStep) Do(_ context.Context, report *model.LibraryReport) error {
	report.UniqueBooks = analysis.UniqueBooks(s.visitors, s.order)
	return nil
}

// BooksByYearStep sorts the distinct books by publication year.
type BooksByYearStep struct {
	visitors model.Visitors
}

// NewBooksByYearStep creates a sorted-by-year step.
func NewBooksByYearStep(visitors model.Visitors) *BooksByYearStep {
	return &BooksByYearStep{visitors: visitors}
}

// Name returns the step name.
func (s *BooksByYearStep) Name() string {
	return StepBooksByYear
}

// Do stores the sorted books in the report.
func (s *BooksByYearStep) Do(_ context.Context, report *model.LibraryReport) error {
	report.BooksByYear = analysis.BooksByYear(s.visitors)
	return nil
}

// AuthorCheckStep tests whether any favorite book is by one author.
type AuthorCheckStep struct {
	visitors model.Visitors
	author   string
}

// NewAuthorCheckStep creates an author presence step.
func NewAuthorCheckStep(visitors model.Visitors, author string) *AuthorCheckStep {
	return &AuthorCheckStep{visitors: visitors, author: author}
}

// Name returns the step name.
func (s *AuthorCheckStep) Name() string {
	return StepAuthorCheck
}

// Do stores the author and the check result in the report.
func (s *AuthorCheckStep) Do(_ context.Context, report *model.LibraryReport) error {
	report.Author = s.author
	report.AuthorFound = analysis.HasAuthor(s.visitors, s.author)
	return nil
}

// MaxFavoritesStep finds the largest favorite list.
type MaxFavoritesStep struct {
	visitors model.Visitors
}

// NewMaxFavoritesStep creates a max-favorites step.
func NewMaxFavoritesStep(visitors model.Visitors) *MaxFavoritesStep {
	return &MaxFavoritesStep{visitors: visitors}
}

// Name returns the step name.
func (s *MaxFavoritesStep) Name() string {
	return StepMaxFavorites
}

// Do stores the maximum favorite count in the report.
func (s *MaxFavoritesStep) Do(_ context.Context, report *model.LibraryReport) error {
	report.MaxFavorites = analysis.MaxFavorites(s.visitors)
	return nil
}

// LibraryOptions configures NewLibraryPipeline.
type LibraryOptions struct {
	// Author is looked up by the author check. Empty means analysis.DefaultAuthor.
	Author string

	// UniqueOrder orders the unique-books section. Empty means analysis.OrderTitle.
	UniqueOrder analysis.Order

	// Logger receives step logs. Nil means slog.Default().
	Logger *slog.Logger
}

// NewLibraryPipeline builds the five report steps in their fixed order:
// roster, unique books, books by year, author check, max favorites.
func NewLibraryPipeline(visitors model.Visitors, opts LibraryOptions) *Pipeline {
	author := opts.Author
	if author == "" {
		author = analysis.DefaultAuthor
	}
	order := opts.UniqueOrder
	if order == "" {
		order = analysis.OrderTitle
	}

	var pipelineOpts []Option
	if opts.Logger != nil {
		pipelineOpts = append(pipelineOpts, WithLogger(opts.Logger))
	}

	p := New(pipelineOpts...)
	p.AddSteps(
		NewRosterStep(visitors),
		NewUniqueBooksStep(visitors, order),
		NewBooksByYearStep(visitors),
		NewAuthorCheckStep(visitors, author),
		NewMaxFavoritesStep(visitors),
	)
	return p
}
