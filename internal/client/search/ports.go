package search

import (
	"context"

	"bookshelf/internal/models"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Searcher . Searcher
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.SavedBook, error)
}

//counterfeiter:generate -o fake -fake-name BookAPI . BookAPI
type BookAPI interface {
	SaveBook(ctx context.Context, book models.SavedBook) (models.User, error)
	RemoveBook(ctx context.Context, bookID string) (models.User, error)
}

//counterfeiter:generate -o fake -fake-name LocalState . LocalState
type LocalState interface {
	Token(ctx context.Context) (string, error)
	SavedBookIDs(ctx context.Context) ([]string, error)
	SetSavedBookIDs(ctx context.Context, ids []string) error
	RemoveSavedBookID(ctx context.Context, bookID string) error
}
