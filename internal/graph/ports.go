package graph

import (
	"context"

	"bookshelf/internal/core"
	"bookshelf/internal/models"
)

// Service is the set of operations the schema resolves against.
type Service interface {
	Me(ctx context.Context) (models.User, error)
	AddUser(ctx context.Context, msg core.SignupMessage) (core.AuthResult, error)
	Login(ctx context.Context, msg core.LoginMessage) (core.AuthResult, error)
	SaveBook(ctx context.Context, book models.SavedBook) (models.User, error)
	RemoveBook(ctx context.Context, bookID string) (models.User, error)
}
