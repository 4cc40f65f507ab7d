package core

import (
	"context"

	"bookshelf/internal/models"
	tokenIssuer "bookshelf/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserStore . UserStore
type UserStore interface {
	CreateUser(ctx context.Context, newUser models.NewUser) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	VerifyPassword(user models.User, candidate string) bool
	AddSavedBook(ctx context.Context, userID string, book models.SavedBook) (models.User, error)
	RemoveSavedBook(ctx context.Context, userID, bookID string) (models.User, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Sign(data tokenIssuer.TokenInfo) (string, error)
}
