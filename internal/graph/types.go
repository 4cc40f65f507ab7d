package graph

import (
	"bookshelf/internal/core"
	"bookshelf/internal/models"

	"github.com/graph-gophers/graphql-go"
)

type userResolver struct {
	user models.User
}

func (u *userResolver) ID() graphql.ID {
	return graphql.ID(u.user.ID)
}

func (u *userResolver) Username() string {
	return u.user.Username
}

func (u *userResolver) Email() string {
	return u.user.Email
}

func (u *userResolver) BookCount() int32 {
	return int32(u.user.BookCount())
}

func (u *userResolver) SavedBooks() []*savedBookResolver {
	books := make([]*savedBookResolver, 0, len(u.user.SavedBooks))
	for _, b := range u.user.SavedBooks {
		books = append(books, &savedBookResolver{book: b})
	}
	return books
}

type savedBookResolver struct {
	book models.SavedBook
}

func (b *savedBookResolver) BookID() string {
	return b.book.BookID
}

func (b *savedBookResolver) Authors() []string {
	if b.book.Authors == nil {
		return []string{}
	}
	return b.book.Authors
}

func (b *savedBookResolver) Description() *string {
	return optional(b.book.Description)
}

func (b *savedBookResolver) Title() string {
	return b.book.Title
}

func (b *savedBookResolver) Image() *string {
	return optional(b.book.Image)
}

func (b *savedBookResolver) Link() *string {
	return optional(b.book.Link)
}

type authResolver struct {
	result core.AuthResult
}

func (a *authResolver) Token() string {
	return a.result.Token
}

func (a *authResolver) User() *userResolver {
	return &userResolver{user: a.result.User}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
