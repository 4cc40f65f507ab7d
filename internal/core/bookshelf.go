package core

import (
	"context"
	"errors"
	"fmt"

	"bookshelf/internal/auth"
	"bookshelf/internal/errs"
	"bookshelf/internal/models"
	tokenIssuer "bookshelf/pkg/jwt"

	"go.uber.org/zap"
)

// Client-facing messages. Login deliberately uses one message for every credential failure.
const (
	msgNotLoggedIn       = "Not logged in"
	msgMustBeLoggedIn    = "You need to be logged in!"
	msgUserNotFound      = "User not found"
	msgBadCredentials    = "Incorrect email or password"
	msgSecretUnavailable = "JWT secret key is not configured"
)

var ErrIncorrectCredentials = errs.New(errs.KindAuthentication, msgBadCredentials)

// Bookshelf implements the account and saved-book operations exposed over GraphQL.
type Bookshelf struct {
	logs      *zap.SugaredLogger
	store     UserStore
	jwtIssuer JWTIssuer
}

// NewBookshelf is a constructor function for the Bookshelf type.
func NewBookshelf(logger *zap.SugaredLogger, store UserStore, jwt JWTIssuer) *Bookshelf {
	return &Bookshelf{
		logs:      logger,
		store:     store,
		jwtIssuer: jwt,
	}
}

// Me returns the user behind the request identity.
func (b *Bookshelf) Me(ctx context.Context) (models.User, error) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return models.User{}, errs.New(errs.KindAuthentication, msgNotLoggedIn)
	}

	user, err := b.store.FindUserByID(ctx, identity.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("find user by id: %w", err)
	}
	if user == nil {
		return models.User{}, errs.New(errs.KindNotFound, msgUserNotFound)
	}

	return *user, nil
}

// AddUser registers a new account and signs a token for it.
func (b *Bookshelf) AddUser(ctx context.Context, msg SignupMessage) (AuthResult, error) {
	newUser := models.NewUser{
		Username: msg.Username,
		Email:    msg.Email,
		Password: msg.Password,
	}.Normalize()

	if err := newUser.Validate(); err != nil {
		return AuthResult{}, errs.Wrap(errs.KindValidation, fmt.Sprintf("Error creating user: %s", err.Error()), err)
	}

	user, err := b.store.CreateUser(ctx, newUser)
	if err != nil {
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	b.logs.Infow("user registered", "user_id", user.ID, "username", user.Username)

	token, err := b.signToken(user)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{Token: token, User: user}, nil
}

// Login checks the credentials and signs a token. Unknown email and wrong password are indistinguishable.
func (b *Bookshelf) Login(ctx context.Context, msg LoginMessage) (AuthResult, error) {
	user, err := b.store.FindUserByEmail(ctx, models.NormalizeEmail(msg.Email))
	if err != nil {
		return AuthResult{}, fmt.Errorf("find user by email: %w", err)
	}

	if user == nil {
		b.logs.Infow("login rejected", "reason", "unknown email")
		return AuthResult{}, ErrIncorrectCredentials
	}

	if !b.store.VerifyPassword(*user, msg.Password) {
		b.logs.Infow("login rejected", "reason", "wrong password", "user_id", user.ID)
		return AuthResult{}, ErrIncorrectCredentials
	}

	token, err := b.signToken(*user)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{Token: token, User: *user}, nil
}

// SaveBook adds book to the caller's list. Saving an already saved book changes nothing.
func (b *Bookshelf) SaveBook(ctx context.Context, book models.SavedBook) (models.User, error) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return models.User{}, errs.New(errs.KindAuthentication, msgMustBeLoggedIn)
	}

	if err := book.Validate(); err != nil {
		return models.User{}, errs.Wrap(errs.KindValidation, fmt.Sprintf("Error saving book: %s", err.Error()), err)
	}

	if len(book.Authors) == 0 {
		book.Authors = []string{}
	}

	user, err := b.store.AddSavedBook(ctx, identity.UserID, book)
	if err != nil {
		return models.User{}, fmt.Errorf("add saved book: %w", err)
	}

	b.logs.Infow("book saved", "user_id", identity.UserID, "book_id", book.BookID, "book_count", user.BookCount())
	return user, nil
}

// RemoveBook drops bookID from the caller's list. Removing a book that is not saved is a no-op.
func (b *Bookshelf) RemoveBook(ctx context.Context, bookID string) (models.User, error) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return models.User{}, errs.New(errs.KindAuthentication, msgMustBeLoggedIn)
	}

	if bookID == "" {
		return models.User{}, errs.New(errs.KindValidation, "Error removing book: bookId: cannot be blank.")
	}

	user, err := b.store.RemoveSavedBook(ctx, identity.UserID, bookID)
	if err != nil {
		return models.User{}, fmt.Errorf("remove saved book: %w", err)
	}

	b.logs.Infow("book removed", "user_id", identity.UserID, "book_id", bookID, "book_count", user.BookCount())
	return user, nil
}

func (b *Bookshelf) signToken(user models.User) (string, error) {
	token, err := b.jwtIssuer.Sign(tokenIssuer.TokenInfo{
		Username: user.Username,
		Email:    user.Email,
		UserID:   user.ID,
	})
	if err != nil {
		if errors.Is(err, tokenIssuer.ErrSecretNotConfigured) {
			return "", errs.Wrap(errs.KindConfiguration, msgSecretUnavailable, err)
		}
		return "", fmt.Errorf("signing token: %w", err)
	}
	return token, nil
}
