package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookshelf/internal/credentials"
	"bookshelf/internal/db"
	"bookshelf/internal/errs"
	"bookshelf/internal/models"

	"github.com/google/uuid"
)

const msgUserNotFound = "User not found"

// TimeNow stamps the position of newly saved books.
var TimeNow = time.Now

type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) MigrateTables(ctx context.Context) error {
	err := r.db.MigrateTable(ctx, &User{}, &SavedBook{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *UserRepository) CreateUser(ctx context.Context, newUser models.NewUser) (models.User, error) {
	if err := newUser.Validate(); err != nil {
		return models.User{}, errs.Wrap(errs.KindValidation, err.Error(), err)
	}

	hash, err := credentials.HashPassword(newUser.Password)
	if err != nil {
		return models.User{}, err
	}

	user := User{
		ID:           uuid.NewString(),
		Username:     newUser.Username,
		Email:        newUser.Email,
		PasswordHash: hash,
	}

	if err := r.db.Insert(ctx, &user); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return models.User{}, errs.Wrap(errs.KindValidation, "username or email already in use", err)
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}

	return toModel(user, nil), nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findUser(ctx, "email", email)
}

func (r *UserRepository) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.findUser(ctx, "id", id)
}

func (r *UserRepository) VerifyPassword(user models.User, candidate string) bool {
	return credentials.ComparePassword(user.PasswordHash, candidate)
}

func (r *UserRepository) AddSavedBook(ctx context.Context, userID string, book models.SavedBook) (models.User, error) {
	if _, err := r.mustFindUser(ctx, userID); err != nil {
		return models.User{}, err
	}

	authors := book.Authors
	if authors == nil {
		authors = []string{}
	}

	// the (user_id, book_id) unique index turns a repeated save into a no-op
	err := r.db.InsertIgnore(ctx, &SavedBook{
		UserID:      userID,
		BookID:      book.BookID,
		Position:    TimeNow().UnixNano(),
		Title:       book.Title,
		Description: book.Description,
		Authors:     authors,
		Image:       book.Image,
		Link:        book.Link,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("insert saved book: %w", err)
	}

	return r.mustFindUser(ctx, userID)
}

func (r *UserRepository) RemoveSavedBook(ctx context.Context, userID, bookID string) (models.User, error) {
	if _, err := r.mustFindUser(ctx, userID); err != nil {
		return models.User{}, err
	}

	_, err := r.db.DeleteWhere(ctx, &SavedBook{}, map[string]any{
		"user_id": userID,
		"book_id": bookID,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("delete saved book: %w", err)
	}

	return r.mustFindUser(ctx, userID)
}

func (r *UserRepository) mustFindUser(ctx context.Context, id string) (models.User, error) {
	user, err := r.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if user == nil {
		return models.User{}, errs.New(errs.KindNotFound, msgUserNotFound)
	}
	return *user, nil
}

func (r *UserRepository) findUser(ctx context.Context, column string, value string) (*models.User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by %s: %w", column, err)
	}

	var books []SavedBook
	if err := r.db.GetAllBy(ctx, "user_id", user.ID, "position", &books); err != nil {
		return nil, fmt.Errorf("get saved books: %w", err)
	}

	result := toModel(user, books)
	return &result, nil
}

func toModel(user User, books []SavedBook) models.User {
	saved := make([]models.SavedBook, 0, len(books))
	for _, b := range books {
		authors := b.Authors
		if authors == nil {
			authors = []string{}
		}
		saved = append(saved, models.SavedBook{
			BookID:      b.BookID,
			Title:       b.Title,
			Description: b.Description,
			Authors:     authors,
			Image:       b.Image,
			Link:        b.Link,
		})
	}

	return models.User{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		SavedBooks:   saved,
	}
}
