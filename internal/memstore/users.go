// Package memstore keeps users in process memory. It backs local development
// (DB_CONNECTION_URL=memory://) and the end-to-end tests.
package memstore

import (
	"context"
	"sync"

	"bookshelf/internal/credentials"
	"bookshelf/internal/errs"
	"bookshelf/internal/models"

	"github.com/google/uuid"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]*models.User),
	}
}

func (s *UserStore) CreateUser(ctx context.Context, newUser models.NewUser) (models.User, error) {
	if err := newUser.Validate(); err != nil {
		return models.User{}, errs.Wrap(errs.KindValidation, err.Error(), err)
	}

	hash, err := credentials.HashPassword(newUser.Password)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == newUser.Username || u.Email == newUser.Email {
			return models.User{}, errs.New(errs.KindValidation, "username or email already in use")
		}
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     newUser.Username,
		Email:        newUser.Email,
		PasswordHash: hash,
		SavedBooks:   []models.SavedBook{},
	}
	s.users[user.ID] = user

	return clone(user), nil
}

func (s *UserStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			user := clone(u)
			return &user, nil
		}
	}
	return nil, nil
}

func (s *UserStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	user := clone(u)
	return &user, nil
}

func (s *UserStore) VerifyPassword(user models.User, candidate string) bool {
	return credentials.ComparePassword(user.PasswordHash, candidate)
}

func (s *UserStore) AddSavedBook(ctx context.Context, userID string, book models.SavedBook) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return models.User{}, errs.New(errs.KindNotFound, "User not found")
	}

	if !u.HasBook(book.BookID) {
		u.SavedBooks = append(u.SavedBooks, book)
	}
	return clone(u), nil
}

func (s *UserStore) RemoveSavedBook(ctx context.Context, userID, bookID string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return models.User{}, errs.New(errs.KindNotFound, "User not found")
	}

	kept := u.SavedBooks[:0]
	for _, b := range u.SavedBooks {
		if b.BookID != bookID {
			kept = append(kept, b)
		}
	}
	u.SavedBooks = kept

	return clone(u), nil
}

// DeleteUser removes a user. It exists for tests that exercise stale tokens.
func (s *UserStore) DeleteUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

func clone(u *models.User) models.User {
	c := *u
	c.SavedBooks = make([]models.SavedBook, len(u.SavedBooks))
	for i, b := range u.SavedBooks {
		b.Authors = append([]string(nil), b.Authors...)
		c.SavedBooks[i] = b
	}
	return c
}
