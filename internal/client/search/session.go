// Package search holds the state of a book search session: the pending query, the
// latest results and the ids of books saved to the account.
package search

import (
	"context"
	"slices"
	"strings"
	"time"

	"bookshelf/internal/models"
	"bookshelf/pkg/jwt"

	"go.uber.org/zap"
)

type Session struct {
	logs     *zap.SugaredLogger
	searcher Searcher
	api      BookAPI
	local    LocalState
	now      func() time.Time

	input    string
	results  []models.SavedBook
	savedIDs []string
}

func NewSession(logger *zap.SugaredLogger, searcher Searcher, api BookAPI, local LocalState) *Session {
	return &Session{
		logs:     logger,
		searcher: searcher,
		api:      api,
		local:    local,
		now:      time.Now,
		results:  []models.SavedBook{},
		savedIDs: []string{},
	}
}

// Load restores the saved ids persisted by a previous session.
func (s *Session) Load(ctx context.Context) error {
	ids, err := s.local.SavedBookIDs(ctx)
	if err != nil {
		return err
	}
	s.savedIDs = ids
	return nil
}

func (s *Session) SetInput(input string) {
	s.input = input
}

func (s *Session) Input() string {
	return s.input
}

func (s *Session) Results() []models.SavedBook {
	return slices.Clone(s.results)
}

func (s *Session) SavedIDs() []string {
	return slices.Clone(s.savedIDs)
}

func (s *Session) IsSaved(bookID string) bool {
	return slices.Contains(s.savedIDs, bookID)
}

// LoggedIn reports whether a stored token exists and has not expired.
func (s *Session) LoggedIn(ctx context.Context) bool {
	token, err := s.local.Token(ctx)
	if err != nil || token == "" {
		return false
	}

	exp, err := jwt.ExpiresAt(token)
	if err != nil {
		return false
	}
	return exp.After(s.now())
}

// Submit runs the pending search. On success the results are replaced and the input
// cleared; on failure the state is left as it was.
func (s *Session) Submit(ctx context.Context) {
	query := strings.TrimSpace(s.input)
	if query == "" {
		return
	}

	books, err := s.searcher.Search(ctx, query)
	if err != nil {
		s.logs.Errorw("search failed", "query", query, "error", err)
		return
	}

	s.results = books
	s.input = ""
}

// Save stores the result with bookID on the account. It reports whether the book was saved.
func (s *Session) Save(ctx context.Context, bookID string) bool {
	if !s.LoggedIn(ctx) {
		s.logs.Infow("save skipped, not logged in", "book_id", bookID)
		return false
	}

	idx := slices.IndexFunc(s.results, func(b models.SavedBook) bool { return b.BookID == bookID })
	if idx < 0 {
		s.logs.Infow("save skipped, book is not among the results", "book_id", bookID)
		return false
	}

	if _, err := s.api.SaveBook(ctx, s.results[idx]); err != nil {
		s.logs.Errorw("save book failed", "book_id", bookID, "error", err)
		return false
	}

	if !s.IsSaved(bookID) {
		s.savedIDs = append(s.savedIDs, bookID)
	}
	return true
}

// Remove deletes bookID from the account and from the local list right away.
func (s *Session) Remove(ctx context.Context, bookID string) bool {
	if _, err := s.api.RemoveBook(ctx, bookID); err != nil {
		s.logs.Errorw("remove book failed", "book_id", bookID, "error", err)
		return false
	}

	s.savedIDs = slices.DeleteFunc(s.savedIDs, func(id string) bool { return id == bookID })
	if err := s.local.RemoveSavedBookID(ctx, bookID); err != nil {
		s.logs.Errorw("failed to update local saved books", "book_id", bookID, "error", err)
	}
	return true
}

// Close persists the saved ids for the next session.
func (s *Session) Close(ctx context.Context) error {
	return s.local.SetSavedBookIDs(ctx, s.savedIDs)
}
