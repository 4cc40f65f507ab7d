// Package localstore keeps the terminal client's state between runs in a sqlite file.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

const (
	savedBooksKey = "saved_books"
	tokenKey      = "id_token"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the state database at path. ":memory:" is accepted.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	// one connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SavedBookIDs returns the locally remembered saved book ids, empty when none were stored.
func (s *Store) SavedBookIDs(ctx context.Context) ([]string, error) {
	raw, err := s.get(ctx, savedBooksKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []string{}, nil
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("decode %s: %w", savedBooksKey, err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// SetSavedBookIDs replaces the stored ids. An empty list removes the key.
func (s *Store) SetSavedBookIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return s.delete(ctx, savedBooksKey)
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode %s: %w", savedBooksKey, err)
	}
	return s.set(ctx, savedBooksKey, raw)
}

// RemoveSavedBookID drops one id from the stored list.
func (s *Store) RemoveSavedBookID(ctx context.Context, bookID string) error {
	ids, err := s.SavedBookIDs(ctx)
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != bookID {
			kept = append(kept, id)
		}
	}
	return s.SetSavedBookIDs(ctx, kept)
}

// Token returns the stored auth token or "" when logged out.
func (s *Store) Token(ctx context.Context) (string, error) {
	raw, err := s.get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, tokenKey, []byte(token))
}

func (s *Store) ClearToken(ctx context.Context) error {
	return s.delete(ctx, tokenKey)
}

func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (s *Store) set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (s *Store) delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}
