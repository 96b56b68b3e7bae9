// Package session persists the single active user session.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"geotask/internal/logger"
)

// ErrNoSession indicates no valid session is stored. A missing, unreadable or
// corrupt session file all collapse into this error so callers land on the
// logged-out path instead of crashing.
var ErrNoSession = errors.New("not logged in")

// Session is the locally persisted record of the authenticated user.
// Exactly one session is active at a time; Save overwrites any prior value.
type Session struct {
	Email  string `json:"email"`
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// Store reads and writes the session file. It is the only component that
// touches session storage; everything else receives the token explicitly.
type Store struct {
	path string
}

// NewStore creates a store for the session file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save persists the session, overwriting any prior value.
// The file is written with mode 0600.
func (s *Store) Save(sess Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Load returns the current session, or ErrNoSession if none is stored.
// Corrupt JSON and blank tokens degrade to ErrNoSession.
func (s *Store) Load() (Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Session{}, ErrNoSession
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		logger.Warn("session file corrupt, treating as logged out", "path", s.path, "err", err)
		return Session{}, ErrNoSession
	}
	if sess.Token == "" {
		return Session{}, ErrNoSession
	}
	return sess, nil
}

// Clear removes the stored session. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
