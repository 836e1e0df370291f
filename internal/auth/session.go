package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Session is the locally persisted view of a provider session.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Email        string `json:"email"`
	ExpiresAt    int64  `json:"expires_at"`
}

// Expired reports whether the session's token lifetime has passed.
func (s *Session) Expired() bool {
	return s.ExpiresAt != 0 && time.Now().Unix() >= s.ExpiresAt
}

// SessionStore persists one session to disk, surviving across runs until
// sign-out.
type SessionStore struct {
	path string
}

// NewSessionStore creates a session store backed by the given file path.
func NewSessionStore(path string) (*SessionStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	return &SessionStore{path: path}, nil
}

// Load returns the stored session, or nil when none exists or the stored
// one has expired. An expired session is removed.
func (s *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		// A corrupt session file is treated as signed out.
		_ = os.Remove(s.path)
		return nil, nil
	}
	if session.Expired() {
		_ = os.Remove(s.path)
		return nil, nil
	}
	return &session, nil
}

// Save persists the session.
func (s *SessionStore) Save(session *Session) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear removes the stored session. Clearing an absent session is not an
// error.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
