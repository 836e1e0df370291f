package gateway

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists the API credential as a single file under the config
// directory, surviving across sessions until explicitly cleared.
type FileStore struct {
	path string
}

// NewFileStore creates a credential store backed by the given file path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("credential store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create credential directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Get returns the stored credential, or "" when none is stored.
func (s *FileStore) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Set persists the credential, replacing any previous one.
func (s *FileStore) Set(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("credential cannot be empty")
	}
	if err := os.WriteFile(s.path, []byte(key+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write credential: %w", err)
	}
	return nil
}

// Clear removes the stored credential. Clearing an absent credential is
// not an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}

// DecliningProvider never supplies a credential. Headless callers use it
// so an escalation without a stored key terminates with the missing-key
// message instead of blocking on input.
type DecliningProvider struct{}

// Solicit declines.
func (DecliningProvider) Solicit(_ context.Context) (string, error) {
	return "", nil
}

// StaticProvider returns a fixed credential. Used by tests and by callers
// that already collected the key (for example from a flag).
type StaticProvider struct {
	Key string
}

// Solicit returns the configured key.
func (p StaticProvider) Solicit(_ context.Context) (string, error) {
	return p.Key, nil
}
