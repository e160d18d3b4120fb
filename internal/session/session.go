package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// tokenFile is the well-known file name the bearer token is persisted under
// inside the state directory.
const tokenFile = "token"

var ErrEmptyToken = errors.New("token must not be empty")

// Store holds the authenticated session for this process. The token is
// persisted to disk so a later invocation picks the session back up without
// a new login. Writes go through Login, Logout, and Invalidate only.
type Store struct {
	mu    sync.RWMutex
	path  string
	token string
}

// NewStore creates a session store backed by stateDir, seeding the in-memory
// token from disk. A missing or unreadable token file means no session (fail
// closed), not an error.
func NewStore(stateDir string) (*Store, error) {
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	s := &Store{path: filepath.Join(stateDir, tokenFile)}

	data, err := os.ReadFile(s.path)
	if err == nil {
		s.token = strings.TrimSpace(string(data))
	}

	return s, nil
}

// Token returns the current bearer token, or "" when logged out. Callers
// must read it at call time rather than caching it.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a token is present.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Login persists the token and marks the session authenticated. The file is
// written before the in-memory state flips so a write failure leaves the
// store unchanged.
func (s *Store) Login(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	s.token = token
	return nil
}

// Logout clears the session and removes the persisted token.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// Invalidate tears the session down after the service rejected the token.
// The file removal is best effort: the in-memory state is what gates
// authenticated commands, and a stale file is rejected again on next use.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	_ = os.Remove(s.path)
}
