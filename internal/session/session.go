// Package session holds the process-wide API credential.
//
// The token is absent at process start, set once by the login flow, and read
// by every catalog consumer. No component other than login and logout may
// mutate it. Persistence goes through [TokenStore] so an earlier login's
// token is read back on the next invocation.
package session

import (
	"sync"
	"time"
)

// Session is the in-memory token holder. Consumers treat it as read-only
// configuration; the single writer is the login flow.
type Session struct {
	mu    sync.RWMutex
	token string
}

// New creates a Session holding the given token. An empty string means no
// credential is present.
func New(token string) *Session {
	return &Session{token: token}
}

// Token returns the current credential, or "" when absent. Implements
// catalog.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Present reports whether a credential is held.
func (s *Session) Present() bool {
	return s.Token() != ""
}

// Set replaces the held token. Reserved for the login and logout flows.
func (s *Session) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear drops the held token.
func (s *Session) Clear() {
	s.Set("")
}

// StoredToken is a persisted credential with its save time.
type StoredToken struct {
	Token   string
	SavedAt time.Time
}

// TokenStore persists the credential across invocations.
type TokenStore interface {
	Save(token string) error
	Load() (*StoredToken, error)
	Delete() error
}
