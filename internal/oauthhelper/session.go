package oauthhelper

import (
	"crypto/subtle"
	"sync"

	"github.com/google/uuid"
)

// Session is the single authorization attempt of one helper run. Its state
// token is created once and stops matching after a refresh token has been
// issued through it.
type Session struct {
	mu        sync.Mutex
	state     string
	completed bool
}

// NewSession creates a session with a random state token.
func NewSession() *Session {
	return &Session{state: uuid.NewString()}
}

// State returns the token embedded in the authorization URL.
func (s *Session) State() string {
	return s.state
}

// Matches reports whether state is the session's token and the session has
// not completed yet.
func (s *Session) Matches(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.completed && subtle.ConstantTimeCompare([]byte(state), []byte(s.state)) == 1
}

// Complete marks the session used. Later callbacks no longer match.
func (s *Session) Complete() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.completed = true
}
