package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"budget/internal/session"
)

// Store is an in-memory session store for development and tests. Expired
// entries are dropped lazily on read; there is no cleanup goroutine.
type Store struct {
	mu    sync.Mutex
	items map[string]session.Session
	now   func() time.Time
}

var _ session.Store = (*Store)(nil)

func New() *Store {
	return &Store{items: make(map[string]session.Session), now: time.Now}
}

func (s *Store) Save(_ context.Context, sess session.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.now().Before(sess.ExpiresAt) {
		return errors.New("session is expired")
	}
	s.items[sess.ID] = sess
	return nil
}

func (s *Store) Get(_ context.Context, id string) (session.Session, error) {
	if id == "" {
		return session.Session{}, session.ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.items[id]
	if !ok {
		return session.Session{}, session.ErrNotFound
	}
	if s.now().After(sess.ExpiresAt) {
		delete(s.items, id)
		return session.Session{}, session.ErrNotFound
	}
	return sess, nil
}
