// Package session holds the server-side record of a user's
// authentication and authorization state, referenced by a cookie-borne
// identifier.
package session

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is the absolute session lifetime. Expiry is fixed at
// issuance, not sliding.
const DefaultTTL = 12 * time.Hour

// Session is keyed by an opaque identifier held by the browser. The
// allow-list is cached here when a categories fetch recomputes
// authorization, so it can be stale relative to spreadsheet edits.
type Session struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	NeedsSignIn bool      `json:"needs_sign_in"`
	AuthUsers   []string  `json:"auth_users,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// New returns a signed-in session with a fresh identifier and an
// absolute expiry ttl from now.
func New(email string, ttl time.Duration) Session {
	return Session{
		ID:        uuid.NewString(),
		Email:     email,
		ExpiresAt: time.Now().Add(ttl),
	}
}

// SignedIn reports whether the session represents a signed-in user.
func (s Session) SignedIn() bool {
	return s.ID != "" && !s.NeedsSignIn
}

// Authorized reports whether the session email is present in the cached
// allow-list.
func (s Session) Authorized() bool {
	return s.SignedIn() && s.Email != "" && slices.Contains(s.AuthUsers, s.Email)
}

// Store persists sessions in any key/value backend with TTL support.
// There is no delete operation: a session goes away only when the entry
// expires or the identifier is no longer presented. Concurrent writes to
// the same identifier are last-write-wins.
type Store interface {
	Get(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, s Session) error
}

type notFoundError struct{}

func (notFoundError) Error() string { return "session not found" }

// ErrNotFound is returned when no live session exists for an identifier.
var ErrNotFound error = notFoundError{}
