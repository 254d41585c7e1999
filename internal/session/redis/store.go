package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"budget/internal/session"

	"github.com/redis/go-redis/v9"
)

// Store keeps sessions in Redis, deriving each key's TTL from the
// session's absolute expiry so the backend enforces the 12-hour
// lifetime on its own.
type Store struct {
	client redis.UniversalClient
	prefix string
}

var _ session.Store = (*Store)(nil)

func New(client redis.UniversalClient) *Store {
	return &Store{client: client, prefix: "session:"}
}

func (s *Store) Save(ctx context.Context, sess session.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session is expired")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, s.prefix+sess.ID, data, ttl).Err()
}

func (s *Store) Get(ctx context.Context, id string) (session.Session, error) {
	if id == "" {
		return session.Session{}, session.ErrNotFound
	}

	data, err := s.client.Get(ctx, s.prefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.Session{}, session.ErrNotFound
		}
		return session.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess session.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return session.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}

	// Redis TTL normally handles expiry; the entry can still outlive
	// ExpiresAt by a clock skew margin.
	if time.Now().After(sess.ExpiresAt) {
		return session.Session{}, session.ErrNotFound
	}
	return sess, nil
}
