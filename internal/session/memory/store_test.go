package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"budget/internal/session"
)

func TestStore_SaveAndGet(t *testing.T) {
	s := New()
	sess := session.New("a@x.com", time.Hour)

	if err := s.Save(context.Background(), sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := s.Get(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "a@x.com" || got.NeedsSignIn {
		t.Errorf("unexpected session: %+v", got)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := New()
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
	if _, err := s.Get(context.Background(), ""); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("expected ErrNotFound for empty ID, got: %v", err)
	}
}

func TestStore_SaveRejectsEmptyID(t *testing.T) {
	s := New()
	if err := s.Save(context.Background(), session.Session{ExpiresAt: time.Now().Add(time.Hour)}); err == nil {
		t.Error("expected error for empty session ID")
	}
}

func TestStore_AbsoluteExpiry(t *testing.T) {
	s := New()
	current := time.Now()
	s.now = func() time.Time { return current }

	sess := session.New("a@x.com", 12*time.Hour)
	if err := s.Save(context.Background(), sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Still live just before the absolute deadline.
	current = current.Add(12*time.Hour - time.Minute)
	if _, err := s.Get(context.Background(), sess.ID); err != nil {
		t.Fatalf("expected live session, got: %v", err)
	}

	// Gone once the deadline passes, regardless of activity.
	current = current.Add(2 * time.Minute)
	if _, err := s.Get(context.Background(), sess.ID); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("expected ErrNotFound after expiry, got: %v", err)
	}
}

func TestStore_LastWriteWins(t *testing.T) {
	s := New()
	sess := session.New("a@x.com", time.Hour)
	if err := s.Save(context.Background(), sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sess.AuthUsers = []string{"a@x.com"}
	if err := s.Save(context.Background(), sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Get(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Authorized() {
		t.Errorf("expected authorized session after second write, got: %+v", got)
	}
}
