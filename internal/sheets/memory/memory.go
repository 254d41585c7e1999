package memory

import (
	"context"
	"fmt"
	"sync"

	"budget/internal/core"
	ports "budget/internal/sheets"
)

// Store is an in-memory stand-in for the spreadsheet, used as the dev
// backend and as the fake in handler tests. Columns are keyed by the
// bare range string ("G:G").
type Store struct {
	mu        sync.Mutex
	columns   map[string][]string
	appends   []core.BudgetEntry
	readErr   error
	appendErr error
}

var (
	_ ports.ColumnReader  = (*Store)(nil)
	_ ports.EntryAppender = (*Store)(nil)
)

func New() *Store {
	return &Store{columns: make(map[string][]string)}
}

// NewSeeded returns a store with a small demo taxonomy and the given
// emails in the allow-list column.
func NewSeeded(authEmails ...string) *Store {
	s := New()
	s.SetColumn("G:G", "Category", "Food - Lunch", "Food - Dinner", "Home - Rent", "Travel - Gas")
	s.SetColumn("U:U", append([]string{"Authorized Users"}, authEmails...)...)
	return s
}

// SetColumn replaces the cells behind a range.
func (s *Store) SetColumn(rng string, cells ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.columns[rng] = append([]string(nil), cells...)
}

// FailReads makes subsequent ReadColumns calls return err.
func (s *Store) FailReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErr = err
}

// FailAppends makes subsequent Append calls return err.
func (s *Store) FailAppends(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendErr = err
}

func (s *Store) ReadColumns(_ context.Context, ranges []string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}
	out := make([][]string, len(ranges))
	for i, rng := range ranges {
		if cells, ok := s.columns[rng]; ok {
			out[i] = append([]string(nil), cells...)
		}
	}
	return out, nil
}

func (s *Store) Append(_ context.Context, e core.BudgetEntry) (ports.AppendResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appendErr != nil {
		return ports.AppendResult{}, s.appendErr
	}
	s.appends = append(s.appends, e)
	row := len(s.appends)
	return ports.AppendResult{
		UpdatedRange: fmt.Sprintf("mem!A%d:E%d", row, row),
		UpdatedRows:  1,
		UpdatedCells: int64(len(e.Columns())),
	}, nil
}

// Appends returns a copy of every appended entry, in order.
func (s *Store) Appends() []core.BudgetEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.BudgetEntry(nil), s.appends...)
}
