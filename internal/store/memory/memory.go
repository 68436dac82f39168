// Package memory holds an in-memory TransactionStore used by tests and by
// the memory data backend.
package memory

import (
	"context"
	"sync"

	"expensetracker/internal/core"
	"expensetracker/internal/store"
)

type Store struct {
	mu    sync.Mutex
	items []core.Transaction
}

func New() *Store {
	return &Store{}
}

func (s *Store) Insert(_ context.Context, t core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, t)
	return nil
}

// FindAll returns a copy so callers can sort without mutating the store.
func (s *Store) FindAll(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.items)
	if n > store.FetchLimit {
		n = store.FetchLimit
	}
	out := make([]core.Transaction, n)
	copy(out, s.items[:n])
	return out, nil
}

func (s *Store) DeleteByID(_ context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
