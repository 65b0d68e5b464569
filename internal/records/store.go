package records

import (
	"context"
	"sync"
)

// Store persists the personal record table between process restarts.
type Store interface {
	Load(ctx context.Context) (Table, error)
	Save(ctx context.Context, table Table) error
}

// MemoryStore keeps the table in process memory only.
type MemoryStore struct {
	mu    sync.Mutex
	table Table
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{table: Table{}}
}

func (s *MemoryStore) Load(_ context.Context) (Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, table Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table.Clone()
	return nil
}
