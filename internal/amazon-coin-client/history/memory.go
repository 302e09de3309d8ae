package history

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type MemoryStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[uuid.UUID]Record{}}
}

func (m *MemoryStore) Put(ctx context.Context, r Record) error {
	if err := validate(r); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.records[r.ID]; ok {
		r.Timestamp = prev.Timestamp
	}
	m.records[r.ID] = r
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return r, nil
}

func (m *MemoryStore) List(ctx context.Context, f Filter) ([]Record, error) {
	m.mu.RLock()
	out := make([]Record, 0, len(m.records))
	for _, r := range m.records {
		if f.match(r) {
			out = append(out, r)
		}
	}
	m.mu.RUnlock()

	newestFirst(out)
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *MemoryStore) Close() error { return nil }
