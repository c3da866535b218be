package store

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu      sync.Mutex
	records []Record
	cursor  uint64
	pot     string
}

func NewMemoryStore() Store {
	return &memoryStore{pot: "0"}
}

func (m *memoryStore) Load(_ context.Context) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := make([]Record, len(m.records))
	copy(records, m.records)
	return &Snapshot{Records: records, Cursor: m.cursor, Pot: m.pot}, nil
}

func (m *memoryStore) Commit(_ context.Context, cp *Checkpoint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !cp.matches(uint64(len(m.records)), m.cursor, m.pot) {
		return ErrStaleState
	}
	for _, rec := range cp.Resolved {
		if rec.Index >= uint64(len(m.records)) {
			return ErrStaleState
		}
	}

	m.records = append(m.records, cp.Appended...)
	for _, rec := range cp.Resolved {
		m.records[rec.Index] = rec
	}
	m.cursor = cp.Cursor
	m.pot = cp.Pot
	return nil
}

func (m *memoryStore) Close() error {
	return nil
}
