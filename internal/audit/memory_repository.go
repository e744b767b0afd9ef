package audit

import (
	"context"
	"sync"
)

const memoryCapacity = 1000

type memoryRepository struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryRepository keeps the most recent entries in memory. Used in
// development and tests when no database is configured.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Insert(_ context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	if len(r.entries) > memoryCapacity {
		r.entries = append([]Entry(nil), r.entries[len(r.entries)-memoryCapacity:]...)
	}
	return nil
}

func (r *memoryRepository) Recent(_ context.Context, limit int) ([]Entry, error) {
	limit = ClampLimit(limit)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]Entry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}
