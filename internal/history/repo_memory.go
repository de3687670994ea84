package history

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo for tests and DB-less deployments.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Entry
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Entry)}
}

// Append prepends the entry and evicts beyond MaxEntries.
func (r *MemoryRepo) Append(ctx context.Context, clientID string, entry Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := append([]Entry{entry}, r.data[clientID]...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	r.data[clientID] = entries
	return nil
}

// List returns the client's entries newest-first.
func (r *MemoryRepo) List(ctx context.Context, clientID string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := r.data[clientID]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// Clear removes all entries for the client.
func (r *MemoryRepo) Clear(ctx context.Context, clientID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, clientID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
