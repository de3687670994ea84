package quota

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string]Counter
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]Counter)}
}

func (s *memoryStore) Load(ctx context.Context, clientID string) (Counter, error) {
	if err := ctx.Err(); err != nil {
		return Counter{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[clientID], nil
}

func (s *memoryStore) Save(ctx context.Context, clientID string, counter Counter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[clientID] = counter
	return nil
}
