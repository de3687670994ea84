package credentials

import (
	"context"
	"strings"
)

type store interface {
	Get(ctx context.Context, clientID string) (string, error)
	Set(ctx context.Context, clientID, apiKey string) error
	Delete(ctx context.Context, clientID string) error
}

// Service manages the per-client user-supplied API key. A client with a key
// of their own bypasses the shared free tier entirely.
type Service struct {
	store store
}

// NewService constructs a Service with an in-memory store.
func NewService() *Service {
	return &Service{store: newMemoryStore()}
}

// NewPostgresService constructs a Service backed by Postgres.
func NewPostgresService(pgStore *PGStore) *Service {
	return &Service{store: pgStore}
}

// Get returns the client's stored key, or empty if none is configured.
func (s *Service) Get(ctx context.Context, clientID string) (string, error) {
	key, err := s.store.Get(ctx, clientID)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(key), nil
}

// Set stores the client's key. An empty key clears it.
func (s *Service) Set(ctx context.Context, clientID, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return s.store.Delete(ctx, clientID)
	}
	return s.store.Set(ctx, clientID, apiKey)
}

// Clear removes the client's key.
func (s *Service) Clear(ctx context.Context, clientID string) error {
	return s.store.Delete(ctx, clientID)
}

// Mask renders a key safe for display, keeping only the last four characters.
func Mask(apiKey string) string {
	if len(apiKey) <= 4 {
		return strings.Repeat("*", len(apiKey))
	}
	return strings.Repeat("*", len(apiKey)-4) + apiKey[len(apiKey)-4:]
}
