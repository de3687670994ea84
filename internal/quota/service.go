package quota

import (
	"context"
	"time"
)

type store interface {
	Load(ctx context.Context, clientID string) (Counter, error)
	Save(ctx context.Context, clientID string, counter Counter) error
}

// Service meters shared-credential usage per client. It only governs the
// shared path; a user-supplied credential bypasses it entirely.
type Service struct {
	store store
	limit int
	now   func() time.Time
}

// NewService constructs a Service with an in-memory store.
func NewService(limit int) *Service {
	return newService(newMemoryStore(), limit)
}

// NewPostgresService constructs a Service backed by Postgres.
func NewPostgresService(pgStore *PGStore, limit int) *Service {
	return newService(pgStore, limit)
}

func newService(s store, limit int) *Service {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}
	return &Service{store: s, limit: limit, now: time.Now}
}

// Limit returns the configured daily limit.
func (s *Service) Limit() int {
	return s.limit
}

// Get returns the client's counter validated against today, without writing.
func (s *Service) Get(ctx context.Context, clientID string) (Counter, error) {
	counter, err := s.store.Load(ctx, clientID)
	if err != nil {
		return Counter{}, err
	}
	today := Today(s.now())
	if counter.Date != today {
		counter = Counter{Count: 0, Date: today}
	}
	return counter, nil
}

// Reserve checks the daily quota and, when allowed, persists the incremented
// counter immediately. The charge is not refunded if the subsequent provider
// call fails.
func (s *Service) Reserve(ctx context.Context, clientID string) (Counter, error) {
	counter, err := s.store.Load(ctx, clientID)
	if err != nil {
		return Counter{}, err
	}

	allowed, updated := CheckAndReserve(counter, Today(s.now()), s.limit)
	if !allowed {
		return updated, ErrLimitReached
	}
	if err := s.store.Save(ctx, clientID, updated); err != nil {
		return Counter{}, err
	}
	return updated, nil
}
