package quota

import (
	"context"
	"database/sql"
	"errors"
)

// PGStore persists counters in Postgres, one row per client.
type PGStore struct {
	DB *sql.DB
}

// NewPGStore constructs a PGStore.
func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{DB: db}
}

// Load returns the client's stored counter. A missing or unreadable row loads
// as the zero counter; day validation is the caller's concern.
func (s *PGStore) Load(ctx context.Context, clientID string) (Counter, error) {
	const query = `SELECT count, date FROM usage_counters WHERE client_id = $1`

	var counter Counter
	err := s.DB.QueryRowContext(ctx, query, clientID).Scan(&counter.Count, &counter.Date)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Counter{}, nil
	case err != nil:
		return Counter{}, err
	}
	if counter.Count < 0 {
		return Counter{}, nil
	}
	return counter, nil
}

// Save upserts the client's counter.
func (s *PGStore) Save(ctx context.Context, clientID string, counter Counter) error {
	const query = `
INSERT INTO usage_counters (client_id, count, date, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (client_id)
DO UPDATE SET count = EXCLUDED.count, date = EXCLUDED.date, updated_at = NOW()`

	_, err := s.DB.ExecContext(ctx, query, clientID, counter.Count, counter.Date)
	return err
}
