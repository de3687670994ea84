package credentials

import (
	"context"
	"database/sql"
	"errors"
)

// PGStore persists user-supplied keys in Postgres, one row per client.
type PGStore struct {
	DB *sql.DB
}

// NewPGStore constructs a PGStore.
func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{DB: db}
}

// Get returns the stored key; a missing row reads as empty.
func (s *PGStore) Get(ctx context.Context, clientID string) (string, error) {
	const query = `SELECT api_key FROM client_credentials WHERE client_id = $1`

	var apiKey string
	err := s.DB.QueryRowContext(ctx, query, clientID).Scan(&apiKey)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", nil
	case err != nil:
		return "", err
	}
	return apiKey, nil
}

// Set upserts the client's key.
func (s *PGStore) Set(ctx context.Context, clientID, apiKey string) error {
	const query = `
INSERT INTO client_credentials (client_id, api_key, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (client_id)
DO UPDATE SET api_key = EXCLUDED.api_key, updated_at = NOW()`

	_, err := s.DB.ExecContext(ctx, query, clientID, apiKey)
	return err
}

// Delete removes the client's key.
func (s *PGStore) Delete(ctx context.Context, clientID string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM client_credentials WHERE client_id = $1`, clientID)
	return err
}
