package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/kkkk66/GROWit/internal/shared/telemetry"
)

// PGRepo implements Repo using Postgres. Input and result are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

// Append inserts the entry and trims the client's log to MaxEntries in one
// transaction. Only one attempt is ever in flight per client, so the
// read-then-trim needs no stronger isolation.
func (r *PGRepo) Append(ctx context.Context, clientID string, entry Entry) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const insert = `
INSERT INTO history_entries (id, client_id, created_at, input, result)
VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.ExecContext(ctx, insert, entry.ID, clientID, entry.Timestamp, []byte(entry.Input), []byte(entry.Result)); err != nil {
		return err
	}

	const trim = `
DELETE FROM history_entries
WHERE client_id = $1 AND id NOT IN (
	SELECT id FROM history_entries
	WHERE client_id = $1
	ORDER BY created_at DESC
	LIMIT $2
)`
	if _, err := tx.ExecContext(ctx, trim, clientID, MaxEntries); err != nil {
		return err
	}

	return tx.Commit()
}

// List returns the client's entries newest-first. Rows whose stored JSON is no
// longer valid are skipped rather than failing the whole read.
func (r *PGRepo) List(ctx context.Context, clientID string) ([]Entry, error) {
	const query = `
SELECT id, created_at, input, result
FROM history_entries
WHERE client_id = $1
ORDER BY created_at DESC
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, clientID, MaxEntries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			id            string
			createdAt     time.Time
			inputPayload  []byte
			resultPayload []byte
		)
		if err := rows.Scan(&id, &createdAt, &inputPayload, &resultPayload); err != nil {
			return nil, err
		}

		if !json.Valid(inputPayload) || !json.Valid(resultPayload) {
			telemetry.Error("history.row_corrupt", map[string]any{"entry_id": id})
			continue
		}

		entries = append(entries, Entry{
			ID:        id,
			Timestamp: createdAt,
			Input:     json.RawMessage(inputPayload),
			Result:    json.RawMessage(resultPayload),
		})
	}
	return entries, rows.Err()
}

// Clear removes all entries for the client.
func (r *PGRepo) Clear(ctx context.Context, clientID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM history_entries WHERE client_id = $1`, clientID)
	return err
}

var _ Repo = (*PGRepo)(nil)
