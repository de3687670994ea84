package history

import "context"

// Repo defines persistence operations for the generation log. Entries are
// kept newest-first and capped at MaxEntries per client.
type Repo interface {
	Append(ctx context.Context, clientID string, entry Entry) error
	List(ctx context.Context, clientID string) ([]Entry, error)
	Clear(ctx context.Context, clientID string) error
}
