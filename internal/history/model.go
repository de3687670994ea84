package history

import (
	"encoding/json"
	"time"
)

// MaxEntries bounds the per-client log; the oldest entry is evicted on
// overflow.
const MaxEntries = 50

// Entry records one successful generation. The input brief and the generated
// result are carried as raw JSON so the log stays agnostic of the feature
// payloads it archives. Entries are append-only and only removed by eviction
// or a full-log clear.
type Entry struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
}
