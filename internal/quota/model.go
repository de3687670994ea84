package quota

import "time"

// DateFormat is the calendar-day identifier used by counters (UTC).
const DateFormat = "2006-01-02"

// DefaultDailyLimit matches the bundled free tier of the shared credential.
const DefaultDailyLimit = 5

// Counter tracks shared-credential consumption for a single day. A counter
// whose Date is not today is logically zero regardless of its stored count;
// the reset is lazy and never written back on its own.
type Counter struct {
	Count int    `json:"count"`
	Date  string `json:"date"`
}

// Today returns the current UTC calendar day identifier.
func Today(now time.Time) string {
	return now.UTC().Format(DateFormat)
}
