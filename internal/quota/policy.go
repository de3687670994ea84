package quota

// CheckAndReserve decides whether an attempt on the shared credential may
// proceed. A counter from a prior day counts as fresh. On allow, the returned
// counter is incremented and stamped to today; the caller persists it before
// awaiting the call result, so usage is charged on attempt, not on success.
// On reject the input counter is returned unchanged.
func CheckAndReserve(counter Counter, today string, limit int) (bool, Counter) {
	if counter.Date != today {
		counter = Counter{Count: 0, Date: today}
	}
	if counter.Count >= limit {
		return false, counter
	}
	return true, Counter{Count: counter.Count + 1, Date: today}
}

// Remaining reports how many shared-credential attempts are left today.
func Remaining(counter Counter, today string, limit int) int {
	if counter.Date != today {
		return limit
	}
	left := limit - counter.Count
	if left < 0 {
		return 0
	}
	return left
}
