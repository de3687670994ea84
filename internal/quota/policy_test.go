package quota

import "testing"

func TestCheckAndReserveFreshCounter(t *testing.T) {
	allowed, updated := CheckAndReserve(Counter{}, "2026-08-29", 5)
	if !allowed {
		t.Fatalf("fresh counter must allow")
	}
	if updated.Count != 1 || updated.Date != "2026-08-29" {
		t.Fatalf("updated = %+v, want {1 2026-08-29}", updated)
	}
}

func TestCheckAndReserveBoundary(t *testing.T) {
	today := "2026-08-29"

	// Four prior uses today allow a fifth.
	allowed, updated := CheckAndReserve(Counter{Count: 4, Date: today}, today, 5)
	if !allowed || updated.Count != 5 {
		t.Fatalf("fifth use must be allowed, got allowed=%v updated=%+v", allowed, updated)
	}

	// Five prior uses reject a sixth, counter unchanged.
	allowed, updated = CheckAndReserve(Counter{Count: 5, Date: today}, today, 5)
	if allowed {
		t.Fatalf("sixth use must be rejected")
	}
	if updated.Count != 5 || updated.Date != today {
		t.Fatalf("rejection must not change the counter, got %+v", updated)
	}
}

func TestCheckAndReserveDayRollover(t *testing.T) {
	stale := Counter{Count: 5, Date: "2026-08-28"}

	allowed, updated := CheckAndReserve(stale, "2026-08-29", 5)
	if !allowed {
		t.Fatalf("a new day must reset the quota")
	}
	if updated.Count != 1 || updated.Date != "2026-08-29" {
		t.Fatalf("stale counter must restamp to today, got %+v", updated)
	}

	// A prior-day counter behaves exactly like a fresh one.
	freshAllowed, freshUpdated := CheckAndReserve(Counter{Count: 0, Date: "2026-08-29"}, "2026-08-29", 5)
	if allowed != freshAllowed || updated != freshUpdated {
		t.Fatalf("stale and fresh counters must behave identically")
	}
}

func TestCheckAndReserveNeverBackdates(t *testing.T) {
	future := Counter{Count: 2, Date: "2026-09-01"}

	// A counter dated off-today (even in the future) is treated as stale.
	allowed, updated := CheckAndReserve(future, "2026-08-29", 5)
	if !allowed || updated.Date != "2026-08-29" {
		t.Fatalf("off-day counter must restamp to today, got %+v", updated)
	}
}

func TestRemaining(t *testing.T) {
	today := "2026-08-29"
	tests := []struct {
		name    string
		counter Counter
		want    int
	}{
		{name: "fresh", counter: Counter{}, want: 5},
		{name: "partial", counter: Counter{Count: 3, Date: today}, want: 2},
		{name: "exhausted", counter: Counter{Count: 5, Date: today}, want: 0},
		{name: "over", counter: Counter{Count: 9, Date: today}, want: 0},
		{name: "stale", counter: Counter{Count: 9, Date: "2026-08-28"}, want: 5},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Remaining(tt.counter, today, 5); got != tt.want {
				t.Fatalf("Remaining(%+v) = %d, want %d", tt.counter, got, tt.want)
			}
		})
	}
}
