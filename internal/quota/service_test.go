package quota

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestServiceReserveChargesImmediately(t *testing.T) {
	svc := NewService(2)
	clientID := "client-1"

	counter, err := svc.Reserve(context.Background(), clientID)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if counter.Count != 1 {
		t.Fatalf("count = %d, want 1", counter.Count)
	}

	stored, err := svc.Get(context.Background(), clientID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Count != 1 || stored.Date != Today(time.Now()) {
		t.Fatalf("stored = %+v, want persisted charge stamped today", stored)
	}
}

func TestServiceReserveLimit(t *testing.T) {
	svc := NewService(2)
	clientID := "client-1"

	for i := 0; i < 2; i++ {
		if _, err := svc.Reserve(context.Background(), clientID); err != nil {
			t.Fatalf("reserve %d: %v", i+1, err)
		}
	}

	_, err := svc.Reserve(context.Background(), clientID)
	if !errors.Is(err, ErrLimitReached) {
		t.Fatalf("expected ErrLimitReached, got %v", err)
	}
	stored, _ := svc.Get(context.Background(), clientID)
	if stored.Count != 2 {
		t.Fatalf("rejected reserve must not persist, got %d", stored.Count)
	}
}

func TestServiceIsolatesClients(t *testing.T) {
	svc := NewService(1)

	if _, err := svc.Reserve(context.Background(), "client-a"); err != nil {
		t.Fatalf("reserve a: %v", err)
	}
	if _, err := svc.Reserve(context.Background(), "client-b"); err != nil {
		t.Fatalf("client-b must have its own quota: %v", err)
	}
}

func TestServiceDefaultsLimit(t *testing.T) {
	svc := NewService(0)
	if svc.Limit() != DefaultDailyLimit {
		t.Fatalf("limit = %d, want %d", svc.Limit(), DefaultDailyLimit)
	}
}
