package quota

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockStore(t *testing.T) (*PGStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGStore{DB: db}, mock
}

func TestPGStoreLoad(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT count, date FROM usage_counters").
		WithArgs("client-1").
		WillReturnRows(sqlmock.NewRows([]string{"count", "date"}).AddRow(3, "2026-08-29"))

	counter, err := store.Load(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if counter.Count != 3 || counter.Date != "2026-08-29" {
		t.Fatalf("counter = %+v", counter)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGStoreLoadMissingRow(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT count, date FROM usage_counters").
		WithArgs("client-1").
		WillReturnRows(sqlmock.NewRows([]string{"count", "date"}))

	counter, err := store.Load(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if counter != (Counter{}) {
		t.Fatalf("missing row must load as zero counter, got %+v", counter)
	}
}

func TestPGStoreLoadNegativeCount(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT count, date FROM usage_counters").
		WithArgs("client-1").
		WillReturnRows(sqlmock.NewRows([]string{"count", "date"}).AddRow(-2, "2026-08-29"))

	counter, err := store.Load(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if counter != (Counter{}) {
		t.Fatalf("corrupt row must load as zero counter, got %+v", counter)
	}
}

func TestPGStoreSaveUpserts(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO usage_counters").
		WithArgs("client-1", 2, "2026-08-29").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Save(context.Background(), "client-1", Counter{Count: 2, Date: "2026-08-29"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
