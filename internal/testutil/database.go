// Package testutil provides test helpers for code that needs a real database.
// It offers an in-memory SQLite store and a fluent seeder for wedding fixtures.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/vowsync/internal/service"
	"github.com/Veraticus/vowsync/internal/storage"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage service.Storage
	t       *testing.T
}

// SetupTestDB creates a new in-memory test database.
// It automatically handles migrations and cleanup.
//
// Example:
//
//	db := testutil.SetupTestDB(t)
//	fx := db.Seed(testutil.NewWeddingSeed("Sam & Alex").WithEvents("Ceremony"))
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage: store,
		t:       t,
	}
}

// Seed writes the seed into the database or fails the test.
func (db *TestDB) Seed(seed *WeddingSeed) *Fixture {
	db.t.Helper()

	fx, err := seed.Build(context.Background(), db.Storage)
	if err != nil {
		db.t.Fatalf("failed to seed wedding: %v", err)
	}
	return fx
}

// WithTransaction executes the given function within a database transaction.
// The transaction is automatically rolled back after the function completes.
func (db *TestDB) WithTransaction(fn func(tx service.Transaction) error) error {
	tx, err := db.Storage.BeginTx(context.Background())
	if err != nil {
		return err
	}

	defer func() { _ = tx.Rollback() }()

	return fn(tx)
}
