package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/vowsync/internal/model"
	"github.com/stretchr/testify/require"
)

func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

// createTestWedding seeds a wedding with two events and one vendor.
func createTestWedding(t *testing.T, store *SQLiteStorage) (*model.Wedding, []model.Event, *model.Vendor) {
	t.Helper()
	ctx := context.Background()

	wedding := &model.Wedding{Name: "Sam & Alex", Date: "2026-09-12", Budget: 30000}
	require.NoError(t, store.CreateWedding(ctx, wedding))

	events := []model.Event{
		{WeddingID: wedding.ID, Name: "Ceremony", Date: "2026-09-12", SortOrder: 1},
		{WeddingID: wedding.ID, Name: "Brunch", Date: "2026-09-13", SortOrder: 2},
	}
	for i := range events {
		require.NoError(t, store.SaveEvent(ctx, &events[i]))
	}

	vendor := &model.Vendor{WeddingID: wedding.ID, Name: "Bloom Florals", Category: "flowers"}
	require.NoError(t, store.SaveVendor(ctx, vendor))

	return wedding, events, vendor
}

func TestNewSQLiteStorage(t *testing.T) {
	t.Run("creates missing directories", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "nested", "dir", "vowsync.db")
		store, err := NewSQLiteStorage(dbPath)
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		require.Equal(t, dbPath, store.Path())
	})

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := NewSQLiteStorage("  ")
		require.ErrorIs(t, err, ErrEmptyString)
	})

	t.Run("in-memory database", func(t *testing.T) {
		store, err := NewSQLiteStorage(":memory:")
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		require.NoError(t, store.Migrate(context.Background()))
	})
}

func TestSQLiteStorage_Transaction(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	wedding, _, vendor := createTestWedding(t, store)
	payment := &model.Payment{WeddingID: wedding.ID, VendorID: vendor.ID, Amount: 500, DueDate: "2026-08-01"}
	require.NoError(t, store.SavePayment(ctx, payment))

	t.Run("rollback discards changes", func(t *testing.T) {
		tx, err := store.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.MarkPaymentPaid(ctx, payment.ID, "2026-07-30"))
		require.NoError(t, tx.Rollback())

		pending, err := store.ListPendingPayments(ctx, wedding.ID)
		require.NoError(t, err)
		require.Len(t, pending, 1)
	})

	t.Run("commit persists changes", func(t *testing.T) {
		tx, err := store.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.MarkPaymentPaid(ctx, payment.ID, "2026-07-30"))
		require.NoError(t, tx.Commit())

		pending, err := store.ListPendingPayments(ctx, wedding.ID)
		require.NoError(t, err)
		require.Empty(t, pending)
	})
}
