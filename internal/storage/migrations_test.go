package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
	assert.Equal(t, ExpectedSchemaVersion, migrations[len(migrations)-1].Version)

	t.Run("is idempotent", func(t *testing.T) {
		require.NoError(t, store.Migrate(ctx))
		version, err := store.SchemaVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, ExpectedSchemaVersion, version)
	})

	t.Run("creates every table", func(t *testing.T) {
		tables := []string{
			"weddings", "events", "guests", "guest_events", "items", "item_events",
			"vendors", "budget_categories", "payments", "invoices",
			"bar_orders", "bar_order_items", "bank_transactions",
		}
		for _, table := range tables {
			var count int
			err := store.db.QueryRowContext(ctx, `
				SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?
			`, table).Scan(&count)
			require.NoError(t, err)
			assert.Equal(t, 1, count, table)
		}
	})
}

func TestMigrationsAreOrdered(t *testing.T) {
	for i, m := range migrations {
		assert.Equal(t, i+1, m.Version, m.Description)
		assert.NotEmpty(t, m.Description)
		assert.NotNil(t, m.Up)
	}
}
