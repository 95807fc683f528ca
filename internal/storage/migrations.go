package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial wedding schema",
		Up: func(tx *sql.Tx) error {
			return execAll(tx,
				`CREATE TABLE IF NOT EXISTS weddings (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					date TEXT,
					currency TEXT NOT NULL DEFAULT 'USD',
					budget REAL NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS events (
					id TEXT PRIMARY KEY,
					wedding_id TEXT NOT NULL REFERENCES weddings(id) ON DELETE CASCADE,
					name TEXT NOT NULL,
					date TEXT,
					venue TEXT,
					sort_order INTEGER NOT NULL DEFAULT 0
				)`,
				`CREATE INDEX idx_events_wedding ON events(wedding_id)`,

				`CREATE TABLE IF NOT EXISTS guests (
					id TEXT PRIMARY KEY,
					wedding_id TEXT NOT NULL REFERENCES weddings(id) ON DELETE CASCADE,
					first_name TEXT NOT NULL DEFAULT '',
					last_name TEXT NOT NULL DEFAULT '',
					email TEXT,
					phone TEXT,
					guest_type TEXT NOT NULL DEFAULT 'adult',
					side TEXT,
					rsvp_status TEXT NOT NULL DEFAULT 'pending',
					dietary TEXT,
					plus_one INTEGER NOT NULL DEFAULT 0,
					table_number INTEGER
				)`,
				`CREATE INDEX idx_guests_wedding ON guests(wedding_id)`,

				`CREATE TABLE IF NOT EXISTS guest_events (
					guest_id TEXT NOT NULL REFERENCES guests(id) ON DELETE CASCADE,
					event_id TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
					attending INTEGER NOT NULL DEFAULT 0,
					shuttle_to INTEGER NOT NULL DEFAULT 0,
					shuttle_from INTEGER NOT NULL DEFAULT 0,
					PRIMARY KEY (guest_id, event_id)
				)`,

				`CREATE TABLE IF NOT EXISTS items (
					id TEXT PRIMARY KEY,
					wedding_id TEXT NOT NULL REFERENCES weddings(id) ON DELETE CASCADE,
					name TEXT NOT NULL,
					category TEXT,
					supplier TEXT,
					notes TEXT,
					unit_cost REAL NOT NULL DEFAULT 0
				)`,
				`CREATE INDEX idx_items_wedding ON items(wedding_id)`,

				`CREATE TABLE IF NOT EXISTS item_events (
					item_id TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
					event_id TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
					quantity_needed INTEGER NOT NULL DEFAULT 0,
					PRIMARY KEY (item_id, event_id)
				)`,

				`CREATE TABLE IF NOT EXISTS vendors (
					id TEXT PRIMARY KEY,
					wedding_id TEXT NOT NULL REFERENCES weddings(id) ON DELETE CASCADE,
					name TEXT NOT NULL,
					category TEXT,
					contact_name TEXT,
					email TEXT,
					phone TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_vendors_wedding ON vendors(wedding_id)`,

				`CREATE TABLE IF NOT EXISTS budget_categories (
					id TEXT PRIMARY KEY,
					wedding_id TEXT NOT NULL REFERENCES weddings(id) ON DELETE CASCADE,
					name TEXT NOT NULL,
					projected REAL NOT NULL DEFAULT 0,
					UNIQUE (wedding_id, name)
				)`,

				`CREATE TABLE IF NOT EXISTS payments (
					id TEXT PRIMARY KEY,
					wedding_id TEXT NOT NULL REFERENCES weddings(id) ON DELETE CASCADE,
					vendor_id TEXT NOT NULL REFERENCES vendors(id) ON DELETE CASCADE,
					category_id TEXT REFERENCES budget_categories(id) ON DELETE SET NULL,
					description TEXT,
					amount REAL NOT NULL,
					due_date TEXT,
					paid_date TEXT,
					status TEXT NOT NULL DEFAULT 'pending'
				)`,
				`CREATE INDEX idx_payments_wedding ON payments(wedding_id)`,
				`CREATE INDEX idx_payments_category ON payments(category_id)`,

				`CREATE TABLE IF NOT EXISTS invoices (
					id TEXT PRIMARY KEY,
					vendor_id TEXT NOT NULL REFERENCES vendors(id) ON DELETE CASCADE,
					invoice_number TEXT NOT NULL,
					amount REAL NOT NULL,
					amount_paid REAL NOT NULL DEFAULT 0,
					due_date TEXT,
					paid_date TEXT,
					status TEXT NOT NULL DEFAULT 'pending'
				)`,
				`CREATE INDEX idx_invoices_vendor ON invoices(vendor_id)`,
			)
		},
	},
	{
		Version:     2,
		Description: "Add bar orders",
		Up: func(tx *sql.Tx) error {
			return execAll(tx,
				`CREATE TABLE IF NOT EXISTS bar_orders (
					id TEXT PRIMARY KEY,
					wedding_id TEXT NOT NULL REFERENCES weddings(id) ON DELETE CASCADE,
					event_id TEXT REFERENCES events(id) ON DELETE SET NULL,
					name TEXT NOT NULL,
					guest_count INTEGER NOT NULL DEFAULT 0,
					event_hours REAL NOT NULL DEFAULT 0,
					drinks_per_guest_per_hour REAL NOT NULL DEFAULT 0
				)`,
				`CREATE TABLE IF NOT EXISTS bar_order_items (
					id TEXT PRIMARY KEY,
					bar_order_id TEXT NOT NULL REFERENCES bar_orders(id) ON DELETE CASCADE,
					name TEXT NOT NULL,
					percentage REAL NOT NULL DEFAULT 0,
					servings_per_unit REAL NOT NULL DEFAULT 1,
					unit_cost REAL NOT NULL DEFAULT 0
				)`,
				`CREATE INDEX idx_bar_order_items_order ON bar_order_items(bar_order_id)`,
			)
		},
	},
	{
		Version:     3,
		Description: "Add imported bank transactions",
		Up: func(tx *sql.Tx) error {
			return execAll(tx,
				`CREATE TABLE IF NOT EXISTS bank_transactions (
					id TEXT PRIMARY KEY,
					hash TEXT UNIQUE NOT NULL,
					date DATETIME NOT NULL,
					name TEXT NOT NULL,
					payee TEXT,
					amount REAL NOT NULL,
					debit INTEGER NOT NULL DEFAULT 1,
					account_id TEXT,
					transaction_type TEXT,
					check_number TEXT,
					imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_bank_transactions_date ON bank_transactions(date)`,
			)
		},
	},
}

func execAll(tx *sql.Tx, queries ...string) error {
	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// Migrate runs all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	// Get current version
	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	// Apply migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	// Verify we're at the expected schema version
	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}

// SchemaVersion returns the current PRAGMA user_version.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}
