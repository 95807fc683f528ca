package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Veraticus/vowsync/internal/model"
	"github.com/google/uuid"
)

// SaveItem inserts or updates a wedding item.
func (s *SQLiteStorage) SaveItem(ctx context.Context, item *model.WeddingItem) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateItem(item); err != nil {
		return err
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (id, wedding_id, name, category, supplier, notes, unit_cost)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			supplier = excluded.supplier,
			notes = excluded.notes,
			unit_cost = excluded.unit_cost
	`, item.ID, item.WeddingID, item.Name, nullString(item.Category),
		nullString(item.Supplier), nullString(item.Notes), item.UnitCost)
	if err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}
	return nil
}

// DeleteItem removes an item and its per-event quantities.
func (s *SQLiteStorage) DeleteItem(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return rowsAffected(res, "item", id)
}

// ListItems returns a wedding's items ordered by category and name.
func (s *SQLiteStorage) ListItems(ctx context.Context, weddingID string) ([]model.WeddingItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(weddingID, "weddingID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, wedding_id, name, category, supplier, notes, unit_cost
		FROM items
		WHERE wedding_id = ?
		ORDER BY category COLLATE NOCASE, name COLLATE NOCASE, id
	`, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.WeddingItem
	for rows.Next() {
		var (
			i                         model.WeddingItem
			category, supplier, notes sql.NullString
		)
		if err := rows.Scan(&i.ID, &i.WeddingID, &i.Name, &category, &supplier, &notes, &i.UnitCost); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		i.Category = category.String
		i.Supplier = supplier.String
		i.Notes = notes.String
		items = append(items, i)
	}

	return items, rows.Err()
}

// SetItemEvent records the quantity of an item needed at an event. A zero
// quantity removes the relation.
func (s *SQLiteStorage) SetItemEvent(ctx context.Context, relation model.ItemEvent) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRelation(relation.ItemID, relation.EventID); err != nil {
		return err
	}
	if relation.QuantityNeeded < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidRelation)
	}

	if relation.QuantityNeeded == 0 {
		_, err := s.db.ExecContext(ctx, `
			DELETE FROM item_events WHERE item_id = ? AND event_id = ?
		`, relation.ItemID, relation.EventID)
		if err != nil {
			return fmt.Errorf("failed to clear item event: %w", err)
		}
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO item_events (item_id, event_id, quantity_needed)
		VALUES (?, ?, ?)
		ON CONFLICT(item_id, event_id) DO UPDATE SET
			quantity_needed = excluded.quantity_needed
	`, relation.ItemID, relation.EventID, relation.QuantityNeeded)
	if err != nil {
		return fmt.Errorf("failed to save item event: %w", err)
	}
	return nil
}

// ListItemEvents returns every item/event relation of a wedding.
func (s *SQLiteStorage) ListItemEvents(ctx context.Context, weddingID string) ([]model.ItemEvent, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(weddingID, "weddingID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT ie.item_id, ie.event_id, ie.quantity_needed
		FROM item_events ie
		JOIN items i ON i.id = ie.item_id
		WHERE i.wedding_id = ?
		ORDER BY ie.item_id, ie.event_id
	`, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query item events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var relations []model.ItemEvent
	for rows.Next() {
		var ie model.ItemEvent
		if err := rows.Scan(&ie.ItemID, &ie.EventID, &ie.QuantityNeeded); err != nil {
			return nil, fmt.Errorf("failed to scan item event: %w", err)
		}
		relations = append(relations, ie)
	}

	return relations, rows.Err()
}
