package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Veraticus/vowsync/internal/model"
	"github.com/google/uuid"
)

// SaveBarOrder inserts or updates a bar order.
func (s *SQLiteStorage) SaveBarOrder(ctx context.Context, order *model.BarOrder) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBarOrder(order); err != nil {
		return err
	}

	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bar_orders (id, wedding_id, event_id, name, guest_count, event_hours, drinks_per_guest_per_hour)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			event_id = excluded.event_id,
			name = excluded.name,
			guest_count = excluded.guest_count,
			event_hours = excluded.event_hours,
			drinks_per_guest_per_hour = excluded.drinks_per_guest_per_hour
	`, order.ID, order.WeddingID, nullString(order.EventID), order.Name,
		order.GuestCount, order.EventHours, order.DrinksPerGuestPerHour)
	if err != nil {
		return fmt.Errorf("failed to save bar order: %w", err)
	}
	return nil
}

// ListBarOrders returns a wedding's bar orders.
func (s *SQLiteStorage) ListBarOrders(ctx context.Context, weddingID string) ([]model.BarOrder, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(weddingID, "weddingID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, wedding_id, event_id, name, guest_count, event_hours, drinks_per_guest_per_hour
		FROM bar_orders
		WHERE wedding_id = ?
		ORDER BY name COLLATE NOCASE, id
	`, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bar orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var orders []model.BarOrder
	for rows.Next() {
		var (
			o       model.BarOrder
			eventID sql.NullString
		)
		if err := rows.Scan(&o.ID, &o.WeddingID, &eventID, &o.Name, &o.GuestCount,
			&o.EventHours, &o.DrinksPerGuestPerHour); err != nil {
			return nil, fmt.Errorf("failed to scan bar order: %w", err)
		}
		o.EventID = eventID.String
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// SaveBarOrderItem inserts or updates one drink line of a bar order.
func (s *SQLiteStorage) SaveBarOrderItem(ctx context.Context, item *model.BarOrderItem) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBarOrderItem(item); err != nil {
		return err
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bar_order_items (id, bar_order_id, name, percentage, servings_per_unit, unit_cost)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			percentage = excluded.percentage,
			servings_per_unit = excluded.servings_per_unit,
			unit_cost = excluded.unit_cost
	`, item.ID, item.BarOrderID, item.Name, item.Percentage, item.ServingsPerUnit, item.UnitCost)
	if err != nil {
		return fmt.Errorf("failed to save bar order item: %w", err)
	}
	return nil
}

// ListBarOrderItems returns the drink lines of a bar order.
func (s *SQLiteStorage) ListBarOrderItems(ctx context.Context, barOrderID string) ([]model.BarOrderItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(barOrderID, "barOrderID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, bar_order_id, name, percentage, servings_per_unit, unit_cost
		FROM bar_order_items
		WHERE bar_order_id = ?
		ORDER BY percentage DESC, name COLLATE NOCASE
	`, barOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bar order items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.BarOrderItem
	for rows.Next() {
		var i model.BarOrderItem
		if err := rows.Scan(&i.ID, &i.BarOrderID, &i.Name, &i.Percentage, &i.ServingsPerUnit, &i.UnitCost); err != nil {
			return nil, fmt.Errorf("failed to scan bar order item: %w", err)
		}
		items = append(items, i)
	}

	return items, rows.Err()
}
