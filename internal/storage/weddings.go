package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/vowsync/internal/model"
	"github.com/google/uuid"
)

// CreateWedding inserts a wedding and assigns its id when empty.
func (s *SQLiteStorage) CreateWedding(ctx context.Context, wedding *model.Wedding) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateWedding(wedding); err != nil {
		return err
	}

	if wedding.ID == "" {
		wedding.ID = uuid.NewString()
	}
	if wedding.Currency == "" {
		wedding.Currency = "USD"
	}
	wedding.Currency = strings.ToUpper(wedding.Currency)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO weddings (id, name, date, currency, budget)
		VALUES (?, ?, ?, ?, ?)
	`, wedding.ID, wedding.Name, nullString(wedding.Date), wedding.Currency, wedding.Budget)
	if err != nil {
		return fmt.Errorf("failed to create wedding: %w", err)
	}

	return s.db.QueryRowContext(ctx, `SELECT created_at FROM weddings WHERE id = ?`, wedding.ID).
		Scan(&wedding.CreatedAt)
}

// GetWedding retrieves a wedding by id.
func (s *SQLiteStorage) GetWedding(ctx context.Context, id string) (*model.Wedding, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var (
		w    model.Wedding
		date sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, date, currency, budget, created_at
		FROM weddings
		WHERE id = ?
	`, id).Scan(&w.ID, &w.Name, &date, &w.Currency, &w.Budget, &w.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("wedding", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wedding: %w", err)
	}
	w.Date = date.String

	return &w, nil
}

// ListWeddings returns all weddings, soonest first.
func (s *SQLiteStorage) ListWeddings(ctx context.Context) ([]model.Wedding, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, date, currency, budget, created_at
		FROM weddings
		ORDER BY date IS NULL, date, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query weddings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var weddings []model.Wedding
	for rows.Next() {
		var (
			w    model.Wedding
			date sql.NullString
		)
		if err := rows.Scan(&w.ID, &w.Name, &date, &w.Currency, &w.Budget, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wedding: %w", err)
		}
		w.Date = date.String
		weddings = append(weddings, w)
	}

	return weddings, rows.Err()
}

// SaveEvent inserts or updates an event.
func (s *SQLiteStorage) SaveEvent(ctx context.Context, event *model.Event) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateEvent(event); err != nil {
		return err
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (id, wedding_id, name, date, venue, sort_order)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			date = excluded.date,
			venue = excluded.venue,
			sort_order = excluded.sort_order
	`, event.ID, event.WeddingID, event.Name, nullString(event.Date), nullString(event.Venue), event.SortOrder)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

// ListEvents returns a wedding's events in running order.
func (s *SQLiteStorage) ListEvents(ctx context.Context, weddingID string) ([]model.Event, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(weddingID, "weddingID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, wedding_id, name, date, venue, sort_order
		FROM events
		WHERE wedding_id = ?
		ORDER BY sort_order, date, name
	`, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []model.Event
	for rows.Next() {
		var (
			e           model.Event
			date, venue sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.WeddingID, &e.Name, &date, &venue, &e.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Date = date.String
		e.Venue = venue.String
		events = append(events, e)
	}

	return events, rows.Err()
}
