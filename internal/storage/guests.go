package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Veraticus/vowsync/internal/model"
	"github.com/google/uuid"
)

// SaveGuest inserts or updates a guest. Empty RSVP status and guest type
// default to pending and adult.
func (s *SQLiteStorage) SaveGuest(ctx context.Context, guest *model.Guest) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if guest != nil {
		if guest.RSVPStatus == "" {
			guest.RSVPStatus = model.RSVPPending
		}
		if guest.Type == "" {
			guest.Type = model.GuestTypeAdult
		}
	}
	if err := validateGuest(guest); err != nil {
		return err
	}

	if guest.ID == "" {
		guest.ID = uuid.NewString()
	}

	var table sql.NullInt64
	if guest.TableNumber != nil {
		table = sql.NullInt64{Int64: int64(*guest.TableNumber), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO guests (
			id, wedding_id, first_name, last_name, email, phone,
			guest_type, side, rsvp_status, dietary, plus_one, table_number
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			email = excluded.email,
			phone = excluded.phone,
			guest_type = excluded.guest_type,
			side = excluded.side,
			rsvp_status = excluded.rsvp_status,
			dietary = excluded.dietary,
			plus_one = excluded.plus_one,
			table_number = excluded.table_number
	`,
		guest.ID, guest.WeddingID, guest.FirstName, guest.LastName,
		nullString(guest.Email), nullString(guest.Phone),
		string(guest.Type), nullString(guest.Side), string(guest.RSVPStatus),
		nullString(guest.Dietary), guest.PlusOne, table,
	)
	if err != nil {
		return fmt.Errorf("failed to save guest: %w", err)
	}
	return nil
}

// DeleteGuest removes a guest and their event relations.
func (s *SQLiteStorage) DeleteGuest(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM guests WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
	}
	return rowsAffected(res, "guest", id)
}

// ListGuests returns a wedding's guests ordered by last and first name.
func (s *SQLiteStorage) ListGuests(ctx context.Context, weddingID string) ([]model.Guest, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(weddingID, "weddingID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, wedding_id, first_name, last_name, email, phone,
			guest_type, side, rsvp_status, dietary, plus_one, table_number
		FROM guests
		WHERE wedding_id = ?
		ORDER BY last_name COLLATE NOCASE, first_name COLLATE NOCASE, id
	`, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query guests: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var guests []model.Guest
	for rows.Next() {
		var (
			g                           model.Guest
			email, phone, side, dietary sql.NullString
			guestType, rsvp             string
			table                       sql.NullInt64
		)
		if err := rows.Scan(
			&g.ID, &g.WeddingID, &g.FirstName, &g.LastName, &email, &phone,
			&guestType, &side, &rsvp, &dietary, &g.PlusOne, &table,
		); err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		g.Email = email.String
		g.Phone = phone.String
		g.Side = side.String
		g.Dietary = dietary.String
		g.Type = model.GuestType(guestType)
		g.RSVPStatus = model.RSVPStatus(rsvp)
		if table.Valid {
			n := int(table.Int64)
			g.TableNumber = &n
		}
		guests = append(guests, g)
	}

	return guests, rows.Err()
}

// SetGuestEvent records a guest's attendance at an event, replacing any
// previous answer.
func (s *SQLiteStorage) SetGuestEvent(ctx context.Context, relation model.GuestEvent) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRelation(relation.GuestID, relation.EventID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO guest_events (guest_id, event_id, attending, shuttle_to, shuttle_from)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(guest_id, event_id) DO UPDATE SET
			attending = excluded.attending,
			shuttle_to = excluded.shuttle_to,
			shuttle_from = excluded.shuttle_from
	`, relation.GuestID, relation.EventID, relation.Attending, relation.ShuttleTo, relation.ShuttleFrom)
	if err != nil {
		return fmt.Errorf("failed to save guest event: %w", err)
	}
	return nil
}

// ListGuestEvents returns every guest/event relation of a wedding.
func (s *SQLiteStorage) ListGuestEvents(ctx context.Context, weddingID string) ([]model.GuestEvent, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(weddingID, "weddingID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT ge.guest_id, ge.event_id, ge.attending, ge.shuttle_to, ge.shuttle_from
		FROM guest_events ge
		JOIN guests g ON g.id = ge.guest_id
		WHERE g.wedding_id = ?
		ORDER BY ge.guest_id, ge.event_id
	`, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query guest events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var relations []model.GuestEvent
	for rows.Next() {
		var ge model.GuestEvent
		if err := rows.Scan(&ge.GuestID, &ge.EventID, &ge.Attending, &ge.ShuttleTo, &ge.ShuttleFrom); err != nil {
			return nil, fmt.Errorf("failed to scan guest event: %w", err)
		}
		relations = append(relations, ge)
	}

	return relations, rows.Err()
}
