package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/vowsync/internal/model"
	"github.com/google/uuid"
)

const vendorCacheTTL = 5 * time.Minute

// GetVendor retrieves a vendor by id.
func (s *SQLiteStorage) GetVendor(ctx context.Context, id string) (*model.Vendor, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	// Check cache first
	if vendor := s.getCachedVendor(id); vendor != nil {
		return vendor, nil
	}

	var (
		v                                   model.Vendor
		category, contactName, email, phone sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, wedding_id, name, category, contact_name, email, phone, created_at
		FROM vendors
		WHERE id = ?
	`, id).Scan(&v.ID, &v.WeddingID, &v.Name, &category, &contactName, &email, &phone, &v.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("vendor", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	v.Category = category.String
	v.ContactName = contactName.String
	v.Email = email.String
	v.Phone = phone.String

	s.cacheVendor(&v)

	return &v, nil
}

// SaveVendor inserts or updates a vendor.
func (s *SQLiteStorage) SaveVendor(ctx context.Context, vendor *model.Vendor) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateVendor(vendor); err != nil {
		return err
	}

	if vendor.ID == "" {
		vendor.ID = uuid.NewString()
	}
	if vendor.CreatedAt.IsZero() {
		vendor.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vendors (id, wedding_id, name, category, contact_name, email, phone, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			contact_name = excluded.contact_name,
			email = excluded.email,
			phone = excluded.phone
	`, vendor.ID, vendor.WeddingID, vendor.Name, nullString(vendor.Category),
		nullString(vendor.ContactName), nullString(vendor.Email), nullString(vendor.Phone), vendor.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save vendor: %w", err)
	}

	// Update cache
	cached := *vendor
	s.cacheVendor(&cached)

	return nil
}

// ListVendors returns a wedding's vendors ordered by name.
func (s *SQLiteStorage) ListVendors(ctx context.Context, weddingID string) ([]model.Vendor, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(weddingID, "weddingID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, wedding_id, name, category, contact_name, email, phone, created_at
		FROM vendors
		WHERE wedding_id = ?
		ORDER BY name COLLATE NOCASE, id
	`, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var vendors []model.Vendor
	for rows.Next() {
		var (
			v                                   model.Vendor
			category, contactName, email, phone sql.NullString
		)
		if err := rows.Scan(&v.ID, &v.WeddingID, &v.Name, &category, &contactName, &email, &phone, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		v.Category = category.String
		v.ContactName = contactName.String
		v.Email = email.String
		v.Phone = phone.String
		vendors = append(vendors, v)
	}

	return vendors, rows.Err()
}

// WarmVendorCache loads all of a wedding's vendors into the cache.
func (s *SQLiteStorage) WarmVendorCache(ctx context.Context, weddingID string) error {
	vendors, err := s.ListVendors(ctx, weddingID)
	if err != nil {
		return err
	}

	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()

	s.vendorCache = make(map[string]*model.Vendor, len(vendors))
	for i := range vendors {
		s.vendorCache[vendors[i].ID] = &vendors[i]
	}

	s.cacheExpiry = time.Now().Add(vendorCacheTTL)
	return nil
}

// getCachedVendor retrieves a vendor from the cache.
func (s *SQLiteStorage) getCachedVendor(id string) *model.Vendor {
	s.cacheMutex.RLock()

	if time.Now().After(s.cacheExpiry) {
		// Upgrade to write lock
		s.cacheMutex.RUnlock()
		s.cacheMutex.Lock()
		defer s.cacheMutex.Unlock()

		// Double-check after acquiring write lock
		if time.Now().After(s.cacheExpiry) {
			s.vendorCache = make(map[string]*model.Vendor)
		}
		return nil
	}

	vendor := s.vendorCache[id]
	s.cacheMutex.RUnlock()
	return vendor
}

// cacheVendor adds a vendor to the cache.
func (s *SQLiteStorage) cacheVendor(vendor *model.Vendor) {
	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()

	if len(s.vendorCache) == 0 {
		s.cacheExpiry = time.Now().Add(vendorCacheTTL)
	}
	s.vendorCache[vendor.ID] = vendor
}
