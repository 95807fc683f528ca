package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Veraticus/vowsync/internal/model"
	"github.com/google/uuid"
)

// budgetSelect derives actual from the paid payments of each category. A
// payment counts as paid when its status says so or a paid date is set.
const budgetSelect = `
	SELECT b.id, b.wedding_id, b.name, b.projected,
		COALESCE((
			SELECT SUM(p.amount) FROM payments p
			WHERE p.category_id = b.id
				AND (p.status = 'paid' OR (p.paid_date IS NOT NULL AND p.paid_date != ''))
		), 0) AS actual
	FROM budget_categories b`

// SaveBudgetCategory inserts or updates a budget line. Actual is derived
// from payments and is never written.
func (s *SQLiteStorage) SaveBudgetCategory(ctx context.Context, category *model.BudgetCategory) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudgetCategory(category); err != nil {
		return err
	}

	if category.ID == "" {
		category.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budget_categories (id, wedding_id, name, projected)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			projected = excluded.projected
	`, category.ID, category.WeddingID, category.Name, category.Projected)
	if err != nil {
		return fmt.Errorf("failed to save budget category: %w", err)
	}
	return nil
}

// GetBudgetCategory retrieves a budget line with its current actual spend.
func (s *SQLiteStorage) GetBudgetCategory(ctx context.Context, id string) (*model.BudgetCategory, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var c model.BudgetCategory
	err := s.db.QueryRowContext(ctx, budgetSelect+` WHERE b.id = ?`, id).
		Scan(&c.ID, &c.WeddingID, &c.Name, &c.Projected, &c.Actual)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("budget category", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget category: %w", err)
	}
	return &c, nil
}

// ListBudgetCategories returns a wedding's budget lines ordered by name.
func (s *SQLiteStorage) ListBudgetCategories(ctx context.Context, weddingID string) ([]model.BudgetCategory, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(weddingID, "weddingID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, budgetSelect+`
		WHERE b.wedding_id = ?
		ORDER BY b.name COLLATE NOCASE
	`, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.BudgetCategory
	for rows.Next() {
		var c model.BudgetCategory
		if err := rows.Scan(&c.ID, &c.WeddingID, &c.Name, &c.Projected, &c.Actual); err != nil {
			return nil, fmt.Errorf("failed to scan budget category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}
