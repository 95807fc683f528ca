package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Veraticus/vowsync/internal/model"
	"github.com/google/uuid"
)

const paymentColumns = `id, wedding_id, vendor_id, category_id, description, amount, due_date, paid_date, status`

// SavePayment inserts or updates a scheduled vendor payment.
func (s *SQLiteStorage) SavePayment(ctx context.Context, payment *model.Payment) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if payment != nil && payment.Status == "" {
		payment.Status = model.PaymentPending
	}
	if err := validatePayment(payment); err != nil {
		return err
	}

	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			vendor_id = excluded.vendor_id,
			category_id = excluded.category_id,
			description = excluded.description,
			amount = excluded.amount,
			due_date = excluded.due_date,
			paid_date = excluded.paid_date,
			status = excluded.status
	`, payment.ID, payment.WeddingID, payment.VendorID, ptrString(payment.CategoryID),
		nullString(payment.Description), payment.Amount, nullString(payment.DueDate),
		ptrString(payment.PaidDate), string(payment.Status))
	if err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

// MarkPaymentPaid sets a payment's status to paid on the given date.
func (s *SQLiteStorage) MarkPaymentPaid(ctx context.Context, id, paidDate string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	if err := validateDate(paidDate, "paidDate"); err != nil {
		return err
	}
	return s.markPaymentPaidTx(ctx, s.db, id, paidDate)
}

func (s *SQLiteStorage) markPaymentPaidTx(ctx context.Context, q queryable, id, paidDate string) error {
	res, err := q.ExecContext(ctx, `
		UPDATE payments SET status = ?, paid_date = ? WHERE id = ?
	`, string(model.PaymentPaid), paidDate, id)
	if err != nil {
		return fmt.Errorf("failed to mark payment paid: %w", err)
	}
	return rowsAffected(res, "payment", id)
}

// ListPayments returns a wedding's payments ordered by due date, undated last.
func (s *SQLiteStorage) ListPayments(ctx context.Context, weddingID string) ([]model.Payment, error) {
	return s.listPayments(ctx, weddingID, false)
}

// ListPendingPayments returns the payments that are neither paid nor cancelled.
func (s *SQLiteStorage) ListPendingPayments(ctx context.Context, weddingID string) ([]model.Payment, error) {
	return s.listPayments(ctx, weddingID, true)
}

func (s *SQLiteStorage) listPayments(ctx context.Context, weddingID string, pendingOnly bool) ([]model.Payment, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(weddingID, "weddingID"); err != nil {
		return nil, err
	}

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE wedding_id = ?`
	if pendingOnly {
		query += ` AND status = 'pending' AND (paid_date IS NULL OR paid_date = '')`
	}
	query += ` ORDER BY due_date IS NULL, due_date, id`

	rows, err := s.db.QueryContext(ctx, query, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var payments []model.Payment
	for rows.Next() {
		var (
			p                                  model.Payment
			categoryID, description, due, paid sql.NullString
			status                             string
		)
		if err := rows.Scan(&p.ID, &p.WeddingID, &p.VendorID, &categoryID, &description,
			&p.Amount, &due, &paid, &status); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.CategoryID = stringPtr(categoryID)
		p.Description = description.String
		p.DueDate = due.String
		p.PaidDate = stringPtr(paid)
		p.Status = model.PaymentStatus(status)
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

// SaveInvoice inserts or updates a vendor invoice.
func (s *SQLiteStorage) SaveInvoice(ctx context.Context, invoice *model.Invoice) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if invoice != nil && invoice.Status == "" {
		invoice.Status = model.PaymentPending
	}
	if err := validateInvoice(invoice); err != nil {
		return err
	}

	if invoice.ID == "" {
		invoice.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO invoices (id, vendor_id, invoice_number, amount, amount_paid, due_date, paid_date, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			invoice_number = excluded.invoice_number,
			amount = excluded.amount,
			amount_paid = excluded.amount_paid,
			due_date = excluded.due_date,
			paid_date = excluded.paid_date,
			status = excluded.status
	`, invoice.ID, invoice.VendorID, invoice.InvoiceNumber, invoice.Amount, invoice.AmountPaid,
		nullString(invoice.DueDate), ptrString(invoice.PaidDate), string(invoice.Status))
	if err != nil {
		return fmt.Errorf("failed to save invoice: %w", err)
	}
	return nil
}

// ListInvoices returns the invoices of every vendor of a wedding.
func (s *SQLiteStorage) ListInvoices(ctx context.Context, weddingID string) ([]model.Invoice, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(weddingID, "weddingID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT i.id, i.vendor_id, i.invoice_number, i.amount, i.amount_paid, i.due_date, i.paid_date, i.status
		FROM invoices i
		JOIN vendors v ON v.id = i.vendor_id
		WHERE v.wedding_id = ?
		ORDER BY i.due_date IS NULL, i.due_date, i.invoice_number
	`, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var invoices []model.Invoice
	for rows.Next() {
		var (
			inv       model.Invoice
			due, paid sql.NullString
			status    string
		)
		if err := rows.Scan(&inv.ID, &inv.VendorID, &inv.InvoiceNumber, &inv.Amount, &inv.AmountPaid,
			&due, &paid, &status); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		inv.DueDate = due.String
		inv.PaidDate = stringPtr(paid)
		inv.Status = model.PaymentStatus(status)
		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}
