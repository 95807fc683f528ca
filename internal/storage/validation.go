// Package storage provides the data persistence layer for vowsync.
package storage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Veraticus/vowsync/internal/common"
	"github.com/Veraticus/vowsync/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrNilParameter     = errors.New("parameter cannot be nil")
	ErrEmptySlice       = errors.New("slice cannot be empty")
	ErrInvalidDate      = errors.New("date must be YYYY-MM-DD")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidGuest     = errors.New("invalid guest")
	ErrInvalidVendor    = errors.New("invalid vendor")
	ErrInvalidPayment   = errors.New("invalid payment")
	ErrInvalidBarOrder  = errors.New("invalid bar order")
	ErrInvalidRelation  = errors.New("invalid event relation")
	ErrInvalidStatement = errors.New("invalid bank transaction")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateDate accepts YYYY-MM-DD.
func validateDate(s string, paramName string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("%w: %s %q", ErrInvalidDate, paramName, s)
	}
	return nil
}

// validateOptionalDate accepts an empty string or YYYY-MM-DD.
func validateOptionalDate(s string, paramName string) error {
	if s == "" {
		return nil
	}
	return validateDate(s, paramName)
}

func validateAmount(amount float64, paramName string) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidAmount, paramName)
	}
	return nil
}

func notFound(what, id string) error {
	return fmt.Errorf("%s %s: %w", what, id, common.ErrNotFound)
}

func validateWedding(w *model.Wedding) error {
	if w == nil {
		return fmt.Errorf("%w: wedding", ErrNilParameter)
	}
	if err := validateString(w.Name, "name"); err != nil {
		return err
	}
	if err := validateOptionalDate(w.Date, "date"); err != nil {
		return err
	}
	return validateAmount(w.Budget, "budget")
}

func validateEvent(e *model.Event) error {
	if e == nil {
		return fmt.Errorf("%w: event", ErrNilParameter)
	}
	if err := validateString(e.WeddingID, "weddingID"); err != nil {
		return err
	}
	if err := validateString(e.Name, "name"); err != nil {
		return err
	}
	return validateOptionalDate(e.Date, "date")
}

func validateGuest(g *model.Guest) error {
	if g == nil {
		return fmt.Errorf("%w: guest", ErrNilParameter)
	}
	if err := validateString(g.WeddingID, "weddingID"); err != nil {
		return err
	}
	if g.FullName() == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidGuest)
	}

	switch g.RSVPStatus {
	case model.RSVPPending, model.RSVPAccepted, model.RSVPDeclined, model.RSVPNotInvited:
	default:
		return fmt.Errorf("%w: rsvp %q", ErrInvalidStatus, g.RSVPStatus)
	}

	switch g.Type {
	case model.GuestTypeAdult, model.GuestTypeChild, model.GuestTypePlusOne, model.GuestTypeVendor:
	default:
		return fmt.Errorf("%w: guest type %q", ErrInvalidGuest, g.Type)
	}

	if g.TableNumber != nil && *g.TableNumber < 0 {
		return fmt.Errorf("%w: table number must not be negative", ErrInvalidGuest)
	}
	return nil
}

func validateItem(i *model.WeddingItem) error {
	if i == nil {
		return fmt.Errorf("%w: item", ErrNilParameter)
	}
	if err := validateString(i.WeddingID, "weddingID"); err != nil {
		return err
	}
	if err := validateString(i.Name, "name"); err != nil {
		return err
	}
	return validateAmount(i.UnitCost, "unit cost")
}

func validateVendor(v *model.Vendor) error {
	if v == nil {
		return fmt.Errorf("%w: vendor", ErrNilParameter)
	}
	if strings.TrimSpace(v.WeddingID) == "" {
		return fmt.Errorf("%w: missing wedding", ErrInvalidVendor)
	}
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidVendor)
	}
	return nil
}

func validatePaymentStatus(s model.PaymentStatus) error {
	switch s {
	case model.PaymentPending, model.PaymentPaid, model.PaymentCancelled:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

func validatePayment(p *model.Payment) error {
	if p == nil {
		return fmt.Errorf("%w: payment", ErrNilParameter)
	}
	if strings.TrimSpace(p.WeddingID) == "" || strings.TrimSpace(p.VendorID) == "" {
		return fmt.Errorf("%w: missing wedding or vendor", ErrInvalidPayment)
	}
	if err := validateAmount(p.Amount, "amount"); err != nil {
		return err
	}
	if err := validatePaymentStatus(p.Status); err != nil {
		return err
	}
	if err := validateOptionalDate(p.DueDate, "due date"); err != nil {
		return err
	}
	if p.PaidDate != nil {
		return validateOptionalDate(*p.PaidDate, "paid date")
	}
	return nil
}

func validateInvoice(i *model.Invoice) error {
	if i == nil {
		return fmt.Errorf("%w: invoice", ErrNilParameter)
	}
	if strings.TrimSpace(i.VendorID) == "" {
		return fmt.Errorf("%w: missing vendor", ErrInvalidPayment)
	}
	if err := validateString(i.InvoiceNumber, "invoiceNumber"); err != nil {
		return err
	}
	if err := validateAmount(i.Amount, "amount"); err != nil {
		return err
	}
	if err := validateAmount(i.AmountPaid, "amount paid"); err != nil {
		return err
	}
	if err := validatePaymentStatus(i.Status); err != nil {
		return err
	}
	if err := validateOptionalDate(i.DueDate, "due date"); err != nil {
		return err
	}
	if i.PaidDate != nil {
		return validateOptionalDate(*i.PaidDate, "paid date")
	}
	return nil
}

func validateBudgetCategory(c *model.BudgetCategory) error {
	if c == nil {
		return fmt.Errorf("%w: budget category", ErrNilParameter)
	}
	if err := validateString(c.WeddingID, "weddingID"); err != nil {
		return err
	}
	if err := validateString(c.Name, "name"); err != nil {
		return err
	}
	return validateAmount(c.Projected, "projected")
}

func validateBarOrder(o *model.BarOrder) error {
	if o == nil {
		return fmt.Errorf("%w: bar order", ErrNilParameter)
	}
	if err := validateString(o.WeddingID, "weddingID"); err != nil {
		return err
	}
	if err := validateString(o.Name, "name"); err != nil {
		return err
	}
	if o.GuestCount < 0 || o.EventHours < 0 || o.DrinksPerGuestPerHour < 0 {
		return fmt.Errorf("%w: guest count, hours and drinks per hour must not be negative", ErrInvalidBarOrder)
	}
	return nil
}

func validateBarOrderItem(i *model.BarOrderItem) error {
	if i == nil {
		return fmt.Errorf("%w: bar order item", ErrNilParameter)
	}
	if err := validateString(i.BarOrderID, "barOrderID"); err != nil {
		return err
	}
	if err := validateString(i.Name, "name"); err != nil {
		return err
	}
	if i.Percentage < 0 || i.Percentage > 100 {
		return fmt.Errorf("%w: percentage must be between 0 and 100", ErrInvalidBarOrder)
	}
	if i.ServingsPerUnit <= 0 {
		return fmt.Errorf("%w: servings per unit must be positive", ErrInvalidBarOrder)
	}
	return validateAmount(i.UnitCost, "unit cost")
}

func validateRelation(entityID, eventID string) error {
	if strings.TrimSpace(entityID) == "" || strings.TrimSpace(eventID) == "" {
		return fmt.Errorf("%w: entity and event ids are required", ErrInvalidRelation)
	}
	return nil
}

func validateBankTransactions(transactions []model.BankTransaction) error {
	if transactions == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	if len(transactions) == 0 {
		return fmt.Errorf("%w: transactions", ErrEmptySlice)
	}
	for i, txn := range transactions {
		if txn.ID == "" {
			return fmt.Errorf("transaction at index %d: %w: missing ID", i, ErrInvalidStatement)
		}
		if txn.Date.IsZero() {
			return fmt.Errorf("transaction at index %d: %w: missing date", i, ErrInvalidStatement)
		}
		if txn.Name == "" {
			return fmt.Errorf("transaction at index %d: %w: missing name", i, ErrInvalidStatement)
		}
	}
	return nil
}
