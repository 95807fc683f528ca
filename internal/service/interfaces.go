// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/vowsync/internal/model"
)

// Storage defines the contract for our persistence layer. Every method
// scopes its reads to a single wedding; the view-model and status packages
// only ever see the slices it returns.
type Storage interface {
	// Wedding operations
	CreateWedding(ctx context.Context, wedding *model.Wedding) error
	GetWedding(ctx context.Context, id string) (*model.Wedding, error)
	ListWeddings(ctx context.Context) ([]model.Wedding, error)

	// Event operations
	SaveEvent(ctx context.Context, event *model.Event) error
	ListEvents(ctx context.Context, weddingID string) ([]model.Event, error)

	// Guest operations
	SaveGuest(ctx context.Context, guest *model.Guest) error
	DeleteGuest(ctx context.Context, id string) error
	ListGuests(ctx context.Context, weddingID string) ([]model.Guest, error)
	SetGuestEvent(ctx context.Context, relation model.GuestEvent) error
	ListGuestEvents(ctx context.Context, weddingID string) ([]model.GuestEvent, error)

	// Item operations
	SaveItem(ctx context.Context, item *model.WeddingItem) error
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context, weddingID string) ([]model.WeddingItem, error)
	SetItemEvent(ctx context.Context, relation model.ItemEvent) error
	ListItemEvents(ctx context.Context, weddingID string) ([]model.ItemEvent, error)

	// Vendor operations
	SaveVendor(ctx context.Context, vendor *model.Vendor) error
	GetVendor(ctx context.Context, id string) (*model.Vendor, error)
	ListVendors(ctx context.Context, weddingID string) ([]model.Vendor, error)

	// Payment operations
	SavePayment(ctx context.Context, payment *model.Payment) error
	MarkPaymentPaid(ctx context.Context, id, paidDate string) error
	ListPayments(ctx context.Context, weddingID string) ([]model.Payment, error)
	ListPendingPayments(ctx context.Context, weddingID string) ([]model.Payment, error)

	// Invoice operations
	SaveInvoice(ctx context.Context, invoice *model.Invoice) error
	ListInvoices(ctx context.Context, weddingID string) ([]model.Invoice, error)

	// Budget operations
	SaveBudgetCategory(ctx context.Context, category *model.BudgetCategory) error
	GetBudgetCategory(ctx context.Context, id string) (*model.BudgetCategory, error)
	ListBudgetCategories(ctx context.Context, weddingID string) ([]model.BudgetCategory, error)

	// Bar order operations
	SaveBarOrder(ctx context.Context, order *model.BarOrder) error
	ListBarOrders(ctx context.Context, weddingID string) ([]model.BarOrder, error)
	SaveBarOrderItem(ctx context.Context, item *model.BarOrderItem) error
	ListBarOrderItems(ctx context.Context, barOrderID string) ([]model.BarOrderItem, error)

	// Bank statement operations
	SaveBankTransactions(ctx context.Context, transactions []model.BankTransaction) (int, error)

	// Database management
	Migrate(ctx context.Context) error
	BeginTx(ctx context.Context) (Transaction, error)
	Close() error
}

// Transaction represents a database transaction. Reconciliation uses it to
// record imported statement lines and the payments they settle atomically.
type Transaction interface {
	SaveBankTransactions(ctx context.Context, transactions []model.BankTransaction) (int, error)
	MarkPaymentPaid(ctx context.Context, id, paidDate string) error
	Commit() error
	Rollback() error
}
