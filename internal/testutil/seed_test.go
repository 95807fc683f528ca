package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/vowsync/internal/model"
	"github.com/Veraticus/vowsync/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	db := SetupTestDB(t)

	fx := db.Seed(NewWeddingSeed("Sam & Alex").
		WithDate("2026-09-12").
		WithBudget(25000).
		WithEvents("Ceremony", "Reception").
		WithGuest(model.Guest{FirstName: "Ann", LastName: "Lee"}).
		WithVendors("Bloom Florals").
		WithPayment(PaymentSeed{Vendor: "Bloom Florals", Description: "Deposit", Amount: 300, DueDate: "2026-05-01"}))

	require.NotEmpty(t, fx.Wedding.ID)
	require.Len(t, fx.Events, 2)
	assert.Equal(t, 2, fx.Events[1].SortOrder)
	require.Len(t, fx.Guests, 1)
	assert.Equal(t, fx.Wedding.ID, fx.Guests[0].WeddingID)
	require.Len(t, fx.Payments, 1)
	assert.Equal(t, fx.Vendors["Bloom Florals"].ID, fx.Payments[0].VendorID)

	pending, err := db.Storage.ListPendingPayments(context.Background(), fx.Wedding.ID)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestSeedUnknownVendor(t *testing.T) {
	db := SetupTestDB(t)

	_, err := NewWeddingSeed("W").
		WithPayment(PaymentSeed{Vendor: "Nobody", Amount: 1}).
		Build(context.Background(), db.Storage)
	assert.Error(t, err)
}

func TestWithTransaction(t *testing.T) {
	db := SetupTestDB(t)
	fx := db.Seed(NewWeddingSeed("W").
		WithVendors("Cake Co").
		WithPayment(PaymentSeed{Vendor: "Cake Co", Description: "Cake", Amount: 450}))

	err := db.WithTransaction(func(tx service.Transaction) error {
		return tx.MarkPaymentPaid(context.Background(), fx.Payments[0].ID, "2026-06-01")
	})
	require.NoError(t, err)

	// Rolled back
	pending, err := db.Storage.ListPendingPayments(context.Background(), fx.Wedding.ID)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
