package ofx

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/vowsync/internal/model"
	"github.com/Veraticus/vowsync/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProgress struct{ n int }

func (c *countingProgress) Add(num int) error {
	c.n += num
	return nil
}

func statementLine(id, payee string, amount float64, date string, debit bool) model.BankTransaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	tx := model.BankTransaction{
		ID:     id,
		Date:   d,
		Name:   payee,
		Payee:  payee,
		Amount: amount,
		Debit:  debit,
		Type:   "DEBIT",
	}
	tx.Hash = tx.GenerateHash()
	return tx
}

func seedReconcileWedding(t *testing.T) (*testutil.TestDB, *testutil.Fixture) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	fx := db.Seed(testutil.NewWeddingSeed("Sam & Alex").
		WithDate("2024-06-15").
		WithVendors("Bloom & Petal Florals", "Harbor View Catering", "The Lens Studio").
		WithPayment(testutil.PaymentSeed{Vendor: "Bloom & Petal Florals", Description: "Deposit", DueDate: "2024-01-15", Amount: 1250}).
		WithPayment(testutil.PaymentSeed{Vendor: "Harbor View Catering", Description: "Deposit", DueDate: "2024-01-20", Amount: 4800}).
		WithPayment(testutil.PaymentSeed{Vendor: "Harbor View Catering", Description: "Balance", DueDate: "2024-05-20", Amount: 4800}).
		WithPayment(testutil.PaymentSeed{Vendor: "The Lens Studio", Description: "Deposit", DueDate: "2024-01-25", Amount: 500}))
	return db, fx
}

func TestReconcilerMatch(t *testing.T) {
	db, fx := seedReconcileWedding(t)
	r := NewReconciler(db.Storage, WithLocation(time.UTC))

	transactions := []model.BankTransaction{
		statementLine("t1", "BLOOM PETAL FLORALS", 1250, "2024-01-16", true),
		statementLine("t2", "HARBOR VIEW CATERING", 4800, "2024-01-21", true),
		statementLine("t3", "LENS STUDIO", 499.99, "2024-01-25", true),
		statementLine("t4", "BLOOM PETAL FLORALS", 1250, "2024-01-17", false),
		statementLine("t5", "SOMEONE ELSE", 4800, "2024-05-20", true),
	}

	result, err := r.Match(context.Background(), fx.Wedding.ID, transactions)
	require.NoError(t, err)

	require.Len(t, result.Matches, 2)
	assert.Equal(t, "t1", result.Matches[0].Transaction.ID)
	assert.Equal(t, fx.Payments[0].ID, result.Matches[0].Payment.ID)
	assert.Equal(t, "Bloom & Petal Florals", result.Matches[0].VendorName)
	assert.Equal(t, 1, result.Matches[0].DaysOff)

	assert.Equal(t, "t2", result.Matches[1].Transaction.ID)
	assert.Equal(t, fx.Payments[1].ID, result.Matches[1].Payment.ID, "closest due date wins")

	var unmatched []string
	for _, tx := range result.Unmatched {
		unmatched = append(unmatched, tx.ID)
	}
	assert.ElementsMatch(t, []string{"t3", "t4", "t5"}, unmatched)
}

func TestReconcilerMatchEachPaymentOnce(t *testing.T) {
	db, fx := seedReconcileWedding(t)
	r := NewReconciler(db.Storage, WithLocation(time.UTC))

	transactions := []model.BankTransaction{
		statementLine("dup-b", "BLOOM PETAL", 1250, "2024-01-18", true),
		statementLine("dup-a", "BLOOM PETAL", 1250, "2024-01-14", true),
	}

	result, err := r.Match(context.Background(), fx.Wedding.ID, transactions)
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, "dup-a", result.Matches[0].Transaction.ID, "earliest line settles first")
	require.Len(t, result.Unmatched, 1)
	assert.Equal(t, "dup-b", result.Unmatched[0].ID)
}

func TestReconcilerWindow(t *testing.T) {
	tests := []struct {
		name    string
		window  time.Duration
		date    string
		matched bool
	}{
		{name: "inside default window", window: DefaultMatchWindow, date: "2024-01-29", matched: true},
		{name: "outside default window", window: DefaultMatchWindow, date: "2024-02-10", matched: false},
		{name: "narrow window", window: 24 * time.Hour, date: "2024-01-17", matched: false},
		{name: "wide window", window: 60 * 24 * time.Hour, date: "2024-03-01", matched: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, fx := seedReconcileWedding(t)
			r := NewReconciler(db.Storage, WithLocation(time.UTC), WithWindow(tt.window))

			result, err := r.Match(context.Background(), fx.Wedding.ID, []model.BankTransaction{
				statementLine("w", "BLOOM AND PETAL", 1250, tt.date, true),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.matched, len(result.Matches) == 1)
		})
	}
}

func TestReconcilerMatchUndatedPayment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := db.Seed(testutil.NewWeddingSeed("Sam & Alex").
		WithVendors("Harbor View Catering").
		WithPayment(testutil.PaymentSeed{Vendor: "Harbor View Catering", Description: "Tasting", Amount: 300}).
		WithPayment(testutil.PaymentSeed{Vendor: "Harbor View Catering", Description: "Linens", DueDate: "2024-03-01", Amount: 300}))
	r := NewReconciler(db.Storage, WithLocation(time.UTC))

	tests := []struct {
		name string
		date string
		want string
	}{
		{name: "dated payment in window wins", date: "2024-03-02", want: "Linens"},
		{name: "undated payment has no window", date: "2025-09-30", want: "Tasting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Match(context.Background(), fx.Wedding.ID, []model.BankTransaction{
				statementLine("u", "HARBOR VIEW CATERING", 300, tt.date, true),
			})
			require.NoError(t, err)
			require.Len(t, result.Matches, 1)
			assert.Equal(t, tt.want, result.Matches[0].Payment.Description)
			assert.Empty(t, result.Unmatched)
		})
	}
}

func TestReconcilerApply(t *testing.T) {
	db, fx := seedReconcileWedding(t)
	ctx := context.Background()
	r := NewReconciler(db.Storage, WithLocation(time.UTC))

	transactions := []model.BankTransaction{
		statementLine("t1", "BLOOM PETAL FLORALS", 1250, "2024-01-16", true),
		statementLine("t2", "UNRELATED", 12.5, "2024-01-16", true),
	}

	result, err := r.Match(ctx, fx.Wedding.ID, transactions)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)

	progress := &countingProgress{}
	inserted, err := r.Apply(ctx, transactions, result.Matches, progress)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	assert.Equal(t, 1, progress.n)

	pending, err := db.Storage.ListPendingPayments(ctx, fx.Wedding.ID)
	require.NoError(t, err)
	assert.Len(t, pending, 3)

	payments, err := db.Storage.ListPayments(ctx, fx.Wedding.ID)
	require.NoError(t, err)
	for _, p := range payments {
		if p.ID == fx.Payments[0].ID {
			require.NotNil(t, p.PaidDate)
			assert.Equal(t, "2024-01-16", *p.PaidDate)
			assert.True(t, p.IsPaid())
		}
	}

	t.Run("reimport is idempotent", func(t *testing.T) {
		again, err := r.Match(ctx, fx.Wedding.ID, transactions)
		require.NoError(t, err)
		assert.Empty(t, again.Matches)

		inserted, err := r.Apply(ctx, transactions, again.Matches, nil)
		require.NoError(t, err)
		assert.Zero(t, inserted)
	})
}

func TestNameTokens(t *testing.T) {
	tests := []struct {
		name     string
		expected []string
	}{
		{name: "Bloom & Petal Florals", expected: []string{"bloom", "petal", "florals"}},
		{name: "The Lens Studio", expected: []string{"lens"}},
		{name: "DJ Co", expected: []string{}},
		{name: "Sweet Tiers Bakery, Inc.", expected: []string{"sweet", "tiers", "bakery"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nameTokens(tt.name))
		})
	}
}
