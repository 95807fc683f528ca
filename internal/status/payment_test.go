package status

import (
	"testing"
	"time"

	"github.com/Veraticus/vowsync/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)

func strPtr(s string) *string {
	return &s
}

func TestClassifyPayment(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		payment   model.Payment
		wantKind  Kind
		wantLabel string
		wantTier  Tier
		wantDays  int
	}{
		{
			name:      "paid by status",
			payment:   model.Payment{Status: model.PaymentPaid, DueDate: "2026-06-01"},
			wantKind:  KindPaid,
			wantLabel: "Paid",
			wantTier:  TierSuccess,
		},
		{
			name:      "paid date beats overdue",
			payment:   model.Payment{Status: model.PaymentPending, DueDate: "2026-01-01", PaidDate: strPtr("2026-01-02")},
			wantKind:  KindPaid,
			wantLabel: "Paid",
			wantTier:  TierSuccess,
		},
		{
			name:      "cancelled beats overdue",
			payment:   model.Payment{Status: model.PaymentCancelled, DueDate: "2026-01-01"},
			wantKind:  KindCancelled,
			wantLabel: "Cancelled",
			wantTier:  TierMuted,
		},
		{
			name:      "overdue by one day",
			payment:   model.Payment{Status: model.PaymentPending, DueDate: "2026-06-14"},
			wantKind:  KindOverdue,
			wantLabel: "Overdue by 1 day",
			wantTier:  TierDanger,
			wantDays:  1,
		},
		{
			name:      "overdue by several days",
			payment:   model.Payment{Status: model.PaymentPending, DueDate: "2026-06-05"},
			wantKind:  KindOverdue,
			wantLabel: "Overdue by 10 days",
			wantTier:  TierDanger,
			wantDays:  10,
		},
		{
			name:      "due today",
			payment:   model.Payment{Status: model.PaymentPending, DueDate: "2026-06-15"},
			wantKind:  KindDueSoon,
			wantLabel: "Due today",
			wantTier:  TierWarning,
		},
		{
			name:      "due tomorrow",
			payment:   model.Payment{Status: model.PaymentPending, DueDate: "2026-06-16"},
			wantKind:  KindDueSoon,
			wantLabel: "Due tomorrow",
			wantTier:  TierWarning,
			wantDays:  1,
		},
		{
			name:      "due in seven days",
			payment:   model.Payment{Status: model.PaymentPending, DueDate: "2026-06-22"},
			wantKind:  KindDueSoon,
			wantLabel: "Due in 7 days",
			wantTier:  TierWarning,
			wantDays:  7,
		},
		{
			name:      "due in eight days is pending",
			payment:   model.Payment{Status: model.PaymentPending, DueDate: "2026-06-23"},
			wantKind:  KindPending,
			wantLabel: "Pending",
			wantTier:  TierNeutral,
		},
		{
			name:      "no due date is pending",
			payment:   model.Payment{Status: model.PaymentPending},
			wantKind:  KindPending,
			wantLabel: "Pending",
			wantTier:  TierNeutral,
		},
		{
			name:      "timestamp due date uses calendar day",
			payment:   model.Payment{Status: model.PaymentPending, DueDate: "2026-06-14T23:59:00Z"},
			wantKind:  KindOverdue,
			wantLabel: "Overdue by 1 day",
			wantTier:  TierDanger,
			wantDays:  1,
		},
		{
			name:      "negative amount classified as-is",
			payment:   model.Payment{Status: model.PaymentPending, DueDate: "2026-06-17", Amount: -50},
			wantKind:  KindDueSoon,
			wantLabel: "Due in 2 days",
			wantTier:  TierWarning,
			wantDays:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyPayment(cfg, tt.payment, testToday)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantTier, got.Tier)
			assert.Equal(t, tt.wantDays, got.Days)
		})
	}
}

func TestClassifyPayment_InvalidDate(t *testing.T) {
	_, err := ClassifyPayment(DefaultConfig(), model.Payment{ID: "p1", DueDate: "next tuesday"}, testToday)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
	assert.Contains(t, err.Error(), "next tuesday")
}

func TestClassifyPayment_ZeroConfigUsesDefaultWindow(t *testing.T) {
	got, err := ClassifyPayment(Config{}, model.Payment{DueDate: "2026-06-18"}, testToday)
	require.NoError(t, err)
	assert.Equal(t, KindDueSoon, got.Kind)
	assert.Equal(t, "Due in 3 days", got.Label)

	got, err = ClassifyPayment(Config{}, model.Payment{DueDate: "2026-06-23"}, testToday)
	require.NoError(t, err)
	assert.Equal(t, KindPending, got.Kind)
}

func TestClassifyPayment_DueSoonDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DueSoonDays = DueSoonDisabled

	for _, due := range []string{"2026-06-15", "2026-06-18"} {
		got, err := ClassifyPayment(cfg, model.Payment{DueDate: due}, testToday)
		require.NoError(t, err)
		assert.Equal(t, KindPending, got.Kind, due)
	}

	got, err := ClassifyPayment(cfg, model.Payment{DueDate: "2026-06-14"}, testToday)
	require.NoError(t, err)
	assert.Equal(t, KindOverdue, got.Kind)
}

func TestClassifyPayment_FarPastDueDate(t *testing.T) {
	got, err := ClassifyPayment(DefaultConfig(), model.Payment{DueDate: "1700-01-01"}, testToday)
	require.NoError(t, err)
	assert.Equal(t, "Overdue by 119234 days", got.Label)
	assert.Equal(t, 119234, got.Days)
}

func TestClassifyPayment_PaidSkipsDateParsing(t *testing.T) {
	got, err := ClassifyPayment(DefaultConfig(), model.Payment{Status: model.PaymentPaid, DueDate: "garbage"}, testToday)
	require.NoError(t, err)
	assert.Equal(t, KindPaid, got.Kind)
}

func TestClassifyPayment_DayBoundaryInLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	cfg := DefaultConfig()
	cfg.Location = loc

	// 02:00 UTC on the 16th is still the 15th five hours west.
	today := time.Date(2026, 6, 16, 2, 0, 0, 0, time.UTC)

	got, err := ClassifyPayment(cfg, model.Payment{DueDate: "2026-06-15"}, today)
	require.NoError(t, err)
	assert.Equal(t, KindDueSoon, got.Kind)
	assert.Equal(t, "Due today", got.Label)
}

func TestClassifyInvoice(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		invoice   model.Invoice
		wantKind  Kind
		wantLabel string
	}{
		{
			name:      "paid by status",
			invoice:   model.Invoice{Status: model.PaymentPaid, Amount: 100, DueDate: "2026-01-01"},
			wantKind:  KindPaid,
			wantLabel: "Paid",
		},
		{
			name:      "paid in full by amount",
			invoice:   model.Invoice{Status: model.PaymentPending, Amount: 100, AmountPaid: 100, DueDate: "2026-01-01"},
			wantKind:  KindPaid,
			wantLabel: "Paid",
		},
		{
			name:      "paid date set",
			invoice:   model.Invoice{Amount: 100, PaidDate: strPtr("2026-06-01"), DueDate: "2026-01-01"},
			wantKind:  KindPaid,
			wantLabel: "Paid",
		},
		{
			name:      "cancelled",
			invoice:   model.Invoice{Status: model.PaymentCancelled, Amount: 100, DueDate: "2026-01-01"},
			wantKind:  KindCancelled,
			wantLabel: "Cancelled",
		},
		{
			name:      "overdue beats partially paid",
			invoice:   model.Invoice{Amount: 100, AmountPaid: 40, DueDate: "2026-06-12"},
			wantKind:  KindOverdue,
			wantLabel: "Overdue by 3 days",
		},
		{
			name:      "due soon beats partially paid",
			invoice:   model.Invoice{Amount: 100, AmountPaid: 40, DueDate: "2026-06-16"},
			wantKind:  KindDueSoon,
			wantLabel: "Due tomorrow",
		},
		{
			name:      "partially paid",
			invoice:   model.Invoice{Amount: 800, AmountPaid: 250, DueDate: "2026-09-01"},
			wantKind:  KindPartiallyPaid,
			wantLabel: "Partially paid ($250.00 of $800.00)",
		},
		{
			name:      "unpaid",
			invoice:   model.Invoice{Amount: 800, DueDate: "2026-09-01"},
			wantKind:  KindUnpaid,
			wantLabel: "Unpaid",
		},
		{
			name:      "zero amount is not paid in full",
			invoice:   model.Invoice{DueDate: "2026-09-01"},
			wantKind:  KindUnpaid,
			wantLabel: "Unpaid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyInvoice(cfg, tt.invoice, testToday)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantLabel, got.Label)
		})
	}
}

func TestClassifyInvoice_InvalidDate(t *testing.T) {
	_, err := ClassifyInvoice(DefaultConfig(), model.Invoice{InvoiceNumber: "INV-7", DueDate: "31/12/2026"}, testToday)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
	assert.Contains(t, err.Error(), "INV-7")
}

func TestDisplayStatus_Predicates(t *testing.T) {
	assert.True(t, DisplayStatus{Kind: KindOverdue}.IsOverdue())
	assert.True(t, DisplayStatus{Kind: KindOverdue}.NeedsAttention())
	assert.True(t, DisplayStatus{Kind: KindDueSoon}.NeedsAttention())
	assert.False(t, DisplayStatus{Kind: KindPending}.NeedsAttention())
	assert.False(t, DisplayStatus{Kind: KindPaid}.IsOverdue())
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "danger", TierDanger.String())
	assert.Equal(t, "muted", TierMuted.String())
	assert.Equal(t, "Unknown(42)", Tier(42).String())
}
