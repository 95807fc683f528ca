package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/vowsync/internal/model"
)

// ClassifyPayment derives the display status of a scheduled vendor payment.
// Precedence: paid, cancelled, overdue, due soon, pending.
func ClassifyPayment(cfg Config, p model.Payment, today time.Time) (DisplayStatus, error) {
	if p.IsPaid() {
		return DisplayStatus{Kind: KindPaid, Label: "Paid", Tier: TierSuccess}, nil
	}
	if p.Status == model.PaymentCancelled {
		return DisplayStatus{Kind: KindCancelled, Label: "Cancelled", Tier: TierMuted}, nil
	}

	st, matched, err := classifyDue(cfg, p.DueDate, today)
	if err != nil {
		return DisplayStatus{}, fmt.Errorf("payment %s: %w", p.ID, err)
	}
	if matched {
		return st, nil
	}

	return DisplayStatus{Kind: KindPending, Label: "Pending", Tier: TierNeutral}, nil
}

// ClassifyInvoice derives the display status of a vendor invoice.
// Precedence: paid, cancelled, overdue, due soon, partially paid, unpaid.
func ClassifyInvoice(cfg Config, inv model.Invoice, today time.Time) (DisplayStatus, error) {
	if invoicePaid(inv) {
		return DisplayStatus{Kind: KindPaid, Label: "Paid", Tier: TierSuccess}, nil
	}
	if inv.Status == model.PaymentCancelled {
		return DisplayStatus{Kind: KindCancelled, Label: "Cancelled", Tier: TierMuted}, nil
	}

	st, matched, err := classifyDue(cfg, inv.DueDate, today)
	if err != nil {
		return DisplayStatus{}, fmt.Errorf("invoice %s: %w", inv.InvoiceNumber, err)
	}
	if matched {
		return st, nil
	}

	if inv.AmountPaid > 0 {
		return DisplayStatus{
			Kind: KindPartiallyPaid,
			Label: fmt.Sprintf("Partially paid (%s of %s)",
				FormatCurrency(cfg, inv.AmountPaid), FormatCurrency(cfg, inv.Amount)),
			Tier: TierInfo,
		}, nil
	}

	return DisplayStatus{Kind: KindUnpaid, Label: "Unpaid", Tier: TierNeutral}, nil
}

func invoicePaid(inv model.Invoice) bool {
	if inv.Status == model.PaymentPaid {
		return true
	}
	if inv.PaidDate != nil && *inv.PaidDate != "" {
		return true
	}
	return inv.Amount > 0 && inv.AmountPaid >= inv.Amount
}

// classifyDue evaluates the overdue and due-soon rungs of the waterfall.
// An empty due date matches neither.
func classifyDue(cfg Config, dueDate string, today time.Time) (DisplayStatus, bool, error) {
	if strings.TrimSpace(dueDate) == "" {
		return DisplayStatus{}, false, nil
	}

	loc := cfg.location()
	due, err := ParseDate(dueDate, loc)
	if err != nil {
		return DisplayStatus{}, false, err
	}

	daysUntil := daysBetween(calendarDay(today, loc), due)
	switch {
	case daysUntil < 0:
		days := -daysUntil
		return DisplayStatus{Kind: KindOverdue, Label: overdueLabel(days), Tier: TierDanger, Days: days}, true, nil
	case daysUntil <= cfg.dueSoonDays():
		return DisplayStatus{Kind: KindDueSoon, Label: dueSoonLabel(daysUntil), Tier: TierWarning, Days: daysUntil}, true, nil
	default:
		return DisplayStatus{}, false, nil
	}
}
