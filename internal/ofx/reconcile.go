package ofx

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/Veraticus/vowsync/internal/model"
	"github.com/Veraticus/vowsync/internal/service"
	"github.com/Veraticus/vowsync/internal/status"
	"golang.org/x/text/cases"
)

// DefaultMatchWindow is how far a statement date may sit from a payment's
// due date and still settle it.
const DefaultMatchWindow = 14 * 24 * time.Hour

const paidDateLayout = "2006-01-02"

// Words too common in vendor names to identify one.
var vendorStopWords = map[string]bool{
	"the": true, "and": true, "llc": true, "inc": true, "co": true,
	"company": true, "studio": true, "studios": true, "events": true,
}

// Match pairs a statement line with the pending payment it settles.
type Match struct {
	Transaction model.BankTransaction
	Payment     model.Payment
	VendorName  string
	DaysOff     int
}

// Result is the outcome of matching a statement against pending payments.
type Result struct {
	Matches   []Match
	Unmatched []model.BankTransaction
}

// Progress receives one Add(1) per settled payment.
type Progress interface {
	Add(num int) error
}

// Reconciler settles pending vendor payments from bank statement lines.
type Reconciler struct {
	store  service.Storage
	loc    *time.Location
	window time.Duration
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithWindow overrides DefaultMatchWindow.
func WithWindow(d time.Duration) Option {
	return func(r *Reconciler) { r.window = d }
}

// WithLocation sets the zone used to read payment due dates.
func WithLocation(loc *time.Location) Option {
	return func(r *Reconciler) { r.loc = loc }
}

// NewReconciler creates a reconciler backed by store.
func NewReconciler(store service.Storage, opts ...Option) *Reconciler {
	r := &Reconciler{store: store, loc: time.Local, window: DefaultMatchWindow}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type candidate struct {
	payment model.Payment
	vendor  string
	tokens  []string
	due     time.Time
	dated   bool
	used    bool
}

// Match pairs debit lines with pending payments of the same amount to the
// cent whose vendor name appears in the payee, within the date window. Each
// payment settles at most once; when several qualify the closest due date
// wins. Payments with no due date match on amount and vendor alone. Lines
// are considered in date order so earlier payments settle first.
func (r *Reconciler) Match(ctx context.Context, weddingID string, transactions []model.BankTransaction) (*Result, error) {
	pending, err := r.store.ListPendingPayments(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending payments: %w", err)
	}
	vendors, err := r.store.ListVendors(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}

	names := make(map[string]string, len(vendors))
	for _, v := range vendors {
		names[v.ID] = v.Name
	}

	candidates := make([]*candidate, 0, len(pending))
	for _, p := range pending {
		name := names[p.VendorID]
		c := &candidate{payment: p, vendor: name, tokens: nameTokens(name)}
		if strings.TrimSpace(p.DueDate) != "" {
			due, err := status.ParseDate(p.DueDate, r.loc)
			if err != nil {
				slog.Warn("Skipping payment with unreadable due date",
					"payment_id", p.ID,
					"due_date", p.DueDate,
					"error", err)
				continue
			}
			c.due, c.dated = due, true
		}
		candidates = append(candidates, c)
	}

	ordered := make([]model.BankTransaction, len(transactions))
	copy(ordered, transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	result := &Result{}
	for _, txn := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		best := r.bestCandidate(txn, candidates)
		if best == nil {
			result.Unmatched = append(result.Unmatched, txn)
			continue
		}
		best.used = true
		m := Match{Transaction: txn, Payment: best.payment, VendorName: best.vendor}
		if best.dated {
			m.DaysOff = int(math.Round(math.Abs(txn.Date.Sub(best.due).Hours()) / 24))
		}
		result.Matches = append(result.Matches, m)
	}

	slog.Info("Matched statement against pending payments",
		"wedding_id", weddingID,
		"transactions", len(transactions),
		"pending", len(candidates),
		"matched", len(result.Matches))

	return result, nil
}

func (r *Reconciler) bestCandidate(txn model.BankTransaction, candidates []*candidate) *candidate {
	if !txn.Debit {
		return nil
	}
	text := fold(txn.Payee + " " + txn.Name)
	cents := toCents(txn.Amount)

	var best, undated *candidate
	var bestGap time.Duration
	for _, c := range candidates {
		if c.used || toCents(c.payment.Amount) != cents || !mentions(text, c.tokens) {
			continue
		}
		if !c.dated {
			if undated == nil {
				undated = c
			}
			continue
		}
		gap := txn.Date.Sub(c.due)
		if gap < 0 {
			gap = -gap
		}
		if gap > r.window {
			continue
		}
		if best == nil || gap < bestGap {
			best, bestGap = c, gap
		}
	}
	// Payments without a due date have no window; a dated match is preferred.
	if best == nil {
		return undated
	}
	return best
}

// Apply records every statement line and marks matched payments paid on the
// statement date, all in one transaction. It returns the number of lines
// that were new.
func (r *Reconciler) Apply(ctx context.Context, transactions []model.BankTransaction, matches []Match, progress Progress) (int, error) {
	tx, err := r.store.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inserted := 0
	if len(transactions) > 0 {
		inserted, err = tx.SaveBankTransactions(ctx, transactions)
		if err != nil {
			return 0, fmt.Errorf("failed to save statement: %w", err)
		}
	}

	for _, m := range matches {
		if err := tx.MarkPaymentPaid(ctx, m.Payment.ID, m.Transaction.Date.Format(paidDateLayout)); err != nil {
			return 0, fmt.Errorf("failed to settle payment %s: %w", m.Payment.ID, err)
		}
		if progress != nil {
			_ = progress.Add(1)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit reconciliation: %w", err)
	}

	slog.Info("Applied reconciliation",
		"new_transactions", inserted,
		"payments_settled", len(matches))
	return inserted, nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// nameTokens splits a vendor name into folded alphanumeric words that are
// distinctive enough to look for in a statement line.
func nameTokens(name string) []string {
	words := strings.FieldsFunc(fold(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := words[:0]
	for _, w := range words {
		if len(w) < 3 || vendorStopWords[w] {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

func mentions(text string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}
