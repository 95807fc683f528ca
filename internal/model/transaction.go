package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// BankTransaction is a single line of an imported bank statement, used to
// reconcile scheduled vendor payments.
type BankTransaction struct {
	Date      time.Time
	ID        string
	Name      string // Raw statement description
	Payee     string // Cleaned payee name
	AccountID string
	Hash      string
	Type      string // DEBIT, CHECK, PAYMENT, ...
	CheckNum  string
	Amount    float64 // Always positive; Debit tells the direction
	Debit     bool
}

// GenerateHash creates a unique hash for duplicate detection.
func (t *BankTransaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Payee,
		t.AccountID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
