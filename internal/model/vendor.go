package model

import "time"

// Vendor is a supplier hired for the wedding.
type Vendor struct {
	CreatedAt   time.Time
	ID          string
	WeddingID   string
	Name        string
	Category    string
	ContactName string
	Email       string
	Phone       string
}

// PaymentStatus is the stored lifecycle state of a payment or invoice.
// Display status is derived from it together with the dates.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

// Payment is a scheduled payment to a vendor (deposit, balance, tip).
type Payment struct {
	PaidDate    *string
	CategoryID  *string
	ID          string
	WeddingID   string
	VendorID    string
	Description string
	DueDate     string
	Status      PaymentStatus
	Amount      float64
}

// IsPaid reports whether the stored record says the payment happened.
func (p Payment) IsPaid() bool {
	return p.Status == PaymentPaid || (p.PaidDate != nil && *p.PaidDate != "")
}

// Invoice is a bill issued by a vendor, possibly settled in several payments.
type Invoice struct {
	PaidDate      *string
	ID            string
	VendorID      string
	InvoiceNumber string
	DueDate       string
	Status        PaymentStatus
	Amount        float64
	AmountPaid    float64
}
