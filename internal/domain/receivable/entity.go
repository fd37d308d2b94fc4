package receivable

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusOutstanding Status = "outstanding"
	StatusPaid        Status = "paid"
)

// Customer is a piutang counterparty.
type Customer struct {
	ID        string
	Name      string
	Phone     *string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Receivable is one amount owed by a customer. Outstanding is derived:
// Amount minus the sum of recorded payments.
type Receivable struct {
	ID          string
	CustomerID  string
	Amount      decimal.Decimal
	PaidTotal   decimal.Decimal
	Outstanding decimal.Decimal
	DueDate     *time.Time
	Note        *string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	CustomerName *string
}

// Payment is one installment against a receivable.
type Payment struct {
	ID           string
	ReceivableID string
	Amount       decimal.Decimal
	PaidAt       time.Time
	Method       string
	Note         *string
	CreatedAt    time.Time
}

// AgingSummary groups outstanding amounts by how far past due they are.
type AgingSummary struct {
	Current   decimal.Decimal `json:"current"`
	Bucket30  decimal.Decimal `json:"bucket_30"`
	Bucket60  decimal.Decimal `json:"bucket_60"`
	Bucket90  decimal.Decimal `json:"bucket_90"`
	Bucket120 decimal.Decimal `json:"bucket_120"`
}
