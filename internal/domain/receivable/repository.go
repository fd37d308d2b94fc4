package receivable

import (
	"context"

	"github.com/shopspring/decimal"
)

// CustomerRepository defines data access methods for customers.
type CustomerRepository interface {
	Create(ctx context.Context, c Customer) (Customer, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	List(ctx context.Context, page, limit int) ([]Customer, int64, error)
	Update(ctx context.Context, c Customer) error
	Delete(ctx context.Context, id string) error
}

// Repository defines data access methods for receivables and their payments.
type Repository interface {
	Create(ctx context.Context, r Receivable) (Receivable, error)
	GetByID(ctx context.Context, id string) (Receivable, error)
	List(ctx context.Context, filter ReceivableFilter) ([]Receivable, int64, error)
	ListOutstanding(ctx context.Context) ([]Receivable, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error

	CreatePayment(ctx context.Context, p Payment) (Payment, error)
	ListPayments(ctx context.Context, receivableID string) ([]Payment, error)
	SumOutstandingByCustomer(ctx context.Context, customerID string) (decimal.Decimal, error)
}
