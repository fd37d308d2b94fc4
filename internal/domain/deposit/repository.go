package deposit

import "context"

// Repository defines data access methods for daily deposits.
type Repository interface {
	Create(ctx context.Context, dep Deposit) (Deposit, error)
	GetByID(ctx context.Context, id string) (Deposit, error)
	List(ctx context.Context, filter DepositFilter) ([]Deposit, int64, error)
	Update(ctx context.Context, dep Deposit) error
	Delete(ctx context.Context, id string) error
}
