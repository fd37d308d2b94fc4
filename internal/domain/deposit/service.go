package deposit

import "context"

type Service interface {
	Create(ctx context.Context, req CreateDepositRequest) (DepositResponse, error)
	Get(ctx context.Context, id string) (DepositResponse, error)
	List(ctx context.Context, filter DepositFilter) (ListDepositResponse, error)
	Update(ctx context.Context, req UpdateDepositRequest) (DepositResponse, error)
	Delete(ctx context.Context, id string) error
	Preview(ctx context.Context, req CreateDepositRequest) (Calculation, error)
}
