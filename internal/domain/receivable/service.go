package receivable

import "context"

type Service interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error)
	GetCustomer(ctx context.Context, id string) (CustomerResponse, error)
	ListCustomers(ctx context.Context, page, limit int) ([]CustomerResponse, int64, error)
	UpdateCustomer(ctx context.Context, req UpdateCustomerRequest) (CustomerResponse, error)
	DeleteCustomer(ctx context.Context, id string) error

	Create(ctx context.Context, req CreateReceivableRequest) (ReceivableResponse, error)
	Get(ctx context.Context, id string) (ReceivableResponse, error)
	List(ctx context.Context, filter ReceivableFilter) (ListReceivableResponse, error)
	Delete(ctx context.Context, id string) error

	RecordPayment(ctx context.Context, req RecordPaymentRequest) (ReceivableResponse, error)
	Aging(ctx context.Context) (AgingSummary, error)
}
