package overtime

import "context"

// RequestRepository defines data access methods for overtime requests.
type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter RequestFilter) ([]Request, int64, error)
	UpdateStatus(ctx context.Context, req Request) error
	Delete(ctx context.Context, id string) error
}
