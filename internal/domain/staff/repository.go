package staff

import "context"

// Repository defines data access methods for staff.
type Repository interface {
	Create(ctx context.Context, s Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	GetByName(ctx context.Context, name string) (Staff, error)
	List(ctx context.Context, filter StaffFilter) ([]Staff, int64, error)
	ListActiveIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, s Staff) error
	Delete(ctx context.Context, id string) error
}
