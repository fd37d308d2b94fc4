package payroll

import "context"

// Repository defines data access methods for payroll records.
type Repository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	GetByStaffPeriod(ctx context.Context, staffID string, month, year int) (Record, error)
	List(ctx context.Context, filter Filter) ([]Record, int64, error)
	Update(ctx context.Context, record Record) error
	Delete(ctx context.Context, id string) error
	GetPeriodSummary(ctx context.Context, month, year int) (PeriodSummary, error)
}
