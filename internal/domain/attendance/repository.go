package attendance

import (
	"context"
	"time"
)

// Repository defines data access methods for attendance records.
type Repository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	GetByStaffDate(ctx context.Context, staffID string, date time.Time) (Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	Update(ctx context.Context, att Attendance) error
	Delete(ctx context.Context, id string) error
	SummarizeMonth(ctx context.Context, month, year int, staffIDs []string) ([]MonthlySummary, error)
}
