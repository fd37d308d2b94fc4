package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

// Staff is one employee of the store.
type Staff struct {
	ID                 string
	Name               string
	Phone              *string
	Role               string
	BaseSalary         *decimal.Decimal
	OvertimeHourlyRate *decimal.Decimal
	JoinDate           *time.Time
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
