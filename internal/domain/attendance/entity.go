package attendance

import (
	"time"
)

// Status enum
type Status string

const (
	StatusPresent Status = "present"
	StatusLeave   Status = "leave"
	StatusAbsent  Status = "absent"
	StatusUnset   Status = ""
)

// Attendance is one employee's record for one work day. Check-in and
// check-out are times of day ("HH:MM"); LateMinutes and OvertimeMinutes
// are always derived from them plus the shift tag, never entered
// directly, and are recomputed whenever either time changes.
type Attendance struct {
	ID              string
	StaffID         string
	Date            time.Time
	CheckIn         *string
	CheckOut        *string
	ShiftTag        *string
	LateMinutes     int
	OvertimeMinutes int
	Status          Status
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	StaffName *string
}

// MonthlySummary aggregates one staff member's attendance for a month.
// Feeds payroll generation.
type MonthlySummary struct {
	StaffID              string `json:"staff_id"`
	StaffName            string `json:"staff_name"`
	DaysPresent          int    `json:"days_present"`
	DaysLeave            int    `json:"days_leave"`
	DaysAbsent           int    `json:"days_absent"`
	TotalLateMinutes     int    `json:"total_late_minutes"`
	TotalOvertimeMinutes int    `json:"total_overtime_minutes"`
}
