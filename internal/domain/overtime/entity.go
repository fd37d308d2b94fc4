package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus enum
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Request is an employee-submitted overtime entry. It is stored in its
// normalized form (minutes plus rounded hours) regardless of whether the
// employee typed minutes or decimal hours.
type Request struct {
	ID         string
	StaffID    string
	Date       time.Time
	Minutes    int
	Hours      decimal.Decimal
	Reason     string
	Status     RequestStatus
	ReviewedBy *string
	ReviewedAt *time.Time
	ReviewNote *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	StaffName *string
}
