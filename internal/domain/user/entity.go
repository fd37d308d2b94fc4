package user

import "time"

type Role string

const (
	RoleOwner Role = "owner" // Full access, can manage users and pay payroll
	RoleAdmin Role = "admin" // Day to day operations, approvals
	RoleStaff Role = "staff" // Can view own data and submit requests
)

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	StaffID      *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOwner checks if user is the store owner
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// IsAdmin checks if user is admin or owner
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleOwner
}

// CanApprove checks if user can approve overtime requests
func (u *User) CanApprove() bool {
	return u.IsAdmin()
}

// CanPayPayroll checks if user can mark payroll records paid
func (u *User) CanPayPayroll() bool {
	return u.IsOwner()
}
