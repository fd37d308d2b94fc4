package staff

import (
	"github.com/pertashop/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var validRoles = []string{"operator", "admin", "supervisor", "owner"}

type CreateStaffRequest struct {
	Name               string           `json:"name"`
	Phone              *string          `json:"phone,omitempty"`
	Role               string           `json:"role"`
	BaseSalary         *decimal.Decimal `json:"base_salary,omitempty"`
	OvertimeHourlyRate *decimal.Decimal `json:"overtime_hourly_rate,omitempty"`
	JoinDate           *string          `json:"join_date,omitempty"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsInSlice(r.Role, validRoles) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of: operator, admin, supervisor, owner"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.OvertimeHourlyRate != nil && r.OvertimeHourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hourly_rate", Message: "must be non-negative"})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStaffRequest struct {
	ID                 string
	Name               *string          `json:"name,omitempty"`
	Phone              *string          `json:"phone,omitempty"`
	Role               *string          `json:"role,omitempty"`
	BaseSalary         *decimal.Decimal `json:"base_salary,omitempty"`
	OvertimeHourlyRate *decimal.Decimal `json:"overtime_hourly_rate,omitempty"`
	JoinDate           *string          `json:"join_date,omitempty"`
	IsActive           *bool            `json:"is_active,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, validRoles) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of: operator, admin, supervisor, owner"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.OvertimeHourlyRate != nil && r.OvertimeHourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hourly_rate", Message: "must be non-negative"})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StaffResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Phone              *string          `json:"phone,omitempty"`
	Role               string           `json:"role"`
	BaseSalary         *decimal.Decimal `json:"base_salary,omitempty"`
	OvertimeHourlyRate *decimal.Decimal `json:"overtime_hourly_rate,omitempty"`
	JoinDate           *string          `json:"join_date,omitempty"`
	IsActive           bool             `json:"is_active"`
	CreatedAt          string           `json:"created_at"`
	UpdatedAt          string           `json:"updated_at"`
}

type StaffFilter struct {
	Search   *string
	Role     *string
	IsActive *bool
	Page     int
	Limit    int
}

type ListStaffResponse struct {
	Data       []StaffResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}
