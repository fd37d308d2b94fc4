package overtime

import (
	"github.com/pertashop/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CreateRequestRequest accepts the duration as either minutes or decimal
// hours; exactly one must be supplied. The service normalizes it.
type CreateRequestRequest struct {
	StaffID string           `json:"staff_id"`
	Date    string           `json:"date"`
	Minutes *int             `json:"minutes,omitempty"`
	Hours   *decimal.Decimal `json:"hours,omitempty"`
	Reason  string           `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Minutes == nil && r.Hours == nil {
		errs = append(errs, validator.ValidationError{Field: "minutes", Message: "either minutes or hours is required"})
	}
	if r.Minutes != nil && r.Hours != nil {
		errs = append(errs, validator.ValidationError{Field: "minutes", Message: "provide minutes or hours, not both"})
	}
	if r.Minutes != nil && *r.Minutes <= 0 {
		errs = append(errs, validator.ValidationError{Field: "minutes", Message: "must be positive"})
	}
	if r.Hours != nil && !r.Hours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be positive"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequestRequest struct {
	ID     string
	Reason string `json:"reason"`
}

func (r *RejectRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID             string          `json:"id"`
	StaffID        string          `json:"staff_id"`
	StaffName      string          `json:"staff_name"`
	Date           string          `json:"date"`
	Minutes        int             `json:"minutes"`
	Hours          decimal.Decimal `json:"hours"`
	DurationLabel  string          `json:"duration_label"`
	Reason         string          `json:"reason"`
	Status         string          `json:"status"`
	ReviewedBy     *string         `json:"reviewed_by,omitempty"`
	ReviewedAt     *string         `json:"reviewed_at,omitempty"`
	ReviewNote     *string         `json:"review_note,omitempty"`
	CreatedAt      string          `json:"created_at"`
}

type RequestFilter struct {
	StaffID *string
	Status  *string
	Month   *int
	Year    *int
	Page    int
	Limit   int
}

type ListRequestResponse struct {
	Data       []RequestResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
