package receivable

import (
	"github.com/pertashop/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	Name    string  `json:"name"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (r *CreateCustomerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCustomerRequest struct {
	ID      string
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (r *UpdateCustomerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateReceivableRequest struct {
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    *string         `json:"due_date,omitempty"`
	Note       *string         `json:"note,omitempty"`
}

func (r *CreateReceivableRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CustomerID) {
		errs = append(errs, validator.ValidationError{Field: "customer_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordPaymentRequest struct {
	ReceivableID string          `json:"-"`
	Amount       decimal.Decimal `json:"amount"`
	PaidAt       *string         `json:"paid_at,omitempty"`
	Method       string          `json:"method"`
	Note         *string         `json:"note,omitempty"`
}

func (r *RecordPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if r.PaidAt != nil {
		if _, ok := validator.IsValidDate(*r.PaidAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "paid_at", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if !validator.IsEmpty(r.Method) && !validator.IsInSlice(r.Method, []string{"cash", "transfer", "qris"}) {
		errs = append(errs, validator.ValidationError{Field: "method", Message: "must be one of: cash, transfer, qris"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CustomerResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Phone            *string         `json:"phone,omitempty"`
	Address          *string         `json:"address,omitempty"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

type PaymentResponse struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	PaidAt string          `json:"paid_at"`
	Method string          `json:"method"`
	Note   *string         `json:"note,omitempty"`
}

type ReceivableResponse struct {
	ID               string            `json:"id"`
	CustomerID       string            `json:"customer_id"`
	CustomerName     *string           `json:"customer_name,omitempty"`
	Amount           decimal.Decimal   `json:"amount"`
	PaidTotal        decimal.Decimal   `json:"paid_total"`
	Outstanding      decimal.Decimal   `json:"outstanding"`
	OutstandingLabel string            `json:"outstanding_label"`
	DueDate          *string           `json:"due_date,omitempty"`
	Note             *string           `json:"note,omitempty"`
	Status           Status            `json:"status"`
	Payments         []PaymentResponse `json:"payments,omitempty"`
	CreatedAt        string            `json:"created_at"`
	UpdatedAt        string            `json:"updated_at"`
}

type ReceivableFilter struct {
	CustomerID *string
	Status     *Status
	Page       int
	Limit      int
}

type ListReceivableResponse struct {
	Data       []ReceivableResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}
