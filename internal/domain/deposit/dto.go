package deposit

import (
	"github.com/pertashop/backoffice-go/internal/domain/shift"
	"github.com/pertashop/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ItemInput struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

func validateItemInputs(field string, items []ItemInput, errs validator.ValidationErrors) validator.ValidationErrors {
	for _, item := range items {
		if validator.IsEmpty(item.Description) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "item description is required"})
		}
		if item.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "item amount must be non-negative"})
		}
	}
	return errs
}

type CreateDepositRequest struct {
	StaffName  string          `json:"staff_name"`
	Date       string          `json:"date"`
	ClockIn    string          `json:"clock_in"`
	ClockOut   string          `json:"clock_out"`
	MeterStart decimal.Decimal `json:"meter_start"`
	MeterEnd   decimal.Decimal `json:"meter_end"`
	QRISAmount decimal.Decimal `json:"qris_amount"`
	Expenses   []ItemInput     `json:"expenses,omitempty"`
	Income     []ItemInput     `json:"income,omitempty"`
}

func (r *CreateDepositRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffName) {
		errs = append(errs, validator.ValidationError{Field: "staff_name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, err := shift.ParseClock(r.ClockIn); err != nil {
		errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "must be a valid time (HH:MM)"})
	}
	if _, err := shift.ParseClock(r.ClockOut); err != nil {
		errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "must be a valid time (HH:MM)"})
	}
	if r.MeterStart.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "meter_start", Message: "must be non-negative"})
	}
	if r.MeterEnd.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "meter_end", Message: "must be non-negative"})
	}
	if r.MeterEnd.LessThan(r.MeterStart) {
		errs = append(errs, validator.ValidationError{Field: "meter_end", Message: "must be greater than or equal to meter_start"})
	}
	if r.QRISAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "qris_amount", Message: "must be non-negative"})
	}
	errs = validateItemInputs("expenses", r.Expenses, errs)
	errs = validateItemInputs("income", r.Income, errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepositRequest struct {
	ID         string
	StaffName  *string          `json:"staff_name,omitempty"`
	Date       *string          `json:"date,omitempty"`
	ClockIn    *string          `json:"clock_in,omitempty"`
	ClockOut   *string          `json:"clock_out,omitempty"`
	MeterStart *decimal.Decimal `json:"meter_start,omitempty"`
	MeterEnd   *decimal.Decimal `json:"meter_end,omitempty"`
	QRISAmount *decimal.Decimal `json:"qris_amount,omitempty"`
	Expenses   *[]ItemInput     `json:"expenses,omitempty"`
	Income     *[]ItemInput     `json:"income,omitempty"`
}

func (r *UpdateDepositRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StaffName != nil && validator.IsEmpty(*r.StaffName) {
		errs = append(errs, validator.ValidationError{Field: "staff_name", Message: "cannot be empty"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.ClockIn != nil {
		if _, err := shift.ParseClock(*r.ClockIn); err != nil {
			errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "must be a valid time (HH:MM)"})
		}
	}
	if r.ClockOut != nil {
		if _, err := shift.ParseClock(*r.ClockOut); err != nil {
			errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "must be a valid time (HH:MM)"})
		}
	}
	if r.MeterStart != nil && r.MeterStart.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "meter_start", Message: "must be non-negative"})
	}
	if r.MeterEnd != nil && r.MeterEnd.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "meter_end", Message: "must be non-negative"})
	}
	if r.QRISAmount != nil && r.QRISAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "qris_amount", Message: "must be non-negative"})
	}
	if r.Expenses != nil {
		errs = validateItemInputs("expenses", *r.Expenses, errs)
	}
	if r.Income != nil {
		errs = validateItemInputs("income", *r.Income, errs)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepositResponse struct {
	ID               string          `json:"id"`
	StaffName        string          `json:"staff_name"`
	Date             string          `json:"date"`
	ClockIn          string          `json:"clock_in"`
	ClockOut         string          `json:"clock_out"`
	MeterStart       decimal.Decimal `json:"meter_start"`
	MeterEnd         decimal.Decimal `json:"meter_end"`
	TotalLiters      decimal.Decimal `json:"total_liters"`
	GrossAmount      decimal.Decimal `json:"gross_amount"`
	QRISAmount       decimal.Decimal `json:"qris_amount"`
	CashAmount       decimal.Decimal `json:"cash_amount"`
	Expenses         []Item          `json:"expenses"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	Income           []Item          `json:"income"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TotalAmountLabel string          `json:"total_amount_label"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

type DepositFilter struct {
	Month *int
	Year  *int
	Page  int
	Limit int
}

type ListDepositResponse struct {
	Data       []DepositResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
