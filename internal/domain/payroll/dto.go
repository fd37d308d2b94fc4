package payroll

import (
	"github.com/pertashop/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateRequest struct {
	PeriodMonth int      `json:"period_month"`
	PeriodYear  int      `json:"period_year"`
	StaffIDs    []string `json:"staff_ids,omitempty"` // Empty = all active staff
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2020 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2020 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LineItemInput carries one bonus or deduction entry. Zero and negative
// amounts are rejected here, before they ever reach the composer.
type LineItemInput struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

func validateItems(field string, items []LineItemInput, errs validator.ValidationErrors) validator.ValidationErrors {
	for _, item := range items {
		if validator.IsEmpty(item.Name) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "item name is required"})
		}
		if !item.Amount.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "item amount must be positive"})
		}
	}
	return errs
}

type UpdateRecordRequest struct {
	ID         string
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
	Bonuses    *[]LineItemInput `json:"bonuses,omitempty"`
	Deductions *[]LineItemInput `json:"deductions,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.Bonuses != nil {
		errs = validateItems("bonuses", *r.Bonuses, errs)
	}
	if r.Deductions != nil {
		errs = validateItems("deductions", *r.Deductions, errs)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID                 string          `json:"id"`
	StaffID            string          `json:"staff_id"`
	StaffName          string          `json:"staff_name"`
	PeriodMonth        int             `json:"period_month"`
	PeriodYear         int             `json:"period_year"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	OvertimeMinutes    int             `json:"overtime_minutes"`
	OvertimeHourlyRate decimal.Decimal `json:"overtime_hourly_rate"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	Bonuses            []LineItem      `json:"bonuses"`
	Deductions         []LineItem      `json:"deductions"`
	TotalBonus         decimal.Decimal `json:"total_bonus"`
	TotalDeduction     decimal.Decimal `json:"total_deduction"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	TotalAmountLabel   string          `json:"total_amount_label"`
	Status             string          `json:"status"`
	PaidAt             *string         `json:"paid_at,omitempty"`
	PaidBy             *string         `json:"paid_by,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
}

type Filter struct {
	PeriodMonth *int
	PeriodYear  *int
	Status      *string
	StaffID     *string
	Page        int
	Limit       int
}

type ListRecordResponse struct {
	Data       []RecordResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}
