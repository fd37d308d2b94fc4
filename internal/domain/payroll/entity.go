package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// LineItem is a named bonus or deduction entry. Amounts are always
// positive; the sign comes from which list the item lives in.
type LineItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Record is one employee's payroll for a calendar month.
//
// TotalAmount is always derived: base + overtime pay + bonuses -
// deductions. It is recomputed on every mutation, never edited directly.
// A negative total is legal when deductions exceed earnings.
type Record struct {
	ID                 string
	StaffID            string
	PeriodMonth        int
	PeriodYear         int
	BaseSalary         decimal.Decimal
	OvertimeMinutes    int
	OvertimeHourlyRate decimal.Decimal
	OvertimePay        decimal.Decimal
	Bonuses            []LineItem
	Deductions         []LineItem
	TotalBonus         decimal.Decimal
	TotalDeduction     decimal.Decimal
	TotalAmount        decimal.Decimal
	Status             Status
	PaidAt             *time.Time
	PaidBy             *string
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined fields
	StaffName *string
}

// PeriodSummary aggregates a month's payroll run.
type PeriodSummary struct {
	PeriodMonth   int             `json:"period_month"`
	PeriodYear    int             `json:"period_year"`
	TotalStaff    int             `json:"total_staff"`
	TotalBase     decimal.Decimal `json:"total_base_salary"`
	TotalOvertime decimal.Decimal `json:"total_overtime_pay"`
	TotalBonus    decimal.Decimal `json:"total_bonus"`
	TotalDeducted decimal.Decimal `json:"total_deduction"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PendingCount  int             `json:"pending_count"`
	PaidCount     int             `json:"paid_count"`
}
