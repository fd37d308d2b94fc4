package payroll

import (
	"time"

	"github.com/pertashop/backoffice-go/internal/domain/overtime"
	"github.com/shopspring/decimal"
)

// Compose builds a pending payroll record from a period's inputs.
// Overtime pay comes from the overtime aggregator (minutes x hourly rate
// x 1.5). Callers must have validated line items already: non-empty
// names, strictly positive amounts.
func Compose(baseSalary decimal.Decimal, overtimeMinutes int, hourlyRate decimal.Decimal, bonuses, deductions []LineItem) Record {
	r := Record{
		BaseSalary:         baseSalary,
		OvertimeMinutes:    overtimeMinutes,
		OvertimeHourlyRate: hourlyRate,
		Bonuses:            bonuses,
		Deductions:         deductions,
		Status:             StatusPending,
	}
	r.Recompute()
	return r
}

// Recompute rederives every calculated field from the record's inputs.
// Called after any mutation of salary, overtime or line items.
func (r *Record) Recompute() {
	summary := overtime.FromMinutes(r.OvertimeMinutes, r.OvertimeHourlyRate)
	r.OvertimePay = summary.Pay

	r.TotalBonus = sumItems(r.Bonuses)
	r.TotalDeduction = sumItems(r.Deductions)

	r.TotalAmount = r.BaseSalary.
		Add(r.OvertimePay).
		Add(r.TotalBonus).
		Sub(r.TotalDeduction)
}

// MarkPaid transitions pending -> paid. Paying an already-paid record is
// a conflict, not a silent no-op, so double submissions surface to the
// caller.
func (r *Record) MarkPaid(paidBy string, now time.Time) error {
	if r.Status == StatusPaid {
		return ErrRecordAlreadyPaid
	}
	r.Status = StatusPaid
	r.PaidAt = &now
	if paidBy != "" {
		r.PaidBy = &paidBy
	}
	return nil
}

func sumItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}
