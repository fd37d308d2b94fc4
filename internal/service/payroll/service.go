package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/pertashop/backoffice-go/internal/domain/attendance"
	"github.com/pertashop/backoffice-go/internal/domain/payroll"
	"github.com/pertashop/backoffice-go/internal/domain/staff"
	"github.com/pertashop/backoffice-go/internal/pkg/currency"
)

type PayrollServiceImpl struct {
	payroll.Repository
	StaffRepository      staff.Repository
	AttendanceRepository attendance.Repository
}

func NewPayrollService(repo payroll.Repository, staffRepo staff.Repository, attRepo attendance.Repository) payroll.Service {
	return &PayrollServiceImpl{
		Repository:           repo,
		StaffRepository:      staffRepo,
		AttendanceRepository: attRepo,
	}
}

func toItems(items []payroll.LineItemInput) []payroll.LineItem {
	result := make([]payroll.LineItem, 0, len(items))
	for _, item := range items {
		result = append(result, payroll.LineItem{Name: item.Name, Amount: item.Amount})
	}
	return result
}

func toResponse(rec payroll.Record) payroll.RecordResponse {
	resp := payroll.RecordResponse{
		ID:                 rec.ID,
		StaffID:            rec.StaffID,
		PeriodMonth:        rec.PeriodMonth,
		PeriodYear:         rec.PeriodYear,
		BaseSalary:         rec.BaseSalary,
		OvertimeMinutes:    rec.OvertimeMinutes,
		OvertimeHourlyRate: rec.OvertimeHourlyRate,
		OvertimePay:        rec.OvertimePay,
		Bonuses:            rec.Bonuses,
		Deductions:         rec.Deductions,
		TotalBonus:         rec.TotalBonus,
		TotalDeduction:     rec.TotalDeduction,
		TotalAmount:        rec.TotalAmount,
		TotalAmountLabel:   currency.FormatRupiah(rec.TotalAmount),
		Status:             string(rec.Status),
		PaidBy:             rec.PaidBy,
		Notes:              rec.Notes,
	}
	if rec.StaffName != nil {
		resp.StaffName = *rec.StaffName
	}
	if rec.PaidAt != nil {
		t := rec.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &t
	}
	if resp.Bonuses == nil {
		resp.Bonuses = []payroll.LineItem{}
	}
	if resp.Deductions == nil {
		resp.Deductions = []payroll.LineItem{}
	}
	return resp
}

// Generate implements payroll.Service. One pending record per staff
// member for the period: base salary from the staff master, overtime
// minutes from the month's attendance. Staff who already have a record
// for the period are skipped. In an all-active run, staff without a
// salary are skipped too; naming one explicitly is an error, so a
// misconfigured staff row cannot silently drop out of a targeted run.
func (p *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GenerateRequest) ([]payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	explicit := len(req.StaffIDs) > 0
	staffIDs := req.StaffIDs
	if !explicit {
		ids, err := p.StaffRepository.ListActiveIDs(ctx)
		if err != nil {
			return nil, err
		}
		staffIDs = ids
	}

	summaries, err := p.AttendanceRepository.SummarizeMonth(ctx, req.PeriodMonth, req.PeriodYear, staffIDs)
	if err != nil {
		return nil, err
	}
	overtimeByStaff := make(map[string]int, len(summaries))
	for _, s := range summaries {
		overtimeByStaff[s.StaffID] = s.TotalOvertimeMinutes
	}

	var generated []payroll.RecordResponse
	for _, staffID := range staffIDs {
		st, err := p.StaffRepository.GetByID(ctx, staffID)
		if err != nil {
			return nil, err
		}
		if st.BaseSalary == nil {
			if explicit {
				return nil, fmt.Errorf("%w: %s", payroll.ErrStaffHasNoSalary, st.Name)
			}
			continue
		}

		if _, err := p.Repository.GetByStaffPeriod(ctx, staffID, req.PeriodMonth, req.PeriodYear); err == nil {
			continue
		} else if !errors.Is(err, payroll.ErrRecordNotFound) {
			return nil, err
		}

		rate := decimal.Zero
		if st.OvertimeHourlyRate != nil {
			rate = *st.OvertimeHourlyRate
		}

		rec := payroll.Compose(*st.BaseSalary, overtimeByStaff[staffID], rate, nil, nil)
		rec.StaffID = staffID
		rec.PeriodMonth = req.PeriodMonth
		rec.PeriodYear = req.PeriodYear

		created, err := p.Repository.Create(ctx, rec)
		if err != nil {
			return nil, err
		}
		created.StaffName = &st.Name

		generated = append(generated, toResponse(created))
	}

	return generated, nil
}

// Get implements payroll.Service.
func (p *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.RecordResponse, error) {
	rec, err := p.Repository.GetByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return toResponse(rec), nil
}

// List implements payroll.Service.
func (p *PayrollServiceImpl) List(ctx context.Context, filter payroll.Filter) (payroll.ListRecordResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := p.Repository.List(ctx, filter)
	if err != nil {
		return payroll.ListRecordResponse{}, err
	}

	data := make([]payroll.RecordResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, toResponse(rec))
	}

	return payroll.ListRecordResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements payroll.Service. Paid records are immutable; every
// accepted edit rederives the totals.
func (p *PayrollServiceImpl) Update(ctx context.Context, req payroll.UpdateRecordRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	rec, err := p.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	if rec.Status == payroll.StatusPaid {
		return payroll.RecordResponse{}, payroll.ErrRecordAlreadyPaid
	}

	if req.BaseSalary != nil {
		rec.BaseSalary = *req.BaseSalary
	}
	if req.Bonuses != nil {
		rec.Bonuses = toItems(*req.Bonuses)
	}
	if req.Deductions != nil {
		rec.Deductions = toItems(*req.Deductions)
	}
	if req.Notes != nil {
		rec.Notes = req.Notes
	}

	rec.Recompute()

	if err := p.Repository.Update(ctx, rec); err != nil {
		return payroll.RecordResponse{}, err
	}

	return toResponse(rec), nil
}

// MarkPaid implements payroll.Service.
func (p *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.RecordResponse, error) {
	rec, err := p.Repository.GetByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return payroll.RecordResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	paidBy, _ := claims["user_id"].(string)

	if err := rec.MarkPaid(paidBy, time.Now()); err != nil {
		return payroll.RecordResponse{}, err
	}

	if err := p.Repository.Update(ctx, rec); err != nil {
		return payroll.RecordResponse{}, err
	}

	return toResponse(rec), nil
}

// Delete implements payroll.Service. Paid records are part of the books
// and cannot be removed.
func (p *PayrollServiceImpl) Delete(ctx context.Context, id string) error {
	rec, err := p.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.Status == payroll.StatusPaid {
		return payroll.ErrRecordAlreadyPaid
	}
	return p.Repository.Delete(ctx, id)
}

// GetPeriodSummary implements payroll.Service.
func (p *PayrollServiceImpl) GetPeriodSummary(ctx context.Context, month, year int) (payroll.PeriodSummary, error) {
	if month < 1 || month > 12 {
		return payroll.PeriodSummary{}, payroll.ErrInvalidPeriod
	}
	return p.Repository.GetPeriodSummary(ctx, month, year)
}
