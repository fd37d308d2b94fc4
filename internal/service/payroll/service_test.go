package payroll

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pertashop/backoffice-go/internal/domain/attendance"
	"github.com/pertashop/backoffice-go/internal/domain/payroll"
	"github.com/pertashop/backoffice-go/internal/domain/staff"
)

type fakeStaffRepo struct {
	staff.Repository
	byID      map[string]staff.Staff
	activeIDs []string
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.Staff, error) {
	s, ok := f.byID[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return s, nil
}

func (f *fakeStaffRepo) ListActiveIDs(_ context.Context) ([]string, error) {
	return f.activeIDs, nil
}

type fakeAttendanceRepo struct {
	attendance.Repository
	summaries []attendance.MonthlySummary
}

func (f *fakeAttendanceRepo) SummarizeMonth(_ context.Context, _, _ int, _ []string) ([]attendance.MonthlySummary, error) {
	return f.summaries, nil
}

type fakePayrollRepo struct {
	payroll.Repository
	existing map[string]payroll.Record
	created  []payroll.Record
}

func (f *fakePayrollRepo) GetByStaffPeriod(_ context.Context, staffID string, month, year int) (payroll.Record, error) {
	rec, ok := f.existing[fmt.Sprintf("%s/%d/%d", staffID, month, year)]
	if !ok {
		return payroll.Record{}, payroll.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakePayrollRepo) Create(_ context.Context, rec payroll.Record) (payroll.Record, error) {
	rec.ID = fmt.Sprintf("rec-%d", len(f.created)+1)
	f.created = append(f.created, rec)
	return rec, nil
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newGenerateFixture() (*fakePayrollRepo, payroll.Service) {
	staffRepo := &fakeStaffRepo{
		byID: map[string]staff.Staff{
			"s1": {ID: "s1", Name: "Budi", BaseSalary: dec("2000000"), OvertimeHourlyRate: dec("20000"), IsActive: true},
			"s2": {ID: "s2", Name: "Sari", IsActive: true},
		},
		activeIDs: []string{"s1", "s2"},
	}
	attRepo := &fakeAttendanceRepo{
		summaries: []attendance.MonthlySummary{
			{StaffID: "s1", TotalOvertimeMinutes: 90},
		},
	}
	payrollRepo := &fakePayrollRepo{existing: map[string]payroll.Record{}}
	svc := NewPayrollService(payrollRepo, staffRepo, attRepo)
	return payrollRepo, svc
}

func TestGenerateFullRunSkipsStaffWithoutSalary(t *testing.T) {
	payrollRepo, svc := newGenerateFixture()

	records, err := svc.Generate(context.Background(), payroll.GenerateRequest{
		PeriodMonth: 6,
		PeriodYear:  2025,
	})
	require.NoError(t, err)

	// Sari has no base salary, so only Budi gets a record.
	require.Len(t, records, 1)
	assert.Equal(t, "s1", records[0].StaffID)
	assert.Equal(t, 90, records[0].OvertimeMinutes)
	// 1.5h x 20000 x 1.5 premium = 45000 on top of the base.
	assert.True(t, records[0].TotalAmount.Equal(decimal.RequireFromString("2045000")),
		"got total %s", records[0].TotalAmount)
	assert.Len(t, payrollRepo.created, 1)
}

func TestGenerateExplicitStaffWithoutSalaryFails(t *testing.T) {
	payrollRepo, svc := newGenerateFixture()

	_, err := svc.Generate(context.Background(), payroll.GenerateRequest{
		PeriodMonth: 6,
		PeriodYear:  2025,
		StaffIDs:    []string{"s1", "s2"},
	})

	assert.ErrorIs(t, err, payroll.ErrStaffHasNoSalary)
	// s1 precedes s2 in the list, so one record is created before the
	// run aborts; nothing for the salary-less staff member.
	for _, rec := range payrollRepo.created {
		assert.NotEqual(t, "s2", rec.StaffID)
	}
}

func TestGenerateSkipsExistingRecords(t *testing.T) {
	payrollRepo, svc := newGenerateFixture()
	payrollRepo.existing["s1/6/2025"] = payroll.Record{ID: "already-there", StaffID: "s1"}

	records, err := svc.Generate(context.Background(), payroll.GenerateRequest{
		PeriodMonth: 6,
		PeriodYear:  2025,
		StaffIDs:    []string{"s1"},
	})
	require.NoError(t, err)

	assert.Empty(t, records)
	assert.Empty(t, payrollRepo.created)
}
