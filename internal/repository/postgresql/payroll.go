package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pertashop/backoffice-go/internal/domain/payroll"
	"github.com/pertashop/backoffice-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.staff_id, p.period_month, p.period_year,
	p.base_salary, p.overtime_minutes, p.overtime_hourly_rate, p.overtime_pay,
	p.bonuses, p.deductions, p.total_bonus, p.total_deduction, p.total_amount,
	p.status, p.paid_at, p.paid_by, p.notes, p.created_at, p.updated_at, s.name
`

func marshalItems(items []payroll.LineItem) ([]byte, error) {
	if items == nil {
		items = []payroll.LineItem{}
	}
	return json.Marshal(items)
}

func scanPayroll(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	var bonuses, deductions []byte

	err := row.Scan(
		&rec.ID, &rec.StaffID, &rec.PeriodMonth, &rec.PeriodYear,
		&rec.BaseSalary, &rec.OvertimeMinutes, &rec.OvertimeHourlyRate, &rec.OvertimePay,
		&bonuses, &deductions, &rec.TotalBonus, &rec.TotalDeduction, &rec.TotalAmount,
		&rec.Status, &rec.PaidAt, &rec.PaidBy, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt, &rec.StaffName,
	)
	if err != nil {
		return payroll.Record{}, err
	}

	if err := json.Unmarshal(bonuses, &rec.Bonuses); err != nil {
		return payroll.Record{}, fmt.Errorf("failed to decode bonuses: %w", err)
	}
	if err := json.Unmarshal(deductions, &rec.Deductions); err != nil {
		return payroll.Record{}, fmt.Errorf("failed to decode deductions: %w", err)
	}

	return rec, nil
}

// Create implements payroll.Repository.
func (p *payrollRepository) Create(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	bonuses, err := marshalItems(record.Bonuses)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to encode bonuses: %w", err)
	}
	deductions, err := marshalItems(record.Deductions)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to encode deductions: %w", err)
	}

	query := `
		INSERT INTO payroll_records (
			staff_id, period_month, period_year,
			base_salary, overtime_minutes, overtime_hourly_rate, overtime_pay,
			bonuses, deductions, total_bonus, total_deduction, total_amount,
			status, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		record.StaffID,
		record.PeriodMonth,
		record.PeriodYear,
		record.BaseSalary,
		record.OvertimeMinutes,
		record.OvertimeHourlyRate,
		record.OvertimePay,
		bonuses,
		deductions,
		record.TotalBonus,
		record.TotalDeduction,
		record.TotalAmount,
		record.Status,
		record.Notes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return payroll.Record{}, payroll.ErrRecordAlreadyExists
		}
		return payroll.Record{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

// GetByID implements payroll.Repository.
func (p *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN staff s ON s.id = p.staff_id
		WHERE p.id = $1
	`

	rec, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// GetByStaffPeriod implements payroll.Repository.
func (p *payrollRepository) GetByStaffPeriod(ctx context.Context, staffID string, month, year int) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN staff s ON s.id = p.staff_id
		WHERE p.staff_id = $1 AND p.period_month = $2 AND p.period_year = $3
	`

	rec, err := scanPayroll(q.QueryRow(ctx, query, staffID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record by period: %w", err)
	}

	return rec, nil
}

// List implements payroll.Repository.
func (p *payrollRepository) List(ctx context.Context, filter payroll.Filter) ([]payroll.Record, int64, error) {
	q := GetQuerier(ctx, p.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.PeriodMonth != nil {
		where += fmt.Sprintf(" AND p.period_month = $%d", argPos)
		args = append(args, *filter.PeriodMonth)
		argPos++
	}
	if filter.PeriodYear != nil {
		where += fmt.Sprintf(" AND p.period_year = $%d", argPos)
		args = append(args, *filter.PeriodYear)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND p.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.StaffID != nil {
		where += fmt.Sprintf(" AND p.staff_id = $%d", argPos)
		args = append(args, *filter.StaffID)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM payroll_records p ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records p
		JOIN staff s ON s.id = p.staff_id
		` + where + `
		ORDER BY p.period_year DESC, p.period_month DESC, s.name ASC
	`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var result []payroll.Record
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payroll records: %w", err)
	}

	return result, total, nil
}

// Update implements payroll.Repository.
func (p *payrollRepository) Update(ctx context.Context, record payroll.Record) error {
	q := GetQuerier(ctx, p.db)

	bonuses, err := marshalItems(record.Bonuses)
	if err != nil {
		return fmt.Errorf("failed to encode bonuses: %w", err)
	}
	deductions, err := marshalItems(record.Deductions)
	if err != nil {
		return fmt.Errorf("failed to encode deductions: %w", err)
	}

	query := `
		UPDATE payroll_records
		SET base_salary = $2, overtime_minutes = $3, overtime_hourly_rate = $4,
			overtime_pay = $5, bonuses = $6, deductions = $7,
			total_bonus = $8, total_deduction = $9, total_amount = $10,
			status = $11, paid_at = $12, paid_by = $13, notes = $14,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.BaseSalary,
		record.OvertimeMinutes,
		record.OvertimeHourlyRate,
		record.OvertimePay,
		bonuses,
		deductions,
		record.TotalBonus,
		record.TotalDeduction,
		record.TotalAmount,
		record.Status,
		record.PaidAt,
		record.PaidBy,
		record.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}

	return nil
}

// Delete implements payroll.Repository.
func (p *payrollRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}

	return nil
}

// GetPeriodSummary implements payroll.Repository.
func (p *payrollRepository) GetPeriodSummary(ctx context.Context, month, year int) (payroll.PeriodSummary, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(base_salary), 0),
			   COALESCE(SUM(overtime_pay), 0),
			   COALESCE(SUM(total_bonus), 0),
			   COALESCE(SUM(total_deduction), 0),
			   COALESCE(SUM(total_amount), 0),
			   COUNT(*) FILTER (WHERE status = 'pending'),
			   COUNT(*) FILTER (WHERE status = 'paid')
		FROM payroll_records
		WHERE period_month = $1 AND period_year = $2
	`

	summary := payroll.PeriodSummary{PeriodMonth: month, PeriodYear: year}
	err := q.QueryRow(ctx, query, month, year).Scan(
		&summary.TotalStaff,
		&summary.TotalBase,
		&summary.TotalOvertime,
		&summary.TotalBonus,
		&summary.TotalDeducted,
		&summary.TotalAmount,
		&summary.PendingCount,
		&summary.PaidCount,
	)
	if err != nil {
		return payroll.PeriodSummary{}, fmt.Errorf("failed to get period summary: %w", err)
	}

	return summary, nil
}
