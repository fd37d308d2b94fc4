package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pertashop/backoffice-go/internal/domain/deposit"
	"github.com/pertashop/backoffice-go/internal/pkg/database"
)

type depositRepository struct {
	db *database.DB
}

func NewDepositRepository(db *database.DB) deposit.Repository {
	return &depositRepository{db: db}
}

const depositColumns = `
	id, staff_name, date, clock_in, clock_out,
	meter_start, meter_end, total_liters, gross_amount, qris_amount, cash_amount,
	expenses, total_expenses, income, total_income, total_amount,
	created_at, updated_at
`

func marshalDepositItems(items []deposit.Item) ([]byte, error) {
	if items == nil {
		items = []deposit.Item{}
	}
	return json.Marshal(items)
}

func scanDeposit(row pgx.Row) (deposit.Deposit, error) {
	var dep deposit.Deposit
	var expenses, income []byte

	err := row.Scan(
		&dep.ID, &dep.StaffName, &dep.Date, &dep.ClockIn, &dep.ClockOut,
		&dep.MeterStart, &dep.MeterEnd, &dep.TotalLiters, &dep.GrossAmount, &dep.QRISAmount, &dep.CashAmount,
		&expenses, &dep.TotalExpenses, &income, &dep.TotalIncome, &dep.TotalAmount,
		&dep.CreatedAt, &dep.UpdatedAt,
	)
	if err != nil {
		return deposit.Deposit{}, err
	}

	if err := json.Unmarshal(expenses, &dep.Expenses); err != nil {
		return deposit.Deposit{}, fmt.Errorf("failed to decode expenses: %w", err)
	}
	if err := json.Unmarshal(income, &dep.Income); err != nil {
		return deposit.Deposit{}, fmt.Errorf("failed to decode income: %w", err)
	}

	return dep, nil
}

// Create implements deposit.Repository.
func (d *depositRepository) Create(ctx context.Context, dep deposit.Deposit) (deposit.Deposit, error) {
	q := GetQuerier(ctx, d.db)

	expenses, err := marshalDepositItems(dep.Expenses)
	if err != nil {
		return deposit.Deposit{}, fmt.Errorf("failed to encode expenses: %w", err)
	}
	income, err := marshalDepositItems(dep.Income)
	if err != nil {
		return deposit.Deposit{}, fmt.Errorf("failed to encode income: %w", err)
	}

	query := `
		INSERT INTO deposits (
			staff_name, date, clock_in, clock_out,
			meter_start, meter_end, total_liters, gross_amount, qris_amount, cash_amount,
			expenses, total_expenses, income, total_income, total_amount
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		dep.StaffName,
		dep.Date,
		dep.ClockIn,
		dep.ClockOut,
		dep.MeterStart,
		dep.MeterEnd,
		dep.TotalLiters,
		dep.GrossAmount,
		dep.QRISAmount,
		dep.CashAmount,
		expenses,
		dep.TotalExpenses,
		income,
		dep.TotalIncome,
		dep.TotalAmount,
	).Scan(&dep.ID, &dep.CreatedAt, &dep.UpdatedAt)

	if err != nil {
		return deposit.Deposit{}, fmt.Errorf("failed to create deposit: %w", err)
	}

	return dep, nil
}

// GetByID implements deposit.Repository.
func (d *depositRepository) GetByID(ctx context.Context, id string) (deposit.Deposit, error) {
	q := GetQuerier(ctx, d.db)

	query := `SELECT ` + depositColumns + ` FROM deposits WHERE id = $1`

	dep, err := scanDeposit(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deposit.Deposit{}, deposit.ErrDepositNotFound
		}
		return deposit.Deposit{}, fmt.Errorf("failed to get deposit: %w", err)
	}

	return dep, nil
}

// List implements deposit.Repository.
func (d *depositRepository) List(ctx context.Context, filter deposit.DepositFilter) ([]deposit.Deposit, int64, error) {
	q := GetQuerier(ctx, d.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.Month != nil {
		where += fmt.Sprintf(" AND EXTRACT(MONTH FROM date) = $%d", argPos)
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.Year != nil {
		where += fmt.Sprintf(" AND EXTRACT(YEAR FROM date) = $%d", argPos)
		args = append(args, *filter.Year)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM deposits ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count deposits: %w", err)
	}

	query := `SELECT ` + depositColumns + ` FROM deposits ` + where + ` ORDER BY date DESC, created_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list deposits: %w", err)
	}
	defer rows.Close()

	var result []deposit.Deposit
	for rows.Next() {
		dep, err := scanDeposit(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan deposit: %w", err)
		}
		result = append(result, dep)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate deposits: %w", err)
	}

	return result, total, nil
}

// Update implements deposit.Repository.
func (d *depositRepository) Update(ctx context.Context, dep deposit.Deposit) error {
	q := GetQuerier(ctx, d.db)

	expenses, err := marshalDepositItems(dep.Expenses)
	if err != nil {
		return fmt.Errorf("failed to encode expenses: %w", err)
	}
	income, err := marshalDepositItems(dep.Income)
	if err != nil {
		return fmt.Errorf("failed to encode income: %w", err)
	}

	query := `
		UPDATE deposits
		SET staff_name = $2, date = $3, clock_in = $4, clock_out = $5,
			meter_start = $6, meter_end = $7, total_liters = $8,
			gross_amount = $9, qris_amount = $10, cash_amount = $11,
			expenses = $12, total_expenses = $13, income = $14, total_income = $15,
			total_amount = $16, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		dep.ID,
		dep.StaffName,
		dep.Date,
		dep.ClockIn,
		dep.ClockOut,
		dep.MeterStart,
		dep.MeterEnd,
		dep.TotalLiters,
		dep.GrossAmount,
		dep.QRISAmount,
		dep.CashAmount,
		expenses,
		dep.TotalExpenses,
		income,
		dep.TotalIncome,
		dep.TotalAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to update deposit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deposit.ErrDepositNotFound
	}

	return nil
}

// Delete implements deposit.Repository.
func (d *depositRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, d.db)

	tag, err := q.Exec(ctx, `DELETE FROM deposits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deposit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deposit.ErrDepositNotFound
	}

	return nil
}
