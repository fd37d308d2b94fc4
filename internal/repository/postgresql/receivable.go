package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/pertashop/backoffice-go/internal/domain/receivable"
	"github.com/pertashop/backoffice-go/internal/pkg/database"
)

type customerRepository struct {
	db *database.DB
}

func NewCustomerRepository(db *database.DB) receivable.CustomerRepository {
	return &customerRepository{db: db}
}

// Create implements receivable.CustomerRepository.
func (c *customerRepository) Create(ctx context.Context, cust receivable.Customer) (receivable.Customer, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO customers (name, phone, address)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, cust.Name, cust.Phone, cust.Address).
		Scan(&cust.ID, &cust.CreatedAt, &cust.UpdatedAt)
	if err != nil {
		return receivable.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}

	return cust, nil
}

// GetByID implements receivable.CustomerRepository.
func (c *customerRepository) GetByID(ctx context.Context, id string) (receivable.Customer, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, phone, address, created_at, updated_at
		FROM customers
		WHERE id = $1
	`

	var cust receivable.Customer
	err := q.QueryRow(ctx, query, id).Scan(
		&cust.ID, &cust.Name, &cust.Phone, &cust.Address, &cust.CreatedAt, &cust.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return receivable.Customer{}, receivable.ErrCustomerNotFound
		}
		return receivable.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}

	return cust, nil
}

// List implements receivable.CustomerRepository.
func (c *customerRepository) List(ctx context.Context, page, limit int) ([]receivable.Customer, int64, error) {
	q := GetQuerier(ctx, c.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	query := `
		SELECT id, name, phone, address, created_at, updated_at
		FROM customers
		ORDER BY name ASC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1 OFFSET $2"
		args = append(args, limit, (page-1)*limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var result []receivable.Customer
	for rows.Next() {
		var cust receivable.Customer
		if err := rows.Scan(&cust.ID, &cust.Name, &cust.Phone, &cust.Address, &cust.CreatedAt, &cust.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer: %w", err)
		}
		result = append(result, cust)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return result, total, nil
}

// Update implements receivable.CustomerRepository.
func (c *customerRepository) Update(ctx context.Context, cust receivable.Customer) error {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE customers
		SET name = $2, phone = $3, address = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, cust.ID, cust.Name, cust.Phone, cust.Address)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return receivable.ErrCustomerNotFound
	}

	return nil
}

// Delete implements receivable.CustomerRepository.
func (c *customerRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return receivable.ErrCustomerNotFound
	}

	return nil
}

type receivableRepository struct {
	db *database.DB
}

func NewReceivableRepository(db *database.DB) receivable.Repository {
	return &receivableRepository{db: db}
}

// receivableColumns derives paid_total and outstanding from the payments
// table so they can never drift from the recorded installments.
const receivableColumns = `
	r.id, r.customer_id, r.amount,
	COALESCE(p.paid, 0) AS paid_total,
	r.amount - COALESCE(p.paid, 0) AS outstanding,
	r.due_date, r.note, r.status, r.created_at, r.updated_at, c.name
`

const receivableJoins = `
	FROM receivables r
	JOIN customers c ON c.id = r.customer_id
	LEFT JOIN (
		SELECT receivable_id, SUM(amount) AS paid
		FROM receivable_payments
		GROUP BY receivable_id
	) p ON p.receivable_id = r.id
`

func scanReceivable(row pgx.Row) (receivable.Receivable, error) {
	var rec receivable.Receivable
	err := row.Scan(
		&rec.ID, &rec.CustomerID, &rec.Amount,
		&rec.PaidTotal, &rec.Outstanding,
		&rec.DueDate, &rec.Note, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt, &rec.CustomerName,
	)
	return rec, err
}

// Create implements receivable.Repository.
func (r *receivableRepository) Create(ctx context.Context, rec receivable.Receivable) (receivable.Receivable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO receivables (customer_id, amount, due_date, note, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, rec.CustomerID, rec.Amount, rec.DueDate, rec.Note, rec.Status).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return receivable.Receivable{}, fmt.Errorf("failed to create receivable: %w", err)
	}

	rec.PaidTotal = decimal.Zero
	rec.Outstanding = rec.Amount
	return rec, nil
}

// GetByID implements receivable.Repository.
func (r *receivableRepository) GetByID(ctx context.Context, id string) (receivable.Receivable, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + receivableColumns + receivableJoins + ` WHERE r.id = $1`

	rec, err := scanReceivable(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return receivable.Receivable{}, receivable.ErrReceivableNotFound
		}
		return receivable.Receivable{}, fmt.Errorf("failed to get receivable: %w", err)
	}

	return rec, nil
}

// List implements receivable.Repository.
func (r *receivableRepository) List(ctx context.Context, filter receivable.ReceivableFilter) ([]receivable.Receivable, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.CustomerID != nil {
		where += fmt.Sprintf(" AND r.customer_id = $%d", argPos)
		args = append(args, *filter.CustomerID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND r.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM receivables r ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count receivables: %w", err)
	}

	query := `SELECT ` + receivableColumns + receivableJoins + where + `
		ORDER BY r.due_date ASC NULLS LAST, r.created_at DESC
	`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list receivables: %w", err)
	}
	defer rows.Close()

	var result []receivable.Receivable
	for rows.Next() {
		rec, err := scanReceivable(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan receivable: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate receivables: %w", err)
	}

	return result, total, nil
}

// ListOutstanding implements receivable.Repository.
func (r *receivableRepository) ListOutstanding(ctx context.Context) ([]receivable.Receivable, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + receivableColumns + receivableJoins + ` WHERE r.status = 'outstanding'`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list outstanding receivables: %w", err)
	}
	defer rows.Close()

	var result []receivable.Receivable
	for rows.Next() {
		rec, err := scanReceivable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receivable: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receivables: %w", err)
	}

	return result, nil
}

// UpdateStatus implements receivable.Repository.
func (r *receivableRepository) UpdateStatus(ctx context.Context, id string, status receivable.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE receivables SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update receivable status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return receivable.ErrReceivableNotFound
	}

	return nil
}

// Delete implements receivable.Repository.
func (r *receivableRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM receivables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete receivable: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return receivable.ErrReceivableNotFound
	}

	return nil
}

// CreatePayment implements receivable.Repository.
func (r *receivableRepository) CreatePayment(ctx context.Context, p receivable.Payment) (receivable.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO receivable_payments (receivable_id, amount, paid_at, method, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, p.ReceivableID, p.Amount, p.PaidAt, p.Method, p.Note).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return receivable.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return p, nil
}

// ListPayments implements receivable.Repository.
func (r *receivableRepository) ListPayments(ctx context.Context, receivableID string) ([]receivable.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, receivable_id, amount, paid_at, method, note, created_at
		FROM receivable_payments
		WHERE receivable_id = $1
		ORDER BY paid_at ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, receivableID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var result []receivable.Payment
	for rows.Next() {
		var p receivable.Payment
		if err := rows.Scan(&p.ID, &p.ReceivableID, &p.Amount, &p.PaidAt, &p.Method, &p.Note, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return result, nil
}

// SumOutstandingByCustomer implements receivable.Repository.
func (r *receivableRepository) SumOutstandingByCustomer(ctx context.Context, customerID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(r.amount - COALESCE(p.paid, 0)), 0)
		FROM receivables r
		LEFT JOIN (
			SELECT receivable_id, SUM(amount) AS paid
			FROM receivable_payments
			GROUP BY receivable_id
		) p ON p.receivable_id = r.id
		WHERE r.customer_id = $1 AND r.status = 'outstanding'
	`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, customerID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum outstanding: %w", err)
	}

	return sum, nil
}
