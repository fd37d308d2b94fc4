package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pertashop/backoffice-go/internal/domain/overtime"
	"github.com/pertashop/backoffice-go/internal/pkg/database"
)

type overtimeRequestRepository struct {
	db *database.DB
}

func NewOvertimeRequestRepository(db *database.DB) overtime.RequestRepository {
	return &overtimeRequestRepository{db: db}
}

const overtimeColumns = `
	o.id, o.staff_id, o.date, o.minutes, o.hours, o.reason, o.status,
	o.reviewed_by, o.reviewed_at, o.review_note, o.created_at, o.updated_at, s.name
`

func scanOvertimeRequest(row pgx.Row) (overtime.Request, error) {
	var req overtime.Request
	err := row.Scan(
		&req.ID, &req.StaffID, &req.Date, &req.Minutes, &req.Hours, &req.Reason, &req.Status,
		&req.ReviewedBy, &req.ReviewedAt, &req.ReviewNote, &req.CreatedAt, &req.UpdatedAt, &req.StaffName,
	)
	return req, err
}

// Create implements overtime.RequestRepository.
func (o *overtimeRequestRepository) Create(ctx context.Context, req overtime.Request) (overtime.Request, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		INSERT INTO overtime_requests (
			staff_id, date, minutes, hours, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.StaffID,
		req.Date,
		req.Minutes,
		req.Hours,
		req.Reason,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return overtime.Request{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return req, nil
}

// GetByID implements overtime.RequestRepository.
func (o *overtimeRequestRepository) GetByID(ctx context.Context, id string) (overtime.Request, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests o
		JOIN staff s ON s.id = o.staff_id
		WHERE o.id = $1
	`

	req, err := scanOvertimeRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.Request{}, overtime.ErrRequestNotFound
		}
		return overtime.Request{}, fmt.Errorf("failed to get overtime request: %w", err)
	}

	return req, nil
}

// List implements overtime.RequestRepository.
func (o *overtimeRequestRepository) List(ctx context.Context, filter overtime.RequestFilter) ([]overtime.Request, int64, error) {
	q := GetQuerier(ctx, o.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.StaffID != nil {
		where += fmt.Sprintf(" AND o.staff_id = $%d", argPos)
		args = append(args, *filter.StaffID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND o.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Month != nil {
		where += fmt.Sprintf(" AND EXTRACT(MONTH FROM o.date) = $%d", argPos)
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.Year != nil {
		where += fmt.Sprintf(" AND EXTRACT(YEAR FROM o.date) = $%d", argPos)
		args = append(args, *filter.Year)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM overtime_requests o ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count overtime requests: %w", err)
	}

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests o
		JOIN staff s ON s.id = o.staff_id
		` + where + `
		ORDER BY o.date DESC, o.created_at DESC
	`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var result []overtime.Request
	for rows.Next() {
		req, err := scanOvertimeRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate overtime requests: %w", err)
	}

	return result, total, nil
}

// UpdateStatus implements overtime.RequestRepository.
func (o *overtimeRequestRepository) UpdateStatus(ctx context.Context, req overtime.Request) error {
	q := GetQuerier(ctx, o.db)

	query := `
		UPDATE overtime_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4, review_note = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Status, req.ReviewedBy, req.ReviewedAt, req.ReviewNote)
	if err != nil {
		return fmt.Errorf("failed to update overtime request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrRequestNotFound
	}

	return nil
}

// Delete implements overtime.RequestRepository.
func (o *overtimeRequestRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, o.db)

	tag, err := q.Exec(ctx, `DELETE FROM overtime_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete overtime request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrRequestNotFound
	}

	return nil
}
