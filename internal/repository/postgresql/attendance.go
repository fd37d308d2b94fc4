package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pertashop/backoffice-go/internal/domain/attendance"
	"github.com/pertashop/backoffice-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.staff_id, a.date, a.check_in, a.check_out, a.shift,
	a.late_minutes, a.overtime_minutes, a.status, a.notes,
	a.created_at, a.updated_at, s.name
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.StaffID, &att.Date, &att.CheckIn, &att.CheckOut, &att.ShiftTag,
		&att.LateMinutes, &att.OvertimeMinutes, &att.Status, &att.Notes,
		&att.CreatedAt, &att.UpdatedAt, &att.StaffName,
	)
	return att, err
}

// Create implements attendance.Repository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			staff_id, date, check_in, check_out, shift,
			late_minutes, overtime_minutes, status, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.StaffID,
		att.Date,
		att.CheckIn,
		att.CheckOut,
		att.ShiftTag,
		att.LateMinutes,
		att.OvertimeMinutes,
		att.Status,
		att.Notes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN staff s ON s.id = a.staff_id
		WHERE a.id = $1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// GetByStaffDate implements attendance.Repository.
func (a *attendanceRepository) GetByStaffDate(ctx context.Context, staffID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN staff s ON s.id = a.staff_id
		WHERE a.staff_id = $1 AND a.date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, staffID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by staff and date: %w", err)
	}

	return att, nil
}

// List implements attendance.Repository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.StaffID != nil {
		where += fmt.Sprintf(" AND a.staff_id = $%d", argPos)
		args = append(args, *filter.StaffID)
		argPos++
	}
	if filter.Month != nil {
		where += fmt.Sprintf(" AND EXTRACT(MONTH FROM a.date) = $%d", argPos)
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.Year != nil {
		where += fmt.Sprintf(" AND EXTRACT(YEAR FROM a.date) = $%d", argPos)
		args = append(args, *filter.Year)
		argPos++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM attendances a
		` + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN staff s ON s.id = a.staff_id
		` + where + `
		ORDER BY a.date DESC, s.name ASC
	`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return result, total, nil
}

// Update implements attendance.Repository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET date = $2, check_in = $3, check_out = $4, shift = $5,
			late_minutes = $6, overtime_minutes = $7, status = $8, notes = $9,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.Date,
		att.CheckIn,
		att.CheckOut,
		att.ShiftTag,
		att.LateMinutes,
		att.OvertimeMinutes,
		att.Status,
		att.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// Delete implements attendance.Repository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// SummarizeMonth implements attendance.Repository.
func (a *attendanceRepository) SummarizeMonth(ctx context.Context, month, year int, staffIDs []string) ([]attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.staff_id, s.name,
			   COUNT(*) FILTER (WHERE a.status = 'present'),
			   COUNT(*) FILTER (WHERE a.status = 'leave'),
			   COUNT(*) FILTER (WHERE a.status = 'absent'),
			   COALESCE(SUM(a.late_minutes), 0),
			   COALESCE(SUM(a.overtime_minutes), 0)
		FROM attendances a
		JOIN staff s ON s.id = a.staff_id
		WHERE EXTRACT(MONTH FROM a.date) = $1
		  AND EXTRACT(YEAR FROM a.date) = $2
	`
	args := []interface{}{month, year}
	if len(staffIDs) > 0 {
		query += " AND a.staff_id = ANY($3)"
		args = append(args, staffIDs)
	}
	query += `
		GROUP BY a.staff_id, s.name
		ORDER BY s.name ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize month: %w", err)
	}
	defer rows.Close()

	var result []attendance.MonthlySummary
	for rows.Next() {
		var s attendance.MonthlySummary
		if err := rows.Scan(
			&s.StaffID, &s.StaffName,
			&s.DaysPresent, &s.DaysLeave, &s.DaysAbsent,
			&s.TotalLateMinutes, &s.TotalOvertimeMinutes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summaries: %w", err)
	}

	return result, nil
}
