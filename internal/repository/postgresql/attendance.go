package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// GetByEmployeeAndDateLocked implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDateLocked(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, hours_worked, status, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date = $2
		FOR UPDATE
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut,
		&a.HoursWorked, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance for date: %w", err)
	}

	return &a, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if att.ID == "" {
		att.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendances (id, employee_id, date, check_in, check_out, hours_worked, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, date, check_in, check_out, hours_worked, status, created_at, updated_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.Date, att.CheckIn, att.CheckOut, att.HoursWorked, att.Status,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.CheckIn, &created.CheckOut,
		&created.HoursWorked, &created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrDayAlreadyClosed
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_in = $2, check_out = $3, hours_worked = $4, status = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_id, date, check_in, check_out, hours_worked, status, created_at, updated_at
	`

	var updated attendance.Attendance
	err := q.QueryRow(ctx, query,
		att.ID, att.CheckIn, att.CheckOut, att.HoursWorked, att.Status,
	).Scan(
		&updated.ID, &updated.EmployeeID, &updated.Date, &updated.CheckIn, &updated.CheckOut,
		&updated.HoursWorked, &updated.Status, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return updated, nil
}

// ListByMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByMonth(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, a.hours_worked, a.status,
			a.created_at, a.updated_at, e.first_name, e.last_name, e.employee_code
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.employee_id = $1 AND a.date >= $2 AND a.date < $3
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by month: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut, &a.HoursWorked, &a.Status,
			&a.CreatedAt, &a.UpdatedAt, &a.FirstName, &a.LastName, &a.EmployeeCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// CountDayStatuses implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountDayStatuses(ctx context.Context, employeeID string, from, to time.Time) (attendance.DayCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'FULL_DAY'),
			COUNT(*) FILTER (WHERE status = 'HALF_DAY')
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date < $3
	`

	var counts attendance.DayCounts
	err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&counts.FullDays, &counts.HalfDays)
	if err != nil {
		return attendance.DayCounts{}, fmt.Errorf("failed to count day statuses: %w", err)
	}

	return counts, nil
}
