package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetByEmployeeAndDateLocked reads the day slot for update; callers
	// must be inside a transaction. Returns nil when no row exists.
	GetByEmployeeAndDateLocked(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	Create(ctx context.Context, att Attendance) (Attendance, error)
	Update(ctx context.Context, att Attendance) (Attendance, error)

	// ListByMonth returns the employee's rows within [from, to), joined
	// with the employee display fields, ascending by date.
	ListByMonth(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// CountDayStatuses aggregates FULL_DAY and HALF_DAY rows within [from, to).
	CountDayStatuses(ctx context.Context, employeeID string, from, to time.Time) (DayCounts, error)
}

type AttendanceService interface {
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	GetAttendanceByMonth(ctx context.Context, employeeID string, month string) ([]AttendanceResponse, error)
}
