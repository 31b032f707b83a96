package attendance

import "errors"

var (
	ErrDayAlreadyClosed     = errors.New("attendance already marked for today")
	ErrCheckOutBeforeIn     = errors.New("check-out must be after check-in")
	ErrInvalidMonth         = errors.New("month must be in YYYY-MM format")
	ErrAttendanceNotFound   = errors.New("attendance record not found")
	ErrNotOwnAttendance     = errors.New("you can only access your own attendance")
	ErrMissingEmployeeClaim = errors.New("employee identity missing from token")
)
