package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status classifies how much of a scheduled day was worked.
type Status string

const (
	StatusFullDay Status = "FULL_DAY"
	StatusHalfDay Status = "HALF_DAY"
	StatusAbsent  Status = "ABSENT"
)

var (
	fullDayThreshold = decimal.NewFromInt(8)
	halfDayThreshold = decimal.NewFromInt(4)
)

// StatusForHours classifies worked hours: >= 8 is a full day, >= 4 a half
// day, anything less counts as absent.
func StatusForHours(hours decimal.Decimal) Status {
	switch {
	case hours.GreaterThanOrEqual(fullDayThreshold):
		return StatusFullDay
	case hours.GreaterThanOrEqual(halfDayThreshold):
		return StatusHalfDay
	default:
		return StatusAbsent
	}
}

// Attendance is the single mutable per-day slot for an employee. At most
// one row exists per (employee, date); a row with a non-nil CheckOut is
// closed and cannot be reopened.
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	CheckIn     time.Time
	CheckOut    *time.Time
	HoursWorked *decimal.Decimal
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	FirstName    *string
	LastName     *string
	EmployeeCode *string
}

// DayCounts aggregates a month of attendance into worked-day units.
type DayCounts struct {
	FullDays int
	HalfDays int
}
