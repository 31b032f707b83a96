package response

import (
	"errors"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/payroll"
	"github.com/emsuite/ems-backend-go/internal/domain/salary"
	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDayAlreadyClosed):
		Conflict(w, "Attendance already marked for today")
	case errors.Is(err, attendance.ErrCheckOutBeforeIn):
		BadRequest(w, "Check-out must be after check-in", nil)
	case errors.Is(err, attendance.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNotOwnAttendance):
		Forbidden(w, "You can only access your own attendance")
	case errors.Is(err, attendance.ErrMissingEmployeeClaim):
		Forbidden(w, "Employee identity missing from token")

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)
	case errors.Is(err, salary.ErrNotOwnSalary):
		Forbidden(w, "You can only view your own salary")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrDistributorRequired):
		BadRequest(w, "DistributedBy parameter is required", nil)
	case errors.Is(err, payroll.ErrNoSalariesForMonth):
		NotFound(w, "No salary records found for the specified month")
	case errors.Is(err, payroll.ErrAlreadyDistributed):
		Conflict(w, "All selected salaries have already been distributed")
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
