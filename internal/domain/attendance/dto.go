package attendance

import (
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type MarkAttendanceRequest struct {
	EmployeeID string  `json:"-"`
	CheckIn    string  `json:"check_in"`
	CheckOut   *string `json:"check_out,omitempty"`

	// Parsed by Validate
	CheckInTime  time.Time  `json:"-"`
	CheckOutTime *time.Time `json:"-"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CheckIn) {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "is required"})
	} else {
		t, ok := validator.IsValidDateTime(r.CheckIn)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be an ISO8601 timestamp"})
		} else {
			r.CheckInTime = t
		}
	}

	if r.CheckOut != nil {
		t, ok := validator.IsValidDateTime(*r.CheckOut)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be an ISO8601 timestamp"})
		} else {
			r.CheckOutTime = &t
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeInfo struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmployeeCode string `json:"employee_code"`
}

type AttendanceResponse struct {
	ID          string           `json:"id"`
	EmployeeID  string           `json:"employee_id"`
	Date        string           `json:"date"`
	CheckIn     time.Time        `json:"check_in"`
	CheckOut    *time.Time       `json:"check_out,omitempty"`
	HoursWorked *decimal.Decimal `json:"hours_worked,omitempty"`
	Status      string           `json:"status"`
	Employee    *EmployeeInfo    `json:"employee,omitempty"`
}
