package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID              string
	UserID          string
	EmployeeCode    string
	FirstName       string
	LastName        string
	BasicSalary     decimal.Decimal
	HRA             decimal.Decimal
	Allowances      decimal.Decimal
	OtherDeductions decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	Email *string
}

// Compensation is the fixed monthly baseline used by salary calculation.
type Compensation struct {
	BasicSalary     decimal.Decimal
	HRA             decimal.Decimal
	Allowances      decimal.Decimal
	OtherDeductions decimal.Decimal
}

// Display is the denormalized snapshot attached to attendance and salary
// reads for convenience; it is never persisted alongside them.
type Display struct {
	FirstName    string
	LastName     string
	EmployeeCode string
}

func (d Display) FullName() string {
	return d.FirstName + " " + d.LastName
}
