package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxSlab is one contiguous income band with its marginal rate. Slabs are
// immutable reference data, non-overlapping and ordered by MinIncome
// ascending; exactly one slab has a nil MaxIncome (the unbounded top band).
type TaxSlab struct {
	ID          string
	MinIncome   decimal.Decimal
	MaxIncome   *decimal.Decimal
	TaxRate     decimal.Decimal
	Description string
}

// Salary is the computed record for one (employee, month). Recalculation
// fully overwrites the row; it never accumulates.
type Salary struct {
	ID              string
	EmployeeID      string
	Month           string
	BasicSalary     decimal.Decimal
	HRA             decimal.Decimal
	Allowances      decimal.Decimal
	GrossSalary     decimal.Decimal
	TaxDeduction    decimal.Decimal
	PFDeduction     decimal.Decimal
	OtherDeductions decimal.Decimal
	FullDays        int
	HalfDays        int
	TotalSalary     decimal.Decimal
	NetSalary       decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	FirstName    *string
	LastName     *string
	EmployeeCode *string
	Email        *string
}
