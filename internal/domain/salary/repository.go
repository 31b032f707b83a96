package salary

import (
	"context"

	"github.com/shopspring/decimal"
)

type SalaryRepository interface {
	// Upsert inserts or fully overwrites the (employee, month) record in
	// one statement, relying on the unique (employee_id, month) constraint.
	Upsert(ctx context.Context, s Salary) error

	GetByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (Salary, error)

	// GetDetailByEmployeeAndMonth joins the employee display snapshot and
	// account email onto the record.
	GetDetailByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (Salary, error)

	// ListForMonthLocked loads the month's records (optionally filtered to
	// an employee subset) with employee names joined, locking the salary
	// rows. Callers must be inside a transaction.
	ListForMonthLocked(ctx context.Context, month string, employeeIDs []string) ([]Salary, error)

	// SumNetForMonth aggregates net salary over the month's records within
	// the optional employee subset, regardless of distribution status.
	SumNetForMonth(ctx context.Context, month string, employeeIDs []string) (decimal.Decimal, error)
}

type TaxSlabRepository interface {
	// ListOrdered returns all slabs ascending by min income, the order the
	// tax engine requires.
	ListOrdered(ctx context.Context) ([]TaxSlab, error)
}

type SalaryService interface {
	CalculateSalary(ctx context.Context, req CalculateSalaryRequest) (SalaryResponse, error)
	GetSalary(ctx context.Context, employeeID string, month string) (SalaryResponse, error)
}
