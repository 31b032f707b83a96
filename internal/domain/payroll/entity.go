package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is an immutable disbursement record. A salary is distributed at
// most once for its lifetime: salary_id is unique across all rows.
type Payroll struct {
	ID            string
	SalaryID      string
	Month         string
	TotalAmount   decimal.Decimal
	DistributedBy string
	DistributedAt time.Time
}

// HistoryRow is one disbursement joined with its salary and employee
// context, as read back for history aggregation.
type HistoryRow struct {
	Payroll
	EmployeeID string
	FirstName  string
	LastName   string
	Email      *string
}
