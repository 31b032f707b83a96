package payroll

import (
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type DistributePayrollRequest struct {
	Month       string   `json:"month"`
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (r *DistributePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	for _, id := range r.EmployeeIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "must not contain empty ids"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DistributedSalary struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Amount       decimal.Decimal `json:"amount"`
}

// DistributionSummary reports one distribution run. TotalAmount aggregates
// the whole filtered salary set for the month, while TotalEmployees counts
// only the newly distributed partition; the two can describe different
// populations when part of the set was already paid.
type DistributionSummary struct {
	Message             string              `json:"message"`
	DistributedBy       string              `json:"distributed_by"`
	TotalEmployees      int                 `json:"total_employees"`
	TotalAmount         decimal.Decimal     `json:"total_amount"`
	DistributedSalaries []DistributedSalary `json:"distributed_salaries"`
}

type Distribution struct {
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	Amount        decimal.Decimal `json:"amount"`
	DistributedAt time.Time       `json:"distributed_at"`
}

type MonthSummary struct {
	Month          string          `json:"month"`
	TotalEmployees int             `json:"total_employees"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Distributions  []Distribution  `json:"distributions"`
}
