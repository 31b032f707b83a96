package payroll

import "context"

type PayrollRepository interface {
	// GetBySalaryIDs returns existing disbursements keyed by any of the
	// given salary ids.
	GetBySalaryIDs(ctx context.Context, salaryIDs []string) ([]Payroll, error)

	// CreateBatch inserts the disbursement set; callers run it inside the
	// distribution transaction so the batch is all-or-nothing.
	CreateBatch(ctx context.Context, payrolls []Payroll) error

	// ListHistory returns disbursements joined with salary and employee
	// context, newest distribution first. Empty month means all months.
	ListHistory(ctx context.Context, month string) ([]HistoryRow, error)
}

type PayrollService interface {
	DistributePayroll(ctx context.Context, req DistributePayrollRequest) (DistributionSummary, error)
	GetPayrollHistory(ctx context.Context, month string) ([]MonthSummary, error)
}
