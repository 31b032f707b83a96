package payroll

import (
	"context"
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/payroll"
	"github.com/emsuite/ems-backend-go/internal/domain/salary"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/emsuite/ems-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db          *database.DB
	payrollRepo payroll.PayrollRepository
	salaryRepo  salary.SalaryRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	salaryRepo salary.SalaryRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:          db,
		payrollRepo: payrollRepo,
		salaryRepo:  salaryRepo,
	}
}

// partitionBySalaryID splits salaries into records that already have a
// disbursement and records still to be paid.
func partitionBySalaryID(salaries []salary.Salary, existing []payroll.Payroll) (distributed, undistributed []salary.Salary) {
	seen := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		seen[p.SalaryID] = struct{}{}
	}

	for _, s := range salaries {
		if _, ok := seen[s.ID]; ok {
			distributed = append(distributed, s)
		} else {
			undistributed = append(undistributed, s)
		}
	}
	return distributed, undistributed
}

// selectUndistributed returns the salaries still to be paid, conflicting
// when every record in the set already has a disbursement.
func selectUndistributed(salaries []salary.Salary, existing []payroll.Payroll) ([]salary.Salary, error) {
	_, undistributed := partitionBySalaryID(salaries, existing)
	if len(undistributed) == 0 {
		return nil, payroll.ErrAlreadyDistributed
	}
	return undistributed, nil
}

// DistributePayroll implements payroll.PayrollService. The read-partition-
// insert sequence runs in one transaction so two overlapping runs cannot
// both observe a salary as undistributed.
func (s *PayrollServiceImpl) DistributePayroll(ctx context.Context, req payroll.DistributePayrollRequest) (payroll.DistributionSummary, error) {
	if err := req.Validate(); err != nil {
		return payroll.DistributionSummary{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return payroll.DistributionSummary{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	distributedBy, _ := claims["user_id"].(string)
	if validator.IsEmpty(distributedBy) {
		return payroll.DistributionSummary{}, payroll.ErrDistributorRequired
	}

	var summary payroll.DistributionSummary
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		salaries, err := s.salaryRepo.ListForMonthLocked(txCtx, req.Month, req.EmployeeIDs)
		if err != nil {
			return err
		}
		if len(salaries) == 0 {
			return payroll.ErrNoSalariesForMonth
		}

		salaryIDs := make([]string, 0, len(salaries))
		for _, sal := range salaries {
			salaryIDs = append(salaryIDs, sal.ID)
		}

		existing, err := s.payrollRepo.GetBySalaryIDs(txCtx, salaryIDs)
		if err != nil {
			return err
		}

		undistributed, err := selectUndistributed(salaries, existing)
		if err != nil {
			return err
		}

		batch := make([]payroll.Payroll, 0, len(undistributed))
		for _, sal := range undistributed {
			batch = append(batch, payroll.Payroll{
				SalaryID:      sal.ID,
				Month:         req.Month,
				TotalAmount:   sal.NetSalary,
				DistributedBy: distributedBy,
			})
		}
		if err := s.payrollRepo.CreateBatch(txCtx, batch); err != nil {
			return err
		}

		// Re-derived over the whole filtered set, not summed over the new
		// batch; with partially paid months the count and the amount
		// describe different populations.
		totalAmount, err := s.salaryRepo.SumNetForMonth(txCtx, req.Month, req.EmployeeIDs)
		if err != nil {
			return err
		}

		summary = buildSummary(distributedBy, undistributed, totalAmount)
		return nil
	})
	if err != nil {
		return payroll.DistributionSummary{}, err
	}

	return summary, nil
}

func buildSummary(distributedBy string, undistributed []salary.Salary, totalAmount decimal.Decimal) payroll.DistributionSummary {
	distributedSalaries := make([]payroll.DistributedSalary, 0, len(undistributed))
	for _, sal := range undistributed {
		name := ""
		if sal.FirstName != nil && sal.LastName != nil {
			name = employee.Display{FirstName: *sal.FirstName, LastName: *sal.LastName}.FullName()
		}
		distributedSalaries = append(distributedSalaries, payroll.DistributedSalary{
			EmployeeID:   sal.EmployeeID,
			EmployeeName: name,
			Amount:       sal.NetSalary,
		})
	}

	return payroll.DistributionSummary{
		Message:             "Payroll distributed successfully",
		DistributedBy:       distributedBy,
		TotalEmployees:      len(undistributed),
		TotalAmount:         totalAmount,
		DistributedSalaries: distributedSalaries,
	}
}

// groupHistory buckets rows by month, preserving first-encounter order of
// the distributed-at-descending scan: the month of the most recent
// disbursement comes first.
func groupHistory(rows []payroll.HistoryRow) []payroll.MonthSummary {
	index := make(map[string]int)
	var summaries []payroll.MonthSummary

	for _, row := range rows {
		i, ok := index[row.Month]
		if !ok {
			i = len(summaries)
			index[row.Month] = i
			summaries = append(summaries, payroll.MonthSummary{
				Month:       row.Month,
				TotalAmount: decimal.Zero,
			})
		}

		summaries[i].TotalEmployees++
		summaries[i].TotalAmount = summaries[i].TotalAmount.Add(row.TotalAmount)
		summaries[i].Distributions = append(summaries[i].Distributions, payroll.Distribution{
			EmployeeID:    row.EmployeeID,
			EmployeeName:  employee.Display{FirstName: row.FirstName, LastName: row.LastName}.FullName(),
			Amount:        row.TotalAmount,
			DistributedAt: row.DistributedAt,
		})
	}

	return summaries
}

// GetPayrollHistory implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayrollHistory(ctx context.Context, month string) ([]payroll.MonthSummary, error) {
	if month != "" && !validator.IsValidMonth(month) {
		return nil, payroll.ErrInvalidMonth
	}

	rows, err := s.payrollRepo.ListHistory(ctx, month)
	if err != nil {
		return nil, err
	}

	return groupHistory(rows), nil
}
