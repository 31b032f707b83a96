package postgresql

import (
	"context"
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/domain/salary"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

const salaryColumns = `id, employee_id, month, basic_salary, hra, allowances, gross_salary,
	tax_deduction, pf_deduction, other_deductions, full_days, half_days,
	total_salary, net_salary, created_at, updated_at`

func scanSalary(row pgx.Row) (salary.Salary, error) {
	var s salary.Salary
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.Month, &s.BasicSalary, &s.HRA, &s.Allowances, &s.GrossSalary,
		&s.TaxDeduction, &s.PFDeduction, &s.OtherDeductions, &s.FullDays, &s.HalfDays,
		&s.TotalSalary, &s.NetSalary, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Upsert implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Upsert(ctx context.Context, s salary.Salary) error {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO salaries (
			id, employee_id, month, basic_salary, hra, allowances, gross_salary,
			tax_deduction, pf_deduction, other_deductions, full_days, half_days,
			total_salary, net_salary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (employee_id, month) DO UPDATE SET
			basic_salary = EXCLUDED.basic_salary,
			hra = EXCLUDED.hra,
			allowances = EXCLUDED.allowances,
			gross_salary = EXCLUDED.gross_salary,
			tax_deduction = EXCLUDED.tax_deduction,
			pf_deduction = EXCLUDED.pf_deduction,
			other_deductions = EXCLUDED.other_deductions,
			full_days = EXCLUDED.full_days,
			half_days = EXCLUDED.half_days,
			total_salary = EXCLUDED.total_salary,
			net_salary = EXCLUDED.net_salary,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		s.ID, s.EmployeeID, s.Month, s.BasicSalary, s.HRA, s.Allowances, s.GrossSalary,
		s.TaxDeduction, s.PFDeduction, s.OtherDeductions, s.FullDays, s.HalfDays,
		s.TotalSalary, s.NetSalary,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert salary: %w", err)
	}

	return nil
}

// GetByEmployeeAndMonth implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM salaries WHERE employee_id = $1 AND month = $2`, salaryColumns)

	s, err := scanSalary(q.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to get salary: %w", err)
	}

	return s, nil
}

// GetDetailByEmployeeAndMonth implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetDetailByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, s.month, s.basic_salary, s.hra, s.allowances, s.gross_salary,
			s.tax_deduction, s.pf_deduction, s.other_deductions, s.full_days, s.half_days,
			s.total_salary, s.net_salary, s.created_at, s.updated_at,
			e.first_name, e.last_name, e.employee_code, u.email
		FROM salaries s
		JOIN employees e ON s.employee_id = e.id
		JOIN users u ON e.user_id = u.id
		WHERE s.employee_id = $1 AND s.month = $2
	`

	var s salary.Salary
	err := q.QueryRow(ctx, query, employeeID, month).Scan(
		&s.ID, &s.EmployeeID, &s.Month, &s.BasicSalary, &s.HRA, &s.Allowances, &s.GrossSalary,
		&s.TaxDeduction, &s.PFDeduction, &s.OtherDeductions, &s.FullDays, &s.HalfDays,
		&s.TotalSalary, &s.NetSalary, &s.CreatedAt, &s.UpdatedAt,
		&s.FirstName, &s.LastName, &s.EmployeeCode, &s.Email,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to get salary detail: %w", err)
	}

	return s, nil
}

// ListForMonthLocked implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) ListForMonthLocked(ctx context.Context, month string, employeeIDs []string) ([]salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, s.month, s.basic_salary, s.hra, s.allowances, s.gross_salary,
			s.tax_deduction, s.pf_deduction, s.other_deductions, s.full_days, s.half_days,
			s.total_salary, s.net_salary, s.created_at, s.updated_at,
			e.first_name, e.last_name, e.employee_code, u.email
		FROM salaries s
		JOIN employees e ON s.employee_id = e.id
		JOIN users u ON e.user_id = u.id
		WHERE s.month = $1
	`
	args := []interface{}{month}
	if len(employeeIDs) > 0 {
		query += ` AND s.employee_id = ANY($2)`
		args = append(args, employeeIDs)
	}
	query += ` FOR UPDATE OF s`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries for month: %w", err)
	}
	defer rows.Close()

	var salaries []salary.Salary
	for rows.Next() {
		var s salary.Salary
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.Month, &s.BasicSalary, &s.HRA, &s.Allowances, &s.GrossSalary,
			&s.TaxDeduction, &s.PFDeduction, &s.OtherDeductions, &s.FullDays, &s.HalfDays,
			&s.TotalSalary, &s.NetSalary, &s.CreatedAt, &s.UpdatedAt,
			&s.FirstName, &s.LastName, &s.EmployeeCode, &s.Email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		salaries = append(salaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return salaries, nil
}

// SumNetForMonth implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) SumNetForMonth(ctx context.Context, month string, employeeIDs []string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COALESCE(SUM(net_salary), 0) FROM salaries WHERE month = $1`
	args := []interface{}{month}
	if len(employeeIDs) > 0 {
		query += ` AND employee_id = ANY($2)`
		args = append(args, employeeIDs)
	}

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to sum net salaries: %w", err)
	}

	return total, nil
}
