package postgresql

import (
	"context"
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.user_id, e.employee_code, e.first_name, e.last_name,
			e.basic_salary, e.hra, e.allowances, e.other_deductions,
			e.created_at, e.updated_at, u.email
		FROM employees e
		JOIN users u ON e.user_id = u.id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.UserID, &emp.EmployeeCode, &emp.FirstName, &emp.LastName,
		&emp.BasicSalary, &emp.HRA, &emp.Allowances, &emp.OtherDeductions,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.Email,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// Exists implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Exists(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}

	return exists, nil
}

// GetCompensation implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetCompensation(ctx context.Context, id string) (employee.Compensation, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT basic_salary, hra, allowances, other_deductions
		FROM employees
		WHERE id = $1
	`

	var comp employee.Compensation
	err := q.QueryRow(ctx, query, id).Scan(
		&comp.BasicSalary, &comp.HRA, &comp.Allowances, &comp.OtherDeductions,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Compensation{}, employee.ErrEmployeeNotFound
		}
		return employee.Compensation{}, fmt.Errorf("failed to get employee compensation: %w", err)
	}

	return comp, nil
}

// GetDisplay implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetDisplay(ctx context.Context, id string) (employee.Display, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT first_name, last_name, employee_code
		FROM employees
		WHERE id = $1
	`

	var d employee.Display
	err := q.QueryRow(ctx, query, id).Scan(&d.FirstName, &d.LastName, &d.EmployeeCode)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Display{}, employee.ErrEmployeeNotFound
		}
		return employee.Display{}, fmt.Errorf("failed to get employee display: %w", err)
	}

	return d, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.user_id, e.employee_code, e.first_name, e.last_name,
			e.basic_salary, e.hra, e.allowances, e.other_deductions,
			e.created_at, e.updated_at, u.email
		FROM employees e
		JOIN users u ON e.user_id = u.id
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.UserID, &emp.EmployeeCode, &emp.FirstName, &emp.LastName,
			&emp.BasicSalary, &emp.HRA, &emp.Allowances, &emp.OtherDeductions,
			&emp.CreatedAt, &emp.UpdatedAt, &emp.Email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
