package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/emsuite/ems-backend-go/internal/domain/payroll"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// GetBySalaryIDs implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetBySalaryIDs(ctx context.Context, salaryIDs []string) ([]payroll.Payroll, error) {
	if len(salaryIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, salary_id, month, total_amount, distributed_by, distributed_at
		FROM payrolls
		WHERE salary_id = ANY($1)
	`

	rows, err := q.Query(ctx, query, salaryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get payrolls by salary ids: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		if err := rows.Scan(&p.ID, &p.SalaryID, &p.Month, &p.TotalAmount, &p.DistributedBy, &p.DistributedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payrolls, nil
}

// CreateBatch implements payroll.PayrollRepository. The unique constraint
// on salary_id is the second line of defense against double distribution.
func (r *payrollRepositoryImpl) CreateBatch(ctx context.Context, payrolls []payroll.Payroll) error {
	if len(payrolls) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	// Build batch insert query
	valueStrings := make([]string, 0, len(payrolls))
	valueArgs := make([]interface{}, 0, len(payrolls)*5)

	for i, p := range payrolls {
		if p.ID == "" {
			p.ID = uuid.New().String()
		}

		base := i * 5
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5,
		))
		valueArgs = append(valueArgs, p.ID, p.SalaryID, p.Month, p.TotalAmount, p.DistributedBy)
	}

	query := fmt.Sprintf(`
		INSERT INTO payrolls (id, salary_id, month, total_amount, distributed_by)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	if _, err := q.Exec(ctx, query, valueArgs...); err != nil {
		if isUniqueViolation(err) {
			return payroll.ErrAlreadyDistributed
		}
		return fmt.Errorf("failed to batch create payrolls: %w", err)
	}

	return nil
}

// ListHistory implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListHistory(ctx context.Context, month string) ([]payroll.HistoryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.salary_id, p.month, p.total_amount, p.distributed_by, p.distributed_at,
			s.employee_id, e.first_name, e.last_name, u.email
		FROM payrolls p
		JOIN salaries s ON p.salary_id = s.id
		JOIN employees e ON s.employee_id = e.id
		JOIN users u ON e.user_id = u.id
	`
	args := []interface{}{}
	if month != "" {
		query += ` WHERE p.month = $1`
		args = append(args, month)
	}
	query += ` ORDER BY p.distributed_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll history: %w", err)
	}
	defer rows.Close()

	var history []payroll.HistoryRow
	for rows.Next() {
		var h payroll.HistoryRow
		if err := rows.Scan(
			&h.ID, &h.SalaryID, &h.Month, &h.TotalAmount, &h.DistributedBy, &h.DistributedAt,
			&h.EmployeeID, &h.FirstName, &h.LastName, &h.Email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll history row: %w", err)
		}
		history = append(history, h)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
