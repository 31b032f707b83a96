package salary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/salary"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type SalaryServiceImpl struct {
	db             *database.DB
	salaryRepo     salary.SalaryRepository
	taxSlabRepo    salary.TaxSlabRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewSalaryService(
	db *database.DB,
	salaryRepo salary.SalaryRepository,
	taxSlabRepo salary.TaxSlabRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) salary.SalaryService {
	return &SalaryServiceImpl{
		db:             db,
		salaryRepo:     salaryRepo,
		taxSlabRepo:    taxSlabRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// CalculateSalary implements salary.SalaryService. Recalculation is a full
// overwrite of the (employee, month) record, never an increment.
func (s *SalaryServiceImpl) CalculateSalary(ctx context.Context, req salary.CalculateSalaryRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}
	year, monthNum, _ := validator.ParseMonth(req.Month)

	comp, err := s.employeeRepo.GetCompensation(ctx, req.EmployeeID)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	from := time.Date(year, time.Month(monthNum), 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)
	counts, err := s.attendanceRepo.CountDayStatuses(ctx, req.EmployeeID, from, to)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	// Immutable snapshot of the slab table per calculation.
	slabs, err := s.taxSlabRepo.ListOrdered(ctx)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	record := computeBreakdown(comp, counts.FullDays, counts.HalfDays, year, time.Month(monthNum), slabs)
	record.EmployeeID = req.EmployeeID
	record.Month = req.Month

	if err := s.salaryRepo.Upsert(ctx, record); err != nil {
		return salary.SalaryResponse{}, err
	}

	// Re-read so storage rounding is reflected to the caller; the persisted
	// row is the single source of truth.
	persisted, err := s.salaryRepo.GetByEmployeeAndMonth(ctx, req.EmployeeID, req.Month)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to read back salary record: %w", err)
	}

	return salary.ToResponse(persisted), nil
}

// GetSalary implements salary.SalaryService. Non-admin callers may only
// view their own record.
func (s *SalaryServiceImpl) GetSalary(ctx context.Context, employeeID string, month string) (salary.SalaryResponse, error) {
	if !validator.IsValidMonth(month) {
		return salary.SalaryResponse{}, salary.ErrInvalidMonth
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	role, _ := claims["role"].(string)
	if role != jwt.RoleAdmin {
		ownID, ok := claims["employee_id"].(string)
		if !ok || ownID != employeeID {
			return salary.SalaryResponse{}, salary.ErrNotOwnSalary
		}
	}

	record, err := s.salaryRepo.GetDetailByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		if errors.Is(err, salary.ErrSalaryNotFound) {
			return salary.SalaryResponse{}, salary.ErrSalaryNotFound
		}
		return salary.SalaryResponse{}, err
	}

	return salary.ToResponse(record), nil
}
