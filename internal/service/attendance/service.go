package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/emsuite/ems-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// ensureOwnRecord allows admins through and restricts employee callers to
// their own employee id.
func ensureOwnRecord(ctx context.Context, employeeID string) error {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}

	role, _ := claims["role"].(string)
	if role == jwt.RoleAdmin {
		return nil
	}

	ownID, ok := claims["employee_id"].(string)
	if !ok || ownID == "" {
		return attendance.ErrMissingEmployeeClaim
	}
	if ownID != employeeID {
		return attendance.ErrNotOwnAttendance
	}

	return nil
}

// applyToDaySlot decides how an incoming mark lands on the day slot: a
// closed slot (non-nil check-out) conflicts, an open slot is overwritten in
// place keeping its identity, and a missing slot becomes a new record.
func applyToDaySlot(existing *attendance.Attendance, incoming attendance.Attendance) (record attendance.Attendance, update bool, err error) {
	if existing == nil {
		return incoming, false, nil
	}
	if existing.CheckOut != nil {
		return attendance.Attendance{}, false, attendance.ErrDayAlreadyClosed
	}

	record = *existing
	record.CheckIn = incoming.CheckIn
	record.CheckOut = incoming.CheckOut
	record.HoursWorked = incoming.HoursWorked
	record.Status = incoming.Status
	return record, true, nil
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := ensureOwnRecord(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	exists, err := s.employeeRepo.Exists(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !exists {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	// The row key is the check-in date truncated to midnight in the
	// reference timezone, not the raw event timestamp.
	checkInLocal := req.CheckInTime.In(time.Local)
	day := time.Date(checkInLocal.Year(), checkInLocal.Month(), checkInLocal.Day(), 0, 0, 0, 0, time.Local)

	status := attendance.StatusFullDay
	var hoursWorked *decimal.Decimal

	if req.CheckOutTime != nil {
		if !req.CheckOutTime.After(req.CheckInTime) {
			return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeIn
		}
		hours := decimal.NewFromFloat(req.CheckOutTime.Sub(req.CheckInTime).Hours()).Round(2)
		hoursWorked = &hours
		status = attendance.StatusForHours(hours)
	}

	incoming := attendance.Attendance{
		EmployeeID:  req.EmployeeID,
		Date:        day,
		CheckIn:     req.CheckInTime,
		CheckOut:    req.CheckOutTime,
		HoursWorked: hoursWorked,
		Status:      status,
	}

	var saved attendance.Attendance
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.attendanceRepo.GetByEmployeeAndDateLocked(txCtx, req.EmployeeID, day)
		if err != nil {
			return err
		}

		record, update, err := applyToDaySlot(existing, incoming)
		if err != nil {
			return err
		}

		if update {
			saved, err = s.attendanceRepo.Update(txCtx, record)
		} else {
			saved, err = s.attendanceRepo.Create(txCtx, record)
		}
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	display, err := s.employeeRepo.GetDisplay(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	resp := toResponse(saved)
	resp.Employee = &attendance.EmployeeInfo{
		FirstName:    display.FirstName,
		LastName:     display.LastName,
		EmployeeCode: display.EmployeeCode,
	}
	return resp, nil
}

// GetAttendanceByMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendanceByMonth(ctx context.Context, employeeID string, month string) ([]attendance.AttendanceResponse, error) {
	year, monthNum, ok := validator.ParseMonth(month)
	if !ok {
		return nil, attendance.ErrInvalidMonth
	}

	if err := ensureOwnRecord(ctx, employeeID); err != nil {
		return nil, err
	}

	exists, err := s.employeeRepo.Exists(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, employee.ErrEmployeeNotFound
	}

	from := time.Date(year, time.Month(monthNum), 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)

	records, err := s.attendanceRepo.ListByMonth(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		resp := toResponse(rec)
		if rec.FirstName != nil && rec.LastName != nil && rec.EmployeeCode != nil {
			resp.Employee = &attendance.EmployeeInfo{
				FirstName:    *rec.FirstName,
				LastName:     *rec.LastName,
				EmployeeCode: *rec.EmployeeCode,
			}
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

func toResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:          a.ID,
		EmployeeID:  a.EmployeeID,
		Date:        a.Date.Format("2006-01-02"),
		CheckIn:     a.CheckIn,
		CheckOut:    a.CheckOut,
		HoursWorked: a.HoursWorked,
		Status:      string(a.Status),
	}
}
