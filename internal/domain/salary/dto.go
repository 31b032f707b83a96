package salary

import (
	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculateSalaryRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
}

func (r *CalculateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	Month           string          `json:"month"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	HRA             decimal.Decimal `json:"hra"`
	Allowances      decimal.Decimal `json:"allowances"`
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	TaxDeduction    decimal.Decimal `json:"tax_deduction"`
	PFDeduction     decimal.Decimal `json:"pf_deduction"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	FullDays        int             `json:"full_days"`
	HalfDays        int             `json:"half_days"`
	TotalSalary     decimal.Decimal `json:"total_salary"`
	NetSalary       decimal.Decimal `json:"net_salary"`

	Employee *SalaryEmployeeInfo `json:"employee,omitempty"`
}

type SalaryEmployeeInfo struct {
	ID           string  `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	EmployeeCode string  `json:"employee_code"`
	Email        *string `json:"email,omitempty"`
}

func ToResponse(s Salary) SalaryResponse {
	resp := SalaryResponse{
		ID:              s.ID,
		EmployeeID:      s.EmployeeID,
		Month:           s.Month,
		BasicSalary:     s.BasicSalary,
		HRA:             s.HRA,
		Allowances:      s.Allowances,
		GrossSalary:     s.GrossSalary,
		TaxDeduction:    s.TaxDeduction,
		PFDeduction:     s.PFDeduction,
		OtherDeductions: s.OtherDeductions,
		FullDays:        s.FullDays,
		HalfDays:        s.HalfDays,
		TotalSalary:     s.TotalSalary,
		NetSalary:       s.NetSalary,
	}

	if s.FirstName != nil && s.LastName != nil && s.EmployeeCode != nil {
		resp.Employee = &SalaryEmployeeInfo{
			ID:           s.EmployeeID,
			FirstName:    *s.FirstName,
			LastName:     *s.LastName,
			EmployeeCode: *s.EmployeeCode,
			Email:        s.Email,
		}
	}

	return resp
}
