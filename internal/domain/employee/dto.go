package employee

import "github.com/shopspring/decimal"

type EmployeeResponse struct {
	ID              string          `json:"id"`
	EmployeeCode    string          `json:"employee_code"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Email           *string         `json:"email,omitempty"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	HRA             decimal.Decimal `json:"hra"`
	Allowances      decimal.Decimal `json:"allowances"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		EmployeeCode:    e.EmployeeCode,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		Email:           e.Email,
		BasicSalary:     e.BasicSalary,
		HRA:             e.HRA,
		Allowances:      e.Allowances,
		OtherDeductions: e.OtherDeductions,
	}
}
