package salary

import (
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

var (
	pfRate = decimal.NewFromFloat(0.12)
	twelve = decimal.NewFromInt(12)
	two    = decimal.NewFromInt(2)
)

// workingDaysInMonth counts the weekdays (Monday through Friday) of a
// calendar month. No holiday calendar is applied.
func workingDaysInMonth(year int, month time.Month) int {
	days := 0
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}

// computeBreakdown derives the full salary record from the compensation
// baseline and the month's worked-day counts. Tax is computed on the
// annualized contractual gross, not the attendance-adjusted month: tax
// liability tracks contractual salary, not days worked. Net salary clamps
// at zero as a business floor.
func computeBreakdown(comp employee.Compensation, fullDays, halfDays int, year int, month time.Month, slabs []salary.TaxSlab) salary.Salary {
	grossSalary := comp.BasicSalary.Add(comp.HRA).Add(comp.Allowances)
	pfDeduction := comp.BasicSalary.Mul(pfRate)

	annualGross := grossSalary.Mul(twelve)
	annualTax := ComputeTax(annualGross, slabs)
	monthlyTax := annualTax.Div(twelve)

	workingDays := workingDaysInMonth(year, month)
	dailyWage := grossSalary.Div(decimal.NewFromInt(int64(workingDays)))
	totalSalary := dailyWage.Mul(decimal.NewFromInt(int64(fullDays))).
		Add(dailyWage.Div(two).Mul(decimal.NewFromInt(int64(halfDays))))

	netSalary := totalSalary.Sub(monthlyTax).Sub(pfDeduction).Sub(comp.OtherDeductions)
	netSalary = decimal.Max(decimal.Zero, netSalary)

	return salary.Salary{
		BasicSalary:     comp.BasicSalary,
		HRA:             comp.HRA,
		Allowances:      comp.Allowances,
		GrossSalary:     grossSalary,
		TaxDeduction:    monthlyTax,
		PFDeduction:     pfDeduction,
		OtherDeductions: comp.OtherDeductions,
		FullDays:        fullDays,
		HalfDays:        halfDays,
		TotalSalary:     totalSalary,
		NetSalary:       netSalary,
	}
}
