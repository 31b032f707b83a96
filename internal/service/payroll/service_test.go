package payroll

import (
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/payroll"
	"github.com/emsuite/ems-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testSalary(id, employeeID, net string) salary.Salary {
	return salary.Salary{
		ID:         id,
		EmployeeID: employeeID,
		Month:      "2024-04",
		NetSalary:  decimal.RequireFromString(net),
	}
}

func TestPartitionBySalaryID(t *testing.T) {
	salaries := []salary.Salary{
		testSalary("s1", "e1", "23064.39"),
		testSalary("s2", "e2", "18000"),
		testSalary("s3", "e3", "31500.50"),
	}

	t.Run("no existing payrolls", func(t *testing.T) {
		distributed, undistributed := partitionBySalaryID(salaries, nil)
		assert.Empty(t, distributed)
		assert.Len(t, undistributed, 3)
	})

	t.Run("partial overlap", func(t *testing.T) {
		existing := []payroll.Payroll{{ID: "p1", SalaryID: "s2"}}
		distributed, undistributed := partitionBySalaryID(salaries, existing)
		assert.Len(t, distributed, 1)
		assert.Equal(t, "s2", distributed[0].ID)
		assert.Len(t, undistributed, 2)
		assert.Equal(t, "s1", undistributed[0].ID)
		assert.Equal(t, "s3", undistributed[1].ID)
	})

	t.Run("all already distributed", func(t *testing.T) {
		existing := []payroll.Payroll{
			{ID: "p1", SalaryID: "s1"},
			{ID: "p2", SalaryID: "s2"},
			{ID: "p3", SalaryID: "s3"},
		}
		distributed, undistributed := partitionBySalaryID(salaries, existing)
		assert.Len(t, distributed, 3)
		assert.Empty(t, undistributed)
	})
}

func TestSelectUndistributed(t *testing.T) {
	salaries := []salary.Salary{
		testSalary("s1", "e1", "23064.39"),
		testSalary("s2", "e2", "18000"),
	}

	t.Run("returns the unpaid remainder", func(t *testing.T) {
		existing := []payroll.Payroll{{ID: "p1", SalaryID: "s1"}}
		undistributed, err := selectUndistributed(salaries, existing)
		assert.NoError(t, err)
		if assert.Len(t, undistributed, 1) {
			assert.Equal(t, "s2", undistributed[0].ID)
		}
	})

	t.Run("conflicts when the whole set is already paid", func(t *testing.T) {
		existing := []payroll.Payroll{
			{ID: "p1", SalaryID: "s1"},
			{ID: "p2", SalaryID: "s2"},
		}
		_, err := selectUndistributed(salaries, existing)
		assert.ErrorIs(t, err, payroll.ErrAlreadyDistributed)
	})
}

func TestBuildSummary(t *testing.T) {
	first, last := "Jane", "Cooper"
	undistributed := []salary.Salary{
		{ID: "s1", EmployeeID: "e1", NetSalary: decimal.NewFromInt(18000), FirstName: &first, LastName: &last},
		{ID: "s2", EmployeeID: "e2", NetSalary: decimal.NewFromInt(21000)},
	}
	// totalAmount covers the full filtered set, so it can exceed the sum
	// of the newly distributed batch.
	totalAmount := decimal.NewFromInt(62064)

	got := buildSummary("admin-1", undistributed, totalAmount)

	assert.Equal(t, "Payroll distributed successfully", got.Message)
	assert.Equal(t, "admin-1", got.DistributedBy)
	assert.Equal(t, 2, got.TotalEmployees)
	assert.True(t, got.TotalAmount.Equal(totalAmount))
	assert.Len(t, got.DistributedSalaries, 2)
	assert.Equal(t, "Jane Cooper", got.DistributedSalaries[0].EmployeeName)
	assert.Equal(t, "", got.DistributedSalaries[1].EmployeeName)
	assert.True(t, got.DistributedSalaries[1].Amount.Equal(decimal.NewFromInt(21000)))
}

func TestDistribute_TotalAmountCoversFilteredSet(t *testing.T) {
	// One salary of the month is already paid; the summary still reports
	// the month-wide aggregate while counting only the new batch.
	undistributed := []salary.Salary{testSalary("s2", "e2", "18000")}
	monthWideTotal := decimal.RequireFromString("41064.39") // includes the paid s1

	got := buildSummary("admin-1", undistributed, monthWideTotal)

	assert.Equal(t, 1, got.TotalEmployees)
	assert.True(t, got.TotalAmount.Equal(monthWideTotal))

	batchSum := decimal.Zero
	for _, d := range got.DistributedSalaries {
		batchSum = batchSum.Add(d.Amount)
	}
	assert.True(t, got.TotalAmount.GreaterThan(batchSum))
}

func historyRow(month, employeeID, first, last, amount string, at time.Time) payroll.HistoryRow {
	return payroll.HistoryRow{
		Payroll: payroll.Payroll{
			SalaryID:      "sal-" + employeeID,
			Month:         month,
			TotalAmount:   decimal.RequireFromString(amount),
			DistributedAt: at,
		},
		EmployeeID: employeeID,
		FirstName:  first,
		LastName:   last,
	}
}

func TestGroupHistory(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	// Rows arrive distributed-at descending, months interleaved: April was
	// topped up after May's run.
	rows := []payroll.HistoryRow{
		historyRow("2024-04", "e3", "Ava", "Stone", "12000", base.Add(2*time.Hour)),
		historyRow("2024-05", "e1", "Jane", "Cooper", "23064.39", base.Add(time.Hour)),
		historyRow("2024-05", "e2", "Liam", "Ford", "18000", base),
		historyRow("2024-04", "e1", "Jane", "Cooper", "22500", base.Add(-30*24*time.Hour)),
	}

	got := groupHistory(rows)

	assert.Len(t, got, 2)

	assert.Equal(t, "2024-04", got[0].Month)
	assert.Equal(t, 2, got[0].TotalEmployees)
	assert.True(t, got[0].TotalAmount.Equal(decimal.RequireFromString("34500")))
	assert.Equal(t, "Ava Stone", got[0].Distributions[0].EmployeeName)

	assert.Equal(t, "2024-05", got[1].Month)
	assert.Equal(t, 2, got[1].TotalEmployees)
	assert.True(t, got[1].TotalAmount.Equal(decimal.RequireFromString("41064.39")))
	assert.Equal(t, "Jane Cooper", got[1].Distributions[0].EmployeeName)
	assert.Equal(t, "Liam Ford", got[1].Distributions[1].EmployeeName)
}

func TestGroupHistory_Empty(t *testing.T) {
	assert.Empty(t, groupHistory(nil))
}

func TestDistributePayrollRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		req     payroll.DistributePayrollRequest
		wantErr bool
	}{
		{"valid month only", payroll.DistributePayrollRequest{Month: "2024-04"}, false},
		{"valid with subset", payroll.DistributePayrollRequest{Month: "2024-04", EmployeeIDs: []string{"e1", "e2"}}, false},
		{"missing month", payroll.DistributePayrollRequest{}, true},
		{"malformed month", payroll.DistributePayrollRequest{Month: "2024-4"}, true},
		{"empty employee id", payroll.DistributePayrollRequest{Month: "2024-04", EmployeeIDs: []string{""}}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
