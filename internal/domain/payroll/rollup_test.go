package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/khohang-api/internal/domain/payroll"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRollUp_DosFilasDelMismoMes(t *testing.T) {
	report := payroll.RollUp([]payroll.SalaryRecord{
		{Year: 2024, Month: 1, Department: "Kho", BaseSalary: d("900"), NetSalary: d("1000")},
		{Year: 2024, Month: 1, Department: "Kho", BaseSalary: d("1800"), NetSalary: d("2000"), Paid: true},
	})

	require.Len(t, report.Monthly, 1)
	m := report.ByMonth()["2024-01"]
	assert.Equal(t, 2, m.EmployeeCount)
	assert.Equal(t, 1, m.PaidCount)
	assert.True(t, m.TotalNetSalary.Equal(d("3000")))
	assert.True(t, m.TotalBaseSalary.Equal(d("2700")))
	assert.True(t, m.AverageSalary.Equal(d("1500")), "promedio %s", m.AverageSalary)

	dep := report.ByDepartment()["Kho"]
	assert.Equal(t, 2, dep.EmployeeCount)
	assert.True(t, dep.AverageSalary.Equal(d("1500")))

	assert.Equal(t, 2, report.Summary.EmployeeCount)
	assert.True(t, report.Summary.AverageSalary.Equal(d("1500")))
}

func TestRollUp_SinFilasPromedioCero(t *testing.T) {
	report := payroll.RollUp(nil)
	assert.True(t, report.Summary.AverageSalary.IsZero())
	assert.True(t, report.Summary.TotalNetSalary.IsZero())
	assert.Empty(t, report.Monthly)
	assert.Empty(t, report.Departments)
}

func TestAverage_DivisorCero(t *testing.T) {
	assert.True(t, payroll.Average(d("1234.5"), 0).IsZero())
	assert.True(t, payroll.Average(d("10"), 3).Equal(d("3.33")))
}

func TestRollUp_MesesDelMasRecienteAlMasAntiguo(t *testing.T) {
	report := payroll.RollUp([]payroll.SalaryRecord{
		{Year: 2023, Month: 12, Department: "A", NetSalary: d("1")},
		{Year: 2024, Month: 2, Department: "B", NetSalary: d("1")},
		{Year: 2024, Month: 11, Department: "A", NetSalary: d("1")},
		{Year: 2024, Month: 2, Department: "A", NetSalary: d("1")},
	})

	keys := make([]string, 0, len(report.Monthly))
	for _, m := range report.Monthly {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"2024-11", "2024-02", "2023-12"}, keys)
	assert.Equal(t, 2, report.ByMonth()["2024-02"].EmployeeCount)

	require.Len(t, report.Departments, 2)
	assert.Equal(t, "A", report.Departments[0].Department)
	assert.Equal(t, 3, report.Departments[0].EmployeeCount)
}

func TestNetSalary(t *testing.T) {
	assert.True(t, payroll.NetSalary(d("1000"), d("250.5"), d("100")).Equal(d("1150.5")))
}
