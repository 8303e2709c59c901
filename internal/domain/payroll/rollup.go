// Package payroll consolida la nómina por mes y por departamento para las
// tablas de resumen.
package payroll

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/khohang-api/pkg/groupby"
)

// SalaryRecord es una fila de nómina de un empleado en un periodo.
type SalaryRecord struct {
	EmployeeID   string
	EmployeeName string
	Department   string
	Year         int
	Month        int
	BaseSalary   decimal.Decimal
	NetSalary    decimal.Decimal
	Paid         bool
}

// PeriodKey devuelve la clave "año-mes" del periodo, ej. "2024-01".
func PeriodKey(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

// MonthlyAggregate resume un periodo.
type MonthlyAggregate struct {
	Key             string
	Year            int
	Month           int
	TotalBaseSalary decimal.Decimal
	TotalNetSalary  decimal.Decimal
	EmployeeCount   int
	PaidCount       int
	AverageSalary   decimal.Decimal
}

// DepartmentAggregate resume un departamento.
type DepartmentAggregate struct {
	Department    string
	TotalSalary   decimal.Decimal
	EmployeeCount int
	AverageSalary decimal.Decimal
}

// Summary son los totales sobre todas las filas.
type Summary struct {
	TotalBaseSalary decimal.Decimal
	TotalNetSalary  decimal.Decimal
	EmployeeCount   int
	PaidCount       int
	AverageSalary   decimal.Decimal
}

// Report es el resultado de RollUp.
// Monthly va del periodo más reciente al más antiguo; Departments por nombre.
type Report struct {
	Summary     Summary
	Monthly     []MonthlyAggregate
	Departments []DepartmentAggregate
}

// ByMonth indexa Monthly por clave "año-mes".
func (r Report) ByMonth() map[string]MonthlyAggregate {
	out := make(map[string]MonthlyAggregate, len(r.Monthly))
	for _, m := range r.Monthly {
		out[m.Key] = m
	}
	return out
}

// ByDepartment indexa Departments por nombre.
func (r Report) ByDepartment() map[string]DepartmentAggregate {
	out := make(map[string]DepartmentAggregate, len(r.Departments))
	for _, d := range r.Departments {
		out[d.Department] = d
	}
	return out
}

// Average divide total entre count; con count 0 devuelve 0.
func Average(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// RollUp agrupa y suma las filas. Los promedios se calculan al final, sobre
// los totales ya plegados.
func RollUp(records []SalaryRecord) Report {
	net := func(r SalaryRecord) decimal.Decimal { return r.NetSalary }
	base := func(r SalaryRecord) decimal.Decimal { return r.BaseSalary }
	paid := func(r SalaryRecord) int {
		if r.Paid {
			return 1
		}
		return 0
	}

	report := Report{
		Summary: Summary{
			TotalBaseSalary: groupby.SumDecimal(records, base),
			TotalNetSalary:  groupby.SumDecimal(records, net),
			EmployeeCount:   len(records),
			PaidCount:       groupby.SumBy(records, paid),
		},
	}
	report.Summary.AverageSalary = Average(report.Summary.TotalNetSalary, report.Summary.EmployeeCount)

	for _, g := range groupby.GroupBy(records, func(r SalaryRecord) string { return PeriodKey(r.Year, r.Month) }) {
		m := MonthlyAggregate{
			Key:             g.Key,
			Year:            g.Items[0].Year,
			Month:           g.Items[0].Month,
			TotalBaseSalary: groupby.SumDecimal(g.Items, base),
			TotalNetSalary:  groupby.SumDecimal(g.Items, net),
			EmployeeCount:   len(g.Items),
			PaidCount:       groupby.SumBy(g.Items, paid),
		}
		m.AverageSalary = Average(m.TotalNetSalary, m.EmployeeCount)
		report.Monthly = append(report.Monthly, m)
	}
	sort.SliceStable(report.Monthly, func(i, j int) bool {
		a, b := report.Monthly[i], report.Monthly[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return a.Month > b.Month
	})

	for _, g := range groupby.GroupBy(records, func(r SalaryRecord) string { return r.Department }) {
		d := DepartmentAggregate{
			Department:    g.Key,
			TotalSalary:   groupby.SumDecimal(g.Items, net),
			EmployeeCount: len(g.Items),
		}
		d.AverageSalary = Average(d.TotalSalary, d.EmployeeCount)
		report.Departments = append(report.Departments, d)
	}
	sort.SliceStable(report.Departments, func(i, j int) bool {
		return report.Departments[i].Department < report.Departments[j].Department
	})

	return report
}

// NetSalary calcula el neto: base + bonificación - deducción.
func NetSalary(base, bonus, deduction decimal.Decimal) decimal.Decimal {
	return base.Add(bonus).Sub(deduction)
}
