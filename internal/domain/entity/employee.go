package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa un empleado en nómina.
type Employee struct {
	ID         string
	Name       string
	Department string
	BaseSalary decimal.Decimal
	Status     string // active, inactive
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Salary es la liquidación de un empleado en un mes.
// NetSalary = BaseSalary + Bonus - Deduction. (employee_id, year, month) es único.
type Salary struct {
	ID         string
	EmployeeID string
	Year       int
	Month      int
	BaseSalary decimal.Decimal
	Bonus      decimal.Decimal
	Deduction  decimal.Decimal
	NetSalary  decimal.Decimal
	Paid       bool
	PaidAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Solo lectura (JOIN con employees).
	EmployeeName string
	Department   string
}
