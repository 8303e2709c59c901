package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSalaryRequest entrada para liquidar un mes. BaseSalary nil toma el del empleado.
type CreateSalaryRequest struct {
	EmployeeID string           `json:"employee_id" validate:"required,uuid"`
	Year       int              `json:"year" validate:"required,min=2000,max=2100"`
	Month      int              `json:"month" validate:"required,min=1,max=12"`
	BaseSalary *decimal.Decimal `json:"base_salary"`
	Bonus      decimal.Decimal  `json:"bonus"`
	Deduction  decimal.Decimal  `json:"deduction"`
}

// SalaryQuery filtro ?year=&month=.
type SalaryQuery struct {
	Year  int `query:"year" validate:"omitempty,min=2000,max=2100"`
	Month int `query:"month" validate:"omitempty,min=1,max=12"`
}

// SalaryResponse salida de una liquidación.
type SalaryResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Department   string          `json:"department"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Bonus        decimal.Decimal `json:"bonus"`
	Deduction    decimal.Decimal `json:"deduction"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	Paid         bool            `json:"paid"`
	PaidAt       *time.Time      `json:"paid_at"`
}

// SalarySummaryDTO totales del periodo consultado.
type SalarySummaryDTO struct {
	TotalBaseSalary decimal.Decimal `json:"total_base_salary"`
	TotalNetSalary  decimal.Decimal `json:"total_net_salary"`
	EmployeeCount   int             `json:"employee_count"`
	PaidCount       int             `json:"paid_count"`
	AverageSalary   decimal.Decimal `json:"average_salary"`
}

// MonthlySalaryDTO fila del resumen mensual.
type MonthlySalaryDTO struct {
	Period          string          `json:"period"` // "2024-01"
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	TotalBaseSalary decimal.Decimal `json:"total_base_salary"`
	TotalNetSalary  decimal.Decimal `json:"total_net_salary"`
	EmployeeCount   int             `json:"employee_count"`
	PaidCount       int             `json:"paid_count"`
	AverageSalary   decimal.Decimal `json:"average_salary"`
}

// DepartmentStatDTO resumen de un departamento.
type DepartmentStatDTO struct {
	Count   int             `json:"count"`
	Total   decimal.Decimal `json:"total"`
	Average decimal.Decimal `json:"average"`
}

// SalarySummaryResponse respuesta de /salaries/summary.
type SalarySummaryResponse struct {
	Year            int                          `json:"year"`
	Month           int                          `json:"month,omitempty"`
	Summary         SalarySummaryDTO             `json:"summary"`
	DepartmentStats map[string]DepartmentStatDTO `json:"department_stats"`
	Monthly         []MonthlySalaryDTO           `json:"monthly"`
	Salaries        []SalaryResponse             `json:"salaries"`
}
