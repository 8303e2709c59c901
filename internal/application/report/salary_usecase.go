// Package report contiene los casos de uso de resúmenes: nómina por mes y por
// departamento, y el panel anual de movimientos.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/khohang-api/internal/application/dto"
	"github.com/jhoicas/khohang-api/internal/application/ports"
	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
	"github.com/jhoicas/khohang-api/internal/domain/payroll"
	"github.com/jhoicas/khohang-api/internal/domain/repository"
)

// SalaryUseCase liquida la nómina mensual y arma su resumen.
type SalaryUseCase struct {
	salaries  repository.SalaryRepository
	employees repository.EmployeeRepository
	sheets    ports.SheetWriter
	now       func() time.Time
}

// NewSalaryUseCase construye el caso de uso. sheets puede ser nil si no se exporta.
func NewSalaryUseCase(salaries repository.SalaryRepository, employees repository.EmployeeRepository, sheets ports.SheetWriter) *SalaryUseCase {
	return &SalaryUseCase{salaries: salaries, employees: employees, sheets: sheets, now: time.Now}
}

// Create liquida un mes para un empleado. Sin salario base explícito se usa
// el del empleado.
func (uc *SalaryUseCase) Create(ctx context.Context, in dto.CreateSalaryRequest) (*dto.SalaryResponse, error) {
	emp, err := uc.employees.GetByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, fmt.Errorf("%w: empleado no encontrado", domain.ErrInvalidInput)
	}

	base := emp.BaseSalary
	if in.BaseSalary != nil {
		base = *in.BaseSalary
	}
	if base.IsNegative() || in.Bonus.IsNegative() || in.Deduction.IsNegative() {
		return nil, fmt.Errorf("%w: los montos no pueden ser negativos", domain.ErrInvalidInput)
	}

	now := uc.now()
	s := &entity.Salary{
		ID:           uuid.New().String(),
		EmployeeID:   emp.ID,
		Year:         in.Year,
		Month:        in.Month,
		BaseSalary:   base,
		Bonus:        in.Bonus,
		Deduction:    in.Deduction,
		NetSalary:    payroll.NetSalary(base, in.Bonus, in.Deduction),
		CreatedAt:    now,
		UpdatedAt:    now,
		EmployeeName: emp.Name,
		Department:   emp.Department,
	}
	if err := uc.salaries.Create(ctx, s); err != nil {
		return nil, err
	}
	resp := toSalaryResponse(s)
	return &resp, nil
}

// List devuelve la nómina del año (y mes). Sin año se usa el actual.
func (uc *SalaryUseCase) List(ctx context.Context, q dto.SalaryQuery) ([]dto.SalaryResponse, error) {
	list, err := uc.salaries.List(ctx, uc.filter(q))
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSalaryResponse(s))
	}
	return out, nil
}

// MarkPaid marca la liquidación como pagada y la devuelve releída.
func (uc *SalaryUseCase) MarkPaid(ctx context.Context, id string) (*dto.SalaryResponse, error) {
	if err := uc.salaries.MarkPaid(ctx, id, uc.now()); err != nil {
		return nil, err
	}
	s, err := uc.salaries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSalaryResponse(s)
	return &resp, nil
}

func (uc *SalaryUseCase) Delete(ctx context.Context, id string) error {
	return uc.salaries.Delete(ctx, id)
}

// Summary consolida la nómina del periodo por mes y por departamento.
func (uc *SalaryUseCase) Summary(ctx context.Context, q dto.SalaryQuery) (*dto.SalarySummaryResponse, error) {
	f := uc.filter(q)
	list, err := uc.salaries.List(ctx, f)
	if err != nil {
		return nil, err
	}

	records := make([]payroll.SalaryRecord, 0, len(list))
	salaries := make([]dto.SalaryResponse, 0, len(list))
	for _, s := range list {
		records = append(records, payroll.SalaryRecord{
			EmployeeID:   s.EmployeeID,
			EmployeeName: s.EmployeeName,
			Department:   s.Department,
			Year:         s.Year,
			Month:        s.Month,
			BaseSalary:   s.BaseSalary,
			NetSalary:    s.NetSalary,
			Paid:         s.Paid,
		})
		salaries = append(salaries, toSalaryResponse(s))
	}
	report := payroll.RollUp(records)

	resp := &dto.SalarySummaryResponse{
		Year:  f.Year,
		Month: f.Month,
		Summary: dto.SalarySummaryDTO{
			TotalBaseSalary: report.Summary.TotalBaseSalary,
			TotalNetSalary:  report.Summary.TotalNetSalary,
			EmployeeCount:   report.Summary.EmployeeCount,
			PaidCount:       report.Summary.PaidCount,
			AverageSalary:   report.Summary.AverageSalary,
		},
		DepartmentStats: make(map[string]dto.DepartmentStatDTO, len(report.Departments)),
		Monthly:         make([]dto.MonthlySalaryDTO, 0, len(report.Monthly)),
		Salaries:        salaries,
	}
	for _, d := range report.Departments {
		resp.DepartmentStats[d.Department] = dto.DepartmentStatDTO{
			Count:   d.EmployeeCount,
			Total:   d.TotalSalary,
			Average: d.AverageSalary,
		}
	}
	for _, m := range report.Monthly {
		resp.Monthly = append(resp.Monthly, dto.MonthlySalaryDTO{
			Period:          m.Key,
			Year:            m.Year,
			Month:           m.Month,
			TotalBaseSalary: m.TotalBaseSalary,
			TotalNetSalary:  m.TotalNetSalary,
			EmployeeCount:   m.EmployeeCount,
			PaidCount:       m.PaidCount,
			AverageSalary:   m.AverageSalary,
		})
	}
	return resp, nil
}

// ExportXLSX genera la hoja del resumen de nómina.
func (uc *SalaryUseCase) ExportXLSX(ctx context.Context, q dto.SalaryQuery) ([]byte, string, error) {
	if uc.sheets == nil {
		return nil, "", errors.New("generador de hojas no configurado")
	}
	summary, err := uc.Summary(ctx, q)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.sheets.SalarySheet(ctx, summary)
	if err != nil {
		return nil, "", fmt.Errorf("generar XLSX: %w", err)
	}
	name := fmt.Sprintf("bang-luong-%d.xlsx", summary.Year)
	if summary.Month > 0 {
		name = fmt.Sprintf("bang-luong-%s.xlsx", payroll.PeriodKey(summary.Year, summary.Month))
	}
	return data, name, nil
}

func (uc *SalaryUseCase) filter(q dto.SalaryQuery) repository.SalaryFilter {
	year := q.Year
	if year == 0 {
		year = uc.now().Year()
	}
	return repository.SalaryFilter{Year: year, Month: q.Month}
}

func toSalaryResponse(s *entity.Salary) dto.SalaryResponse {
	return dto.SalaryResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		Department:   s.Department,
		Year:         s.Year,
		Month:        s.Month,
		BaseSalary:   s.BaseSalary,
		Bonus:        s.Bonus,
		Deduction:    s.Deduction,
		NetSalary:    s.NetSalary,
		Paid:         s.Paid,
		PaidAt:       s.PaidAt,
	}
}
