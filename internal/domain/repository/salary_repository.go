package repository

import (
	"context"
	"time"

	"github.com/jhoicas/khohang-api/internal/domain/entity"
)

// SalaryFilter filtra la nómina por año y, opcionalmente, por mes.
type SalaryFilter struct {
	Year  int
	Month int // 0 = todo el año
}

// SalaryRepository define el puerto de persistencia para Salary.
type SalaryRepository interface {
	Create(ctx context.Context, salary *entity.Salary) error
	GetByID(ctx context.Context, id string) (*entity.Salary, error)
	// List incluye nombre y departamento del empleado.
	List(ctx context.Context, f SalaryFilter) ([]*entity.Salary, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) error
	Delete(ctx context.Context, id string) error
}
