package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/khohang-api/internal/application/dto"
	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
	"github.com/jhoicas/khohang-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.BaseSalary.IsNegative() {
		return nil, fmt.Errorf("%w: salario base negativo", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = "active"
	}
	now := time.Now()
	e := &entity.Employee{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(in.Name),
		Department: strings.TrimSpace(in.Department),
		BaseSalary: in.BaseSalary,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(e), nil
}

func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.BaseSalary.IsNegative() {
		return nil, fmt.Errorf("%w: salario base negativo", domain.ErrInvalidInput)
	}
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	e.Name = strings.TrimSpace(in.Name)
	e.Department = strings.TrimSpace(in.Department)
	e.BaseSalary = in.BaseSalary
	if in.Status != "" {
		e.Status = in.Status
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

func (uc *EmployeeUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.EmployeeListResponse, error) {
	list, total, err := uc.repo.List(ctx, q.Filter())
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{Items: items, Page: dto.NewPage(q, total)}, nil
}

func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Department: e.Department,
		BaseSalary: e.BaseSalary,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
