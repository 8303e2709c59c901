package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
	"github.com/jhoicas/khohang-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, name, department, base_salary, status, created_at, updated_at`

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	if err := row.Scan(&e.ID, &e.Name, &e.Department, &e.BaseSalary, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO employees (`+employeeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Name, e.Department, e.BaseSalary, e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE employees SET name = $2, department = $3, base_salary = $4, status = $5, updated_at = $6
		WHERE id = $1`,
		e.ID, e.Name, e.Department, e.BaseSalary, e.Status, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista empleados por nombre o departamento.
func (r *EmployeeRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Employee, int, error) {
	const where = ` WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR department ILIKE '%' || $1 || '%')`
	total, err := count(ctx, r.q, `SELECT COUNT(*) FROM employees`+where, f.Search)
	if err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}
	rows, err := r.q.Query(ctx, `SELECT `+employeeColumns+` FROM employees`+where+
		` ORDER BY department, name LIMIT $2 OFFSET $3`, f.Search, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, total, rows.Err()
}

func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
