package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
	"github.com/jhoicas/khohang-api/internal/domain/repository"
)

var _ repository.SalaryRepository = (*SalaryRepo)(nil)

// SalaryRepo persiste la nómina mensual.
type SalaryRepo struct {
	q Querier
}

// NewSalaryRepository construye el adaptador.
func NewSalaryRepository(q Querier) *SalaryRepo {
	return &SalaryRepo{q: q}
}

const salarySelect = `
	SELECT s.id, s.employee_id, s.year, s.month, s.base_salary, s.bonus, s.deduction, s.net_salary,
	       s.paid, s.paid_at, s.created_at, s.updated_at, e.name, e.department
	FROM salaries s
	JOIN employees e ON e.id = s.employee_id`

func scanSalary(row pgx.Row) (*entity.Salary, error) {
	var s entity.Salary
	if err := row.Scan(&s.ID, &s.EmployeeID, &s.Year, &s.Month, &s.BaseSalary, &s.Bonus, &s.Deduction, &s.NetSalary,
		&s.Paid, &s.PaidAt, &s.CreatedAt, &s.UpdatedAt, &s.EmployeeName, &s.Department); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste la liquidación; un segundo registro del mismo periodo devuelve ErrDuplicate.
func (r *SalaryRepo) Create(ctx context.Context, s *entity.Salary) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO salaries (id, employee_id, year, month, base_salary, bonus, deduction, net_salary, paid, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.EmployeeID, s.Year, s.Month, s.BaseSalary, s.Bonus, s.Deduction, s.NetSalary,
		s.Paid, s.PaidAt, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: empleado inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert salary: %w", err)
	}
	return nil
}

func (r *SalaryRepo) GetByID(ctx context.Context, id string) (*entity.Salary, error) {
	s, err := scanSalary(r.q.QueryRow(ctx, salarySelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get salary: %w", err)
	}
	return s, nil
}

// List devuelve la nómina del año (y mes, si f.Month > 0), del periodo más reciente al más antiguo.
func (r *SalaryRepo) List(ctx context.Context, f repository.SalaryFilter) ([]*entity.Salary, error) {
	rows, err := r.q.Query(ctx, salarySelect+`
		WHERE s.year = $1 AND ($2 = 0 OR s.month = $2)
		ORDER BY s.year DESC, s.month DESC, e.department, e.name`, f.Year, f.Month)
	if err != nil {
		return nil, fmt.Errorf("list salaries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Salary
	for rows.Next() {
		s, err := scanSalary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan salary: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// MarkPaid marca la liquidación como pagada.
func (r *SalaryRepo) MarkPaid(ctx context.Context, id string, paidAt time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE salaries SET paid = true, paid_at = $2, updated_at = $2 WHERE id = $1`, id, paidAt)
	if err != nil {
		return fmt.Errorf("mark salary paid: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SalaryRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM salaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete salary: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
