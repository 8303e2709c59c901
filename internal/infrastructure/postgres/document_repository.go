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

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo persiste las cabeceras de documentos de bodega (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `id, kind, code, customer_id, warehouse_id, note, status, date, created_by, created_at, updated_at`

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var (
		d         entity.Document
		kind      string
		createdBy *string
	)
	if err := row.Scan(&d.ID, &kind, &d.Code, &d.CustomerID, &d.WarehouseID, &d.Note, &d.Status, &d.Date,
		&createdBy, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	d.Kind = entity.DocumentKind(kind)
	if createdBy != nil {
		d.CreatedBy = *createdBy
	}
	return &d, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create persiste la cabecera.
func (r *DocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO documents (`+documentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		d.ID, string(d.Kind), d.Code, d.CustomerID, d.WarehouseID, d.Note, d.Status, d.Date,
		nullable(d.CreatedBy), d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: cliente o bodega inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera si es del tipo indicado.
func (r *DocumentRepo) GetByID(ctx context.Context, kind entity.DocumentKind, id string) (*entity.Document, error) {
	d, err := scanDocument(r.q.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = $1 AND kind = $2`, id, string(kind)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

// Update actualiza nota, estado, cliente, bodega y fecha.
func (r *DocumentRepo) Update(ctx context.Context, d *entity.Document) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE documents SET customer_id = $3, warehouse_id = $4, note = $5, status = $6, date = $7, updated_at = $8
		WHERE id = $1 AND kind = $2`,
		d.ID, string(d.Kind), d.CustomerID, d.WarehouseID, d.Note, d.Status, d.Date, d.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: cliente o bodega inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update document: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista documentos del tipo, más recientes primero, buscando por código o nota.
func (r *DocumentRepo) List(ctx context.Context, kind entity.DocumentKind, f repository.ListFilter) ([]*entity.Document, int, error) {
	const where = ` WHERE kind = $1 AND ($2 = '' OR code ILIKE '%' || $2 || '%' OR note ILIKE '%' || $2 || '%')`
	total, err := count(ctx, r.q, `SELECT COUNT(*) FROM documents`+where, string(kind), f.Search)
	if err != nil {
		return nil, 0, fmt.Errorf("count documents: %w", err)
	}
	rows, err := r.q.Query(ctx, `SELECT `+documentColumns+` FROM documents`+where+
		` ORDER BY date DESC, code DESC LIMIT $3 OFFSET $4`, string(kind), f.Search, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, d)
	}
	return list, total, rows.Err()
}

// Delete borra la cabecera y, en cascada, sus líneas.
func (r *DocumentRepo) Delete(ctx context.Context, kind entity.DocumentKind, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM documents WHERE id = $1 AND kind = $2`, id, string(kind))
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextCode calcula el siguiente correlativo del tipo. El índice único de code
// rechaza la carrera entre dos altas simultáneas.
func (r *DocumentRepo) NextCode(ctx context.Context, kind entity.DocumentKind) (string, error) {
	var next int64
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(MAX(CAST(substring(code FROM 3) AS BIGINT)), 0) + 1
		FROM documents WHERE kind = $1 AND code ~ '^[A-Z]{2}[0-9]+$'`, string(kind)).Scan(&next)
	if err != nil {
		return "", fmt.Errorf("next document code: %w", err)
	}
	return fmt.Sprintf("%s%06d", kind.CodePrefix(), next), nil
}
