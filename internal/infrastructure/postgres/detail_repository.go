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
	"github.com/jhoicas/khohang-api/internal/domain/stock"
)

var _ repository.DetailRepository = (*DetailRepo)(nil)

// DetailRepo persiste las líneas de documento (usable con pool o tx).
type DetailRepo struct {
	q Querier
}

// NewDetailRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDetailRepository(q Querier) *DetailRepo {
	return &DetailRepo{q: q}
}

const detailSelect = `
	SELECT d.id, d.document_id, d.product_id, d.color_title, d.size, d.quantity, d.unit_price,
	       d.created_at, d.updated_at, p.code, p.name
	FROM document_details d
	JOIN products p ON p.id = d.product_id`

func scanDetail(row pgx.Row) (*entity.DocumentDetail, error) {
	var d entity.DocumentDetail
	if err := row.Scan(&d.ID, &d.DocumentID, &d.ProductID, &d.ColorTitle, &d.Size, &d.Quantity, &d.UnitPrice,
		&d.CreatedAt, &d.UpdatedAt, &d.ProductCode, &d.ProductName); err != nil {
		return nil, err
	}
	return &d, nil
}

// mapDetailWriteErr traduce las violaciones de constraints a errores de dominio.
func mapDetailWriteErr(op string, err error) error {
	switch {
	case violatesConstraint(err, constraintCombination):
		return domain.ErrDuplicateCombination
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: producto o documento inexistente", domain.ErrInvalidInput)
	default:
		return fmt.Errorf("%s document detail: %w", op, err)
	}
}

// Create inserta una línea.
func (r *DetailRepo) Create(ctx context.Context, d *entity.DocumentDetail) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO document_details (id, document_id, product_id, color_title, size, quantity, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		d.ID, d.DocumentID, d.ProductID, d.ColorTitle, d.Size, d.Quantity, d.UnitPrice, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return mapDetailWriteErr("insert", err)
	}
	return nil
}

// GetByID obtiene una línea del documento.
func (r *DetailRepo) GetByID(ctx context.Context, documentID, id string) (*entity.DocumentDetail, error) {
	d, err := scanDetail(r.q.QueryRow(ctx, detailSelect+` WHERE d.document_id = $1 AND d.id = $2`, documentID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document detail: %w", err)
	}
	return d, nil
}

// Update reemplaza producto, color, talla, cantidad y precio de la línea.
func (r *DetailRepo) Update(ctx context.Context, d *entity.DocumentDetail) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE document_details
		SET product_id = $3, color_title = $4, size = $5, quantity = $6, unit_price = $7, updated_at = $8
		WHERE document_id = $1 AND id = $2`,
		d.DocumentID, d.ID, d.ProductID, d.ColorTitle, d.Size, d.Quantity, d.UnitPrice, d.UpdatedAt,
	)
	if err != nil {
		return mapDetailWriteErr("update", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una línea del documento.
func (r *DetailRepo) Delete(ctx context.Context, documentID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM document_details WHERE document_id = $1 AND id = $2`, documentID, id)
	if err != nil {
		return fmt.Errorf("delete document detail: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByDocument devuelve las líneas en orden de alta.
func (r *DetailRepo) ListByDocument(ctx context.Context, documentID string) ([]*entity.DocumentDetail, error) {
	rows, err := r.q.Query(ctx, detailSelect+` WHERE d.document_id = $1 ORDER BY d.created_at, d.id`, documentID)
	if err != nil {
		return nil, fmt.Errorf("list document details: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentDetail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document detail: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// ListMovements devuelve las líneas de importación, exportación y traslado del producto.
func (r *DetailRepo) ListMovements(ctx context.Context, productID string) ([]stock.MovementRecord, error) {
	rows, err := r.q.Query(ctx, `
		SELECT d.product_id, d.color_title, d.size, d.quantity, doc.kind
		FROM document_details d
		JOIN documents doc ON doc.id = d.document_id
		WHERE d.product_id = $1 AND doc.kind IN ('import', 'export', 'transfer')`, productID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []stock.MovementRecord
	for rows.Next() {
		var (
			m    stock.MovementRecord
			kind string
		)
		if err := rows.Scan(&m.ProductID, &m.ColorTitle, &m.Size, &m.Quantity, &kind); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Direction = entity.DocumentKind(kind).Direction()
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListDated devuelve cantidad e importe de cada línea del tipo en [from, to).
func (r *DetailRepo) ListDated(ctx context.Context, kind entity.DocumentKind, from, to time.Time) ([]repository.DatedLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT doc.date, d.quantity, d.quantity * d.unit_price
		FROM document_details d
		JOIN documents doc ON doc.id = d.document_id
		WHERE doc.kind = $1 AND doc.date >= $2 AND doc.date < $3`, string(kind), from, to)
	if err != nil {
		return nil, fmt.Errorf("list dated lines: %w", err)
	}
	defer rows.Close()
	var list []repository.DatedLine
	for rows.Next() {
		var l repository.DatedLine
		if err := rows.Scan(&l.Date, &l.Quantity, &l.Amount); err != nil {
			return nil, fmt.Errorf("scan dated line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
