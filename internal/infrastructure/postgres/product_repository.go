package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
	"github.com/jhoicas/khohang-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, code, name, description, unit_price, colors, sizes, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p      entity.Product
		colors []byte
	)
	if err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.UnitPrice, &colors, &p.Sizes, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if len(colors) > 0 {
		if err := json.Unmarshal(colors, &p.Colors); err != nil {
			return nil, fmt.Errorf("decode colors: %w", err)
		}
	}
	return &p, nil
}

func encodeColors(colors []entity.ProductColor) ([]byte, error) {
	if colors == nil {
		colors = []entity.ProductColor{}
	}
	return json.Marshal(colors)
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	colors, err := encodeColors(product.Colors)
	if err != nil {
		return fmt.Errorf("encode colors: %w", err)
	}
	sizes := product.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		product.ID, product.Code, product.Name, product.Description, product.UnitPrice,
		colors, sizes, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByCode obtiene un producto por código.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by code: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente. Las existencias no se tocan: salen de las líneas de documento.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	colors, err := encodeColors(product.Colors)
	if err != nil {
		return fmt.Errorf("encode colors: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `
		UPDATE products SET code = $2, name = $3, description = $4, unit_price = $5, colors = $6, sizes = $7, updated_at = $8
		WHERE id = $1`,
		product.ID, product.Code, product.Name, product.Description, product.UnitPrice, colors, product.Sizes, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos filtrando por código o nombre.
func (r *ProductRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Product, int, error) {
	const where = ` WHERE ($1 = '' OR code ILIKE '%' || $1 || '%' OR name ILIKE '%' || $1 || '%')`
	total, err := count(ctx, r.q, `SELECT COUNT(*) FROM products`+where, f.Search)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products`+where+
		` ORDER BY created_at DESC LIMIT $2 OFFSET $3`, f.Search, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Delete elimina un producto. Si tiene líneas de documento devuelve ErrConflict.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
