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
	"github.com/jhoicas/khohang-api/internal/domain/stock"
)

// ProductUseCase casos de uso CRUD para productos. Las existencias salen de las líneas de documento.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. El código es único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	code := strings.TrimSpace(in.Code)
	existing, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	colors, err := toProductColors(in.Colors)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Code:        code,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		UnitPrice:   in.UnitPrice,
		Colors:      colors,
		Sizes:       normalizeSizes(in.Sizes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto; los campos nil no se modifican.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil {
		product.Code = strings.TrimSpace(*in.Code)
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	if in.Colors != nil {
		colors, err := toProductColors(in.Colors)
		if err != nil {
			return nil, err
		}
		product.Colors = colors
	}
	if in.Sizes != nil {
		product.Sizes = normalizeSizes(in.Sizes)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación y búsqueda.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.ProductListResponse, error) {
	list, total, err := uc.repo.List(ctx, q.Filter())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Page: dto.NewPage(q, total)}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// toProductColors valida que los nombres de color no se repitan.
func toProductColors(in []dto.ProductColorDTO) ([]entity.ProductColor, error) {
	seen := make(map[string]bool, len(in))
	out := make([]entity.ProductColor, 0, len(in))
	for _, c := range in {
		title := strings.TrimSpace(c.ColorTitle)
		if title == "" || seen[title] {
			return nil, fmt.Errorf("%w: color %q vacío o repetido", domain.ErrInvalidInput, title)
		}
		seen[title] = true
		out = append(out, entity.ProductColor{Color: strings.TrimSpace(c.Color), Title: title})
	}
	return out, nil
}

// normalizeSizes quita duplicados y ordena según stock.KnownSizes.
func normalizeSizes(in []string) []string {
	present := make(map[string]bool, len(in))
	for _, s := range in {
		present[strings.ToUpper(strings.TrimSpace(s))] = true
	}
	out := make([]string, 0, len(present))
	for _, s := range stock.KnownSizes {
		if present[s] {
			out = append(out, s)
		}
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	colors := make([]dto.ProductColorDTO, 0, len(p.Colors))
	for _, c := range p.Colors {
		colors = append(colors, dto.ProductColorDTO{Color: c.Color, ColorTitle: c.Title})
	}
	sizes := p.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		Colors:      colors,
		Sizes:       sizes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
