package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/khohang-api/internal/application/dto"
	"github.com/jhoicas/khohang-api/internal/application/usecase"
	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
	"github.com/jhoicas/khohang-api/internal/domain/repository"
)

type memProducts struct {
	items map[string]*entity.Product
	order []string
}

func newMemProducts() *memProducts { return &memProducts{items: map[string]*entity.Product{}} }

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.items[p.ID] = p
	m.order = append(m.order, p.ID)
	return nil
}
func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return m.items[id], nil
}
func (m *memProducts) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	for _, p := range m.items {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}
func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	if _, ok := m.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	m.items[p.ID] = p
	return nil
}
func (m *memProducts) List(_ context.Context, f repository.ListFilter) ([]*entity.Product, int, error) {
	var out []*entity.Product
	for i, id := range m.order {
		if i >= f.Offset && len(out) < f.Limit {
			out = append(out, m.items[id])
		}
	}
	return out, len(m.order), nil
}
func (m *memProducts) Delete(_ context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func TestProductUseCase_CreateNormalizaTallas(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts())

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Code:   "AO-01",
		Name:   "Áo thun",
		Colors: []dto.ProductColorDTO{{Color: "#000000", ColorTitle: "Đen"}, {Color: "#ffffff", ColorTitle: "Trắng"}},
		Sizes:  []string{"xl", "S", "M", "S"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "M", "XL"}, out.Sizes)
	assert.Len(t, out.Colors, 2)
}

func TestProductUseCase_CodigoDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Code: "AO-01", Name: "A"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Code: "AO-01", Name: "B"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUseCase_ColorRepetido(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Code:   "AO-02",
		Name:   "A",
		Colors: []dto.ProductColorDTO{{ColorTitle: "Đen"}, {ColorTitle: "Đen"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_ListPaginado(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts())
	ctx := context.Background()
	for _, code := range []string{"A", "B", "C"} {
		_, err := uc.Create(ctx, dto.CreateProductRequest{Code: code, Name: code})
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, dto.ListQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, dto.PageResponse{Page: 2, Limit: 2, Total: 3}, out.Page)
}

func TestProductUseCase_GetInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts())
	_, err := uc.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
