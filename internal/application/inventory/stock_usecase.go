package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/khohang-api/internal/application/dto"
	"github.com/jhoicas/khohang-api/internal/application/ports"
	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
	"github.com/jhoicas/khohang-api/internal/domain/repository"
	"github.com/jhoicas/khohang-api/internal/domain/stock"
)

// StockUseCase consulta las existencias conciliadas de un producto.
type StockUseCase struct {
	products repository.ProductRepository
	details  repository.DetailRepository
	sheets   ports.SheetWriter
}

// NewStockUseCase construye el caso de uso. sheets puede ser nil si no se exporta.
func NewStockUseCase(products repository.ProductRepository, details repository.DetailRepository, sheets ports.SheetWriter) *StockUseCase {
	return &StockUseCase{products: products, details: details, sheets: sheets}
}

// ProductStock devuelve el saldo por color y talla, con subtotales por color.
// Las combinaciones configuradas en el producto aparecen aunque no tengan
// movimientos.
func (uc *StockUseCase) ProductStock(ctx context.Context, productID string) (*dto.ProductStockResponse, error) {
	product, ledger, err := uc.ledger(ctx, productID)
	if err != nil {
		return nil, err
	}

	colors := []string{""}
	if len(product.Colors) > 0 {
		colors = colors[:0]
		for _, c := range product.Colors {
			colors = append(colors, c.Title)
		}
	}
	sizes := []string{""}
	if len(product.Sizes) > 0 {
		sizes = product.Sizes
	}
	for _, c := range colors {
		for _, s := range sizes {
			key := stock.StockKey{ProductID: product.ID, ColorTitle: c, Size: s}
			if _, ok := ledger[key]; !ok {
				ledger[key] = stock.StockAggregate{Key: key}
			}
		}
	}

	rows := make([]stock.StockAggregate, 0, len(ledger))
	for _, agg := range ledger {
		rows = append(rows, agg)
	}
	sortByProductColors(rows, product)
	grouping := stock.GroupByColor(rows)

	resp := &dto.ProductStockResponse{
		ProductID:   product.ID,
		ProductCode: product.Code,
		ProductName: product.Name,
		Rows:        make([]dto.StockRowResponse, 0, len(rows)),
		Groups:      make([]dto.ColorGroupResponse, 0, len(grouping.Groups)),
		Total:       toTotals(grouping.Total),
	}
	for _, r := range rows {
		resp.Rows = append(resp.Rows, toStockRow(r, product))
	}
	for _, g := range grouping.Groups {
		group := dto.ColorGroupResponse{
			Color:      product.ColorCode(g.ColorTitle),
			ColorTitle: g.ColorTitle,
			Items:      make([]dto.StockRowResponse, 0, len(g.Items)),
			Totals:     toTotals(g.Totals),
		}
		for _, it := range g.Items {
			group.Items = append(group.Items, toStockRow(it, product))
		}
		resp.Groups = append(resp.Groups, group)
	}
	return resp, nil
}

// Check evalúa una cantidad contra el saldo de una combinación. No bloquea
// nada: sirve para marcar las opciones de los selectores.
func (uc *StockUseCase) Check(ctx context.Context, productID string, q dto.StockCheckQuery) (*dto.StockCheckResponse, error) {
	product, ledger, err := uc.ledger(ctx, productID)
	if err != nil {
		return nil, err
	}
	key := stock.StockKey{
		ProductID:  product.ID,
		ColorTitle: strings.TrimSpace(q.ColorTitle),
		Size:       strings.ToUpper(strings.TrimSpace(q.Size)),
	}
	agg := ledger.Get(key)
	decision := stock.Evaluate(stock.ParseQuantity(q.Quantity), agg.RemainingQuantity)
	return &dto.StockCheckResponse{
		Decision:    *toDecisionResponse(decision),
		LowPriority: stock.LowPriority(agg.RemainingQuantity),
		Stock:       toStockRow(agg, product),
	}, nil
}

// ExportXLSX genera la hoja de existencias del producto.
func (uc *StockUseCase) ExportXLSX(ctx context.Context, productID string) ([]byte, string, error) {
	if uc.sheets == nil {
		return nil, "", errors.New("generador de hojas no configurado")
	}
	resp, err := uc.ProductStock(ctx, productID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.sheets.StockSheet(ctx, resp)
	if err != nil {
		return nil, "", fmt.Errorf("generar XLSX: %w", err)
	}
	return data, "ton-kho-" + resp.ProductCode + ".xlsx", nil
}

func (uc *StockUseCase) ledger(ctx context.Context, productID string) (*entity.Product, stock.Ledger, error) {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}
	movements, err := uc.details.ListMovements(ctx, product.ID)
	if err != nil {
		return nil, nil, err
	}
	return product, stock.Reduce(movements), nil
}

// sortByProductColors ordena por la posición del color en el producto (los
// colores que ya no están configurados van después, por nombre; el vacío al
// final) y luego por talla.
func sortByProductColors(rows []stock.StockAggregate, product *entity.Product) {
	rank := make(map[string]int, len(product.Colors))
	for i, c := range product.Colors {
		rank[c.Title] = i
	}
	colorRank := func(title string) int {
		if r, ok := rank[title]; ok {
			return r
		}
		if title == "" {
			return len(product.Colors) + 1
		}
		return len(product.Colors)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Key, rows[j].Key
		ra, rb := colorRank(a.ColorTitle), colorRank(b.ColorTitle)
		if ra != rb {
			return ra < rb
		}
		if a.ColorTitle != b.ColorTitle {
			return a.ColorTitle < b.ColorTitle
		}
		return stock.LessSize(a.Size, b.Size)
	})
}
