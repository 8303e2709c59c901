package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/khohang-api/internal/application/dto"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
	"github.com/jhoicas/khohang-api/internal/domain/stock"
)

func toDocumentResponse(d *entity.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:          d.ID,
		Kind:        string(d.Kind),
		Code:        d.Code,
		CustomerID:  d.CustomerID,
		WarehouseID: d.WarehouseID,
		Note:        d.Note,
		Status:      d.Status,
		Date:        d.Date,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toDetailResponse(d *entity.DocumentDetail) dto.DetailResponse {
	return dto.DetailResponse{
		ID:          d.ID,
		DocumentID:  d.DocumentID,
		ProductID:   d.ProductID,
		ProductCode: d.ProductCode,
		ProductName: d.ProductName,
		ColorTitle:  d.ColorTitle,
		Size:        d.Size,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		Amount:      d.Amount(),
	}
}

func toDetailResponses(list []*entity.DocumentDetail) []dto.DetailResponse {
	out := make([]dto.DetailResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDetailResponse(d))
	}
	return out
}

func detailTotals(list []*entity.DocumentDetail) (int64, decimal.Decimal) {
	var qty int64
	amount := decimal.Zero
	for _, d := range list {
		qty += d.Quantity
		amount = amount.Add(d.Amount())
	}
	return qty, amount
}

func toDecisionResponse(d stock.Decision) *dto.DecisionResponse {
	return &dto.DecisionResponse{
		Outcome:   string(d.Outcome),
		Reason:    d.Reason,
		Requested: d.Requested,
		Remaining: d.Remaining,
	}
}

func toStockRow(agg stock.StockAggregate, product *entity.Product) dto.StockRowResponse {
	row := dto.StockRowResponse{
		ColorTitle:                     agg.Key.ColorTitle,
		Size:                           agg.Key.Size,
		ImportedQuantity:               agg.ImportedQuantity,
		ExportedAndTransferredQuantity: agg.ExportedAndTransferredQuantity,
		RemainingQuantity:              agg.RemainingQuantity,
	}
	if product != nil {
		row.Color = product.ColorCode(agg.Key.ColorTitle)
	}
	return row
}

func toTotals(t stock.Totals) dto.TotalsResponse {
	return dto.TotalsResponse{Imported: t.Imported, Exported: t.Exported, Remaining: t.Remaining}
}
