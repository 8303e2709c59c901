package dto

// StockRowResponse saldo de una combinación producto/color/talla.
type StockRowResponse struct {
	Color                          string `json:"color"`
	ColorTitle                     string `json:"color_title"`
	Size                           string `json:"size"`
	ImportedQuantity               int64  `json:"imported_quantity"`
	ExportedAndTransferredQuantity int64  `json:"exported_and_transferred_quantity"`
	RemainingQuantity              int64  `json:"remaining_quantity"`
}

// TotalsResponse sumas de importado, exportado y restante.
type TotalsResponse struct {
	Imported  int64 `json:"imported"`
	Exported  int64 `json:"exported"`
	Remaining int64 `json:"remaining"`
}

// ColorGroupResponse filas de un color con su subtotal.
type ColorGroupResponse struct {
	Color      string             `json:"color"`
	ColorTitle string             `json:"color_title"`
	Items      []StockRowResponse `json:"items"`
	Totals     TotalsResponse     `json:"totals"`
}

// ProductStockResponse existencias de un producto por color y talla.
type ProductStockResponse struct {
	ProductID   string               `json:"product_id"`
	ProductCode string               `json:"product_code"`
	ProductName string               `json:"product_name"`
	Rows        []StockRowResponse   `json:"rows"`
	Groups      []ColorGroupResponse `json:"groups"`
	Total       TotalsResponse       `json:"total"`
}

// StockCheckQuery parámetros de /stock/check.
type StockCheckQuery struct {
	ColorTitle string `query:"color" validate:"omitempty,max=50"`
	Size       string `query:"size" validate:"omitempty,max=20"`
	Quantity   string `query:"quantity"`
}

// StockCheckResponse veredicto para los selectores de color/talla.
// LowPriority marca la opción, nunca la deshabilita.
type StockCheckResponse struct {
	Decision    DecisionResponse `json:"decision"`
	LowPriority bool             `json:"low_priority"`
	Stock       StockRowResponse `json:"stock"`
}
