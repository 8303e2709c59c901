package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDocumentRequest entrada para crear la cabecera de un documento.
type CreateDocumentRequest struct {
	CustomerID  string     `json:"customer_id" validate:"omitempty,uuid"`
	WarehouseID string     `json:"warehouse_id" validate:"omitempty,uuid"`
	Note        string     `json:"note" validate:"omitempty,max=1000"`
	Date        *time.Time `json:"date"`
}

// UpdateDocumentRequest entrada para actualizar la cabecera; los campos nil no se tocan.
type UpdateDocumentRequest struct {
	CustomerID  *string    `json:"customer_id" validate:"omitempty,uuid"`
	WarehouseID *string    `json:"warehouse_id" validate:"omitempty,uuid"`
	Note        *string    `json:"note" validate:"omitempty,max=1000"`
	Status      *string    `json:"status" validate:"omitempty,oneof=draft confirmed"`
	Date        *time.Time `json:"date"`
}

// DocumentResponse salida de la cabecera.
type DocumentResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Code        string    `json:"code"`
	CustomerID  *string   `json:"customer_id"`
	WarehouseID *string   `json:"warehouse_id"`
	Note        string    `json:"note"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DocumentListResponse lista paginada de documentos.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// DocumentWithDetailsResponse cabecera con sus líneas y totales.
type DocumentWithDetailsResponse struct {
	Document      DocumentResponse `json:"document"`
	Details       []DetailResponse `json:"details"`
	TotalQuantity int64            `json:"total_quantity"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
}

// DetailRequest entrada para agregar o editar una línea.
// Quantity se recibe sin tipo: lo que no sea un entero se toma como 0 y la
// compuerta de disponibilidad lo rechaza.
type DetailRequest struct {
	ProductID  string          `json:"product_id" validate:"required,uuid"`
	ColorTitle string          `json:"color_title" validate:"omitempty,max=50"`
	Size       string          `json:"size" validate:"omitempty,max=20"`
	Quantity   any             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// DetailResponse salida de una línea.
type DetailResponse struct {
	ID          string          `json:"id"`
	DocumentID  string          `json:"document_id"`
	ProductID   string          `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	ColorTitle  string          `json:"color_title"`
	Size        string          `json:"size"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// DecisionResponse veredicto de la compuerta de disponibilidad.
type DecisionResponse struct {
	Outcome   string `json:"outcome"` // accepted | warned | rejected
	Reason    string `json:"reason"`
	Requested int64  `json:"requested"`
	Remaining int64  `json:"remaining"`
}

// DetailMutationResponse respuesta de alta/edición: la línea, el veredicto y
// los datos releídos (líneas del documento y saldo de la combinación).
type DetailMutationResponse struct {
	Detail   *DetailResponse   `json:"detail,omitempty"`
	Decision *DecisionResponse `json:"decision,omitempty"`
	Stock    *StockRowResponse `json:"stock,omitempty"`
	Details  []DetailResponse  `json:"details"`
}

// SheetRowResult resultado por fila de una importación XLSX de líneas.
type SheetRowResult struct {
	Row        int    `json:"row"`
	ProductID  string `json:"product_id"`
	ColorTitle string `json:"color_title"`
	Size       string `json:"size"`
	Quantity   int64  `json:"quantity"`
	Outcome    string `json:"outcome"` // accepted | warned | rejected | error
	Reason     string `json:"reason"`
	DetailID   string `json:"detail_id,omitempty"`
}

// SheetImportResponse resumen de la importación.
type SheetImportResponse struct {
	Stored  int              `json:"stored"`
	Skipped int              `json:"skipped"`
	Rows    []SheetRowResult `json:"rows"`
	Details []DetailResponse `json:"details"`
}
