// Package ports declara los puertos de salida de la capa de aplicación que no
// son persistencia: bloqueo, documentos PDF/XLSX y métricas.
package ports

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/khohang-api/internal/application/dto"
)

// Lock es un bloqueo obtenido; Release lo libera.
type Lock interface {
	Release(ctx context.Context) error
}

// Locker serializa las escrituras sobre una misma clave (ej. un documento).
// Acquire no espera: si la clave está tomada devuelve domain.ErrLocked.
type Locker interface {
	Acquire(ctx context.Context, key string) (Lock, error)
}

// PrintLine es una línea del documento impreso.
type PrintLine struct {
	ProductCode string
	ProductName string
	ColorTitle  string
	Size        string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

// DocumentPrint es la vista de un documento lista para imprimir.
type DocumentPrint struct {
	Title         string // "PHIẾU XUẤT KHO", "BÁO GIÁ", ...
	Code          string
	Date          time.Time
	PartnerLabel  string // "Khách hàng" o "Kho nhận"
	PartnerName   string
	PartnerDetail string
	Note          string
	Lines         []PrintLine
	TotalQuantity int64
	TotalAmount   decimal.Decimal
	ShowPrices    bool
}

// DocumentPDFGenerator genera el PDF de un documento de bodega.
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(ctx context.Context, doc DocumentPrint) ([]byte, error)
}

// DetailSheetRow es una fila leída de una hoja de líneas. Los valores llegan
// como texto; la cantidad se convierte con stock.ParseQuantity.
type DetailSheetRow struct {
	Row        int
	ProductID  string
	ColorTitle string
	Size       string
	Quantity   string
	UnitPrice  string
}

// SheetReader lee las líneas de un XLSX subido.
type SheetReader interface {
	ReadDetailRows(r io.Reader) ([]DetailSheetRow, error)
}

// SheetWriter genera los reportes XLSX.
type SheetWriter interface {
	StockSheet(ctx context.Context, stock *dto.ProductStockResponse) ([]byte, error)
	SalarySheet(ctx context.Context, summary *dto.SalarySummaryResponse) ([]byte, error)
}

// InventoryMetrics registra los veredictos de la compuerta y los duplicados.
type InventoryMetrics interface {
	ObserveDecision(outcome string)
	ObserveDuplicate()
}

// NopMetrics descarta todo (tests o METRICS_ENABLED=false).
type NopMetrics struct{}

func (NopMetrics) ObserveDecision(string) {}
func (NopMetrics) ObserveDuplicate()      {}
