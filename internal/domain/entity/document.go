package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/khohang-api/internal/domain/stock"
)

// DocumentKind es el tipo de documento de bodega.
type DocumentKind string

const (
	DocumentImport          DocumentKind = "import"           // phiếu nhập
	DocumentExport          DocumentKind = "export"           // phiếu xuất / báo giá
	DocumentTransfer        DocumentKind = "transfer"         // phiếu chuyển kho
	DocumentPurchaseRequest DocumentKind = "purchase_request" // đề nghị mua hàng
)

// Estados de Document.
const (
	DocumentStatusDraft     = "draft"
	DocumentStatusConfirmed = "confirmed"
)

// ParseDocumentKind valida el tipo recibido en la ruta.
func ParseDocumentKind(s string) (DocumentKind, bool) {
	switch k := DocumentKind(s); k {
	case DocumentImport, DocumentExport, DocumentTransfer, DocumentPurchaseRequest:
		return k, true
	}
	return "", false
}

// IsMovement indica si las líneas del documento mueven existencias.
// Las solicitudes de compra no son movimientos.
func (k DocumentKind) IsMovement() bool {
	return k == DocumentImport || k == DocumentExport || k == DocumentTransfer
}

// IsOutbound indica si las líneas restan existencias (exportación o traslado).
func (k DocumentKind) IsOutbound() bool {
	return k == DocumentExport || k == DocumentTransfer
}

// Direction devuelve el sentido del movimiento para el libro de existencias.
func (k DocumentKind) Direction() stock.Direction {
	if k == DocumentImport {
		return stock.Imported
	}
	return stock.ExportedOrTransferred
}

// CodePrefix es el prefijo del código correlativo del documento.
func (k DocumentKind) CodePrefix() string {
	switch k {
	case DocumentImport:
		return "PN"
	case DocumentExport:
		return "PX"
	case DocumentTransfer:
		return "PC"
	default:
		return "DN"
	}
}

// Document es la cabecera de un documento de bodega.
type Document struct {
	ID          string
	Kind        DocumentKind
	Code        string
	CustomerID  *string // exportaciones
	WarehouseID *string // traslados
	Note        string
	Status      string // draft, confirmed
	Date        time.Time
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsQuotation indica si el documento se imprime como cotización (exportación en borrador).
func (d *Document) IsQuotation() bool {
	return d.Kind == DocumentExport && d.Status == DocumentStatusDraft
}

// DocumentDetail es una línea de documento: producto, color, talla y cantidad.
// (document_id, product_id, color_title, size) es único.
type DocumentDetail struct {
	ID         string
	DocumentID string
	ProductID  string
	ColorTitle string
	Size       string
	Quantity   int64
	UnitPrice  decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Solo lectura (JOIN con products).
	ProductCode string
	ProductName string
}

// Key devuelve la clave de existencias de la línea.
func (d *DocumentDetail) Key() stock.StockKey {
	return stock.StockKey{ProductID: d.ProductID, ColorTitle: d.ColorTitle, Size: d.Size}
}

// Amount es cantidad por precio unitario.
func (d *DocumentDetail) Amount() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(d.Quantity))
}
