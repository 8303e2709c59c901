package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/khohang-api/internal/domain/entity"
	"github.com/jhoicas/khohang-api/internal/domain/stock"
)

// DocumentRepository define el puerto de persistencia para las cabeceras de documento.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	GetByID(ctx context.Context, kind entity.DocumentKind, id string) (*entity.Document, error)
	Update(ctx context.Context, doc *entity.Document) error
	List(ctx context.Context, kind entity.DocumentKind, f ListFilter) ([]*entity.Document, int, error)
	// Delete borra la cabecera; las líneas caen por ON DELETE CASCADE.
	Delete(ctx context.Context, kind entity.DocumentKind, id string) error
	// NextCode genera el siguiente código correlativo, ej. "PX000012".
	NextCode(ctx context.Context, kind entity.DocumentKind) (string, error)
}

// DatedLine es una línea de documento con la fecha de su cabecera (dashboard).
type DatedLine struct {
	Date     time.Time
	Quantity int64
	Amount   decimal.Decimal // quantity * unit_price
}

// DetailRepository define el puerto de persistencia para las líneas de documento.
type DetailRepository interface {
	Create(ctx context.Context, detail *entity.DocumentDetail) error
	GetByID(ctx context.Context, documentID, id string) (*entity.DocumentDetail, error)
	Update(ctx context.Context, detail *entity.DocumentDetail) error
	Delete(ctx context.Context, documentID, id string) error
	ListByDocument(ctx context.Context, documentID string) ([]*entity.DocumentDetail, error)

	// ListMovements devuelve todas las líneas de importación, exportación y
	// traslado del producto como movimientos, sin importar el estado del documento.
	ListMovements(ctx context.Context, productID string) ([]stock.MovementRecord, error)

	// ListDated devuelve las líneas de un tipo de documento con fecha en [from, to).
	ListDated(ctx context.Context, kind entity.DocumentKind, from, to time.Time) ([]DatedLine, error)
}
