package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/khohang-api/internal/application/dto"
	"github.com/jhoicas/khohang-api/internal/application/ports"
	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
	"github.com/jhoicas/khohang-api/internal/domain/repository"
)

// DocumentUseCase administra las cabeceras de los cuatro tipos de documento
// (nhập, xuất, chuyển kho, đề nghị mua hàng) y su impresión.
type DocumentUseCase struct {
	docs       repository.DocumentRepository
	details    repository.DetailRepository
	customers  repository.CustomerRepository
	warehouses repository.WarehouseRepository
	pdf        ports.DocumentPDFGenerator
}

// NewDocumentUseCase construye el caso de uso. pdf puede ser nil si no se imprime.
func NewDocumentUseCase(
	docs repository.DocumentRepository,
	details repository.DetailRepository,
	customers repository.CustomerRepository,
	warehouses repository.WarehouseRepository,
	pdf ports.DocumentPDFGenerator,
) *DocumentUseCase {
	return &DocumentUseCase{
		docs:       docs,
		details:    details,
		customers:  customers,
		warehouses: warehouses,
		pdf:        pdf,
	}
}

// Create registra la cabecera en borrador con el siguiente código correlativo.
func (uc *DocumentUseCase) Create(ctx context.Context, kind entity.DocumentKind, userID string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	customerID := optionalID(in.CustomerID)
	warehouseID := optionalID(in.WarehouseID)
	if err := uc.checkPartners(ctx, kind, customerID, warehouseID); err != nil {
		return nil, err
	}

	code, err := uc.docs.NextCode(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("generar código: %w", err)
	}

	now := time.Now()
	date := now
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}
	doc := &entity.Document{
		ID:          uuid.New().String(),
		Kind:        kind,
		Code:        code,
		CustomerID:  customerID,
		WarehouseID: warehouseID,
		Note:        strings.TrimSpace(in.Note),
		Status:      entity.DocumentStatusDraft,
		Date:        date,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.docs.Create(ctx, doc); err != nil {
		return nil, err
	}
	resp := toDocumentResponse(doc)
	return &resp, nil
}

// Get devuelve la cabecera con sus líneas y totales.
func (uc *DocumentUseCase) Get(ctx context.Context, kind entity.DocumentKind, id string) (*dto.DocumentWithDetailsResponse, error) {
	doc, err := uc.document(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	list, err := uc.details.ListByDocument(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	qty, amount := detailTotals(list)
	return &dto.DocumentWithDetailsResponse{
		Document:      toDocumentResponse(doc),
		Details:       toDetailResponses(list),
		TotalQuantity: qty,
		TotalAmount:   amount,
	}, nil
}

func (uc *DocumentUseCase) List(ctx context.Context, kind entity.DocumentKind, q dto.ListQuery) (*dto.DocumentListResponse, error) {
	list, total, err := uc.docs.List(ctx, kind, q.Filter())
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, toDocumentResponse(d))
	}
	return &dto.DocumentListResponse{Items: items, Page: dto.NewPage(q, total)}, nil
}

// Update modifica solo los campos presentes en la entrada.
func (uc *DocumentUseCase) Update(ctx context.Context, kind entity.DocumentKind, id string, in dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	doc, err := uc.document(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if in.CustomerID != nil {
		doc.CustomerID = optionalID(*in.CustomerID)
	}
	if in.WarehouseID != nil {
		doc.WarehouseID = optionalID(*in.WarehouseID)
	}
	if err := uc.checkPartners(ctx, kind, doc.CustomerID, doc.WarehouseID); err != nil {
		return nil, err
	}
	if in.Note != nil {
		doc.Note = strings.TrimSpace(*in.Note)
	}
	if in.Status != nil {
		doc.Status = *in.Status
	}
	if in.Date != nil && !in.Date.IsZero() {
		doc.Date = *in.Date
	}
	doc.UpdatedAt = time.Now()
	if err := uc.docs.Update(ctx, doc); err != nil {
		return nil, err
	}
	resp := toDocumentResponse(doc)
	return &resp, nil
}

func (uc *DocumentUseCase) Delete(ctx context.Context, kind entity.DocumentKind, id string) error {
	return uc.docs.Delete(ctx, kind, id)
}

// PDF genera el documento imprimible. Devuelve los bytes y el nombre de archivo.
func (uc *DocumentUseCase) PDF(ctx context.Context, kind entity.DocumentKind, id string) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("generador de PDF no configurado")
	}
	doc, err := uc.document(ctx, kind, id)
	if err != nil {
		return nil, "", err
	}
	list, err := uc.details.ListByDocument(ctx, doc.ID)
	if err != nil {
		return nil, "", err
	}

	view := ports.DocumentPrint{
		Title:      printTitle(doc),
		Code:       doc.Code,
		Date:       doc.Date,
		Note:       doc.Note,
		ShowPrices: doc.Kind != entity.DocumentTransfer,
	}
	if err := uc.fillPartner(ctx, doc, &view); err != nil {
		return nil, "", err
	}
	for _, d := range list {
		view.Lines = append(view.Lines, ports.PrintLine{
			ProductCode: d.ProductCode,
			ProductName: d.ProductName,
			ColorTitle:  d.ColorTitle,
			Size:        d.Size,
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
			Amount:      d.Amount(),
		})
	}
	view.TotalQuantity, view.TotalAmount = detailTotals(list)

	pdfBytes, err := uc.pdf.GenerateDocumentPDF(ctx, view)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF: %w", err)
	}
	return pdfBytes, doc.Code + ".pdf", nil
}

func (uc *DocumentUseCase) document(ctx context.Context, kind entity.DocumentKind, id string) (*entity.Document, error) {
	doc, err := uc.docs.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

// checkPartners valida que el cliente y la bodega referenciados existan.
// El traslado exige bodega de destino.
func (uc *DocumentUseCase) checkPartners(ctx context.Context, kind entity.DocumentKind, customerID, warehouseID *string) error {
	if kind == entity.DocumentTransfer && warehouseID == nil {
		return fmt.Errorf("%w: el traslado requiere bodega de destino", domain.ErrInvalidInput)
	}
	if customerID != nil {
		c, err := uc.customers.GetByID(ctx, *customerID)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: cliente no encontrado", domain.ErrInvalidInput)
		}
	}
	if warehouseID != nil {
		w, err := uc.warehouses.GetByID(ctx, *warehouseID)
		if err != nil {
			return err
		}
		if w == nil {
			return fmt.Errorf("%w: bodega no encontrada", domain.ErrInvalidInput)
		}
	}
	return nil
}

func (uc *DocumentUseCase) fillPartner(ctx context.Context, doc *entity.Document, view *ports.DocumentPrint) error {
	switch {
	case doc.CustomerID != nil:
		c, err := uc.customers.GetByID(ctx, *doc.CustomerID)
		if err != nil {
			return err
		}
		view.PartnerLabel = "Khách hàng"
		if c != nil {
			view.PartnerName = c.Name
			view.PartnerDetail = strings.TrimSpace(strings.Join(nonEmpty(c.Phone, c.Address), " - "))
		}
	case doc.WarehouseID != nil:
		w, err := uc.warehouses.GetByID(ctx, *doc.WarehouseID)
		if err != nil {
			return err
		}
		view.PartnerLabel = "Kho nhận"
		if w != nil {
			view.PartnerName = w.Name
			view.PartnerDetail = w.Address
		}
	}
	return nil
}

func printTitle(doc *entity.Document) string {
	if doc.IsQuotation() {
		return "BÁO GIÁ"
	}
	switch doc.Kind {
	case entity.DocumentImport:
		return "PHIẾU NHẬP KHO"
	case entity.DocumentExport:
		return "PHIẾU XUẤT KHO"
	case entity.DocumentTransfer:
		return "PHIẾU CHUYỂN KHO"
	default:
		return "PHIẾU ĐỀ NGHỊ MUA HÀNG"
	}
}

func optionalID(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
