package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/khohang-api/internal/application/dto"
	"github.com/jhoicas/khohang-api/internal/application/ports"
	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
	"github.com/jhoicas/khohang-api/internal/domain/repository"
	"github.com/jhoicas/khohang-api/internal/domain/stock"
	"github.com/jhoicas/khohang-api/pkg/logger"
)

// DetailUseCase agrega, edita y borra líneas de documento.
// Cada escritura toma el bloqueo del documento y, dentro de una transacción,
// pasa primero por el guardia de combinaciones duplicadas y después por la
// compuerta de disponibilidad.
type DetailUseCase struct {
	docs     repository.DocumentRepository
	details  repository.DetailRepository
	products repository.ProductRepository
	tx       TxRunner
	locker   ports.Locker
	sheets   ports.SheetReader
	metrics  ports.InventoryMetrics
	log      *logger.Logger
}

// NewDetailUseCase construye el caso de uso. metrics y log pueden ser nil.
func NewDetailUseCase(
	docs repository.DocumentRepository,
	details repository.DetailRepository,
	products repository.ProductRepository,
	tx TxRunner,
	locker ports.Locker,
	sheets ports.SheetReader,
	metrics ports.InventoryMetrics,
	log *logger.Logger,
) *DetailUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &DetailUseCase{
		docs:     docs,
		details:  details,
		products: products,
		tx:       tx,
		locker:   locker,
		sheets:   sheets,
		metrics:  metrics,
		log:      log.Component("inventory"),
	}
}

// lineInput es la línea ya normalizada y validada contra el producto.
type lineInput struct {
	key       stock.StockKey
	quantity  int64
	unitPrice decimal.Decimal
	product   *entity.Product
}

// Add agrega una línea al documento.
func (uc *DetailUseCase) Add(ctx context.Context, kind entity.DocumentKind, documentID string, in dto.DetailRequest) (*dto.DetailMutationResponse, error) {
	doc, err := uc.document(ctx, kind, documentID)
	if err != nil {
		return nil, err
	}
	line, err := uc.prepare(ctx, in)
	if err != nil {
		return nil, err
	}

	lock, err := uc.locker.Acquire(ctx, documentLockKey(doc.ID))
	if err != nil {
		return nil, err
	}
	defer uc.release(ctx, lock, doc.ID)

	detail, decision, err := uc.write(ctx, doc, line, nil)
	if err != nil {
		return nil, err
	}
	return uc.refetch(ctx, doc, detail.ID, &decision, line.key, line.product)
}

// Update edita una línea existente. Si la combinación no cambia, la cantidad
// anterior de la línea vuelve al saldo antes de evaluar la nueva.
func (uc *DetailUseCase) Update(ctx context.Context, kind entity.DocumentKind, documentID, detailID string, in dto.DetailRequest) (*dto.DetailMutationResponse, error) {
	doc, err := uc.document(ctx, kind, documentID)
	if err != nil {
		return nil, err
	}
	line, err := uc.prepare(ctx, in)
	if err != nil {
		return nil, err
	}

	lock, err := uc.locker.Acquire(ctx, documentLockKey(doc.ID))
	if err != nil {
		return nil, err
	}
	defer uc.release(ctx, lock, doc.ID)

	editing, err := uc.details.GetByID(ctx, doc.ID, detailID)
	if err != nil {
		return nil, err
	}
	if editing == nil {
		return nil, domain.ErrNotFound
	}

	detail, decision, err := uc.write(ctx, doc, line, editing)
	if err != nil {
		return nil, err
	}
	return uc.refetch(ctx, doc, detail.ID, &decision, line.key, line.product)
}

// Delete borra una línea y devuelve las líneas restantes con el saldo
// actualizado de la combinación borrada.
func (uc *DetailUseCase) Delete(ctx context.Context, kind entity.DocumentKind, documentID, detailID string) (*dto.DetailMutationResponse, error) {
	doc, err := uc.document(ctx, kind, documentID)
	if err != nil {
		return nil, err
	}

	lock, err := uc.locker.Acquire(ctx, documentLockKey(doc.ID))
	if err != nil {
		return nil, err
	}
	defer uc.release(ctx, lock, doc.ID)

	existing, err := uc.details.GetByID(ctx, doc.ID, detailID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.details.Delete(ctx, doc.ID, detailID); err != nil {
		return nil, err
	}

	product, err := uc.products.GetByID(ctx, existing.ProductID)
	if err != nil {
		return nil, err
	}
	return uc.refetch(ctx, doc, "", nil, existing.Key(), product)
}

// ImportSheet agrega las filas de un XLSX como líneas nuevas. Cada fila se
// guarda en su propia transacción; las rechazadas se informan y no detienen
// el resto.
func (uc *DetailUseCase) ImportSheet(ctx context.Context, kind entity.DocumentKind, documentID string, r io.Reader) (*dto.SheetImportResponse, error) {
	doc, err := uc.document(ctx, kind, documentID)
	if err != nil {
		return nil, err
	}
	if uc.sheets == nil {
		return nil, errors.New("lector de hojas no configurado")
	}
	rows, err := uc.sheets.ReadDetailRows(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	lock, err := uc.locker.Acquire(ctx, documentLockKey(doc.ID))
	if err != nil {
		return nil, err
	}
	defer uc.release(ctx, lock, doc.ID)

	result := &dto.SheetImportResponse{Rows: make([]dto.SheetRowResult, 0, len(rows))}
	for _, row := range rows {
		price, perr := decimal.NewFromString(strings.TrimSpace(row.UnitPrice))
		if perr != nil {
			price = decimal.Zero
		}
		res := dto.SheetRowResult{
			Row:        row.Row,
			ProductID:  row.ProductID,
			ColorTitle: row.ColorTitle,
			Size:       row.Size,
			Quantity:   stock.ParseQuantity(row.Quantity),
		}

		var decision stock.Decision
		var detail *entity.DocumentDetail
		line, err := uc.prepare(ctx, dto.DetailRequest{
			ProductID:  row.ProductID,
			ColorTitle: row.ColorTitle,
			Size:       row.Size,
			Quantity:   row.Quantity,
			UnitPrice:  price,
		})
		if err == nil {
			detail, decision, err = uc.write(ctx, doc, line, nil)
		}

		switch {
		case err == nil:
			res.Outcome = string(decision.Outcome)
			res.Reason = decision.Reason
			res.DetailID = detail.ID
			result.Stored++
		case decision.Outcome == stock.Rejected:
			res.Outcome = string(stock.Rejected)
			res.Reason = decision.Reason
			result.Skipped++
		default:
			res.Outcome = "error"
			res.Reason = err.Error()
			result.Skipped++
		}
		result.Rows = append(result.Rows, res)
	}

	list, err := uc.details.ListByDocument(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	result.Details = toDetailResponses(list)
	uc.log.Info().
		Str("document_id", doc.ID).
		Int("stored", result.Stored).
		Int("skipped", result.Skipped).
		Msg("importación de líneas")
	return result, nil
}

func (uc *DetailUseCase) document(ctx context.Context, kind entity.DocumentKind, id string) (*entity.Document, error) {
	doc, err := uc.docs.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

// prepare normaliza la entrada y valida la selección contra el producto.
// No consulta existencias: eso ocurre bajo el bloqueo.
func (uc *DetailUseCase) prepare(ctx context.Context, in dto.DetailRequest) (lineInput, error) {
	key := stock.StockKey{
		ProductID:  strings.TrimSpace(in.ProductID),
		ColorTitle: strings.TrimSpace(in.ColorTitle),
		Size:       strings.ToUpper(strings.TrimSpace(in.Size)),
	}
	if key.ProductID == "" {
		return lineInput{}, domain.ErrMissingSelection
	}
	product, err := uc.products.GetByID(ctx, key.ProductID)
	if err != nil {
		return lineInput{}, err
	}
	if product == nil {
		return lineInput{}, fmt.Errorf("%w: producto %s", domain.ErrNotFound, key.ProductID)
	}
	if err := stock.Selection(key, len(product.Colors) > 0, len(product.Sizes) > 0); err != nil {
		return lineInput{}, err
	}
	if len(product.Colors) > 0 && !product.HasColor(key.ColorTitle) {
		return lineInput{}, fmt.Errorf("%w: el producto no tiene el color %q", domain.ErrInvalidInput, key.ColorTitle)
	}
	if len(product.Sizes) > 0 && !product.HasSize(key.Size) {
		return lineInput{}, fmt.Errorf("%w: el producto no tiene la talla %q", domain.ErrInvalidInput, key.Size)
	}

	price := in.UnitPrice
	if price.IsZero() {
		price = product.UnitPrice
	}
	return lineInput{
		key:       key,
		quantity:  stock.ParseQuantity(in.Quantity),
		unitPrice: price,
		product:   product,
	}, nil
}

// write corre guardia, compuerta y escritura en una sola transacción.
// editing es nil para un alta.
func (uc *DetailUseCase) write(ctx context.Context, doc *entity.Document, line lineInput, editing *entity.DocumentDetail) (*entity.DocumentDetail, stock.Decision, error) {
	now := time.Now()
	detail := &entity.DocumentDetail{
		ID:          uuid.New().String(),
		DocumentID:  doc.ID,
		ProductID:   line.key.ProductID,
		ColorTitle:  line.key.ColorTitle,
		Size:        line.key.Size,
		Quantity:    line.quantity,
		UnitPrice:   line.unitPrice,
		CreatedAt:   now,
		UpdatedAt:   now,
		ProductCode: line.product.Code,
		ProductName: line.product.Name,
	}
	editingID := ""
	if editing != nil {
		editingID = editing.ID
		detail.ID = editing.ID
		detail.CreatedAt = editing.CreatedAt
	}

	var decision stock.Decision
	err := uc.tx.Run(ctx, func(_ repository.DocumentRepository, detailRepo repository.DetailRepository) error {
		existing, err := detailRepo.ListByDocument(ctx, doc.ID)
		if err != nil {
			return err
		}
		lines := make([]stock.Line, 0, len(existing))
		for _, d := range existing {
			lines = append(lines, stock.Line{ID: d.ID, Key: d.Key()})
		}
		if err := stock.CheckDuplicate(lines, line.key, editingID); err != nil {
			uc.metrics.ObserveDuplicate()
			return err
		}

		decision, err = uc.evaluate(ctx, detailRepo, doc.Kind, line, editing)
		if err != nil {
			return err
		}
		uc.metrics.ObserveDecision(string(decision.Outcome))
		if !decision.Allowed() {
			return fmt.Errorf("%w: %s", domain.ErrInvalidQuantity, decision.Reason)
		}

		if editing != nil {
			return detailRepo.Update(ctx, detail)
		}
		return detailRepo.Create(ctx, detail)
	})
	if err != nil {
		return nil, decision, err
	}

	if decision.Outcome == stock.Warned {
		uc.log.Warn().
			Str("document_id", doc.ID).
			Str("product_id", line.key.ProductID).
			Str("color", line.key.ColorTitle).
			Str("size", line.key.Size).
			Int64("requested", decision.Requested).
			Int64("remaining", decision.Remaining).
			Msg("salida supera el saldo disponible")
	}
	return detail, decision, nil
}

// evaluate aplica la compuerta. Solo exportaciones y traslados consultan el
// saldo; las entradas y solicitudes de compra solo exigen cantidad positiva.
func (uc *DetailUseCase) evaluate(ctx context.Context, details repository.DetailRepository, kind entity.DocumentKind, line lineInput, editing *entity.DocumentDetail) (stock.Decision, error) {
	if !kind.IsOutbound() {
		return stock.EvaluateInbound(line.quantity), nil
	}
	movements, err := details.ListMovements(ctx, line.key.ProductID)
	if err != nil {
		return stock.Decision{}, err
	}
	remaining := stock.Reduce(movements).Remaining(line.key)
	if editing != nil && editing.Key() == line.key {
		remaining += editing.Quantity
	}
	return stock.Evaluate(line.quantity, remaining), nil
}

// refetch relee las líneas del documento y el saldo de la combinación tocada.
func (uc *DetailUseCase) refetch(ctx context.Context, doc *entity.Document, detailID string, decision *stock.Decision, key stock.StockKey, product *entity.Product) (*dto.DetailMutationResponse, error) {
	list, err := uc.details.ListByDocument(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	resp := &dto.DetailMutationResponse{Details: toDetailResponses(list)}
	if decision != nil {
		resp.Decision = toDecisionResponse(*decision)
	}
	for i := range resp.Details {
		if detailID != "" && resp.Details[i].ID == detailID {
			d := resp.Details[i]
			resp.Detail = &d
			break
		}
	}

	if doc.Kind.IsMovement() {
		movements, err := uc.details.ListMovements(ctx, key.ProductID)
		if err != nil {
			return nil, err
		}
		row := toStockRow(stock.Reduce(movements).Get(key), product)
		resp.Stock = &row
	}
	return resp, nil
}

func (uc *DetailUseCase) release(ctx context.Context, lock ports.Lock, documentID string) {
	if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
		uc.log.Warn().Err(err).Str("document_id", documentID).Msg("liberar bloqueo")
	}
}
