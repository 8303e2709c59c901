package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/khohang-api/internal/application/dto"
	"github.com/jhoicas/khohang-api/internal/application/inventory"
	"github.com/jhoicas/khohang-api/internal/application/ports"
	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
)

type fixture struct {
	s       *store
	locker  *memLocker
	metrics *recordingMetrics
	details *inventory.DetailUseCase
	docs    *inventory.DocumentUseCase
	stock   *inventory.StockUseCase
	pdf     *capturePDF
}

func newFixture(rows ...ports.DetailSheetRow) *fixture {
	s := newStore()
	s.products["p-7"] = &entity.Product{
		ID:        "p-7",
		Code:      "AO-07",
		Name:      "Áo thun",
		UnitPrice: decimal.NewFromInt(100),
		Colors:    []entity.ProductColor{{Color: "#000000", Title: "Đen"}, {Color: "#ffffff", Title: "Trắng"}},
		Sizes:     []string{"S", "M"},
	}
	s.products["p-plain"] = &entity.Product{ID: "p-plain", Code: "TUI", Name: "Túi", UnitPrice: decimal.NewFromInt(5)}
	s.customers["c-1"] = &entity.Customer{ID: "c-1", Name: "Cửa hàng An", Phone: "0901"}
	s.warehouses["w-1"] = &entity.Warehouse{ID: "w-1", Name: "Kho 2", Address: "Quận 7"}

	f := &fixture{s: s, locker: newMemLocker(), metrics: newRecordingMetrics(), pdf: &capturePDF{}}
	f.details = inventory.NewDetailUseCase(
		docRepo{s}, detailRepo{s}, productRepo{s}, txRunner{s},
		f.locker, fakeSheetReader{rows: rows}, f.metrics, nil,
	)
	f.docs = inventory.NewDocumentUseCase(docRepo{s}, detailRepo{s}, customerRepo{s}, warehouseRepo{s}, f.pdf)
	f.stock = inventory.NewStockUseCase(productRepo{s}, detailRepo{s}, nil)
	return f
}

func (f *fixture) newDoc(t *testing.T, kind entity.DocumentKind) string {
	t.Helper()
	in := dto.CreateDocumentRequest{}
	if kind == entity.DocumentTransfer {
		in.WarehouseID = "w-1"
	}
	doc, err := f.docs.Create(context.Background(), kind, "u-1", in)
	require.NoError(t, err)
	return doc.ID
}

func line(qty any) dto.DetailRequest {
	return dto.DetailRequest{ProductID: "p-7", ColorTitle: "Đen", Size: "M", Quantity: qty}
}

func TestDetail_ExportacionSobreSaldoAdvierteYDejaNegativo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	imp := f.newDoc(t, entity.DocumentImport)
	_, err := f.details.Add(ctx, entity.DocumentImport, imp, line(5))
	require.NoError(t, err)

	first := f.newDoc(t, entity.DocumentExport)
	out, err := f.details.Add(ctx, entity.DocumentExport, first, line(5))
	require.NoError(t, err)
	assert.Equal(t, "accepted", out.Decision.Outcome)
	require.NotNil(t, out.Stock)
	assert.Equal(t, int64(0), out.Stock.RemainingQuantity)
	assert.Equal(t, "#000000", out.Stock.Color)

	second := f.newDoc(t, entity.DocumentExport)
	out, err = f.details.Add(ctx, entity.DocumentExport, second, line(5))
	require.NoError(t, err, "superar el saldo advierte, no bloquea")
	assert.Equal(t, "warned", out.Decision.Outcome)
	assert.Equal(t, int64(0), out.Decision.Remaining)
	assert.Equal(t, int64(-5), out.Stock.RemainingQuantity)
	assert.Equal(t, int64(5), out.Stock.ImportedQuantity)
	assert.Equal(t, int64(10), out.Stock.ExportedAndTransferredQuantity)

	require.NotNil(t, out.Detail)
	assert.Equal(t, int64(5), out.Detail.Quantity)
	assert.True(t, out.Detail.UnitPrice.Equal(decimal.NewFromInt(100)), "sin precio toma el del producto")

	assert.Equal(t, 2, f.metrics.decisions["accepted"])
	assert.Equal(t, 1, f.metrics.decisions["warned"])
	assert.Empty(t, f.locker.held, "el bloqueo se libera")
}

func TestDetail_CombinacionDuplicadaSeRechazaAntesDeLaCompuerta(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	doc := f.newDoc(t, entity.DocumentExport)

	_, err := f.details.Add(ctx, entity.DocumentExport, doc, line(1))
	require.NoError(t, err)
	decisions := f.metrics.decisions["warned"] + f.metrics.decisions["accepted"]

	_, err = f.details.Add(ctx, entity.DocumentExport, doc, line(2))
	require.ErrorIs(t, err, domain.ErrDuplicateCombination)
	assert.Equal(t, 1, f.metrics.duplicates)
	assert.Equal(t, decisions, f.metrics.decisions["warned"]+f.metrics.decisions["accepted"])

	list, err := detailRepo{f.s}.ListByDocument(ctx, doc)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDetail_EditarMismaCombinacionDevuelveCantidadAnterior(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	imp := f.newDoc(t, entity.DocumentImport)
	_, err := f.details.Add(ctx, entity.DocumentImport, imp, line(5))
	require.NoError(t, err)

	exp := f.newDoc(t, entity.DocumentExport)
	added, err := f.details.Add(ctx, entity.DocumentExport, exp, line(5))
	require.NoError(t, err)

	updated, err := f.details.Update(ctx, entity.DocumentExport, exp, added.Detail.ID, line(5))
	require.NoError(t, err)
	assert.Equal(t, "accepted", updated.Decision.Outcome)
	assert.Equal(t, int64(5), updated.Decision.Remaining)
	assert.Equal(t, int64(0), updated.Stock.RemainingQuantity)
	assert.Len(t, updated.Details, 1)
}

func TestDetail_EditarHaciaCombinacionUsadaSeRechaza(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	doc := f.newDoc(t, entity.DocumentImport)

	_, err := f.details.Add(ctx, entity.DocumentImport, doc, line(1))
	require.NoError(t, err)
	other, err := f.details.Add(ctx, entity.DocumentImport, doc, dto.DetailRequest{ProductID: "p-7", ColorTitle: "Trắng", Size: "M", Quantity: 1})
	require.NoError(t, err)

	_, err = f.details.Update(ctx, entity.DocumentImport, doc, other.Detail.ID, line(3))
	assert.ErrorIs(t, err, domain.ErrDuplicateCombination)
}

func TestDetail_CantidadInvalidaSeRechaza(t *testing.T) {
	for _, qty := range []any{"abc", 0, -2, 1.5, nil} {
		f := newFixture()
		doc := f.newDoc(t, entity.DocumentExport)

		_, err := f.details.Add(context.Background(), entity.DocumentExport, doc, line(qty))
		require.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %#v", qty)
		assert.Empty(t, f.s.details)
		assert.Equal(t, 1, f.metrics.decisions["rejected"])
	}
}

func TestDetail_SeleccionIncompleta(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	doc := f.newDoc(t, entity.DocumentExport)

	_, err := f.details.Add(ctx, entity.DocumentExport, doc, dto.DetailRequest{ProductID: "p-7", Size: "M", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrMissingSelection)

	_, err = f.details.Add(ctx, entity.DocumentExport, doc, dto.DetailRequest{ProductID: "p-7", ColorTitle: "Đỏ", Size: "M", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := f.details.Add(ctx, entity.DocumentExport, doc, dto.DetailRequest{ProductID: "p-plain", Quantity: 1})
	require.NoError(t, err, "producto sin colores ni tallas acepta la selección vacía")
	assert.Equal(t, "warned", out.Decision.Outcome)
}

func TestDetail_SolicitudDeCompraNoConsultaSaldo(t *testing.T) {
	f := newFixture()
	doc := f.newDoc(t, entity.DocumentPurchaseRequest)

	out, err := f.details.Add(context.Background(), entity.DocumentPurchaseRequest, doc, line("3"))
	require.NoError(t, err)
	assert.Equal(t, "accepted", out.Decision.Outcome)
	assert.Nil(t, out.Stock, "no es un movimiento")

	st, err := f.stock.ProductStock(context.Background(), "p-7")
	require.NoError(t, err)
	assert.Equal(t, int64(0), st.Total.Imported)
}

func TestDetail_DocumentoOcupado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	doc := f.newDoc(t, entity.DocumentExport)

	held, err := f.locker.Acquire(ctx, "khohang:document:"+doc)
	require.NoError(t, err)
	defer held.Release(ctx)

	_, err = f.details.Add(ctx, entity.DocumentExport, doc, line(1))
	assert.ErrorIs(t, err, domain.ErrLocked)
}

func TestDetail_TipoDeDocumentoEquivocado(t *testing.T) {
	f := newFixture()
	doc := f.newDoc(t, entity.DocumentImport)

	_, err := f.details.Add(context.Background(), entity.DocumentExport, doc, line(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDetail_DeleteDevuelveSaldoActualizado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	doc := f.newDoc(t, entity.DocumentImport)

	added, err := f.details.Add(ctx, entity.DocumentImport, doc, line(4))
	require.NoError(t, err)
	assert.Equal(t, int64(4), added.Stock.RemainingQuantity)

	out, err := f.details.Delete(ctx, entity.DocumentImport, doc, added.Detail.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Details)
	assert.Nil(t, out.Decision)
	assert.Equal(t, int64(0), out.Stock.RemainingQuantity)

	_, err = f.details.Delete(ctx, entity.DocumentImport, doc, added.Detail.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDetail_ImportSheetGuardaFilasValidasYReportaElResto(t *testing.T) {
	f := newFixture(
		ports.DetailSheetRow{Row: 2, ProductID: "p-7", ColorTitle: "Đen", Size: "m", Quantity: "3", UnitPrice: "120"},
		ports.DetailSheetRow{Row: 3, ProductID: "p-7", ColorTitle: "Đen", Size: "M", Quantity: "1"},
		ports.DetailSheetRow{Row: 4, ProductID: "p-7", ColorTitle: "Trắng", Size: "S", Quantity: "x"},
		ports.DetailSheetRow{Row: 5, ProductID: "p-7", ColorTitle: "Trắng", Size: "S", Quantity: "2"},
	)
	doc := f.newDoc(t, entity.DocumentImport)

	out, err := f.details.ImportSheet(context.Background(), entity.DocumentImport, doc, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Stored)
	assert.Equal(t, 2, out.Skipped)
	require.Len(t, out.Rows, 4)
	assert.Equal(t, "accepted", out.Rows[0].Outcome)
	assert.Equal(t, "error", out.Rows[1].Outcome, "combinación repetida en la hoja")
	assert.Equal(t, "rejected", out.Rows[2].Outcome)
	assert.Len(t, out.Details, 2)
	assert.True(t, out.Details[0].UnitPrice.Equal(decimal.NewFromInt(120)))
}

func TestDocument_CodigosYValidacionDeTraslado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a, err := f.docs.Create(ctx, entity.DocumentExport, "u-1", dto.CreateDocumentRequest{CustomerID: "c-1"})
	require.NoError(t, err)
	b, err := f.docs.Create(ctx, entity.DocumentExport, "u-1", dto.CreateDocumentRequest{})
	require.NoError(t, err)
	assert.Equal(t, "PX000001", a.Code)
	assert.Equal(t, "PX000002", b.Code)
	assert.Equal(t, entity.DocumentStatusDraft, a.Status)

	_, err = f.docs.Create(ctx, entity.DocumentTransfer, "u-1", dto.CreateDocumentRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.docs.Create(ctx, entity.DocumentExport, "u-1", dto.CreateDocumentRequest{CustomerID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocument_PDFBorradorDeExportacionEsCotizacion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	doc, err := f.docs.Create(ctx, entity.DocumentExport, "u-1", dto.CreateDocumentRequest{
		CustomerID: "c-1",
		Date:       ptrTime(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	_, err = f.details.Add(ctx, entity.DocumentExport, doc.ID, line(2))
	require.NoError(t, err)

	data, name, err := f.docs.PDF(ctx, entity.DocumentExport, doc.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, doc.Code+".pdf", name)
	assert.Equal(t, "BÁO GIÁ", f.pdf.last.Title)
	assert.Equal(t, "Cửa hàng An", f.pdf.last.PartnerName)
	assert.Equal(t, int64(2), f.pdf.last.TotalQuantity)
	assert.True(t, f.pdf.last.TotalAmount.Equal(decimal.NewFromInt(200)))

	confirmed := entity.DocumentStatusConfirmed
	_, err = f.docs.Update(ctx, entity.DocumentExport, doc.ID, dto.UpdateDocumentRequest{Status: &confirmed})
	require.NoError(t, err)
	_, _, err = f.docs.PDF(ctx, entity.DocumentExport, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "PHIẾU XUẤT KHO", f.pdf.last.Title)
}

func TestDocument_GetConTotales(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	doc := f.newDoc(t, entity.DocumentImport)

	_, err := f.details.Add(ctx, entity.DocumentImport, doc, line(2))
	require.NoError(t, err)
	_, err = f.details.Add(ctx, entity.DocumentImport, doc, dto.DetailRequest{
		ProductID: "p-7", ColorTitle: "Trắng", Size: "S", Quantity: 3, UnitPrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	out, err := f.docs.Get(ctx, entity.DocumentImport, doc)
	require.NoError(t, err)
	assert.Equal(t, int64(5), out.TotalQuantity)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(230)))
	assert.Len(t, out.Details, 2)
}

func ptrTime(t time.Time) *time.Time { return &t }
