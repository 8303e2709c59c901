package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/khohang-api/internal/application/dto"
	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
)

func TestStock_IncluyeCombinacionesSinMovimientosEnOrdenDelProducto(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	imp := f.newDoc(t, entity.DocumentImport)
	_, err := f.details.Add(ctx, entity.DocumentImport, imp, dto.DetailRequest{ProductID: "p-7", ColorTitle: "Trắng", Size: "S", Quantity: 4})
	require.NoError(t, err)
	_, err = f.details.Add(ctx, entity.DocumentImport, imp, line(6))
	require.NoError(t, err)
	tr := f.newDoc(t, entity.DocumentTransfer)
	_, err = f.details.Add(ctx, entity.DocumentTransfer, tr, line(2))
	require.NoError(t, err)

	out, err := f.stock.ProductStock(ctx, "p-7")
	require.NoError(t, err)

	require.Len(t, out.Rows, 4, "2 colores x 2 tallas")
	got := make([]string, 0, len(out.Rows))
	for _, r := range out.Rows {
		got = append(got, r.ColorTitle+"/"+r.Size)
	}
	assert.Equal(t, []string{"Đen/S", "Đen/M", "Trắng/S", "Trắng/M"}, got)
	assert.Equal(t, int64(4), out.Rows[1].RemainingQuantity)
	assert.Equal(t, int64(0), out.Rows[3].RemainingQuantity)

	require.Len(t, out.Groups, 2)
	assert.Equal(t, "#000000", out.Groups[0].Color)
	assert.Equal(t, int64(4), out.Groups[0].Totals.Remaining)
	assert.Equal(t, int64(2), out.Groups[0].Totals.Exported)
	assert.Equal(t, int64(4), out.Groups[1].Totals.Remaining)
	assert.Equal(t, dto.TotalsResponse{Imported: 10, Exported: 2, Remaining: 8}, out.Total)
}

func TestStock_CheckMarcaPrioridadBaja(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	out, err := f.stock.Check(ctx, "p-7", dto.StockCheckQuery{ColorTitle: "Đen", Size: "m", Quantity: "1"})
	require.NoError(t, err)
	assert.Equal(t, "warned", out.Decision.Outcome)
	assert.True(t, out.LowPriority)
	assert.Equal(t, "M", out.Stock.Size)

	imp := f.newDoc(t, entity.DocumentImport)
	_, err = f.details.Add(ctx, entity.DocumentImport, imp, line(3))
	require.NoError(t, err)

	out, err = f.stock.Check(ctx, "p-7", dto.StockCheckQuery{ColorTitle: "Đen", Size: "M", Quantity: "3"})
	require.NoError(t, err)
	assert.Equal(t, "accepted", out.Decision.Outcome)
	assert.False(t, out.LowPriority)
	assert.Equal(t, int64(3), out.Stock.RemainingQuantity)
}

func TestStock_ProductoInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.stock.ProductStock(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = f.stock.ExportXLSX(context.Background(), "p-7")
	assert.Error(t, err, "sin generador de hojas")
}
