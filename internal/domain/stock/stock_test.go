package stock_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/internal/domain/stock"
)

func mov(product, color, size string, qty int64, dir stock.Direction) stock.MovementRecord {
	return stock.MovementRecord{ProductID: product, ColorTitle: color, Size: size, Quantity: qty, Direction: dir}
}

func sampleMovements() []stock.MovementRecord {
	return []stock.MovementRecord{
		mov("7", "Đen", "M", 10, stock.Imported),
		mov("7", "Đen", "M", 3, stock.ExportedOrTransferred),
		mov("7", "Đen", "L", 4, stock.Imported),
		mov("7", "Trắng", "M", 2, stock.Imported),
		mov("7", "Trắng", "M", 6, stock.ExportedOrTransferred),
		mov("7", "", "", 1, stock.Imported),
		mov("8", "Đen", "M", 5, stock.Imported),
		mov("7", "Đen", "M", 2, stock.Imported),
	}
}

func TestReduce_RestanteEsImportadoMenosExportado(t *testing.T) {
	ledger := stock.Reduce(sampleMovements())

	for key, agg := range ledger {
		assert.Equal(t, agg.ImportedQuantity-agg.ExportedAndTransferredQuantity, agg.RemainingQuantity, "clave %+v", key)
		assert.Equal(t, key, agg.Key)
	}

	negro := ledger.Get(stock.StockKey{ProductID: "7", ColorTitle: "Đen", Size: "M"})
	assert.Equal(t, int64(12), negro.ImportedQuantity)
	assert.Equal(t, int64(3), negro.ExportedAndTransferredQuantity)
	assert.Equal(t, int64(9), negro.RemainingQuantity)

	blanco := ledger.Get(stock.StockKey{ProductID: "7", ColorTitle: "Trắng", Size: "M"})
	assert.Equal(t, int64(-4), blanco.RemainingQuantity, "el saldo negativo es válido")
}

func TestReduce_ColorYTallaVaciosFormanSuPropioBalde(t *testing.T) {
	ledger := stock.Reduce(sampleMovements())

	vacio, ok := ledger[stock.StockKey{ProductID: "7"}]
	require.True(t, ok)
	assert.Equal(t, int64(1), vacio.RemainingQuantity)
	assert.Len(t, ledger, 5)
}

func TestReduce_NoDependeDelOrden(t *testing.T) {
	records := sampleMovements()
	expected := stock.Reduce(records)

	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		permuted := make([]stock.MovementRecord, len(records))
		for j, p := range rnd.Perm(len(records)) {
			permuted[j] = records[p]
		}
		assert.Equal(t, expected, stock.Reduce(permuted))
	}
}

func TestReduce_SinMovimientos(t *testing.T) {
	ledger := stock.Reduce(nil)
	assert.Empty(t, ledger)
	key := stock.StockKey{ProductID: "1", ColorTitle: "Đỏ", Size: "S"}
	assert.Equal(t, int64(0), ledger.Remaining(key))
	assert.Equal(t, stock.StockAggregate{Key: key}, ledger.Get(key))
}

func TestLedgerRows_OrdenaPorColorYTalla(t *testing.T) {
	ledger := stock.Reduce([]stock.MovementRecord{
		mov("7", "Đen", "XL", 1, stock.Imported),
		mov("7", "Đen", "", 1, stock.Imported),
		mov("7", "Đen", "S", 1, stock.Imported),
		mov("7", "Đen", "FREESIZE", 1, stock.Imported),
		mov("7", "Đen", "M", 1, stock.Imported),
	})

	rows := ledger.Rows()
	sizes := make([]string, 0, len(rows))
	for _, r := range rows {
		sizes = append(sizes, r.Key.Size)
	}
	assert.Equal(t, []string{"S", "M", "XL", "FREESIZE", ""}, sizes)
}

func TestGroupByColor_SubtotalesYTotalGeneral(t *testing.T) {
	rows := stock.Reduce(sampleMovements()).Rows()
	grouping := stock.GroupByColor(rows)

	var direct int64
	for _, r := range rows {
		direct += r.RemainingQuantity
	}
	var bySubtotal int64
	for _, g := range grouping.Groups {
		bySubtotal += g.Totals.Remaining
	}
	assert.Equal(t, direct, bySubtotal)
	assert.Equal(t, direct, grouping.Total.Remaining)

	byColor := grouping.ByColor()
	require.Contains(t, byColor, "Đen")
	negro := byColor["Đen"]
	assert.Equal(t, int64(21), negro.Totals.Imported)
	assert.Equal(t, int64(3), negro.Totals.Exported)
	assert.Equal(t, int64(18), negro.Totals.Remaining)
	assert.Len(t, negro.Items, 3)
}

func TestGroupByColor_ConservaOrdenDeEntradaDentroDelGrupo(t *testing.T) {
	rows := []stock.StockAggregate{
		{Key: stock.StockKey{ProductID: "1", ColorTitle: "Đen", Size: "L"}, RemainingQuantity: 1},
		{Key: stock.StockKey{ProductID: "1", ColorTitle: "Xanh", Size: "S"}, RemainingQuantity: 2},
		{Key: stock.StockKey{ProductID: "1", ColorTitle: "Đen", Size: "S"}, RemainingQuantity: 3},
	}
	grouping := stock.GroupByColor(rows)

	require.Len(t, grouping.Groups, 2)
	assert.Equal(t, "Đen", grouping.Groups[0].ColorTitle)
	assert.Equal(t, "L", grouping.Groups[0].Items[0].Key.Size)
	assert.Equal(t, "S", grouping.Groups[0].Items[1].Key.Size)
	assert.Equal(t, int64(6), grouping.Total.Remaining)
}

func TestEvaluate_Tabla(t *testing.T) {
	cases := []struct {
		name      string
		requested int64
		remaining int64
		want      stock.Outcome
	}{
		{"cero se rechaza", 0, 10, stock.Rejected},
		{"negativo se rechaza", -3, 10, stock.Rejected},
		{"menor al saldo", 3, 10, stock.Accepted},
		{"igual al saldo", 10, 10, stock.Accepted},
		{"supera el saldo advierte", 11, 10, stock.Warned},
		{"saldo negativo advierte", 1, -2, stock.Warned},
		{"saldo cero advierte", 1, 0, stock.Warned},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := stock.Evaluate(tc.requested, tc.remaining)
			assert.Equal(t, tc.want, d.Outcome)
			assert.NotEmpty(t, d.Reason)
			assert.Equal(t, tc.want != stock.Rejected, d.Allowed())
		})
	}
}

func TestEvaluateInbound(t *testing.T) {
	assert.Equal(t, stock.Accepted, stock.EvaluateInbound(4).Outcome)
	assert.Equal(t, stock.Rejected, stock.EvaluateInbound(0).Outcome)
}

func TestLowPriority(t *testing.T) {
	assert.True(t, stock.LowPriority(0))
	assert.True(t, stock.LowPriority(-1))
	assert.False(t, stock.LowPriority(1))
}

func TestCheckDuplicate(t *testing.T) {
	key := stock.StockKey{ProductID: "7", ColorTitle: "Đen", Size: "M"}
	existing := []stock.Line{
		{ID: "a", Key: key},
		{ID: "b", Key: stock.StockKey{ProductID: "7", ColorTitle: "Đen", Size: "L"}},
	}

	t.Run("alta nueva con la misma combinación se rechaza", func(t *testing.T) {
		err := stock.CheckDuplicate(existing, key, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDuplicateCombination))
	})
	t.Run("editar la misma línea se acepta", func(t *testing.T) {
		assert.NoError(t, stock.CheckDuplicate(existing, key, "a"))
	})
	t.Run("editar otra línea hacia una combinación usada se rechaza", func(t *testing.T) {
		assert.ErrorIs(t, stock.CheckDuplicate(existing, key, "b"), domain.ErrDuplicateCombination)
	})
	t.Run("combinación distinta se acepta", func(t *testing.T) {
		assert.NoError(t, stock.CheckDuplicate(existing, stock.StockKey{ProductID: "7", ColorTitle: "Trắng", Size: "M"}, ""))
	})
}

func TestSelection(t *testing.T) {
	assert.ErrorIs(t, stock.Selection(stock.StockKey{}, true, true), domain.ErrMissingSelection)
	assert.ErrorIs(t, stock.Selection(stock.StockKey{ProductID: "7", Size: "M"}, true, true), domain.ErrMissingSelection)
	assert.ErrorIs(t, stock.Selection(stock.StockKey{ProductID: "7", ColorTitle: "Đen"}, true, true), domain.ErrMissingSelection)
	assert.NoError(t, stock.Selection(stock.StockKey{ProductID: "7"}, false, false))
	assert.NoError(t, stock.Selection(stock.StockKey{ProductID: "7", ColorTitle: "Đen", Size: "M"}, true, true))
}

// Escenario: saldo 5, se exportan 5 (aceptado, queda 0) y luego otros 5
// (advertencia, queda -5 al volver a leer).
func TestEscenario_ExportacionSobreSaldo(t *testing.T) {
	key := stock.StockKey{ProductID: "7", ColorTitle: "Đen", Size: "M"}
	movements := []stock.MovementRecord{mov("7", "Đen", "M", 5, stock.Imported)}

	remaining := stock.Reduce(movements).Remaining(key)
	require.Equal(t, int64(5), remaining)

	first := stock.Evaluate(5, remaining)
	assert.Equal(t, stock.Accepted, first.Outcome)
	movements = append(movements, mov("7", "Đen", "M", 5, stock.ExportedOrTransferred))
	remaining = stock.Reduce(movements).Remaining(key)
	assert.Equal(t, int64(0), remaining)

	second := stock.Evaluate(5, remaining)
	assert.Equal(t, stock.Warned, second.Outcome)
	movements = append(movements, mov("7", "Đen", "M", 5, stock.ExportedOrTransferred))
	assert.Equal(t, int64(-5), stock.Reduce(movements).Remaining(key))
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		in   any
		want int64
	}{
		{nil, 0},
		{5, 5},
		{int64(-2), -2},
		{3.0, 3},
		{2.5, 0},
		{" 12 ", 12},
		{"7.0", 7},
		{"abc", 0},
		{"", 0},
		{decimal.NewFromInt(9), 9},
		{decimal.RequireFromString("1.5"), 0},
		{true, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stock.ParseQuantity(tc.in), "entrada %#v", tc.in)
	}
}
