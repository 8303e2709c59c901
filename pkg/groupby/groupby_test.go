package groupby_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/khohang-api/pkg/groupby"
)

type row struct {
	color string
	qty   int64
	price decimal.Decimal
}

func TestGroupBy_ConservaOrdenDePrimeraAparicion(t *testing.T) {
	rows := []row{
		{color: "Đen", qty: 1},
		{color: "Trắng", qty: 2},
		{color: "Đen", qty: 3},
		{color: "", qty: 4},
	}
	groups := groupby.GroupBy(rows, func(r row) string { return r.color })

	require.Len(t, groups, 3)
	assert.Equal(t, "Đen", groups[0].Key)
	assert.Equal(t, "Trắng", groups[1].Key)
	assert.Equal(t, "", groups[2].Key)
	assert.Equal(t, []row{{color: "Đen", qty: 1}, {color: "Đen", qty: 3}}, groups[0].Items)
}

func TestGroupBy_ListaVacia(t *testing.T) {
	groups := groupby.GroupBy([]row{}, func(r row) string { return r.color })
	assert.Empty(t, groups)
}

func TestSumBy_YSumByKey(t *testing.T) {
	rows := []row{{color: "A", qty: 2}, {color: "B", qty: 5}, {color: "A", qty: -1}}

	assert.Equal(t, int64(6), groupby.SumBy(rows, func(r row) int64 { return r.qty }))
	assert.Equal(t,
		map[string]int64{"A": 1, "B": 5},
		groupby.SumByKey(rows, func(r row) string { return r.color }, func(r row) int64 { return r.qty }),
	)
}

func TestSumDecimal(t *testing.T) {
	rows := []row{
		{price: decimal.RequireFromString("0.1")},
		{price: decimal.RequireFromString("0.2")},
	}
	total := groupby.SumDecimal(rows, func(r row) decimal.Decimal { return r.price })
	assert.True(t, total.Equal(decimal.RequireFromString("0.3")), "sin deriva de punto flotante: %s", total)
}
