package stock

import "github.com/jhoicas/khohang-api/pkg/groupby"

// Totals son las sumas de importado, exportado y restante.
type Totals struct {
	Imported  int64
	Exported  int64
	Remaining int64
}

// ColorGroup agrupa las filas de un color con su subtotal.
type ColorGroup struct {
	ColorTitle string
	Items      []StockAggregate
	Totals     Totals
}

// Grouping es la vista por color: grupos en orden de primera aparición y el
// total general sobre todos los colores.
type Grouping struct {
	Groups []ColorGroup
	Total  Totals
}

// ByColor devuelve los grupos indexados por color.
func (g Grouping) ByColor() map[string]ColorGroup {
	out := make(map[string]ColorGroup, len(g.Groups))
	for _, cg := range g.Groups {
		out[cg.ColorTitle] = cg
	}
	return out
}

// GroupByColor agrupa las filas por color en una sola pasada. Dentro de cada
// grupo las filas conservan el orden de entrada; el orden por talla lo decide
// quien llama. El subtotal de restante suma el RemainingQuantity ya calculado
// de cada fila, no se vuelve a restar importado menos exportado.
func GroupByColor(rows []StockAggregate) Grouping {
	raw := groupby.GroupBy(rows, func(a StockAggregate) string { return a.Key.ColorTitle })

	out := Grouping{Groups: make([]ColorGroup, 0, len(raw))}
	for _, g := range raw {
		totals := sumTotals(g.Items)
		out.Groups = append(out.Groups, ColorGroup{
			ColorTitle: g.Key,
			Items:      g.Items,
			Totals:     totals,
		})
		out.Total.Imported += totals.Imported
		out.Total.Exported += totals.Exported
		out.Total.Remaining += totals.Remaining
	}
	return out
}

func sumTotals(items []StockAggregate) Totals {
	return Totals{
		Imported:  groupby.SumBy(items, func(a StockAggregate) int64 { return a.ImportedQuantity }),
		Exported:  groupby.SumBy(items, func(a StockAggregate) int64 { return a.ExportedAndTransferredQuantity }),
		Remaining: groupby.SumBy(items, func(a StockAggregate) int64 { return a.RemainingQuantity }),
	}
}
