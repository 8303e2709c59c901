package stock

import "sort"

// Ledger es el mapa de baldes conciliados por clave.
type Ledger map[StockKey]StockAggregate

// Reduce pliega los movimientos en un Ledger. El resultado no depende del orden
// de entrada y ningún movimiento se descarta.
func Reduce(records []MovementRecord) Ledger {
	ledger := make(Ledger, len(records))
	for _, rec := range records {
		key := rec.Key()
		agg := ledger[key]
		agg.Key = key
		if rec.Direction == Imported {
			agg.ImportedQuantity += rec.Quantity
		} else {
			agg.ExportedAndTransferredQuantity += rec.Quantity
		}
		ledger[key] = agg
	}
	for key, agg := range ledger {
		agg.RemainingQuantity = agg.ImportedQuantity - agg.ExportedAndTransferredQuantity
		ledger[key] = agg
	}
	return ledger
}

// Remaining devuelve el saldo de la clave; 0 si nunca tuvo movimientos.
func (l Ledger) Remaining(key StockKey) int64 {
	return l[key].RemainingQuantity
}

// Get devuelve el balde de la clave, o uno en cero con la clave puesta.
func (l Ledger) Get(key StockKey) StockAggregate {
	agg, ok := l[key]
	if !ok {
		return StockAggregate{Key: key}
	}
	return agg
}

// Rows devuelve los baldes ordenados por producto, color y talla (según
// SizeRank). Es el orden que usan las tablas y los reportes.
func (l Ledger) Rows() []StockAggregate {
	rows := make([]StockAggregate, 0, len(l))
	for _, agg := range l {
		rows = append(rows, agg)
	}
	SortRows(rows)
	return rows
}

// SortRows ordena in-place por producto, color y talla.
func SortRows(rows []StockAggregate) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Key, rows[j].Key
		if a.ProductID != b.ProductID {
			return a.ProductID < b.ProductID
		}
		if a.ColorTitle != b.ColorTitle {
			return a.ColorTitle < b.ColorTitle
		}
		return LessSize(a.Size, b.Size)
	})
}
