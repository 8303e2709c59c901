// Package stock contiene la conciliación de existencias por producto, color y talla.
//
// Todo el paquete es puro: recibe los movimientos ya leídos de la base de datos
// y devuelve vistas derivadas. No hay I/O ni estado compartido; cada consulta
// recalcula desde cero.
package stock

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Direction indica si un movimiento suma o resta existencias.
type Direction string

const (
	// Imported corresponde a las líneas de documentos de importación (entradas).
	Imported Direction = "imported"
	// ExportedOrTransferred corresponde a exportaciones y traslados (salidas).
	ExportedOrTransferred Direction = "exported_or_transferred"
)

// StockKey identifica un balde de conciliación. Dos movimientos con la misma
// clave se suman, nunca se sobrescriben. Color o talla vacíos forman su propio
// balde con clave "".
type StockKey struct {
	ProductID  string
	ColorTitle string
	Size       string
}

// MovementRecord es una línea de detalle de importación, exportación o traslado.
type MovementRecord struct {
	ProductID  string
	ColorTitle string
	Size       string
	Quantity   int64
	Direction  Direction
}

// Key devuelve la clave de conciliación del movimiento.
func (m MovementRecord) Key() StockKey {
	return StockKey{ProductID: m.ProductID, ColorTitle: m.ColorTitle, Size: m.Size}
}

// StockAggregate es el resultado conciliado de un balde.
// RemainingQuantity = ImportedQuantity - ExportedAndTransferredQuantity, exacto;
// un valor negativo indica sobre-exportación ("âm kho") y no es un error.
type StockAggregate struct {
	Key                            StockKey
	ImportedQuantity               int64
	ExportedAndTransferredQuantity int64
	RemainingQuantity              int64
}

// ParseQuantity convierte una cantidad de entrada poco confiable (hojas de
// cálculo, JSON suelto) en entero. Lo que no sea numérico, no sea entero o no
// sea finito se convierte en 0 en lugar de fallar.
func ParseQuantity(v any) int64 {
	switch q := v.(type) {
	case nil:
		return 0
	case int:
		return int64(q)
	case int32:
		return int64(q)
	case int64:
		return q
	case float32:
		return wholeFloat(float64(q))
	case float64:
		return wholeFloat(q)
	case decimal.Decimal:
		if !q.IsInteger() {
			return 0
		}
		return q.IntPart()
	case string:
		s := strings.TrimSpace(q)
		if s == "" {
			return 0
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return wholeFloat(f)
		}
		return 0
	default:
		return 0
	}
}

func wholeFloat(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}
