// Package groupby agrupa y suma colecciones en memoria.
//
// Reemplaza el patrón "agrupar y sumar" que se repite por producto, color,
// talla, mes y departamento. Las funciones son puras y conservan el orden de
// primera aparición de cada clave.
package groupby

import "github.com/shopspring/decimal"

// Group es un grupo con su clave y los elementos en orden de entrada.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupBy agrupa items por la clave que devuelve keyFn.
// Los grupos salen en el orden en que aparece su clave por primera vez.
func GroupBy[K comparable, T any](items []T, keyFn func(T) K) []Group[K, T] {
	index := make(map[K]int)
	groups := make([]Group[K, T], 0)
	for _, it := range items {
		k := keyFn(it)
		pos, ok := index[k]
		if !ok {
			pos = len(groups)
			index[k] = pos
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[pos].Items = append(groups[pos].Items, it)
	}
	return groups
}

// Number restringe los tipos numéricos que SumBy acepta.
type Number interface {
	~int | ~int32 | ~int64 | ~float64
}

// SumBy suma el campo numérico que extrae valueFn.
func SumBy[T any, N Number](items []T, valueFn func(T) N) N {
	var total N
	for _, it := range items {
		total += valueFn(it)
	}
	return total
}

// SumDecimal suma montos decimales (salarios, precios) sin pasar por float.
func SumDecimal[T any](items []T, valueFn func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(valueFn(it))
	}
	return total
}

// SumByKey agrupa y suma en un solo paso, devolviendo un mapa clave → total.
func SumByKey[K comparable, T any, N Number](items []T, keyFn func(T) K, valueFn func(T) N) map[K]N {
	out := make(map[K]N)
	for _, it := range items {
		out[keyFn(it)] += valueFn(it)
	}
	return out
}
