package stock

import "strings"

// KnownSizes es la enumeración fija de tallas en el orden en que se muestran.
var KnownSizes = []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL", "FREESIZE"}

var sizeRank = func() map[string]int {
	m := make(map[string]int, len(KnownSizes))
	for i, s := range KnownSizes {
		m[s] = i
	}
	return m
}()

// SizeRank devuelve la posición de la talla en KnownSizes; las tallas
// desconocidas van después, y la talla vacía al final.
func SizeRank(size string) int {
	if size == "" {
		return len(KnownSizes) + 1
	}
	if r, ok := sizeRank[strings.ToUpper(strings.TrimSpace(size))]; ok {
		return r
	}
	return len(KnownSizes)
}

// LessSize compara tallas por SizeRank y, a igual rango, alfabéticamente.
func LessSize(a, b string) bool {
	ra, rb := SizeRank(a), SizeRank(b)
	if ra != rb {
		return ra < rb
	}
	return a < b
}
