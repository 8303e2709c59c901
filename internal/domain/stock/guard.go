package stock

import (
	"fmt"
	"strings"

	"github.com/jhoicas/khohang-api/internal/domain"
)

// Line es una línea de detalle ya guardada en el documento.
type Line struct {
	ID  string
	Key StockKey
}

// Selection valida que el producto, el color y la talla estén elegidos.
// Los productos sin colores o sin tallas configurados aceptan el valor vacío;
// por eso la comprobación de color y talla la decide quien llama.
func Selection(key StockKey, requireColor, requireSize bool) error {
	if strings.TrimSpace(key.ProductID) == "" {
		return domain.ErrMissingSelection
	}
	if requireColor && strings.TrimSpace(key.ColorTitle) == "" {
		return domain.ErrMissingSelection
	}
	if requireSize && strings.TrimSpace(key.Size) == "" {
		return domain.ErrMissingSelection
	}
	return nil
}

// CheckDuplicate rechaza el candidato si otra línea del mismo documento ya
// tiene exactamente la misma combinación. La línea en edición (editingID) se
// excluye de la comparación; editingID vacío significa alta nueva.
func CheckDuplicate(existing []Line, candidate StockKey, editingID string) error {
	for _, l := range existing {
		if editingID != "" && l.ID == editingID {
			continue
		}
		if l.Key == candidate {
			return fmt.Errorf("%w: producto %s, color %q, talla %q",
				domain.ErrDuplicateCombination, candidate.ProductID, candidate.ColorTitle, candidate.Size)
		}
	}
	return nil
}
