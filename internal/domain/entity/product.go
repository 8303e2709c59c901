package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductColor es un color ofrecido por el producto: código (hex) y nombre
// visible. El nombre (Title) es parte de la clave de existencias.
type ProductColor struct {
	Color string `json:"color"`
	Title string `json:"color_title"`
}

// Product representa un artículo del catálogo con sus colores y tallas.
// Las existencias no se guardan aquí: se concilian desde las líneas de documento.
type Product struct {
	ID          string
	Code        string // código único
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	Colors      []ProductColor
	Sizes       []string // subconjunto de stock.KnownSizes
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasColor indica si el producto ofrece el color con ese nombre.
func (p *Product) HasColor(title string) bool {
	for _, c := range p.Colors {
		if c.Title == title {
			return true
		}
	}
	return false
}

// HasSize indica si el producto ofrece la talla.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// ColorCode devuelve el código del color con ese nombre, o "" si no existe.
func (p *Product) ColorCode(title string) string {
	for _, c := range p.Colors {
		if c.Title == title {
			return c.Color
		}
	}
	return ""
}
