// Package money formatea cantidades y montos con la agrupación de miles
// vietnamita (1.234.567).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Vietnamese)

// FormatInt devuelve n con separador de miles, ej. 1234567 -> "1.234.567".
func FormatInt(n int64) string {
	return printer.Sprintf("%d", n)
}

// Format redondea el monto a unidades (el đồng no tiene fracción) y lo agrupa.
func Format(d decimal.Decimal) string {
	return FormatInt(d.Round(0).IntPart())
}

// FormatVND es Format con el sufijo de la moneda.
func FormatVND(d decimal.Decimal) string {
	return Format(d) + " ₫"
}
