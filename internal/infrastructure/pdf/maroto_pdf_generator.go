// Package pdf imprime los documentos de bodega (phiếu nhập, phiếu xuất,
// báo giá, phiếu chuyển kho, đề nghị mua hàng).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del documento  │  Código + Fecha + QR        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTRAPARTE: Cliente o bodega de destino                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Mã | Sản phẩm | Màu | Size | SL | Đơn giá | T.tiền  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: cantidad y monto                                  │
//	│  FIRMAS                                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/khohang-api/internal/application/ports"
	"github.com/jhoicas/khohang-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ ports.DocumentPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	company string
}

// NewMarotoPDFGenerator construye el generador; company va en el encabezado.
func NewMarotoPDFGenerator(company string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{company: company}
}

// GenerateDocumentPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDocumentPDF(_ context.Context, doc ports.DocumentPrint) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title+" "+doc.Code, true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.company, doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if doc.PartnerLabel != "" {
		m.AddRows(partnerRow(doc))
	}
	if doc.Note != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("Ghi chú: "+doc.Note, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(doc.ShowPrices))
	m.AddRows(tableDetailRows(doc.Lines, doc.ShowPrices)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc))

	m.AddRows(line.NewRow(6))
	m.AddRows(signatureRow())

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa y título (izq), código, fecha y QR del código (der).
func headerRow(company string, doc ports.DocumentPrint) core.Row {
	return row.New(24).Add(
		col.New(7).Add(
			text.New(nonEmpty(company, "—"), props.Text{
				Size: 9, Top: 1, Color: colorGray,
			}),
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 7,
			}),
		),
		col.New(3).Add(
			text.New(doc.Code, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Ngày: "+doc.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
		col.New(2).Add(code.NewQr(doc.Code, props.Rect{Percent: 90, Center: true})),
	)
}

// partnerRow: cliente (exportación) o bodega de destino (traslado).
func partnerRow(doc ports.DocumentPrint) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(doc.PartnerLabel, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(doc.PartnerName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(nonEmpty(doc.PartnerDetail, "—"), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow(showPrices bool) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	cellStyle := &props.Cell{BackgroundColor: colorPrimary}
	if !showPrices {
		return row.New(8).Add(
			h("Mã", 2, align.Left),
			h("Sản phẩm", 5, align.Left),
			h("Màu", 2, align.Left),
			h("Size", 1, align.Center),
			h("SL", 2, align.Right),
		).WithStyle(cellStyle)
	}
	return row.New(8).Add(
		h("Mã", 2, align.Left),
		h("Sản phẩm", 3, align.Left),
		h("Màu", 1, align.Left),
		h("Size", 1, align.Center),
		h("SL", 1, align.Right),
		h("Đơn giá", 2, align.Right),
		h("Thành tiền", 2, align.Right),
	).WithStyle(cellStyle)
}

// tableDetailRows: una fila por línea del documento.
func tableDetailRows(lines []ports.PrintLine, showPrices bool) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		if !showPrices {
			result = append(result, row.New(7).Add(
				cell(l.ProductCode, 2, align.Left),
				cell(l.ProductName, 5, align.Left),
				cell(l.ColorTitle, 2, align.Left),
				cell(l.Size, 1, align.Center),
				cell(money.FormatInt(l.Quantity), 2, align.Right),
			))
			continue
		}
		result = append(result, row.New(7).Add(
			cell(l.ProductCode, 2, align.Left),
			cell(l.ProductName, 3, align.Left),
			cell(l.ColorTitle, 1, align.Left),
			cell(l.Size, 1, align.Center),
			cell(money.FormatInt(l.Quantity), 1, align.Right),
			cell(money.Format(l.UnitPrice), 2, align.Right),
			cell(money.Format(l.Amount), 2, align.Right),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(doc ports.DocumentPrint) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 6,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 6,
		})
	}

	if !doc.ShowPrices {
		return row.New(10).Add(
			col.New(6),
			col.New(3).Add(label("Tổng số lượng:")),
			col.New(3).Add(value(money.FormatInt(doc.TotalQuantity))),
		)
	}
	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(
			label("Tổng số lượng:"),
			grandLabel("TỔNG TIỀN:"),
		),
		col.New(3).Add(
			value(money.FormatInt(doc.TotalQuantity)),
			grandValue(money.FormatVND(doc.TotalAmount)),
		),
	)
}

func signatureRow() core.Row {
	sign := func(s string) core.Col {
		return col.New(4).Add(
			text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center}),
			text.New("(Ký, ghi rõ họ tên)", props.Text{Size: 7, Align: align.Center, Top: 5, Color: colorGray}),
		)
	}
	return row.New(30).Add(sign("Người lập phiếu"), sign("Thủ kho"), sign("Người nhận"))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
