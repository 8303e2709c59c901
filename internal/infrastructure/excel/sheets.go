// Package excel lee y escribe hojas XLSX con excelize: la importación de
// líneas de documento y los reportes de existencias y nómina.
package excel

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/khohang-api/internal/application/dto"
	"github.com/jhoicas/khohang-api/internal/application/ports"
)

var (
	_ ports.SheetReader = (*Sheets)(nil)
	_ ports.SheetWriter = (*Sheets)(nil)
)

// columnAliases mapea nombres alternativos de la cabecera de la hoja de
// líneas (product_id, color_title, size, quantity, unit_price).
var columnAliases = map[string]string{"color": "color_title"}

// Sheets implementa ports.SheetReader y ports.SheetWriter.
type Sheets struct{}

// NewSheets construye el adaptador.
func NewSheets() *Sheets { return &Sheets{} }

// ReadDetailRows lee la primera hoja. La primera fila es la cabecera y las
// columnas se ubican por nombre; las filas sin producto se saltan.
func (s *Sheets) ReadDetailRows(r io.Reader) ([]ports.DetailSheetRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsx: archivo ilegible: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("xlsx: leer filas: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("xlsx: la hoja no tiene líneas")
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		name := strings.ToLower(strings.TrimSpace(h))
		if alias, ok := columnAliases[name]; ok {
			name = alias
		}
		index[name] = i
	}
	for _, c := range []string{"product_id", "quantity"} {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("xlsx: falta la columna %q", c)
		}
	}
	cell := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out := make([]ports.DetailSheetRow, 0, len(rows)-1)
	for i, row := range rows[1:] {
		productID := cell(row, "product_id")
		if productID == "" {
			continue
		}
		out = append(out, ports.DetailSheetRow{
			Row:        i + 2,
			ProductID:  productID,
			ColorTitle: cell(row, "color_title"),
			Size:       cell(row, "size"),
			Quantity:   cell(row, "quantity"),
			UnitPrice:  cell(row, "unit_price"),
		})
	}
	return out, nil
}

// StockSheet escribe las existencias agrupadas por color, con un subtotal por
// color y el total general al final.
func (s *Sheets) StockSheet(_ context.Context, stock *dto.ProductStockResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{f: f, sheet: sheet}
	w.row([]interface{}{"Mã", stock.ProductCode, "Sản phẩm", stock.ProductName})
	w.skip()
	w.styled(bold, []interface{}{"Màu", "Size", "Nhập", "Xuất/Chuyển", "Tồn"})
	for _, g := range stock.Groups {
		for _, it := range g.Items {
			w.row([]interface{}{it.ColorTitle, it.Size, it.ImportedQuantity, it.ExportedAndTransferredQuantity, it.RemainingQuantity})
		}
		w.styled(bold, []interface{}{"Tổng " + g.ColorTitle, "", g.Totals.Imported, g.Totals.Exported, g.Totals.Remaining})
	}
	w.styled(bold, []interface{}{"TỔNG CỘNG", "", stock.Total.Imported, stock.Total.Exported, stock.Total.Remaining})
	if w.err != nil {
		return nil, w.err
	}
	return w.bytes()
}

// SalarySheet escribe el resumen de nómina: totales, una fila por mes, una
// por departamento y el detalle por empleado en una segunda hoja.
func (s *Sheets) SalarySheet(_ context.Context, summary *dto.SalarySummaryResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{f: f, sheet: sheet}
	sm := summary.Summary
	w.styled(bold, []interface{}{"Năm", summary.Year, "Tháng", summary.Month})
	w.row([]interface{}{"Tổng lương cơ bản", sm.TotalBaseSalary.InexactFloat64()})
	w.row([]interface{}{"Tổng thực lãnh", sm.TotalNetSalary.InexactFloat64()})
	w.row([]interface{}{"Số nhân viên", sm.EmployeeCount})
	w.row([]interface{}{"Đã trả", sm.PaidCount})
	w.row([]interface{}{"Lương trung bình", sm.AverageSalary.InexactFloat64()})
	w.skip()

	w.styled(bold, []interface{}{"Kỳ", "Lương cơ bản", "Thực lãnh", "Nhân viên", "Đã trả", "Trung bình"})
	for _, m := range summary.Monthly {
		w.row([]interface{}{m.Period, m.TotalBaseSalary.InexactFloat64(), m.TotalNetSalary.InexactFloat64(),
			m.EmployeeCount, m.PaidCount, m.AverageSalary.InexactFloat64()})
	}
	w.skip()

	w.styled(bold, []interface{}{"Phòng ban", "Nhân viên", "Tổng", "Trung bình"})
	departments := make([]string, 0, len(summary.DepartmentStats))
	for d := range summary.DepartmentStats {
		departments = append(departments, d)
	}
	sort.Strings(departments)
	for _, d := range departments {
		st := summary.DepartmentStats[d]
		w.row([]interface{}{d, st.Count, st.Total.InexactFloat64(), st.Average.InexactFloat64()})
	}

	detail := "Chi tiết"
	if _, err := f.NewSheet(detail); err != nil {
		return nil, err
	}
	dw := &sheetWriter{f: f, sheet: detail}
	dw.styled(bold, []interface{}{"Nhân viên", "Phòng ban", "Kỳ", "Lương cơ bản", "Thưởng", "Khấu trừ", "Thực lãnh", "Đã trả"})
	for _, s := range summary.Salaries {
		dw.row([]interface{}{s.EmployeeName, s.Department, fmt.Sprintf("%d-%02d", s.Year, s.Month),
			s.BaseSalary.InexactFloat64(), s.Bonus.InexactFloat64(), s.Deduction.InexactFloat64(),
			s.NetSalary.InexactFloat64(), s.Paid})
	}

	if w.err != nil {
		return nil, w.err
	}
	if dw.err != nil {
		return nil, dw.err
	}
	return w.bytes()
}

// sheetWriter escribe filas consecutivas y guarda el primer error.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	next  int
	err   error
}

func (w *sheetWriter) row(values []interface{}) {
	w.styled(0, values)
}

func (w *sheetWriter) styled(style int, values []interface{}) {
	if w.err != nil {
		return
	}
	w.next++
	cell, err := excelize.CoordinatesToCellName(1, w.next)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetSheetRow(w.sheet, cell, &values); err != nil {
		w.err = err
		return
	}
	if style == 0 {
		return
	}
	last, err := excelize.CoordinatesToCellName(len(values), w.next)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, cell, last, style)
}

func (w *sheetWriter) skip() { w.next++ }

func (w *sheetWriter) bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := w.f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
