package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/khohang-api/internal/application/dto"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
	"github.com/jhoicas/khohang-api/internal/domain/repository"
	"github.com/jhoicas/khohang-api/pkg/groupby"
)

// DashboardUseCase arma el panel anual: entradas, salidas e ingresos por mes.
type DashboardUseCase struct {
	details repository.DetailRepository
	now     func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(details repository.DetailRepository) *DashboardUseCase {
	return &DashboardUseCase{details: details, now: time.Now}
}

// GetYear construye el panel del año indicado (0 = año en curso).
//
// Entradas y salidas son agregados independientes: se consultan en paralelo
// y cada uno se pliega por separado.
func (uc *DashboardUseCase) GetYear(ctx context.Context, year int) (*dto.DashboardResponse, error) {
	if year == 0 {
		year = uc.now().Year()
	}
	loc := uc.now().Location()
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(1, 0, 0)

	type linesResult struct {
		lines []repository.DatedLine
		err   error
	}
	importsCh := make(chan linesResult, 1)
	exportsCh := make(chan linesResult, 1)

	go func() {
		lines, err := uc.details.ListDated(ctx, entity.DocumentImport, from, to)
		importsCh <- linesResult{lines, err}
	}()
	go func() {
		lines, err := uc.details.ListDated(ctx, entity.DocumentExport, from, to)
		exportsCh <- linesResult{lines, err}
	}()

	imports := <-importsCh
	exports := <-exportsCh
	if imports.err != nil {
		return nil, fmt.Errorf("dashboard: entradas: %w", imports.err)
	}
	if exports.err != nil {
		return nil, fmt.Errorf("dashboard: salidas: %w", exports.err)
	}

	resp := &dto.DashboardResponse{
		Year:           year,
		ImportsByMonth: byMonth(imports.lines),
		ExportsByMonth: byMonth(exports.lines),
		RevenueByMonth: make([]decimal.Decimal, 12),
		TotalImported:  groupby.SumBy(imports.lines, lineQuantity),
		TotalExported:  groupby.SumBy(exports.lines, lineQuantity),
		TotalRevenue:   groupby.SumDecimal(exports.lines, lineAmount),
	}
	for i, m := range resp.ExportsByMonth {
		resp.RevenueByMonth[i] = m.Amount
	}
	return resp, nil
}

func lineQuantity(l repository.DatedLine) int64         { return l.Quantity }
func lineAmount(l repository.DatedLine) decimal.Decimal { return l.Amount }

// byMonth devuelve siempre 12 filas, enero primero; los meses sin líneas van en cero.
func byMonth(lines []repository.DatedLine) []dto.MonthlyMovementDTO {
	out := make([]dto.MonthlyMovementDTO, 12)
	for i := range out {
		out[i] = dto.MonthlyMovementDTO{Month: i + 1, Amount: decimal.Zero}
	}
	for _, g := range groupby.GroupBy(lines, func(l repository.DatedLine) time.Month { return l.Date.Month() }) {
		m := &out[g.Key-1]
		m.Quantity = groupby.SumBy(g.Items, lineQuantity)
		m.Amount = groupby.SumDecimal(g.Items, lineAmount)
	}
	return out
}
