package dto

import "github.com/shopspring/decimal"

// MonthlyMovementDTO cantidad e importe de un tipo de documento en un mes.
type MonthlyMovementDTO struct {
	Month    int             `json:"month"`
	Quantity int64           `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// DashboardResponse resumen anual del panel: entradas, salidas e ingresos por mes.
type DashboardResponse struct {
	Year           int                  `json:"year"`
	ImportsByMonth []MonthlyMovementDTO `json:"imports_by_month"`
	ExportsByMonth []MonthlyMovementDTO `json:"exports_by_month"`
	RevenueByMonth []decimal.Decimal    `json:"revenue_by_month"` // 12 posiciones, enero primero
	TotalImported  int64                `json:"total_imported"`
	TotalExported  int64                `json:"total_exported"`
	TotalRevenue   decimal.Decimal      `json:"total_revenue"`
}
