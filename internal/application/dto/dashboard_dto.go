package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard.
// "Hoy" es el día calendario local del servidor.
type DashboardSummaryDTO struct {
	TodaySalesCount int64           `json:"today_sales_count"`
	TodayTotalCOP   decimal.Decimal `json:"today_total_cop"`
	TodayTotalUSD   decimal.Decimal `json:"today_total_usd"`
	ProductsCount   int64           `json:"products_count"`
	LowStockCount   int64           `json:"low_stock_count"` // activos con stock <= umbral
}
