package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardMetrics resultado crudo de los KPIs del dashboard.
type DashboardMetrics struct {
	TodaySalesCount int64
	TodayTotalCOP   decimal.Decimal
	TodayTotalUSD   decimal.Decimal
	ProductsCount   int64
	LowStockCount   int64 // productos activos con stock <= low_stock_threshold
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	// GetDashboardMetrics cuenta y suma las ventas con created_at en [dayStart, dayEnd).
	// Usa COALESCE para devolver cero si no hay ventas.
	GetDashboardMetrics(ctx context.Context, tenantID string, dayStart, dayEnd time.Time) (*DashboardMetrics, error)
}
