package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetDashboardMetrics KPIs del tenant en una sola ida a la base.
func (r *AnalyticsRepo) GetDashboardMetrics(ctx context.Context, tenantID string, dayStart, dayEnd time.Time) (*repository.DashboardMetrics, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM sales WHERE tenant_id = $1 AND created_at >= $2 AND created_at < $3),
			(SELECT COALESCE(SUM(total), 0) FROM sales WHERE tenant_id = $1 AND currency = 'COP' AND created_at >= $2 AND created_at < $3),
			(SELECT COALESCE(SUM(total), 0) FROM sales WHERE tenant_id = $1 AND currency = 'USD' AND created_at >= $2 AND created_at < $3),
			(SELECT COUNT(*) FROM products WHERE tenant_id = $1),
			(SELECT COUNT(*) FROM products WHERE tenant_id = $1 AND is_active AND stock <= low_stock_threshold)`
	var m repository.DashboardMetrics
	if err := r.q.QueryRow(ctx, query, tenantID, dayStart, dayEnd).Scan(
		&m.TodaySalesCount, &m.TodayTotalCOP, &m.TodayTotalUSD, &m.ProductsCount, &m.LowStockCount,
	); err != nil {
		return nil, fmt.Errorf("dashboard metrics: %w", err)
	}
	return &m, nil
}
