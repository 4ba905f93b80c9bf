package memory

import (
	"context"
	"time"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo KPIs calculados recorriendo el estado.
type AnalyticsRepo struct {
	v view
}

func (r *AnalyticsRepo) GetDashboardMetrics(_ context.Context, tenantID string, dayStart, dayEnd time.Time) (*repository.DashboardMetrics, error) {
	m := &repository.DashboardMetrics{TodayTotalCOP: decimal.Zero, TodayTotalUSD: decimal.Zero}
	err := r.v.with(func(st *state) error {
		for _, s := range st.sales {
			if s.TenantID != tenantID || s.CreatedAt.Before(dayStart) || !s.CreatedAt.Before(dayEnd) {
				continue
			}
			m.TodaySalesCount++
			switch s.Currency {
			case entity.CurrencyCOP:
				m.TodayTotalCOP = m.TodayTotalCOP.Add(s.Total)
			case entity.CurrencyUSD:
				m.TodayTotalUSD = m.TodayTotalUSD.Add(s.Total)
			}
		}
		for _, p := range st.products {
			if p.TenantID != tenantID {
				continue
			}
			m.ProductsCount++
			if p.IsLowStock() {
				m.LowStockCount++
			}
		}
		return nil
	})
	return m, err
}
