// Package analytics contiene el caso de uso del dashboard: KPIs del día por tenant.
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// DashboardCache guarda el resumen por tenant. Get devuelve found=false si no hay entrada.
type DashboardCache interface {
	Get(ctx context.Context, tenantID string) (*dto.DashboardSummaryDTO, bool, error)
	Set(ctx context.Context, tenantID string, value *dto.DashboardSummaryDTO, ttl time.Duration) error
	Invalidate(ctx context.Context, tenantID string) error
}

// DashboardUseCase genera el resumen del día en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). El cache es opcional;
// sus errores se registran y se responde desde la base de datos.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	cache         DashboardCache
	ttl           time.Duration
	log           *logger.Logger
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, cache DashboardCache, ttl time.Duration, log *logger.Logger) *DashboardUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		cache:         cache,
		ttl:           ttl,
		log:           log.Component("dashboard"),
		now:           time.Now,
	}
}

// DayBounds devuelve [inicio, fin) del día calendario local de t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// GetSummary construye el DashboardSummaryDTO del tenant.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, tenantID string) (*dto.DashboardSummaryDTO, error) {
	if uc.cache != nil {
		cached, found, err := uc.cache.Get(ctx, tenantID)
		if err != nil {
			uc.log.Warn().Err(err).Str("tenant_id", tenantID).Msg("leer cache del dashboard")
		} else if found {
			return cached, nil
		}
	}

	start, end := DayBounds(uc.now())
	m, err := uc.analyticsRepo.GetDashboardMetrics(ctx, tenantID, start, end)
	if err != nil {
		return nil, err
	}
	out := &dto.DashboardSummaryDTO{
		TodaySalesCount: m.TodaySalesCount,
		TodayTotalCOP:   m.TodayTotalCOP,
		TodayTotalUSD:   m.TodayTotalUSD,
		ProductsCount:   m.ProductsCount,
		LowStockCount:   m.LowStockCount,
	}

	if uc.cache != nil && uc.ttl > 0 {
		if err := uc.cache.Set(ctx, tenantID, out, uc.ttl); err != nil {
			uc.log.Warn().Err(err).Str("tenant_id", tenantID).Msg("escribir cache del dashboard")
		}
	}
	return out, nil
}

// Invalidate descarta el resumen en cache (después de cada venta).
func (uc *DashboardUseCase) Invalidate(ctx context.Context, tenantID string) error {
	if uc.cache == nil {
		return nil
	}
	return uc.cache.Invalidate(ctx, tenantID)
}
