// Package cache implementa el cache del dashboard: Redis cuando está configurado, noop si no.
package cache

import (
	"context"
	"time"

	"github.com/jhoicas/pos-api/internal/application/analytics"
	"github.com/jhoicas/pos-api/internal/application/dto"
)

var _ analytics.DashboardCache = NoopDashboardCache{}

// NoopDashboardCache nunca encuentra nada; cada lectura va a la base de datos.
type NoopDashboardCache struct{}

func (NoopDashboardCache) Get(_ context.Context, _ string) (*dto.DashboardSummaryDTO, bool, error) {
	return nil, false, nil
}

func (NoopDashboardCache) Set(_ context.Context, _ string, _ *dto.DashboardSummaryDTO, _ time.Duration) error {
	return nil
}

func (NoopDashboardCache) Invalidate(_ context.Context, _ string) error {
	return nil
}
