package usecase

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// TenantTxRunner crea el tenant y siembra su contador de recibos en la misma transacción.
type TenantTxRunner interface {
	RunTenant(ctx context.Context, fn func(
		tenantRepo repository.TenantRepository,
		counterRepo repository.CounterRepository,
	) error) error
}

// CacheInvalidator descarta los KPIs en cache del tenant cuando cambia el catálogo.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, tenantID string) error
}
