package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// TenantRepository define el puerto de persistencia para Tenant (DIP).
// La implementación vive en infrastructure.
type TenantRepository interface {
	// Create devuelve domain.ErrDuplicate si el nombre ya existe.
	Create(ctx context.Context, tenant *entity.Tenant) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)
	// Update reemplaza los campos editables; domain.ErrNotFound si no existe.
	Update(ctx context.Context, tenant *entity.Tenant) error
	// List ordena por created_at DESC.
	List(ctx context.Context) ([]*entity.Tenant, error)
}
