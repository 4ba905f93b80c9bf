package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create devuelve domain.ErrDuplicate si el username ya existe.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Update escribe solo los campos indicados (role, is_active, credenciales; todos si fields está vacío).
	Update(ctx context.Context, user *entity.User, fields ...UserField) error
	// ListByTenant ordena por rango de rol DESC y username ASC.
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.User, error)
}
