package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// PaymentMethodRepository puerto de persistencia de medios de pago.
type PaymentMethodRepository interface {
	Create(ctx context.Context, pm *entity.PaymentMethod) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.PaymentMethod, error)
	// Update escribe solo las columnas indicadas (todas si fields está vacío) más updated_at.
	Update(ctx context.Context, pm *entity.PaymentMethod, fields ...PaymentMethodField) error
	// ListByTenant ordena por sort_order ASC, label ASC.
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.PaymentMethod, error)
}
