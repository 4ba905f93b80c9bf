package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las operaciones están acotadas al tenant.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve (nil, nil) si no existe en el tenant.
	GetByID(ctx context.Context, tenantID, id string) (*entity.Product, error)
	// GetByIDs busca en lote; los ids ausentes simplemente no aparecen en el mapa.
	GetByIDs(ctx context.Context, tenantID string, ids []string) (map[string]*entity.Product, error)
	// Update escribe solo las columnas indicadas (todas las editables si fields está vacío)
	// más updated_at; domain.ErrNotFound si no existe en el tenant.
	Update(ctx context.Context, product *entity.Product, fields ...ProductField) error
	// ListByTenant ordena por is_active DESC, name ASC.
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Product, error)
	// DecrementStock aplica stock = stock - qty en una sola sentencia.
	// Con allowNegative=false la sentencia exige stock >= qty y devuelve domain.ErrInsufficientStock si no se cumple.
	DecrementStock(ctx context.Context, tenantID, productID string, qty decimal.Decimal, allowNegative bool) error
}
