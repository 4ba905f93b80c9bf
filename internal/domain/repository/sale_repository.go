package repository

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia de ventas y sus líneas. No expone update ni delete.
type SaleRepository interface {
	// Create devuelve domain.ErrDuplicate si el receipt_number ya existe en el tenant.
	Create(ctx context.Context, sale *entity.Sale) error
	CreateItem(ctx context.Context, item *entity.SaleItem) error
	// GetByID devuelve (nil, nil) si la venta no existe en el tenant.
	GetByID(ctx context.Context, tenantID, id string) (*entity.Sale, error)
	GetItems(ctx context.Context, saleID string) ([]*entity.SaleItem, error)
	// GetReceiptLines une las líneas con el nombre actual del producto.
	GetReceiptLines(ctx context.Context, saleID string) ([]entity.ReceiptLine, error)
	// ListByTenant ordena por created_at DESC.
	ListByTenant(ctx context.Context, tenantID string, limit int) ([]entity.SaleSummary, error)
}
