package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold umbral de stock bajo cuando no se indica.
const DefaultLowStockThreshold = 2

// Product representa un producto del catálogo de un tenant.
// Costos y precios son opcionales por moneda: un producto puede venderse solo en COP o solo en USD.
// Stock puede quedar negativo si se permite sobreventa.
type Product struct {
	ID                string
	TenantID          string
	Name              string
	Category          *string
	SKU               *string
	CostCOP           *decimal.Decimal
	CostUSD           *decimal.Decimal
	PriceCOP          *decimal.Decimal
	PriceUSD          *decimal.Decimal
	Stock             decimal.Decimal
	LowStockThreshold decimal.Decimal
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock indica si un producto activo está en o por debajo de su umbral.
func (p *Product) IsLowStock() bool {
	return p.IsActive && p.Stock.LessThanOrEqual(p.LowStockThreshold)
}
