package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Los campos omitidos toman sus valores por defecto.
type CreateProductRequest struct {
	Name              string           `json:"name" validate:"notblank,max=200"`
	Category          *string          `json:"category" validate:"omitempty,max=100"`
	SKU               *string          `json:"sku" validate:"omitempty,max=100"`
	CostCOP           *decimal.Decimal `json:"cost_cop"`
	CostUSD           *decimal.Decimal `json:"cost_usd"`
	PriceCOP          *decimal.Decimal `json:"price_cop"`
	PriceUSD          *decimal.Decimal `json:"price_usd"`
	Stock             *decimal.Decimal `json:"stock"`
	LowStockThreshold *decimal.Decimal `json:"low_stock_threshold"`
	IsActive          *bool            `json:"is_active"`
}

// UpdateProductRequest actualización parcial: solo se escriben las claves presentes.
type UpdateProductRequest struct {
	Name              Optional[string]          `json:"name"`
	Category          Optional[string]          `json:"category"`
	SKU               Optional[string]          `json:"sku"`
	CostCOP           Optional[decimal.Decimal] `json:"cost_cop"`
	CostUSD           Optional[decimal.Decimal] `json:"cost_usd"`
	PriceCOP          Optional[decimal.Decimal] `json:"price_cop"`
	PriceUSD          Optional[decimal.Decimal] `json:"price_usd"`
	Stock             Optional[decimal.Decimal] `json:"stock"`
	LowStockThreshold Optional[decimal.Decimal] `json:"low_stock_threshold"`
	IsActive          Optional[bool]            `json:"is_active"`
}

// Empty indica que no vino ningún campo.
func (r UpdateProductRequest) Empty() bool {
	return !r.Name.IsSet() && !r.Category.IsSet() && !r.SKU.IsSet() &&
		!r.CostCOP.IsSet() && !r.CostUSD.IsSet() && !r.PriceCOP.IsSet() && !r.PriceUSD.IsSet() &&
		!r.Stock.IsSet() && !r.LowStockThreshold.IsSet() && !r.IsActive.IsSet()
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Category          *string          `json:"category"`
	SKU               *string          `json:"sku"`
	CostCOP           *decimal.Decimal `json:"cost_cop"`
	CostUSD           *decimal.Decimal `json:"cost_usd"`
	PriceCOP          *decimal.Decimal `json:"price_cop"`
	PriceUSD          *decimal.Decimal `json:"price_usd"`
	Stock             decimal.Decimal  `json:"stock"`
	LowStockThreshold decimal.Decimal  `json:"low_stock_threshold"`
	IsActive          bool             `json:"is_active"`
	LowStock          bool             `json:"low_stock"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}
