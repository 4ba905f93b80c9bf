package entity

import "time"

// DefaultPaymentMethodSortOrder orden por defecto de un medio de pago nuevo.
const DefaultPaymentMethodSortOrder = 10

// PaymentMethod medio de pago configurable por tenant (efectivo, Nequi, tarjeta...).
type PaymentMethod struct {
	ID        string
	TenantID  string
	Label     string
	IsActive  bool
	SortOrder int // orden de visualización, no único
	CreatedAt time.Time
	UpdatedAt time.Time
}
