package sales

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta asignación de recibo, inserción de venta y descuento de stock en una sola
// transacción. Si fn devuelve error no queda nada escrito.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		counterRepo repository.CounterRepository,
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// CacheInvalidator descarta los KPIs en cache de un tenant.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, tenantID string) error
}

// SaleCreatedEvent datos publicados a los clientes conectados del tenant.
type SaleCreatedEvent struct {
	ID            string          `json:"id"`
	ReceiptNumber string          `json:"receipt_number"`
	Currency      string          `json:"currency"`
	Total         decimal.Decimal `json:"total"`
}

// EventPublisher notifica ventas confirmadas (websocket).
type EventPublisher interface {
	PublishSaleCreated(tenantID string, evt SaleCreatedEvent)
}

// SaleCounter métrica de ventas confirmadas por moneda.
type SaleCounter interface {
	SaleCreated(currency string)
}

// Hooks efectos posteriores al commit. Todos opcionales; ninguno puede fallar la venta.
type Hooks struct {
	Cache   CacheInvalidator
	Events  EventPublisher
	Metrics SaleCounter
}
