package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Currency moneda de una venta.
type Currency string

// Monedas soportadas.
const (
	CurrencyCOP Currency = "COP"
	CurrencyUSD Currency = "USD"
)

// Valid indica si la moneda es soportada.
func (c Currency) Valid() bool {
	return c == CurrencyCOP || c == CurrencyUSD
}

// ReceiptCounterKey clave del contador de recibos en la tabla counters.
const ReceiptCounterKey = "receipt_seq"

// FormatReceiptNumber formatea el consecutivo como R-000001.
func FormatReceiptNumber(seq int64) string {
	return fmt.Sprintf("R-%06d", seq)
}

// Sale cabecera de una venta. Inmutable una vez creada.
type Sale struct {
	ID              string
	TenantID        string
	ReceiptNumber   string
	Currency        Currency
	PaymentMethodID *string
	CustomerName    *string
	CustomerPhone   *string
	Subtotal        decimal.Decimal
	Discount        decimal.Decimal
	Total           decimal.Decimal // max(0, Subtotal - Discount)
	CreatedAt       time.Time
}

// SaleItem línea de una venta. UnitPrice es el precio cobrado al momento de la venta.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Qty       decimal.Decimal
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal // Qty * UnitPrice
}

// SaleSummary fila del listado de ventas.
type SaleSummary struct {
	ID                 string
	ReceiptNumber      string
	CreatedAt          time.Time
	Currency           Currency
	Total              decimal.Decimal
	CustomerName       *string
	PaymentMethodLabel *string
}

// ReceiptLine línea de recibo con el nombre actual del producto.
type ReceiptLine struct {
	ProductName string
	Qty         decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}
