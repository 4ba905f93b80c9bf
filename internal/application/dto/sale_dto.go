package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemInput línea del carrito. Las líneas incompletas se descartan en el use case.
type SaleItemInput struct {
	ProductID string           `json:"product_id"`
	Qty       *decimal.Decimal `json:"qty"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// UnmarshalJSON es tolerante por línea: un campo con tipo incorrecto queda vacío
// y la línea se descarta después, sin invalidar el resto del carrito.
func (in *SaleItemInput) UnmarshalJSON(b []byte) error {
	*in = SaleItemInput{}
	var raw struct {
		ProductID json.RawMessage `json:"product_id"`
		Qty       json.RawMessage `json:"qty"`
		UnitPrice json.RawMessage `json:"unit_price"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	in.ProductID = looseString(raw.ProductID)
	in.Qty = looseDecimal(raw.Qty)
	in.UnitPrice = looseDecimal(raw.UnitPrice)
	return nil
}

func looseString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// looseDecimal acepta número JSON o string numérico; cualquier otra cosa es nil.
func looseDecimal(raw json.RawMessage) *decimal.Decimal {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil
		}
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil
	}
	return &d
}

// CreateSaleRequest entrada de POST /api/sales.
type CreateSaleRequest struct {
	Currency        string           `json:"currency"`
	PaymentMethodID *string          `json:"payment_method_id"`
	CustomerName    *string          `json:"customer_name"`
	CustomerPhone   *string          `json:"customer_phone"`
	Discount        *decimal.Decimal `json:"discount"`
	Items           []SaleItemInput  `json:"items"`
}

// CreateSaleResponse id y consecutivo asignado.
type CreateSaleResponse struct {
	ID            string `json:"id"`
	ReceiptNumber string `json:"receipt_number"`
}

// SaleSummaryResponse fila de GET /api/sales.
type SaleSummaryResponse struct {
	ID                 string          `json:"id"`
	ReceiptNumber      string          `json:"receipt_number"`
	CreatedAt          time.Time       `json:"created_at"`
	Currency           string          `json:"currency"`
	Total              decimal.Decimal `json:"total"`
	CustomerName       *string         `json:"customer_name"`
	PaymentMethodLabel *string         `json:"payment_method_label"`
}

// SaleItemResponse línea de una venta.
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Qty       decimal.Decimal `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// SaleDetailResponse venta con sus líneas.
type SaleDetailResponse struct {
	ID              string             `json:"id"`
	ReceiptNumber   string             `json:"receipt_number"`
	Currency        string             `json:"currency"`
	PaymentMethodID *string            `json:"payment_method_id"`
	CustomerName    *string            `json:"customer_name"`
	CustomerPhone   *string            `json:"customer_phone"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	Discount        decimal.Decimal    `json:"discount"`
	Total           decimal.Decimal    `json:"total"`
	CreatedAt       time.Time          `json:"created_at"`
	Items           []SaleItemResponse `json:"items"`
}
