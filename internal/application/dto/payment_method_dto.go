package dto

// CreatePaymentMethodRequest entrada para crear un medio de pago.
type CreatePaymentMethodRequest struct {
	Label     string `json:"label" validate:"notblank,max=100"`
	SortOrder *int   `json:"sort_order"`
}

// UpdatePaymentMethodRequest actualización parcial de un medio de pago.
type UpdatePaymentMethodRequest struct {
	Label     *string `json:"label" validate:"omitempty,notblank,max=100"`
	IsActive  *bool   `json:"is_active"`
	SortOrder *int    `json:"sort_order"`
}

// PaymentMethodResponse salida de un medio de pago.
type PaymentMethodResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}
