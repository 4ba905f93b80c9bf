package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// PaymentMethodHandler medios de pago del tenant.
type PaymentMethodHandler struct {
	uc  *usecase.PaymentMethodUseCase
	log *logger.Logger
}

// NewPaymentMethodHandler construye el handler.
func NewPaymentMethodHandler(uc *usecase.PaymentMethodUseCase, log *logger.Logger) *PaymentMethodHandler {
	return &PaymentMethodHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar medios de pago
// @Tags         payment-methods
// @Produce      json
// @Success      200  {array}  dto.PaymentMethodResponse
// @Router       /api/payment-methods [get]
func (h *PaymentMethodHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetTenantID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear medio de pago
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentMethodRequest  true  "label, sort_order"
// @Success      200   {object}  dto.OKResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payment-methods [post]
func (h *PaymentMethodHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentMethodRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.Context(), GetTenantID(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OKResponse{OK: true, ID: out.ID})
}

// Update godoc
// @Summary      Actualizar medio de pago
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del medio de pago"
// @Param        body  body  dto.UpdatePaymentMethodRequest  true  "label, is_active, sort_order"
// @Success      200   {object}  dto.OKResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payment-methods/{id} [put]
func (h *PaymentMethodHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaymentMethodRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if _, err := h.uc.Update(c.Context(), GetTenantID(c), c.Params("id"), in); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
