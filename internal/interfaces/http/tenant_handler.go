package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// TenantHandler perfil del negocio (lo que se imprime en el recibo).
type TenantHandler struct {
	uc  *usecase.TenantUseCase
	log *logger.Logger
}

// NewTenantHandler construye el handler.
func NewTenantHandler(uc *usecase.TenantUseCase, log *logger.Logger) *TenantHandler {
	return &TenantHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Perfil del tenant
// @Tags         tenant
// @Produce      json
// @Success      200  {object}  dto.TenantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tenant [get]
func (h *TenantHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetTenantID(c))
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c, "Tenant no encontrado")
	}
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar perfil del tenant
// @Description  Reemplaza name, business_name, phone, address y logo_url.
// @Tags         tenant
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateTenantRequest  true  "Perfil"
// @Success      200   {object}  dto.OKResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tenant [put]
func (h *TenantHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTenantRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if _, err := h.uc.Update(c.Context(), GetTenantID(c), in); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
