package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// SuperHandler aprovisionamiento de tenants (solo SUPERADMIN).
type SuperHandler struct {
	uc  *usecase.SuperAdminUseCase
	log *logger.Logger
}

// NewSuperHandler construye el handler.
func NewSuperHandler(uc *usecase.SuperAdminUseCase, log *logger.Logger) *SuperHandler {
	return &SuperHandler{uc: uc, log: log}
}

// ListTenants godoc
// @Summary      Listar tenants
// @Tags         super
// @Produce      json
// @Success      200  {array}  dto.TenantSummaryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/super/tenants [get]
func (h *SuperHandler) ListTenants(c *fiber.Ctx) error {
	out, err := h.uc.ListTenants(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// CreateTenant godoc
// @Summary      Crear tenant
// @Tags         super
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTenantRequest  true  "name"
// @Success      200   {object}  dto.OKResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/super/tenants [post]
func (h *SuperHandler) CreateTenant(c *fiber.Ctx) error {
	var in dto.CreateTenantRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateTenant(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OKResponse{OK: true, ID: out.ID})
}

// ListTenantUsers godoc
// @Summary      Usuarios de un tenant
// @Tags         super
// @Produce      json
// @Param        id   path  string  true  "ID del tenant"
// @Success      200  {array}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/super/tenants/{id}/users [get]
func (h *SuperHandler) ListTenantUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListTenantUsers(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// CreateTenantUser godoc
// @Summary      Crear usuario en un tenant
// @Tags         super
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tenant"
// @Param        body  body  dto.CreateUserRequest  true  "username, password, role"
// @Success      200   {object}  dto.OKResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/super/tenants/{id}/users [post]
func (h *SuperHandler) CreateTenantUser(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateTenantUser(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OKResponse{OK: true, ID: out.ID})
}
