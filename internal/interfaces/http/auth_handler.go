package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// AuthHandler maneja login, logout y la identidad actual.
type AuthHandler struct {
	uc         *auth.AuthUseCase
	cookieName string
	maxAge     int
	log        *logger.Logger
}

// NewAuthHandler construye el handler de auth. ttl define el Max-Age de la cookie.
func NewAuthHandler(uc *auth.AuthUseCase, cookieName string, ttl time.Duration, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cookieName: cookieName, maxAge: int(ttl.Seconds()), log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.OKResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Authenticate(c.Context(), in.Username, in.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}
	setSessionCookie(c, h.cookieName, out.Token, h.maxAge)
	return c.JSON(dto.OKResponse{OK: true})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.OKResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.EndSession(c.Context(), c.Cookies(h.cookieName)); err != nil {
		return respondError(c, h.log, err)
	}
	clearSessionCookie(c, h.cookieName)
	return c.JSON(dto.OKResponse{OK: true})
}

// Me godoc
// @Summary      Identidad de la sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id := GetIdentity(c)
	return c.JSON(dto.MeResponse{
		ID:         id.UserID,
		Username:   id.Username,
		Role:       string(id.Role),
		TenantID:   id.TenantID,
		TenantName: id.TenantName,
	})
}
