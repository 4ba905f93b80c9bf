package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// Locals keys cargadas por SessionMiddleware.
const (
	LocalIdentity = "identity"
	LocalUserID   = "user_id"
	LocalTenantID = "tenant_id"
	LocalRole     = "role"
)

// IdentityResolver lo que el middleware necesita del caso de uso de auth.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, rawToken string) (*entity.Identity, error)
}

// SessionMiddleware lee la cookie de sesión, resuelve la identidad y la deja en c.Locals.
// Sin sesión vigente responde 401.
func SessionMiddleware(resolver IdentityResolver, cookieName string, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := resolver.ResolveIdentity(c.Context(), c.Cookies(cookieName))
		if err != nil {
			return respondError(c, log, err)
		}
		if identity == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: msgUnauthenticated})
		}
		c.Locals(LocalIdentity, identity)
		c.Locals(LocalUserID, identity.UserID)
		c.Locals(LocalTenantID, identity.Tenant())
		c.Locals(LocalRole, string(identity.Role))
		return c.Next()
	}
}

// RequireRole exige rol >= min. Debe ir después de SessionMiddleware.
func RequireRole(min entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !auth.Authorize(GetIdentity(c), min) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: msgForbidden})
		}
		return c.Next()
	}
}

// RequireTenant rechaza identidades sin tenant (SUPERADMIN en rutas de tenant).
func RequireTenant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetIdentity(c).HasTenant() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TENANT_REQUIRED", Message: msgTenantRequired})
		}
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto o nil.
func GetIdentity(c *fiber.Ctx) *entity.Identity {
	id, _ := c.Locals(LocalIdentity).(*entity.Identity)
	return id
}

// GetUserID devuelve el UserID del contexto (después del middleware de sesión).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetTenantID devuelve el tenant de la sesión; "" para SUPERADMIN.
func GetTenantID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalTenantID).(string)
	return s
}

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
