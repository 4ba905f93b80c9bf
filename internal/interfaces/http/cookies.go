package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SessionMaxAge vida de la cookie en segundos (30 días).
const SessionMaxAge = 30 * 24 * 60 * 60

// sessionCookie arma el Set-Cookie de la sesión. maxAge=0 borra la cookie en el navegador.
func sessionCookie(name, value string, maxAge int, secure bool) string {
	parts := []string{
		fmt.Sprintf("%s=%s", name, value),
		"Path=/",
		"HttpOnly",
		"SameSite=Lax",
	}
	if secure {
		parts = append(parts, "Secure")
	}
	parts = append(parts, fmt.Sprintf("Max-Age=%d", maxAge))
	return strings.Join(parts, "; ")
}

// isHTTPS considera X-Forwarded-Proto (fiber.Ctx.Protocol).
func isHTTPS(c *fiber.Ctx) bool {
	return c.Protocol() == "https"
}

func setSessionCookie(c *fiber.Ctx, name, token string, maxAge int) {
	c.Append(fiber.HeaderSetCookie, sessionCookie(name, token, maxAge, isHTTPS(c)))
}

func clearSessionCookie(c *fiber.Ctx, name string) {
	c.Append(fiber.HeaderSetCookie, sessionCookie(name, "", 0, false))
}
