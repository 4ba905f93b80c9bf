package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/pkg/logger"
	"github.com/jhoicas/pos-api/pkg/validator"
)

// Mensajes visibles al cliente.
const (
	msgUnauthenticated = "No autenticado"
	msgForbidden       = "No autorizado"
	msgTenantRequired  = "Tenant requerido"
	msgCredentials     = "Credenciales inválidas"
	msgInvalidBody     = "cuerpo inválido"
	msgInvalidRoute    = "Ruta inválida"
	msgInternal        = "error interno"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string // vacío = err.Error()
}

// El orden importa: ErrInvalidCredentials antes que cualquier otro 401.
var errorMappings = []errorMapping{
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", msgCredentials},
	{domain.ErrUnauthenticated, fiber.StatusUnauthorized, "UNAUTHENTICATED", msgUnauthenticated},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", msgForbidden},
	{domain.ErrTenantRequired, fiber.StatusBadRequest, "TENANT_REQUIRED", msgTenantRequired},
	{domain.ErrInvalidItems, fiber.StatusBadRequest, "INVALID_ITEMS", "Items inválidos"},
	{domain.ErrUnknownProduct, fiber.StatusBadRequest, "UNKNOWN_PRODUCT", "Uno o más productos no existen"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "INVALID_INPUT", ""},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "Recurso no encontrado"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE", "Ya existe"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK", ""},
}

// respondError traduce un error de dominio a status + dto.ErrorResponse.
// Los errores no mapeados son 500 y se registran.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: msg})
		}
	}
	if log != nil {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msgInternal})
}

// notFound 404 con mensaje propio del recurso.
func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: message})
}

// parseBody decodifica JSON y aplica los tags `validate:`. Si falla ya respondió 400.
func parseBody(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: msgInvalidBody})
	}
	if errs := validator.ValidateStruct(out); errs != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(errs)})
	}
	return true, nil
}

// ErrorHandler fiber.Config.ErrorHandler: errores de fiber (404 de ruta, 405) con el mismo cuerpo.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			msg := fe.Message
			code := "HTTP_ERROR"
			if fe.Code == fiber.StatusNotFound {
				msg, code = msgInvalidRoute, "NOT_FOUND"
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: msg})
		}
		return respondError(c, log, err)
	}
}
