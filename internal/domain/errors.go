package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthenticated    = errors.New("no autenticado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrForbidden          = errors.New("no autorizado")
	ErrTenantRequired     = errors.New("tenant requerido")
	ErrInvalidItems       = errors.New("items inválidos")
	ErrUnknownProduct     = errors.New("uno o más productos no existen")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)
