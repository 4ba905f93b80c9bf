package repository

import "context"

// CounterRepository contadores monotónicos por (tenant, key).
// Es el único estado compartido secuenciado: lo usa la asignación de números de recibo.
type CounterRepository interface {
	// Increment suma 1 y devuelve el nuevo valor en una sola operación atómica.
	// found=false si la fila no existe (no se modifica nada).
	Increment(ctx context.Context, tenantID, key string) (value int64, found bool, err error)
	// EnsureExists inserta el contador en 0 si no existe; no falla si ya existe.
	EnsureExists(ctx context.Context, tenantID, key string) error
}
