package repository

import (
	"context"
	"time"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// SessionRepository puerto de persistencia de sesiones.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	// FindIdentity busca una sesión no expirada (expires_at > now) unida a un usuario activo.
	// Devuelve (nil, nil) si no hay coincidencia.
	FindIdentity(ctx context.Context, tokenHash string, now time.Time) (*entity.Identity, error)
	// DeleteByTokenHash es idempotente.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	// DeleteExpired elimina sesiones con expires_at <= now y devuelve cuántas borró.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
