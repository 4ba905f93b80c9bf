package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo sesiones opacas; solo se guarda el hash del token.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador.
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Create persiste la sesión.
func (r *SessionRepo) Create(ctx context.Context, session *entity.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(ctx, query,
		session.ID, session.UserID, session.TokenHash, session.ExpiresAt, session.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// FindIdentity resuelve hash → identidad si la sesión no venció y el usuario está activo.
func (r *SessionRepo) FindIdentity(ctx context.Context, tokenHash string, now time.Time) (*entity.Identity, error) {
	query := `
		SELECT u.id, u.username, u.role, u.tenant_id, t.name
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		LEFT JOIN tenants t ON t.id = u.tenant_id
		WHERE s.token_hash = $1 AND s.expires_at > $2 AND u.is_active`
	var id entity.Identity
	err := r.q.QueryRow(ctx, query, tokenHash, now).Scan(
		&id.UserID, &id.Username, &id.Role, &id.TenantID, &id.TenantName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &id, nil
}

// DeleteByTokenHash cierra la sesión; sin error si no existía.
func (r *SessionRepo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE token_hash = $1`, tokenHash); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired borra sesiones vencidas.
func (r *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
