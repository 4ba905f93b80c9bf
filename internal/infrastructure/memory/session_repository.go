package memory

import (
	"context"
	"time"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo sesiones en memoria indexadas por hash del token.
type SessionRepo struct {
	v view
}

func (r *SessionRepo) Create(_ context.Context, session *entity.Session) error {
	return r.v.with(func(st *state) error {
		if _, ok := st.sessions[session.TokenHash]; ok {
			return domain.ErrDuplicate
		}
		st.sessions[session.TokenHash] = *session
		return nil
	})
}

func (r *SessionRepo) FindIdentity(_ context.Context, tokenHash string, now time.Time) (*entity.Identity, error) {
	var out *entity.Identity
	err := r.v.with(func(st *state) error {
		s, ok := st.sessions[tokenHash]
		if !ok || !s.ExpiresAt.After(now) {
			return nil
		}
		u, ok := st.users[s.UserID]
		if !ok || !u.IsActive {
			return nil
		}
		id := &entity.Identity{
			UserID:   u.ID,
			Username: u.Username,
			Role:     u.Role,
			TenantID: u.TenantID,
		}
		if u.TenantID != nil {
			if t, ok := st.tenants[*u.TenantID]; ok {
				name := t.Name
				id.TenantName = &name
			}
		}
		out = id
		return nil
	})
	return out, err
}

func (r *SessionRepo) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	return r.v.with(func(st *state) error {
		delete(st.sessions, tokenHash)
		return nil
	})
}

func (r *SessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.v.with(func(st *state) error {
		for k, s := range st.sessions {
			if !s.ExpiresAt.After(now) {
				delete(st.sessions, k)
				n++
			}
		}
		return nil
	})
	return n, err
}
