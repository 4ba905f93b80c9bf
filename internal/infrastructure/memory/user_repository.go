package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct {
	v view
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	return r.v.with(func(st *state) error {
		for _, u := range st.users {
			if u.Username == user.Username {
				return domain.ErrDuplicate
			}
		}
		st.users[user.ID] = *user
		return nil
	})
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.v.with(func(st *state) error {
		if u, ok := st.users[id]; ok {
			out = &u
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	var out *entity.User
	err := r.v.with(func(st *state) error {
		for _, u := range st.users {
			if u.Username == username {
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) Update(_ context.Context, user *entity.User, fields ...repository.UserField) error {
	if len(fields) == 0 {
		fields = repository.AllUserFields
	}
	return r.v.with(func(st *state) error {
		cur, ok := st.users[user.ID]
		if !ok {
			return domain.ErrNotFound
		}
		for _, f := range fields {
			switch f {
			case repository.UserRole:
				cur.Role = user.Role
			case repository.UserIsActive:
				cur.IsActive = user.IsActive
			case repository.UserPassword:
				cur.PasswordSalt, cur.PasswordHash = user.PasswordSalt, user.PasswordHash
			default:
				return fmt.Errorf("update user: campo desconocido %q", f)
			}
		}
		cur.UpdatedAt = user.UpdatedAt
		st.users[user.ID] = cur
		return nil
	})
}

func (r *UserRepo) ListByTenant(_ context.Context, tenantID string) ([]*entity.User, error) {
	var out []*entity.User
	err := r.v.with(func(st *state) error {
		for _, u := range st.users {
			if u.TenantID != nil && *u.TenantID == tenantID {
				out = append(out, &u)
			}
		}
		return nil
	})
	slices.SortFunc(out, func(a, b *entity.User) int {
		if c := b.Role.Rank() - a.Role.Rank(); c != 0 {
			return c
		}
		return strings.Compare(a.Username, b.Username)
	})
	return out, err
}
