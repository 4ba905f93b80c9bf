package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo tenants en memoria.
type TenantRepo struct {
	v view
}

func (r *TenantRepo) Create(_ context.Context, tenant *entity.Tenant) error {
	return r.v.with(func(st *state) error {
		for _, t := range st.tenants {
			if t.Name == tenant.Name {
				return domain.ErrDuplicate
			}
		}
		if _, ok := st.tenants[tenant.ID]; ok {
			return domain.ErrDuplicate
		}
		st.tenants[tenant.ID] = *tenant
		return nil
	})
}

func (r *TenantRepo) GetByID(_ context.Context, id string) (*entity.Tenant, error) {
	var out *entity.Tenant
	err := r.v.with(func(st *state) error {
		if t, ok := st.tenants[id]; ok {
			out = &t
		}
		return nil
	})
	return out, err
}

func (r *TenantRepo) Update(_ context.Context, tenant *entity.Tenant) error {
	return r.v.with(func(st *state) error {
		cur, ok := st.tenants[tenant.ID]
		if !ok {
			return domain.ErrNotFound
		}
		for id, t := range st.tenants {
			if id != tenant.ID && t.Name == tenant.Name {
				return domain.ErrDuplicate
			}
		}
		next := *tenant
		next.CreatedAt = cur.CreatedAt
		st.tenants[tenant.ID] = next
		return nil
	})
}

func (r *TenantRepo) List(_ context.Context) ([]*entity.Tenant, error) {
	var out []*entity.Tenant
	err := r.v.with(func(st *state) error {
		for _, t := range st.tenants {
			out = append(out, &t)
		}
		return nil
	})
	slices.SortFunc(out, func(a, b *entity.Tenant) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out, err
}
