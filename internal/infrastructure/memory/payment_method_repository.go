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

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo medios de pago en memoria.
type PaymentMethodRepo struct {
	v view
}

func (r *PaymentMethodRepo) Create(_ context.Context, pm *entity.PaymentMethod) error {
	return r.v.with(func(st *state) error {
		if _, ok := st.paymentMethods[pm.ID]; ok {
			return domain.ErrDuplicate
		}
		st.paymentMethods[pm.ID] = *pm
		return nil
	})
}

func (r *PaymentMethodRepo) GetByID(_ context.Context, tenantID, id string) (*entity.PaymentMethod, error) {
	var out *entity.PaymentMethod
	err := r.v.with(func(st *state) error {
		if pm, ok := st.paymentMethods[id]; ok && pm.TenantID == tenantID {
			out = &pm
		}
		return nil
	})
	return out, err
}

func (r *PaymentMethodRepo) Update(_ context.Context, pm *entity.PaymentMethod, fields ...repository.PaymentMethodField) error {
	if len(fields) == 0 {
		fields = repository.AllPaymentMethodFields
	}
	return r.v.with(func(st *state) error {
		cur, ok := st.paymentMethods[pm.ID]
		if !ok || cur.TenantID != pm.TenantID {
			return domain.ErrNotFound
		}
		for _, f := range fields {
			switch f {
			case repository.PaymentMethodLabel:
				cur.Label = pm.Label
			case repository.PaymentMethodIsActive:
				cur.IsActive = pm.IsActive
			case repository.PaymentMethodSortOrder:
				cur.SortOrder = pm.SortOrder
			default:
				return fmt.Errorf("update payment method: campo desconocido %q", f)
			}
		}
		cur.UpdatedAt = pm.UpdatedAt
		st.paymentMethods[pm.ID] = cur
		return nil
	})
}

func (r *PaymentMethodRepo) ListByTenant(_ context.Context, tenantID string) ([]*entity.PaymentMethod, error) {
	var out []*entity.PaymentMethod
	err := r.v.with(func(st *state) error {
		for _, pm := range st.paymentMethods {
			if pm.TenantID == tenantID {
				out = append(out, &pm)
			}
		}
		return nil
	})
	slices.SortFunc(out, func(a, b *entity.PaymentMethod) int {
		if a.SortOrder != b.SortOrder {
			return a.SortOrder - b.SortOrder
		}
		return strings.Compare(a.Label, b.Label)
	})
	return out, err
}
