package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas en memoria. Solo inserción y lectura.
type SaleRepo struct {
	v view
}

func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	return r.v.with(func(st *state) error {
		for _, s := range st.sales {
			if s.TenantID == sale.TenantID && s.ReceiptNumber == sale.ReceiptNumber {
				return domain.ErrDuplicate
			}
		}
		st.sales[sale.ID] = *sale
		return nil
	})
}

func (r *SaleRepo) CreateItem(_ context.Context, item *entity.SaleItem) error {
	return r.v.with(func(st *state) error {
		if _, ok := st.sales[item.SaleID]; !ok {
			return domain.ErrNotFound
		}
		st.saleItems[item.SaleID] = append(st.saleItems[item.SaleID], *item)
		return nil
	})
}

func (r *SaleRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Sale, error) {
	var out *entity.Sale
	err := r.v.with(func(st *state) error {
		if s, ok := st.sales[id]; ok && s.TenantID == tenantID {
			out = &s
		}
		return nil
	})
	return out, err
}

func (r *SaleRepo) GetItems(_ context.Context, saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	err := r.v.with(func(st *state) error {
		for _, it := range st.saleItems[saleID] {
			out = append(out, &it)
		}
		return nil
	})
	return out, err
}

func (r *SaleRepo) GetReceiptLines(_ context.Context, saleID string) ([]entity.ReceiptLine, error) {
	var out []entity.ReceiptLine
	err := r.v.with(func(st *state) error {
		for _, it := range st.saleItems[saleID] {
			p, ok := st.products[it.ProductID]
			if !ok {
				continue
			}
			out = append(out, entity.ReceiptLine{
				ProductName: p.Name,
				Qty:         it.Qty,
				UnitPrice:   it.UnitPrice,
				LineTotal:   it.LineTotal,
			})
		}
		return nil
	})
	return out, err
}

func (r *SaleRepo) ListByTenant(_ context.Context, tenantID string, limit int) ([]entity.SaleSummary, error) {
	var out []entity.SaleSummary
	err := r.v.with(func(st *state) error {
		for _, s := range st.sales {
			if s.TenantID != tenantID {
				continue
			}
			row := entity.SaleSummary{
				ID:            s.ID,
				ReceiptNumber: s.ReceiptNumber,
				CreatedAt:     s.CreatedAt,
				Currency:      s.Currency,
				Total:         s.Total,
				CustomerName:  s.CustomerName,
			}
			if s.PaymentMethodID != nil {
				if pm, ok := st.paymentMethods[*s.PaymentMethodID]; ok {
					label := pm.Label
					row.PaymentMethodLabel = &label
				}
			}
			out = append(out, row)
		}
		return nil
	})
	slices.SortFunc(out, func(a, b entity.SaleSummary) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ReceiptNumber, a.ReceiptNumber)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, err
}
