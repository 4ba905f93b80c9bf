package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	v view
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.v.with(func(st *state) error {
		if _, ok := st.products[product.ID]; ok {
			return domain.ErrDuplicate
		}
		st.products[product.ID] = *product
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.v.with(func(st *state) error {
		if p, ok := st.products[id]; ok && p.TenantID == tenantID {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) GetByIDs(_ context.Context, tenantID string, ids []string) (map[string]*entity.Product, error) {
	out := make(map[string]*entity.Product, len(ids))
	err := r.v.with(func(st *state) error {
		for _, id := range ids {
			if p, ok := st.products[id]; ok && p.TenantID == tenantID {
				out[id] = &p
			}
		}
		return nil
	})
	return out, err
}

// Update copia solo los campos pedidos sobre la fila actual.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product, fields ...repository.ProductField) error {
	if len(fields) == 0 {
		fields = repository.AllProductFields
	}
	return r.v.with(func(st *state) error {
		cur, ok := st.products[product.ID]
		if !ok || cur.TenantID != product.TenantID {
			return domain.ErrNotFound
		}
		for _, f := range fields {
			switch f {
			case repository.ProductName:
				cur.Name = product.Name
			case repository.ProductCategory:
				cur.Category = product.Category
			case repository.ProductSKU:
				cur.SKU = product.SKU
			case repository.ProductCostCOP:
				cur.CostCOP = product.CostCOP
			case repository.ProductCostUSD:
				cur.CostUSD = product.CostUSD
			case repository.ProductPriceCOP:
				cur.PriceCOP = product.PriceCOP
			case repository.ProductPriceUSD:
				cur.PriceUSD = product.PriceUSD
			case repository.ProductStock:
				cur.Stock = product.Stock
			case repository.ProductLowStockThreshold:
				cur.LowStockThreshold = product.LowStockThreshold
			case repository.ProductIsActive:
				cur.IsActive = product.IsActive
			default:
				return fmt.Errorf("update product: campo desconocido %q", f)
			}
		}
		cur.UpdatedAt = product.UpdatedAt
		st.products[product.ID] = cur
		return nil
	})
}

func (r *ProductRepo) ListByTenant(_ context.Context, tenantID string) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.v.with(func(st *state) error {
		for _, p := range st.products {
			if p.TenantID == tenantID {
				out = append(out, &p)
			}
		}
		return nil
	})
	slices.SortFunc(out, func(a, b *entity.Product) int {
		if a.IsActive != b.IsActive {
			if a.IsActive {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out, err
}

func (r *ProductRepo) DecrementStock(_ context.Context, tenantID, productID string, qty decimal.Decimal, allowNegative bool) error {
	return r.v.with(func(st *state) error {
		p, ok := st.products[productID]
		if !ok || p.TenantID != tenantID {
			return domain.ErrNotFound
		}
		if !allowNegative && p.Stock.LessThan(qty) {
			return domain.ErrInsufficientStock
		}
		p.Stock = p.Stock.Sub(qty)
		st.products[productID] = p
		return nil
	})
}
