package sales

import (
	"context"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ClampLimit acota el límite a [1, 200]. El valor por defecto (50) lo aplica quien lee la query.
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// ListSales lista las ventas más recientes del tenant con la etiqueta del medio de pago.
func (uc *SaleUseCase) ListSales(ctx context.Context, tenantID string, limit int) ([]dto.SaleSummaryResponse, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}
	rows, err := uc.saleRepo.ListByTenant(ctx, tenantID, ClampLimit(limit))
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SaleSummaryResponse{
			ID:                 r.ID,
			ReceiptNumber:      r.ReceiptNumber,
			CreatedAt:          r.CreatedAt,
			Currency:           string(r.Currency),
			Total:              r.Total,
			CustomerName:       r.CustomerName,
			PaymentMethodLabel: r.PaymentMethodLabel,
		})
	}
	return out, nil
}

// GetSale devuelve la venta con sus líneas; domain.ErrNotFound si no pertenece al tenant.
func (uc *SaleUseCase) GetSale(ctx context.Context, tenantID, id string) (*dto.SaleDetailResponse, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}
	sale, err := uc.saleRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItems(ctx, sale.ID)
	if err != nil {
		return nil, err
	}
	return toSaleDetail(sale, items), nil
}

func toSaleDetail(s *entity.Sale, items []*entity.SaleItem) *dto.SaleDetailResponse {
	out := &dto.SaleDetailResponse{
		ID:              s.ID,
		ReceiptNumber:   s.ReceiptNumber,
		Currency:        string(s.Currency),
		PaymentMethodID: s.PaymentMethodID,
		CustomerName:    s.CustomerName,
		CustomerPhone:   s.CustomerPhone,
		Subtotal:        s.Subtotal,
		Discount:        s.Discount,
		Total:           s.Total,
		CreatedAt:       s.CreatedAt,
		Items:           make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		})
	}
	return out
}
