package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas y líneas. Solo inserción y lectura.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, tenant_id, receipt_number, currency, payment_method_id, customer_name, customer_phone,
	subtotal, discount, total, created_at`

// Create inserta la cabecera de la venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.TenantID, sale.ReceiptNumber, sale.Currency, sale.PaymentMethodID,
		sale.CustomerName, sale.CustomerPhone, sale.Subtotal, sale.Discount, sale.Total, sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem inserta una línea de la venta.
func (r *SaleRepo) CreateItem(ctx context.Context, item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, qty, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, query,
		item.ID, item.SaleID, item.ProductID, item.Qty, item.UnitPrice, item.LineTotal,
	); err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta del tenant.
func (r *SaleRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE tenant_id = $1 AND id = $2`, tenantID, id,
	).Scan(
		&s.ID, &s.TenantID, &s.ReceiptNumber, &s.Currency, &s.PaymentMethodID, &s.CustomerName, &s.CustomerPhone,
		&s.Subtotal, &s.Discount, &s.Total, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetItems devuelve las líneas en orden de inserción.
func (r *SaleRepo) GetItems(ctx context.Context, saleID string) ([]*entity.SaleItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, sale_id, product_id, qty, unit_price, line_total
		FROM sale_items WHERE sale_id = $1 ORDER BY seq`, saleID)
	if err != nil {
		return nil, fmt.Errorf("get sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Qty, &it.UnitPrice, &it.LineTotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetReceiptLines líneas con el nombre vigente del producto.
func (r *SaleRepo) GetReceiptLines(ctx context.Context, saleID string) ([]entity.ReceiptLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.name, si.qty, si.unit_price, si.line_total
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		WHERE si.sale_id = $1
		ORDER BY si.seq`, saleID)
	if err != nil {
		return nil, fmt.Errorf("get receipt lines: %w", err)
	}
	defer rows.Close()
	var list []entity.ReceiptLine
	for rows.Next() {
		var l entity.ReceiptLine
		if err := rows.Scan(&l.ProductName, &l.Qty, &l.UnitPrice, &l.LineTotal); err != nil {
			return nil, fmt.Errorf("scan receipt line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// ListByTenant ventas más recientes primero con la etiqueta del medio de pago.
func (r *SaleRepo) ListByTenant(ctx context.Context, tenantID string, limit int) ([]entity.SaleSummary, error) {
	rows, err := r.q.Query(ctx, `
		SELECT s.id, s.receipt_number, s.created_at, s.currency, s.total, s.customer_name, pm.label
		FROM sales s
		LEFT JOIN payment_methods pm ON pm.id = s.payment_method_id
		WHERE s.tenant_id = $1
		ORDER BY s.created_at DESC, s.receipt_number DESC
		LIMIT $2`, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []entity.SaleSummary
	for rows.Next() {
		var s entity.SaleSummary
		if err := rows.Scan(&s.ID, &s.ReceiptNumber, &s.CreatedAt, &s.Currency, &s.Total, &s.CustomerName, &s.PaymentMethodLabel); err != nil {
			return nil, fmt.Errorf("scan sale summary: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
