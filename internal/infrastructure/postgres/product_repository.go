package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, tenant_id, name, category, sku, cost_cop, cost_usd, price_cop, price_usd,
	stock, low_stock_threshold, is_active, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(
		&p.ID, &p.TenantID, &p.Name, &p.Category, &p.SKU, &p.CostCOP, &p.CostUSD, &p.PriceCOP, &p.PriceUSD,
		&p.Stock, &p.LowStockThreshold, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.TenantID, product.Name, product.Category, product.SKU,
		product.CostCOP, product.CostUSD, product.PriceCOP, product.PriceUSD,
		product.Stock, product.LowStockThreshold, product.IsActive, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto del tenant.
func (r *ProductRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE tenant_id = $1 AND id = $2`, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByIDs busca varios productos del tenant en una sola consulta.
func (r *ProductRepo) GetByIDs(ctx context.Context, tenantID string, ids []string) (map[string]*entity.Product, error) {
	out := make(map[string]*entity.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE tenant_id = $1 AND id = ANY($2)`, tenantID, ids)
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out[p.ID] = p
	}
	return out, rows.Err()
}

// Update escribe solo las columnas pedidas; stock no se toca salvo que venga en fields.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product, fields ...repository.ProductField) error {
	if len(fields) == 0 {
		fields = repository.AllProductFields
	}
	sets := make([]assignment, 0, len(fields)+1)
	for _, f := range fields {
		var v any
		switch f {
		case repository.ProductName:
			v = product.Name
		case repository.ProductCategory:
			v = product.Category
		case repository.ProductSKU:
			v = product.SKU
		case repository.ProductCostCOP:
			v = product.CostCOP
		case repository.ProductCostUSD:
			v = product.CostUSD
		case repository.ProductPriceCOP:
			v = product.PriceCOP
		case repository.ProductPriceUSD:
			v = product.PriceUSD
		case repository.ProductStock:
			v = product.Stock
		case repository.ProductLowStockThreshold:
			v = product.LowStockThreshold
		case repository.ProductIsActive:
			v = product.IsActive
		default:
			return fmt.Errorf("update product: campo desconocido %q", f)
		}
		sets = append(sets, assignment{column: string(f), value: v})
	}
	sets = append(sets, assignment{column: "updated_at", value: product.UpdatedAt})

	query, args := updateStatement("products", "tenant_id = $1 AND id = $2",
		[]any{product.TenantID, product.ID}, sets)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByTenant activos primero, luego por nombre.
func (r *ProductRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE tenant_id = $1 ORDER BY is_active DESC, name ASC`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// DecrementStock descuenta qty en una sola sentencia; con allowNegative=false exige stock >= qty.
func (r *ProductRepo) DecrementStock(ctx context.Context, tenantID, productID string, qty decimal.Decimal, allowNegative bool) error {
	query := `UPDATE products SET stock = stock - $3, updated_at = now() WHERE tenant_id = $1 AND id = $2`
	if !allowNegative {
		query += ` AND stock >= $3`
	}
	tag, err := r.q.Exec(ctx, query, tenantID, productID, qty)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	if allowNegative {
		return domain.ErrNotFound
	}
	var exists bool
	if err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE tenant_id = $1 AND id = $2)`, tenantID, productID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check product: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%w: producto %s", domain.ErrInsufficientStock, productID)
}
