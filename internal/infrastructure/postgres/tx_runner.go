package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/pos-api/internal/application/sales"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ sales.TxRunner = (*TxRunner)(nil)
var _ usecase.TenantTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale atómico: consecutivo de recibo, venta, líneas y descuento de stock.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	counterRepo repository.CounterRepository,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewCounterRepository(tx), NewSaleRepository(tx), NewProductRepository(tx))
	})
}

// RunTenant crea el tenant y siembra su contador en la misma transacción.
func (r *TxRunner) RunTenant(ctx context.Context, fn func(
	tenantRepo repository.TenantRepository,
	counterRepo repository.CounterRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewTenantRepository(tx), NewCounterRepository(tx))
	})
}
