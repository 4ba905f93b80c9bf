package memory

import (
	"context"

	"github.com/jhoicas/pos-api/internal/application/sales"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ sales.TxRunner = (*Store)(nil)
var _ usecase.TenantTxRunner = (*Store)(nil)

// run ejecuta fn sobre una copia del estado y la publica solo si no hubo error.
func (s *Store) run(ctx context.Context, fn func(v view) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.st.clone()
	if err := fn(view{store: s, tx: staged}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = staged
	return nil
}

// RunSale ejecuta la creación de una venta de forma atómica.
func (s *Store) RunSale(ctx context.Context, fn func(
	counterRepo repository.CounterRepository,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	return s.run(ctx, func(v view) error {
		return fn(&CounterRepo{v: v}, &SaleRepo{v: v}, &ProductRepo{v: v})
	})
}

// RunTenant crea un tenant y su contador en una sola transacción.
func (s *Store) RunTenant(ctx context.Context, fn func(
	tenantRepo repository.TenantRepository,
	counterRepo repository.CounterRepository,
) error) error {
	return s.run(ctx, func(v view) error {
		return fn(&TenantRepo{v: v}, &CounterRepo{v: v})
	})
}
