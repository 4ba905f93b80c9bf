package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-api/internal/application/sales"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// stores repositorios y transacciones de un driver concreto.
type stores struct {
	Tenants        repository.TenantRepository
	Users          repository.UserRepository
	Sessions       repository.SessionRepository
	Products       repository.ProductRepository
	PaymentMethods repository.PaymentMethodRepository
	Sales          repository.SaleRepository
	Analytics      repository.AnalyticsRepository
	SaleTx         sales.TxRunner
	TenantTx       usecase.TenantTxRunner
	Close          func()
}

// openStores abre el almacenamiento según STORE_DRIVER. memory no persiste nada entre arranques.
func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn().Msg("STORE_DRIVER=memory: los datos se pierden al reiniciar")
		st := memory.New()
		return &stores{
			Tenants:        st.Tenants(),
			Users:          st.Users(),
			Sessions:       st.Sessions(),
			Products:       st.Products(),
			PaymentMethods: st.PaymentMethods(),
			Sales:          st.Sales(),
			Analytics:      st.Analytics(),
			SaleTx:         st,
			TenantTx:       st,
			Close:          func() {},
		}, nil
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conectar a PostgreSQL: %w", err)
		}
		tx := postgres.NewTxRunner(pool)
		return &stores{
			Tenants:        postgres.NewTenantRepository(pool),
			Users:          postgres.NewUserRepository(pool),
			Sessions:       postgres.NewSessionRepository(pool),
			Products:       postgres.NewProductRepository(pool),
			PaymentMethods: postgres.NewPaymentMethodRepository(pool),
			Sales:          postgres.NewSaleRepository(pool),
			Analytics:      postgres.NewAnalyticsRepository(pool),
			SaleTx:         tx,
			TenantTx:       tx,
			Close:          pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido %q", cfg.Store.Driver)
	}
}

// loadConfig carga configuración y logger, comunes a todos los subcomandos.
func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	return cfg, log, nil
}
