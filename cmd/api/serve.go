package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/pos-api/internal/application/analytics"
	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/receipt"
	"github.com/jhoicas/pos-api/internal/application/sales"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/infrastructure/cache"
	"github.com/jhoicas/pos-api/internal/infrastructure/htmlrender"
	"github.com/jhoicas/pos-api/internal/infrastructure/metrics"
	"github.com/jhoicas/pos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-api/internal/infrastructure/realtime"
	apphttp "github.com/jhoicas/pos-api/internal/interfaces/http"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
)

type serveOptions struct {
	migrate        bool
	superAdminUser string
	superAdminPass string
}

func serveCmd() *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Inicia el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.migrate, "migrate", false, "Aplicar migraciones antes de arrancar (solo postgres)")
	cmd.Flags().StringVar(&opts.superAdminUser, "superadmin-username", "", "Provisionar un SUPERADMIN al arrancar si no existe")
	cmd.Flags().StringVar(&opts.superAdminPass, "superadmin-password", "", "Contraseña del SUPERADMIN provisionado")
	return cmd
}

func runServe(ctx context.Context, opts serveOptions) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	if opts.migrate && cfg.Store.Driver == config.StoreDriverPostgres {
		if err := runMigrations(ctx, cfg, log); err != nil {
			return err
		}
	}

	m := metrics.New()
	hub := realtime.NewHub(log)

	var dashCache analytics.DashboardCache = cache.NoopDashboardCache{}
	if cfg.Redis.Addr != "" {
		rc := cache.NewRedisDashboardCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rc.Ping(pingCtx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis no disponible, dashboard sin cache")
			_ = rc.Close()
		} else {
			dashCache = rc
			defer rc.Close()
			log.Info().Str("addr", cfg.Redis.Addr).Msg("cache de dashboard en Redis")
		}
		cancel()
	}

	superUC := usecase.NewSuperAdminUseCase(st.TenantTx, st.Tenants, st.Users)
	if opts.superAdminUser != "" && opts.superAdminPass != "" {
		if _, err := superUC.CreateSuperAdmin(ctx, opts.superAdminUser, opts.superAdminPass); err != nil && !errors.Is(err, domain.ErrDuplicate) {
			return err
		}
	}

	deps := apphttp.RouterDeps{
		AuthUC:          auth.NewAuthUseCase(st.Users, st.Sessions, cfg.Session.TTL(), m, log),
		ProductUC:       usecase.NewProductUseCase(st.Products, dashCache, log),
		PaymentMethodUC: usecase.NewPaymentMethodUseCase(st.PaymentMethods),
		TenantUC:        usecase.NewTenantUseCase(st.Tenants),
		UserUC:          usecase.NewUserUseCase(st.Users),
		SuperUC:         superUC,
		SaleUC: sales.NewSaleUseCase(st.SaleTx, st.Sales, st.PaymentMethods,
			sales.Config{AllowOversell: cfg.Sales.AllowOversell},
			sales.Hooks{Cache: dashCache, Events: hub, Metrics: m}, log),
		DashboardUC: analytics.NewDashboardUseCase(st.Analytics, dashCache, cfg.Redis.DashboardTTL(), log),
		ReceiptUC: receipt.NewReceiptUseCase(st.Sales, st.Tenants, st.PaymentMethods, map[receipt.Format]receipt.Renderer{
			receipt.FormatHTML: htmlrender.NewReceiptRenderer(),
			receipt.FormatPDF:  pdf.NewReceiptRenderer(),
		}),
		Hub:        hub,
		Metrics:    m,
		CookieName: cfg.Session.CookieName,
		SessionTTL: cfg.Session.TTL(),
		Log:        log,
	}
	app := apphttp.NewApp(apphttp.AppOptions{Name: cfg.App.Name, SwaggerPath: cfg.Docs.SwaggerPath}, deps)

	addr := cfg.HTTP.Addr()
	go func() {
		log.Info().Str("addr", addr).Str("store", cfg.Store.Driver).Msg("servidor HTTP escuchando")
		if err := app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("servidor HTTP detenido")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error al apagar")
		return err
	}
	log.Info().Msg("servidor detenido")
	return nil
}

func runMigrations(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()
	n, err := postgres.Migrate(ctx, pool, log)
	if err != nil {
		return err
	}
	log.Info().Int("applied", n).Msg("migraciones aplicadas")
	return nil
}
