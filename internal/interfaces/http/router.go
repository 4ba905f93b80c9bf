package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/pos-api/internal/application/analytics"
	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/receipt"
	"github.com/jhoicas/pos-api/internal/application/sales"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/metrics"
	"github.com/jhoicas/pos-api/internal/infrastructure/realtime"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ProductUC       *usecase.ProductUseCase
	PaymentMethodUC *usecase.PaymentMethodUseCase
	TenantUC        *usecase.TenantUseCase
	UserUC          *usecase.UserUseCase
	SuperUC         *usecase.SuperAdminUseCase
	SaleUC          *sales.SaleUseCase
	DashboardUC     *analytics.DashboardUseCase
	ReceiptUC       *receipt.ReceiptUseCase
	Hub             *realtime.Hub
	Metrics         *metrics.Metrics // opcional
	CookieName      string
	SessionTTL      time.Duration
	Log             *logger.Logger
}

// AppOptions parámetros del servidor fiber.
type AppOptions struct {
	Name        string
	SwaggerPath string // vacío o inexistente = sin /docs
}

// NewApp construye la app fiber con middlewares globales, /health, /metrics, /docs y las rutas de la API.
func NewApp(opts AppOptions, deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: ErrorHandler(deps.Log),
	})

	app.Use(recover.New())
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
	}
	app.Use(RequestLogger(deps.Log))

	if opts.SwaggerPath != "" {
		if _, err := os.Stat(opts.SwaggerPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: opts.SwaggerPath,
				Path:     "docs",
				Title:    opts.Name + " API",
			}))
		} else {
			deps.Log.Warn().Str("path", opts.SwaggerPath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": opts.Name})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieName, deps.SessionTTL, log)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)

	session := SessionMiddleware(deps.AuthUC, deps.CookieName, log)
	api.Get("/me", session, authHandler.Me)

	// Superadmin (sin tenant)
	super := api.Group("/super", session, RequireRole(entity.RoleSuperAdmin))
	superHandler := NewSuperHandler(deps.SuperUC, log)
	super.Get("/tenants", superHandler.ListTenants)
	super.Post("/tenants", superHandler.CreateTenant)
	super.Get("/tenants/:id/users", superHandler.ListTenantUsers)
	super.Post("/tenants/:id/users", superHandler.CreateTenantUser)

	// Rutas del tenant: sesión + tenant + USER o superior. La cadena va por ruta y no en un
	// grupo sin prefijo, así una ruta desconocida bajo /api responde 404 y no 401.
	gate := []fiber.Handler{session, RequireTenant(), RequireRole(entity.RoleUser)}
	tenant := func(handlers ...fiber.Handler) []fiber.Handler {
		return append(append(make([]fiber.Handler, 0, len(gate)+len(handlers)), gate...), handlers...)
	}
	admin := RequireRole(entity.RoleAdmin)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	api.Get("/dashboard", tenant(dashboardHandler.GetSummary)...)

	productHandler := NewProductHandler(deps.ProductUC, log)
	api.Get("/products", tenant(productHandler.List)...)
	api.Get("/products/:id", tenant(productHandler.GetByID)...)
	api.Post("/products", tenant(admin, productHandler.Create)...)
	api.Put("/products/:id", tenant(admin, productHandler.Update)...)

	paymentHandler := NewPaymentMethodHandler(deps.PaymentMethodUC, log)
	api.Get("/payment-methods", tenant(paymentHandler.List)...)
	api.Post("/payment-methods", tenant(admin, paymentHandler.Create)...)
	api.Put("/payment-methods/:id", tenant(admin, paymentHandler.Update)...)

	tenantHandler := NewTenantHandler(deps.TenantUC, log)
	api.Get("/tenant", tenant(admin, tenantHandler.Get)...)
	api.Put("/tenant", tenant(admin, tenantHandler.Update)...)

	userHandler := NewUserHandler(deps.UserUC, log)
	api.Get("/users", tenant(admin, userHandler.List)...)
	api.Post("/users", tenant(admin, userHandler.Create)...)
	api.Put("/users/:id", tenant(admin, userHandler.Update)...)

	saleHandler := NewSaleHandler(deps.SaleUC, log)
	api.Get("/sales", tenant(saleHandler.List)...)
	api.Post("/sales", tenant(saleHandler.Create)...)
	api.Get("/sales/:id", tenant(saleHandler.GetByID)...)

	receiptHandler := NewReceiptHandler(deps.ReceiptUC, log)
	api.Get("/receipt/:id", tenant(receiptHandler.Get)...)

	if deps.Hub != nil {
		wsHandler := NewWSHandler(deps.Hub)
		api.Get("/ws", tenant(wsHandler.Upgrade, wsHandler.Stream())...)
	}
}
