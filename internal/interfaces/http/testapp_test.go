package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/analytics"
	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/receipt"
	"github.com/jhoicas/pos-api/internal/application/sales"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/cache"
	"github.com/jhoicas/pos-api/internal/infrastructure/htmlrender"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
	"github.com/jhoicas/pos-api/internal/infrastructure/metrics"
	"github.com/jhoicas/pos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-api/internal/infrastructure/realtime"
	apphttp "github.com/jhoicas/pos-api/internal/interfaces/http"
	"github.com/jhoicas/pos-api/pkg/logger"
	"github.com/jhoicas/pos-api/pkg/password"
)

const (
	testCookie   = "session"
	testPassword = "secreto123"
	testTenant   = "acme"
)

type testEnv struct {
	app     *fiber.App
	store   *memory.Store
	metrics *metrics.Metrics
	hub     *realtime.Hub
}

// newTestEnv arma la app completa sobre el store en memoria con un tenant "acme",
// usuarios cajero (USER), admin (ADMIN) y root (SUPERADMIN), y un producto p1.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := logger.Nop()
	st := memory.New()
	m := metrics.New()
	hub := realtime.NewHub(log)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, st.Tenants().Create(ctx, &entity.Tenant{ID: testTenant, Name: "Acme", CreatedAt: now, UpdatedAt: now}))
	tenant := testTenant
	seedUser(t, st, "cajero", entity.RoleUser, &tenant)
	seedUser(t, st, "admin", entity.RoleAdmin, &tenant)
	seedUser(t, st, "root", entity.RoleSuperAdmin, nil)
	require.NoError(t, st.Products().Create(ctx, &entity.Product{
		ID: "p1", TenantID: testTenant, Name: "Café", Stock: decimal.NewFromInt(10),
		LowStockThreshold: decimal.NewFromInt(2), IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))

	ttl := 30 * 24 * time.Hour
	deps := apphttp.RouterDeps{
		AuthUC:          auth.NewAuthUseCase(st.Users(), st.Sessions(), ttl, m, log),
		ProductUC:       usecase.NewProductUseCase(st.Products(), cache.NoopDashboardCache{}, log),
		PaymentMethodUC: usecase.NewPaymentMethodUseCase(st.PaymentMethods()),
		TenantUC:        usecase.NewTenantUseCase(st.Tenants()),
		UserUC:          usecase.NewUserUseCase(st.Users()),
		SuperUC:         usecase.NewSuperAdminUseCase(st, st.Tenants(), st.Users()),
		SaleUC: sales.NewSaleUseCase(st, st.Sales(), st.PaymentMethods(), sales.Config{AllowOversell: true},
			sales.Hooks{Cache: cache.NoopDashboardCache{}, Events: hub, Metrics: m}, log),
		DashboardUC: analytics.NewDashboardUseCase(st.Analytics(), cache.NoopDashboardCache{}, time.Minute, log),
		ReceiptUC: receipt.NewReceiptUseCase(st.Sales(), st.Tenants(), st.PaymentMethods(), map[receipt.Format]receipt.Renderer{
			receipt.FormatHTML: htmlrender.NewReceiptRenderer(),
			receipt.FormatPDF:  pdf.NewReceiptRenderer(),
		}),
		Hub:        hub,
		Metrics:    m,
		CookieName: testCookie,
		SessionTTL: ttl,
		Log:        log,
	}
	app := apphttp.NewApp(apphttp.AppOptions{Name: "pos-api-test"}, deps)
	return &testEnv{app: app, store: st, metrics: m, hub: hub}
}

func seedUser(t *testing.T, st *memory.Store, username string, role entity.Role, tenantID *string) {
	t.Helper()
	salt, hash, err := password.Hash(testPassword)
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, st.Users().Create(context.Background(), &entity.User{
		ID: "u-" + username, TenantID: tenantID, Username: username, Role: role,
		PasswordSalt: salt, PasswordHash: hash, IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))
}

// do ejecuta una petición; cookie vacía = sin sesión.
func (e *testEnv) do(t *testing.T, method, path, body, cookie string) (*http.Response, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", testCookie+"="+cookie)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, string(raw)
}

// login devuelve el token de la cookie de sesión.
func (e *testEnv) login(t *testing.T, username string) string {
	t.Helper()
	resp, _ := e.do(t, fiber.MethodPost, "/api/login", `{"username":"`+username+`","password":"`+testPassword+`"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token := sessionToken(resp)
	require.NotEmpty(t, token)
	return token
}

func sessionToken(resp *http.Response) string {
	for _, sc := range resp.Header.Values(fiber.HeaderSetCookie) {
		first := strings.SplitN(sc, ";", 2)[0]
		if v, ok := strings.CutPrefix(first, testCookie+"="); ok {
			return v
		}
	}
	return ""
}
