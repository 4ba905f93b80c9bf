package sales_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/sales"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *memory.Store
	uc       *sales.SaleUseCase
	tenantID string
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newFixture(t *testing.T, cfg sales.Config, hooks sales.Hooks) *fixture {
	t.Helper()
	st := memory.New()
	now := time.Now()
	require.NoError(t, st.Tenants().Create(context.Background(), &entity.Tenant{ID: "acme", Name: "Acme", CreatedAt: now, UpdatedAt: now}))
	uc := sales.NewSaleUseCase(st, st.Sales(), st.PaymentMethods(), cfg, hooks, nil)
	return &fixture{store: st, uc: uc, tenantID: "acme"}
}

func (f *fixture) addProduct(t *testing.T, tenantID, id, stock string) {
	t.Helper()
	now := time.Now()
	require.NoError(t, f.store.Products().Create(context.Background(), &entity.Product{
		ID: id, TenantID: tenantID, Name: "Producto " + id,
		Stock: decimal.RequireFromString(stock), LowStockThreshold: decimal.NewFromInt(2),
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))
}

func (f *fixture) stock(t *testing.T, id string) decimal.Decimal {
	t.Helper()
	p, err := f.store.Products().GetByID(context.Background(), f.tenantID, id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func item(id, qty, price string) dto.SaleItemInput {
	return dto.SaleItemInput{ProductID: id, Qty: dec(qty), UnitPrice: dec(price)}
}

func TestCreateSale_TotalesConDescuento(t *testing.T) {
	f := newFixture(t, sales.Config{AllowOversell: true}, sales.Hooks{})
	f.addProduct(t, f.tenantID, "a", "10")
	f.addProduct(t, f.tenantID, "b", "5")
	ctx := context.Background()

	out, err := f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{
		Currency: "COP",
		Discount: dec("10"),
		Items:    []dto.SaleItemInput{item("a", "2", "50"), item("b", "1", "30")},
	})
	require.NoError(t, err)
	assert.Equal(t, "R-000001", out.ReceiptNumber)

	detail, err := f.uc.GetSale(ctx, f.tenantID, out.ID)
	require.NoError(t, err)
	assert.True(t, detail.Subtotal.Equal(decimal.NewFromInt(130)), "subtotal = 2*50 + 1*30")
	assert.True(t, detail.Total.Equal(decimal.NewFromInt(120)), "total = subtotal - descuento")
	require.Len(t, detail.Items, 2)
	for _, it := range detail.Items {
		assert.True(t, it.LineTotal.Equal(it.Qty.Mul(it.UnitPrice)))
	}

	assert.True(t, f.stock(t, "a").Equal(decimal.NewFromInt(8)))
	assert.True(t, f.stock(t, "b").Equal(decimal.NewFromInt(4)))
}

func TestCreateSale_DescuentoMayorQueSubtotalDejaTotalEnCero(t *testing.T) {
	f := newFixture(t, sales.Config{AllowOversell: true}, sales.Hooks{})
	f.addProduct(t, f.tenantID, "a", "10")

	out, err := f.uc.CreateSale(context.Background(), f.tenantID, dto.CreateSaleRequest{
		Currency: "USD",
		Discount: dec("500"),
		Items:    []dto.SaleItemInput{item("a", "1", "20")},
	})
	require.NoError(t, err)
	detail, err := f.uc.GetSale(context.Background(), f.tenantID, out.ID)
	require.NoError(t, err)
	assert.True(t, detail.Total.IsZero(), "el total no puede ser negativo")
	assert.True(t, detail.Discount.Equal(decimal.NewFromInt(500)))
}

func TestCreateSale_DescuentoNegativoRechazado(t *testing.T) {
	f := newFixture(t, sales.Config{AllowOversell: true}, sales.Hooks{})
	f.addProduct(t, f.tenantID, "a", "10")

	_, err := f.uc.CreateSale(context.Background(), f.tenantID, dto.CreateSaleRequest{
		Currency: "COP",
		Discount: dec("-1"),
		Items:    []dto.SaleItemInput{item("a", "1", "20")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_ProductoInexistenteNoEscribeNada(t *testing.T) {
	f := newFixture(t, sales.Config{AllowOversell: true}, sales.Hooks{})
	f.addProduct(t, f.tenantID, "a", "10")
	f.addProduct(t, "otro", "ajeno", "10")
	ctx := context.Background()

	for _, missing := range []string{"no-existe", "ajeno"} {
		_, err := f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{
			Currency: "COP",
			Items:    []dto.SaleItemInput{item("a", "1", "10"), item(missing, "1", "10")},
		})
		assert.ErrorIs(t, err, domain.ErrUnknownProduct, missing)
	}

	list, err := f.uc.ListSales(ctx, f.tenantID, 50)
	require.NoError(t, err)
	assert.Empty(t, list, "no debe existir ninguna venta")
	assert.True(t, f.stock(t, "a").Equal(decimal.NewFromInt(10)), "el stock no cambia")

	// el contador tampoco avanzó
	out, err := f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{
		Currency: "COP",
		Items:    []dto.SaleItemInput{item("a", "1", "10")},
	})
	require.NoError(t, err)
	assert.Equal(t, "R-000001", out.ReceiptNumber)
}

func TestCreateSale_LineasInvalidasSeDescartan(t *testing.T) {
	f := newFixture(t, sales.Config{AllowOversell: true}, sales.Hooks{})
	f.addProduct(t, f.tenantID, "a", "10")
	ctx := context.Background()

	invalid := []dto.SaleItemInput{
		{ProductID: "", Qty: dec("1"), UnitPrice: dec("10")},
		{ProductID: "a", Qty: dec("0"), UnitPrice: dec("10")},
		{ProductID: "a", Qty: dec("1"), UnitPrice: dec("-5")},
		{ProductID: "a", UnitPrice: dec("10")},
		{ProductID: "a", Qty: dec("1")},
	}
	_, err := f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{Currency: "COP", Items: invalid})
	assert.ErrorIs(t, err, domain.ErrInvalidItems)

	// las inválidas no descartan la venta si queda al menos una línea válida
	out, err := f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{
		Currency: "COP",
		Items:    append(invalid, item("a", "1.5", "10")),
	})
	require.NoError(t, err)
	detail, err := f.uc.GetSale(ctx, f.tenantID, out.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.True(t, detail.Total.Equal(decimal.NewFromInt(15)))
	assert.True(t, f.stock(t, "a").Equal(decimal.RequireFromString("8.5")))
}

func TestCreateSale_RedondeaALaEscalaDeLasColumnas(t *testing.T) {
	f := newFixture(t, sales.Config{AllowOversell: true}, sales.Hooks{})
	f.addProduct(t, f.tenantID, "a", "10")
	ctx := context.Background()

	_, err := f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{
		Currency: "USD",
		Items:    []dto.SaleItemInput{item("a", "1", "0.001"), item("a", "0.0004", "10")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidItems, "líneas que redondean a 0 se descartan")

	out, err := f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{
		Currency: "USD",
		Items: []dto.SaleItemInput{
			item("a", "0.3333", "0.10"),
			item("a", "0.3333", "0.10"),
			item("a", "0.3333", "0.104"),
		},
	})
	require.NoError(t, err)
	detail, err := f.uc.GetSale(ctx, f.tenantID, out.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 3)

	sum := decimal.Zero
	for _, it := range detail.Items {
		assert.True(t, it.Qty.Equal(decimal.RequireFromString("0.333")), "qty=%s", it.Qty)
		assert.True(t, it.UnitPrice.Equal(decimal.RequireFromString("0.10")), "unit_price=%s", it.UnitPrice)
		assert.True(t, it.LineTotal.Equal(decimal.RequireFromString("0.03")), "line_total=%s", it.LineTotal)
		sum = sum.Add(it.LineTotal)
	}
	assert.True(t, detail.Subtotal.Equal(sum), "subtotal es la suma de line_total redondeados")
	assert.True(t, detail.Subtotal.Equal(decimal.RequireFromString("0.09")))
	assert.True(t, f.stock(t, "a").Equal(decimal.RequireFromString("9.001")))
}

func TestCreateSale_MontosFueraDeRango(t *testing.T) {
	f := newFixture(t, sales.Config{AllowOversell: true}, sales.Hooks{})
	f.addProduct(t, f.tenantID, "a", "10")
	ctx := context.Background()

	cases := map[string]dto.CreateSaleRequest{
		"precio":     {Currency: "COP", Items: []dto.SaleItemInput{item("a", "1", "1000000000000")}},
		"line_total": {Currency: "COP", Items: []dto.SaleItemInput{item("a", "1000000", "1000000")}},
		"cantidad":   {Currency: "COP", Items: []dto.SaleItemInput{item("a", "100000000000", "1")}},
		"subtotal": {Currency: "COP", Items: []dto.SaleItemInput{
			item("a", "1", "600000000000"), item("a", "1", "600000000000"),
		}},
		"descuento": {Currency: "COP", Discount: dec("1000000000000"), Items: []dto.SaleItemInput{item("a", "1", "10")}},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.uc.CreateSale(ctx, f.tenantID, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.True(t, f.stock(t, "a").Equal(decimal.NewFromInt(10)))

	out, err := f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{
		Currency: "COP", Items: []dto.SaleItemInput{item("a", "1", "999999999999.99")},
	})
	require.NoError(t, err)
	assert.Equal(t, "R-000001", out.ReceiptNumber, "los rechazos no consumen consecutivo")
}

func TestCreateSale_ValidacionEstructural(t *testing.T) {
	f := newFixture(t, sales.Config{AllowOversell: true}, sales.Hooks{})
	f.addProduct(t, f.tenantID, "a", "10")
	ctx := context.Background()

	_, err := f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{Currency: "EUR", Items: []dto.SaleItemInput{item("a", "1", "1")}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "moneda no soportada")

	_, err = f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{Currency: "COP"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin items")

	_, err = f.uc.CreateSale(ctx, "", dto.CreateSaleRequest{Currency: "COP", Items: []dto.SaleItemInput{item("a", "1", "1")}})
	assert.ErrorIs(t, err, domain.ErrTenantRequired)
}

func TestCreateSale_MedioDePagoDeOtroTenant(t *testing.T) {
	f := newFixture(t, sales.Config{AllowOversell: true}, sales.Hooks{})
	f.addProduct(t, f.tenantID, "a", "10")
	ctx := context.Background()
	require.NoError(t, f.store.PaymentMethods().Create(ctx, &entity.PaymentMethod{ID: "pm-otro", TenantID: "otro", Label: "Nequi", IsActive: true}))
	require.NoError(t, f.store.PaymentMethods().Create(ctx, &entity.PaymentMethod{ID: "pm-acme", TenantID: f.tenantID, Label: "Efectivo", IsActive: true}))

	pm := "pm-otro"
	_, err := f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{Currency: "COP", PaymentMethodID: &pm, Items: []dto.SaleItemInput{item("a", "1", "1")}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	pm = "pm-acme"
	_, err = f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{Currency: "COP", PaymentMethodID: &pm, Items: []dto.SaleItemInput{item("a", "1", "1")}})
	require.NoError(t, err)

	list, err := f.uc.ListSales(ctx, f.tenantID, 50)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].PaymentMethodLabel)
	assert.Equal(t, "Efectivo", *list[0].PaymentMethodLabel)
}

func TestCreateSale_DosVentasConcurrentesAcme(t *testing.T) {
	f := newFixture(t, sales.Config{AllowOversell: true}, sales.Hooks{})
	f.addProduct(t, f.tenantID, "a", "10")
	require.NoError(t, f.store.Counters().EnsureExists(context.Background(), f.tenantID, entity.ReceiptCounterKey))

	var wg sync.WaitGroup
	got := make([]string, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := f.uc.CreateSale(context.Background(), f.tenantID, dto.CreateSaleRequest{
				Currency: "COP",
				Items:    []dto.SaleItemInput{item("a", "1", "100")},
			})
			errs[i] = err
			if out != nil {
				got[i] = out.ReceiptNumber
			}
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	sort.Strings(got)
	assert.Equal(t, []string{"R-000001", "R-000002"}, got)
	assert.True(t, f.stock(t, "a").Equal(decimal.NewFromInt(8)))
}

func TestCreateSale_ConsecutivosUnicosSinHuecos(t *testing.T) {
	f := newFixture(t, sales.Config{AllowOversell: true}, sales.Hooks{})
	f.addProduct(t, f.tenantID, "a", "0")
	const n = 40

	var wg sync.WaitGroup
	results := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := f.uc.CreateSale(context.Background(), f.tenantID, dto.CreateSaleRequest{
				Currency: "COP",
				Items:    []dto.SaleItemInput{item("a", "1", "10")},
			})
			if assert.NoError(t, err) {
				results <- out.ReceiptNumber
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := map[string]bool{}
	for r := range results {
		assert.False(t, seen[r], "consecutivo repetido %s", r)
		seen[r] = true
	}
	require.Len(t, seen, n)
	for i := 1; i <= n; i++ {
		assert.True(t, seen[fmt.Sprintf("R-%06d", i)], "falta R-%06d", i)
	}
	assert.True(t, f.stock(t, "a").Equal(decimal.NewFromInt(-n)), "la sobreventa está permitida")
}

func TestCreateSale_ContadorPorTenant(t *testing.T) {
	f := newFixture(t, sales.Config{AllowOversell: true}, sales.Hooks{})
	f.addProduct(t, f.tenantID, "a", "10")
	f.addProduct(t, "otro", "b", "10")
	ctx := context.Background()

	out1, err := f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{Currency: "COP", Items: []dto.SaleItemInput{item("a", "1", "1")}})
	require.NoError(t, err)
	out2, err := f.uc.CreateSale(ctx, "otro", dto.CreateSaleRequest{Currency: "COP", Items: []dto.SaleItemInput{item("b", "1", "1")}})
	require.NoError(t, err)

	assert.Equal(t, "R-000001", out1.ReceiptNumber)
	assert.Equal(t, "R-000001", out2.ReceiptNumber)

	_, err = f.uc.GetSale(ctx, f.tenantID, out2.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "la venta de otro tenant no es visible")
}

func TestCreateSale_SinSobreventaAbortaTodo(t *testing.T) {
	f := newFixture(t, sales.Config{AllowOversell: false}, sales.Hooks{})
	f.addProduct(t, f.tenantID, "a", "5")
	f.addProduct(t, f.tenantID, "b", "1")
	ctx := context.Background()

	_, err := f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{
		Currency: "COP",
		Items:    []dto.SaleItemInput{item("a", "2", "10"), item("b", "2", "10")},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, f.stock(t, "a").Equal(decimal.NewFromInt(5)), "el descuento de a se revierte")

	list, err := f.uc.ListSales(ctx, f.tenantID, 50)
	require.NoError(t, err)
	assert.Empty(t, list)
}

type fakeHooks struct {
	mu          sync.Mutex
	invalidated []string
	events      []sales.SaleCreatedEvent
	currencies  []string
}

func (h *fakeHooks) Invalidate(_ context.Context, tenantID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.invalidated = append(h.invalidated, tenantID)
	return fmt.Errorf("redis caído")
}

func (h *fakeHooks) PublishSaleCreated(_ string, evt sales.SaleCreatedEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, evt)
}

func (h *fakeHooks) SaleCreated(currency string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.currencies = append(h.currencies, currency)
}

func TestCreateSale_EfectosPosterioresAlCommit(t *testing.T) {
	h := &fakeHooks{}
	f := newFixture(t, sales.Config{AllowOversell: true}, sales.Hooks{Cache: h, Events: h, Metrics: h})
	f.addProduct(t, f.tenantID, "a", "10")
	ctx := context.Background()

	out, err := f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{Currency: "USD", Items: []dto.SaleItemInput{item("a", "1", "9.99")}})
	require.NoError(t, err, "un fallo de cache no falla la venta")

	assert.Equal(t, []string{f.tenantID}, h.invalidated)
	require.Len(t, h.events, 1)
	assert.Equal(t, out.ReceiptNumber, h.events[0].ReceiptNumber)
	assert.True(t, h.events[0].Total.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, []string{"USD"}, h.currencies)

	// venta rechazada: sin efectos
	_, err = f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{Currency: "USD", Items: []dto.SaleItemInput{item("x", "1", "1")}})
	require.Error(t, err)
	assert.Len(t, h.events, 1)
}

func TestListSales_OrdenYLimite(t *testing.T) {
	f := newFixture(t, sales.Config{AllowOversell: true}, sales.Hooks{})
	f.addProduct(t, f.tenantID, "a", "10")
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.uc.CreateSale(ctx, f.tenantID, dto.CreateSaleRequest{Currency: "COP", Items: []dto.SaleItemInput{item("a", "1", "1")}})
		require.NoError(t, err)
	}

	list, err := f.uc.ListSales(ctx, f.tenantID, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "R-000003", list[0].ReceiptNumber, "más reciente primero")

	list, err = f.uc.ListSales(ctx, f.tenantID, -5)
	require.NoError(t, err)
	assert.Len(t, list, 1, "el límite mínimo es 1")
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 1, sales.ClampLimit(0))
	assert.Equal(t, 50, sales.ClampLimit(50))
	assert.Equal(t, 200, sales.ClampLimit(1000))
}
