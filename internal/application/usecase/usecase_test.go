package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestProductUseCase_CreateAplicaDefaults(t *testing.T) {
	st := memory.New()
	uc := usecase.NewProductUseCase(st.Products(), nil, nil)

	p, err := uc.Create(context.Background(), "t1", dto.CreateProductRequest{Name: "  Café  ", SKU: strp("")})
	require.NoError(t, err)
	assert.Equal(t, "Café", p.Name)
	assert.Nil(t, p.SKU, "sku vacío se guarda como null")
	assert.True(t, p.Stock.IsZero())
	assert.True(t, p.LowStockThreshold.Equal(decimal.NewFromInt(2)))
	assert.True(t, p.IsActive)
	assert.True(t, p.LowStock, "stock 0 <= umbral 2")

	_, err = uc.Create(context.Background(), "t1", dto.CreateProductRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_UpdateParcial(t *testing.T) {
	st := memory.New()
	uc := usecase.NewProductUseCase(st.Products(), nil, nil)
	ctx := context.Background()
	price := decimal.NewFromInt(1000)
	created, err := uc.Create(ctx, "t1", dto.CreateProductRequest{Name: "Pan", Category: strp("Panadería"), PriceCOP: &price})
	require.NoError(t, err)

	var in dto.UpdateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"category":null,"stock":"12.5"}`), &in))
	updated, err := uc.Update(ctx, "t1", created.ID, in)
	require.NoError(t, err)

	assert.Nil(t, updated.Category, "null explícito limpia el campo")
	assert.Equal(t, "Pan", updated.Name, "ausente no cambia")
	require.NotNil(t, updated.PriceCOP)
	assert.True(t, updated.PriceCOP.Equal(price))
	assert.True(t, updated.Stock.Equal(decimal.RequireFromString("12.5")))
}

// saleBetweenReadAndWrite simula una venta que descuenta stock justo después de
// que el caso de uso leyó el producto y antes de que escriba.
type saleBetweenReadAndWrite struct {
	*memory.ProductRepo
	qty  decimal.Decimal
	done bool
}

func (r *saleBetweenReadAndWrite) GetByID(ctx context.Context, tenantID, id string) (*entity.Product, error) {
	p, err := r.ProductRepo.GetByID(ctx, tenantID, id)
	if err != nil || p == nil || r.done {
		return p, err
	}
	r.done = true
	if err := r.ProductRepo.DecrementStock(ctx, tenantID, id, r.qty, false); err != nil {
		return nil, err
	}
	return p, nil
}

func TestProductUseCase_UpdateNoPisaStockConcurrente(t *testing.T) {
	st := memory.New()
	ctx := context.Background()
	ten := decimal.NewFromInt(10)
	created, err := usecase.NewProductUseCase(st.Products(), nil, nil).
		Create(ctx, "t1", dto.CreateProductRequest{Name: "Pan", Stock: &ten})
	require.NoError(t, err)

	repo := &saleBetweenReadAndWrite{ProductRepo: st.Products(), qty: decimal.NewFromInt(3)}
	uc := usecase.NewProductUseCase(repo, nil, nil)
	updated, err := uc.Update(ctx, "t1", created.ID, dto.UpdateProductRequest{Name: dto.Some("Pan integral")})
	require.NoError(t, err)
	assert.Equal(t, "Pan integral", updated.Name)
	assert.True(t, updated.Stock.Equal(decimal.NewFromInt(7)), "stock=%s", updated.Stock)

	stored, err := st.Products().GetByID(ctx, "t1", created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Stock.Equal(decimal.NewFromInt(7)), "la venta concurrente se conserva")
	assert.Equal(t, "Pan integral", stored.Name)
}

type countingInvalidator struct{ tenants []string }

func (c *countingInvalidator) Invalidate(_ context.Context, tenantID string) error {
	c.tenants = append(c.tenants, tenantID)
	return nil
}

func TestProductUseCase_InvalidaCacheDelDashboard(t *testing.T) {
	st := memory.New()
	inv := &countingInvalidator{}
	uc := usecase.NewProductUseCase(st.Products(), inv, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, "t1", dto.CreateProductRequest{Name: "Pan"})
	require.NoError(t, err)
	_, err = uc.Update(ctx, "t1", created.ID, dto.UpdateProductRequest{LowStockThreshold: dto.Some(decimal.NewFromInt(5))})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t1"}, inv.tenants)

	_, err = uc.Update(ctx, "t1", created.ID, dto.UpdateProductRequest{})
	require.Error(t, err)
	assert.Len(t, inv.tenants, 2, "una edición rechazada no invalida")
}

var _ repository.ProductRepository = (*saleBetweenReadAndWrite)(nil)

func TestProductUseCase_UpdateRechazos(t *testing.T) {
	st := memory.New()
	uc := usecase.NewProductUseCase(st.Products(), nil, nil)
	ctx := context.Background()
	created, err := uc.Create(ctx, "t1", dto.CreateProductRequest{Name: "Pan"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, "t1", created.ID, dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin campos")

	_, err = uc.Update(ctx, "t1", created.ID, dto.UpdateProductRequest{Name: dto.Null[string]()})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "name no admite null")

	_, err = uc.Update(ctx, "t1", created.ID, dto.UpdateProductRequest{IsActive: dto.Null[bool]()})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "is_active no admite null")

	_, err = uc.Update(ctx, "t2", created.ID, dto.UpdateProductRequest{IsActive: dto.Some(false)})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto de otro tenant")
}

func TestProductUseCase_ListActivosPrimero(t *testing.T) {
	st := memory.New()
	uc := usecase.NewProductUseCase(st.Products(), nil, nil)
	ctx := context.Background()
	inactive := false
	for _, in := range []dto.CreateProductRequest{
		{Name: "Arroz", IsActive: &inactive},
		{Name: "Café"},
		{Name: "Azúcar"},
	} {
		_, err := uc.Create(ctx, "t1", in)
		require.NoError(t, err)
	}
	list, err := uc.List(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Azúcar", list[0].Name)
	assert.Equal(t, "Café", list[1].Name)
	assert.Equal(t, "Arroz", list[2].Name)
}

func TestPaymentMethodUseCase_CreateUpdateList(t *testing.T) {
	st := memory.New()
	uc := usecase.NewPaymentMethodUseCase(st.PaymentMethods())
	ctx := context.Background()
	one := 1

	cash, err := uc.Create(ctx, "t1", dto.CreatePaymentMethodRequest{Label: "Efectivo"})
	require.NoError(t, err)
	assert.Equal(t, 10, cash.SortOrder)
	assert.True(t, cash.IsActive)

	_, err = uc.Create(ctx, "t1", dto.CreatePaymentMethodRequest{Label: "Nequi", SortOrder: &one})
	require.NoError(t, err)

	off := false
	_, err = uc.Update(ctx, "t1", cash.ID, dto.UpdatePaymentMethodRequest{IsActive: &off})
	require.NoError(t, err)

	list, err := uc.List(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Nequi", list[0].Label)
	assert.False(t, list[1].IsActive)
	assert.Equal(t, "Efectivo", list[1].Label, "update parcial conserva label")

	_, err = uc.Update(ctx, "t2", cash.ID, dto.UpdatePaymentMethodRequest{IsActive: &off})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTenantUseCase_UpdateReemplaza(t *testing.T) {
	st := memory.New()
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, st.Tenants().Create(ctx, &entity.Tenant{ID: "t1", Name: "Acme", Phone: strp("300"), CreatedAt: now}))
	uc := usecase.NewTenantUseCase(st.Tenants())

	out, err := uc.Update(ctx, "t1", dto.UpdateTenantRequest{Name: "Acme SAS", Address: strp("Calle 1")})
	require.NoError(t, err)
	assert.Equal(t, "Acme SAS", out.Name)
	assert.Nil(t, out.Phone, "campo omitido queda en null")
	require.NotNil(t, out.Address)

	_, err = uc.Update(ctx, "t1", dto.UpdateTenantRequest{Name: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUseCase_CreateYOrden(t *testing.T) {
	st := memory.New()
	uc := usecase.NewUserUseCase(st.Users())
	ctx := context.Background()

	for _, in := range []dto.CreateUserRequest{
		{Username: "zoe", Password: "secreto", Role: "USER"},
		{Username: "beto", Password: "secreto", Role: "USER"},
		{Username: "yara", Password: "secreto", Role: "ADMIN"},
	} {
		_, err := uc.Create(ctx, "t1", in)
		require.NoError(t, err)
	}
	list, err := uc.List(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"yara", "beto", "zoe"}, []string{list[0].Username, list[1].Username, list[2].Username})

	_, err = uc.Create(ctx, "t1", dto.CreateUserRequest{Username: "zoe", Password: "secreto", Role: "USER"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, "t1", dto.CreateUserRequest{Username: "root", Password: "secreto", Role: "SUPERADMIN"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, "t1", dto.CreateUserRequest{Username: "c", Password: "123", Role: "USER"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "contraseña corta")
}

func TestUserUseCase_UpdateSoloMismoTenant(t *testing.T) {
	st := memory.New()
	uc := usecase.NewUserUseCase(st.Users())
	ctx := context.Background()
	u, err := uc.Create(ctx, "t1", dto.CreateUserRequest{Username: "ana", Password: "secreto", Role: "USER"})
	require.NoError(t, err)

	off := false
	_, err = uc.Update(ctx, "t2", u.ID, dto.UpdateUserRequest{IsActive: &off})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	admin := "ADMIN"
	out, err := uc.Update(ctx, "t1", u.ID, dto.UpdateUserRequest{IsActive: &off, Role: &admin})
	require.NoError(t, err)
	assert.False(t, out.IsActive)
	assert.Equal(t, "ADMIN", out.Role)

	super := "SUPERADMIN"
	_, err = uc.Update(ctx, "t1", u.ID, dto.UpdateUserRequest{Role: &super})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSuperAdminUseCase_CreateTenantSiembraContador(t *testing.T) {
	st := memory.New()
	uc := usecase.NewSuperAdminUseCase(st, st.Tenants(), st.Users())
	ctx := context.Background()

	tn, err := uc.CreateTenant(ctx, dto.CreateTenantRequest{Name: "Acme"})
	require.NoError(t, err)

	got, err := st.Tenants().GetByID(ctx, tn.ID)
	require.NoError(t, err)
	require.NotNil(t, got.BusinessName)
	assert.Equal(t, "Acme", *got.BusinessName)

	v, found, err := st.Counters().Increment(ctx, tn.ID, entity.ReceiptCounterKey)
	require.NoError(t, err)
	assert.True(t, found, "contador sembrado con la creación")
	assert.Equal(t, int64(1), v)

	_, err = uc.CreateTenant(ctx, dto.CreateTenantRequest{Name: "Acme"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSuperAdminUseCase_CreateTenantUser(t *testing.T) {
	st := memory.New()
	uc := usecase.NewSuperAdminUseCase(st, st.Tenants(), st.Users())
	ctx := context.Background()
	tn, err := uc.CreateTenant(ctx, dto.CreateTenantRequest{Name: "Acme"})
	require.NoError(t, err)

	_, err = uc.CreateTenantUser(ctx, tn.ID, dto.CreateUserRequest{Username: "jefe", Password: "secreto", Role: "SUPERADMIN"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no se crea otro SUPERADMIN por esta vía")

	_, err = uc.CreateTenantUser(ctx, "no-existe", dto.CreateUserRequest{Username: "jefe", Password: "secreto", Role: "ADMIN"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	u, err := uc.CreateTenantUser(ctx, tn.ID, dto.CreateUserRequest{Username: "jefe", Password: "secreto", Role: "ADMIN"})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", u.Role)

	users, err := uc.ListTenantUsers(ctx, tn.ID)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestSuperAdminUseCase_ListTenantsRecientesPrimero(t *testing.T) {
	st := memory.New()
	ctx := context.Background()
	base := time.Now()
	require.NoError(t, st.Tenants().Create(ctx, &entity.Tenant{ID: "a", Name: "Viejo", CreatedAt: base.Add(-time.Hour)}))
	require.NoError(t, st.Tenants().Create(ctx, &entity.Tenant{ID: "b", Name: "Nuevo", CreatedAt: base}))
	uc := usecase.NewSuperAdminUseCase(st, st.Tenants(), st.Users())

	list, err := uc.ListTenants(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Nuevo", list[0].Name)
}

func TestSuperAdminUseCase_CreateSuperAdminSinTenant(t *testing.T) {
	st := memory.New()
	uc := usecase.NewSuperAdminUseCase(st, st.Tenants(), st.Users())
	ctx := context.Background()

	out, err := uc.CreateSuperAdmin(ctx, "root", "supersecreto")
	require.NoError(t, err)
	assert.Equal(t, "SUPERADMIN", out.Role)

	u, err := st.Users().GetByUsername(ctx, "root")
	require.NoError(t, err)
	assert.Nil(t, u.TenantID)
}
