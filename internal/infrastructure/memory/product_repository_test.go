package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepo_UpdateSoloCamposPedidos(t *testing.T) {
	st := memory.New()
	repo := st.Products()
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, repo.Create(ctx, &entity.Product{
		ID: "p1", TenantID: "t1", Name: "Pan", Stock: decimal.NewFromInt(10),
		LowStockThreshold: decimal.NewFromInt(2), IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))

	stale, err := repo.GetByID(ctx, "t1", "p1")
	require.NoError(t, err)
	require.NoError(t, repo.DecrementStock(ctx, "t1", "p1", decimal.NewFromInt(3), false))

	stale.Name = "Pan integral"
	stale.IsActive = false
	stale.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, stale, repository.ProductName))

	got, err := repo.GetByID(ctx, "t1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "Pan integral", got.Name)
	assert.True(t, got.Stock.Equal(decimal.NewFromInt(7)), "stock=%s", got.Stock)
	assert.True(t, got.IsActive, "is_active no venía en la lista")
	assert.True(t, got.UpdatedAt.Equal(now.Add(time.Minute)))

	require.NoError(t, repo.Update(ctx, stale))
	got, err = repo.GetByID(ctx, "t1", "p1")
	require.NoError(t, err)
	assert.True(t, got.Stock.Equal(decimal.NewFromInt(10)), "sin lista se escriben todos los campos")
	assert.False(t, got.IsActive)

	assert.Error(t, repo.Update(ctx, stale, repository.ProductField("color")))
	stale.TenantID = "t2"
	assert.ErrorIs(t, repo.Update(ctx, stale, repository.ProductName), domain.ErrNotFound)
}

func TestPaymentMethodRepo_UpdateParcial(t *testing.T) {
	st := memory.New()
	repo := st.PaymentMethods()
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, repo.Create(ctx, &entity.PaymentMethod{
		ID: "pm1", TenantID: "t1", Label: "Efectivo", IsActive: true, SortOrder: 10, CreatedAt: now, UpdatedAt: now,
	}))

	require.NoError(t, repo.Update(ctx, &entity.PaymentMethod{ID: "pm1", TenantID: "t1", SortOrder: 1, UpdatedAt: now},
		repository.PaymentMethodSortOrder))

	got, err := repo.GetByID(ctx, "t1", "pm1")
	require.NoError(t, err)
	assert.Equal(t, "Efectivo", got.Label)
	assert.True(t, got.IsActive)
	assert.Equal(t, 1, got.SortOrder)
}
