package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// ProductUseCase catálogo de productos del tenant. No hay borrado: se desactiva con is_active=false.
// Crear o editar productos invalida el cache del dashboard (products_count, low_stock_count).
type ProductUseCase struct {
	repo  repository.ProductRepository
	cache CacheInvalidator
	log   *logger.Logger
	now   func() time.Time
}

// NewProductUseCase construye el caso de uso. cache puede ser nil.
func NewProductUseCase(repo repository.ProductRepository, cache CacheInvalidator, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, cache: cache, log: log.Component("catalog"), now: time.Now}
}

// List devuelve los productos del tenant: activos primero, luego por nombre.
func (uc *ProductUseCase) List(ctx context.Context, tenantID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// GetByID obtiene un producto del tenant; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// Create crea un producto. Stock 0, umbral 2 y activo por defecto.
func (uc *ProductUseCase) Create(ctx context.Context, tenantID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	for _, v := range []*decimal.Decimal{in.CostCOP, in.CostUSD, in.PriceCOP, in.PriceUSD, in.LowStockThreshold} {
		if v != nil && v.IsNegative() {
			return nil, fmt.Errorf("%w: costos, precios y umbral no pueden ser negativos", domain.ErrInvalidInput)
		}
	}
	now := uc.now()
	p := &entity.Product{
		ID:                uuid.New().String(),
		TenantID:          tenantID,
		Name:              name,
		Category:          cleanString(in.Category),
		SKU:               cleanString(in.SKU),
		CostCOP:           in.CostCOP,
		CostUSD:           in.CostUSD,
		PriceCOP:          in.PriceCOP,
		PriceUSD:          in.PriceUSD,
		Stock:             decimal.Zero,
		LowStockThreshold: decimal.NewFromInt(entity.DefaultLowStockThreshold),
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.LowStockThreshold != nil {
		p.LowStockThreshold = *in.LowStockThreshold
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, tenantID)
	return toProductResponse(p), nil
}

// Update aplica solo los campos presentes. Null explícito limpia los campos opcionales;
// name, stock, low_stock_threshold e is_active no aceptan null.
func (uc *ProductUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: nada para actualizar", domain.ErrInvalidInput)
	}
	p, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	var fields []repository.ProductField
	if in.Name.IsSet() {
		name, ok := in.Name.Value()
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
		}
		p.Name = name
		fields = append(fields, repository.ProductName)
	}
	if in.Category.IsSet() {
		p.Category = cleanString(in.Category.Ptr())
		fields = append(fields, repository.ProductCategory)
	}
	if in.SKU.IsSet() {
		p.SKU = cleanString(in.SKU.Ptr())
		fields = append(fields, repository.ProductSKU)
	}
	money := []struct {
		in    dto.Optional[decimal.Decimal]
		dst   **decimal.Decimal
		field repository.ProductField
	}{
		{in.CostCOP, &p.CostCOP, repository.ProductCostCOP},
		{in.CostUSD, &p.CostUSD, repository.ProductCostUSD},
		{in.PriceCOP, &p.PriceCOP, repository.ProductPriceCOP},
		{in.PriceUSD, &p.PriceUSD, repository.ProductPriceUSD},
	}
	for _, m := range money {
		if !m.in.IsSet() {
			continue
		}
		v := m.in.Ptr()
		if v != nil && v.IsNegative() {
			return nil, fmt.Errorf("%w: costos y precios no pueden ser negativos", domain.ErrInvalidInput)
		}
		*m.dst = v
		fields = append(fields, m.field)
	}
	if in.Stock.IsSet() {
		v, ok := in.Stock.Value()
		if !ok {
			return nil, fmt.Errorf("%w: stock no puede ser null", domain.ErrInvalidInput)
		}
		p.Stock = v
		fields = append(fields, repository.ProductStock)
	}
	if in.LowStockThreshold.IsSet() {
		v, ok := in.LowStockThreshold.Value()
		if !ok || v.IsNegative() {
			return nil, fmt.Errorf("%w: low_stock_threshold inválido", domain.ErrInvalidInput)
		}
		p.LowStockThreshold = v
		fields = append(fields, repository.ProductLowStockThreshold)
	}
	if in.IsActive.IsSet() {
		v, ok := in.IsActive.Value()
		if !ok {
			return nil, fmt.Errorf("%w: is_active no puede ser null", domain.ErrInvalidInput)
		}
		p.IsActive = v
		fields = append(fields, repository.ProductIsActive)
	}
	p.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, p, fields...); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, tenantID)

	// releer: las columnas no enviadas (stock sobre todo) pudieron cambiar entre lectura y escritura
	current, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(current), nil
}

func (uc *ProductUseCase) invalidate(ctx context.Context, tenantID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, tenantID); err != nil {
		uc.log.Warn().Err(err).Str("tenant_id", tenantID).Msg("invalidar cache del dashboard")
	}
}

// cleanString recorta espacios; vacío se guarda como NULL.
func cleanString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		SKU:               p.SKU,
		CostCOP:           p.CostCOP,
		CostUSD:           p.CostUSD,
		PriceCOP:          p.PriceCOP,
		PriceUSD:          p.PriceUSD,
		Stock:             p.Stock,
		LowStockThreshold: p.LowStockThreshold,
		IsActive:          p.IsActive,
		LowStock:          p.IsLowStock(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
