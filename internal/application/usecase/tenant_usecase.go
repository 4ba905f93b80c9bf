package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// TenantUseCase perfil del negocio (datos impresos en recibos).
type TenantUseCase struct {
	repo repository.TenantRepository
	now  func() time.Time
}

// NewTenantUseCase construye el caso de uso con el puerto de persistencia.
func NewTenantUseCase(repo repository.TenantRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo, now: time.Now}
}

// Get devuelve el perfil del tenant.
func (uc *TenantUseCase) Get(ctx context.Context, tenantID string) (*dto.TenantResponse, error) {
	t, err := uc.repo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTenantResponse(t), nil
}

// Update reemplaza los campos editables: name requerido, el resto opcional (ausente = null).
func (uc *TenantUseCase) Update(ctx context.Context, tenantID string, in dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name requerido", domain.ErrInvalidInput)
	}
	t, err := uc.repo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	t.Name = name
	t.BusinessName = cleanString(in.BusinessName)
	t.Phone = cleanString(in.Phone)
	t.Address = cleanString(in.Address)
	t.LogoURL = cleanString(in.LogoURL)
	t.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTenantResponse(t), nil
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	return &dto.TenantResponse{
		ID:           t.ID,
		Name:         t.Name,
		BusinessName: t.BusinessName,
		Phone:        t.Phone,
		Address:      t.Address,
		LogoURL:      t.LogoURL,
		CreatedAt:    t.CreatedAt,
	}
}
