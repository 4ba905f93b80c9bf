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
)

// PaymentMethodUseCase medios de pago del tenant.
type PaymentMethodUseCase struct {
	repo repository.PaymentMethodRepository
	now  func() time.Time
}

// NewPaymentMethodUseCase construye el caso de uso.
func NewPaymentMethodUseCase(repo repository.PaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo, now: time.Now}
}

// List ordena por sort_order y luego por etiqueta.
func (uc *PaymentMethodUseCase) List(ctx context.Context, tenantID string) ([]dto.PaymentMethodResponse, error) {
	list, err := uc.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentMethodResponse, 0, len(list))
	for _, pm := range list {
		out = append(out, toPaymentMethodResponse(pm))
	}
	return out, nil
}

// Create crea un medio de pago activo. sort_order por defecto 10.
func (uc *PaymentMethodUseCase) Create(ctx context.Context, tenantID string, in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return nil, fmt.Errorf("%w: label requerido", domain.ErrInvalidInput)
	}
	now := uc.now()
	pm := &entity.PaymentMethod{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Label:     label,
		IsActive:  true,
		SortOrder: entity.DefaultPaymentMethodSortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.SortOrder != nil {
		pm.SortOrder = *in.SortOrder
	}
	if err := uc.repo.Create(ctx, pm); err != nil {
		return nil, err
	}
	out := toPaymentMethodResponse(pm)
	return &out, nil
}

// Update aplica los campos presentes (label, is_active, sort_order).
func (uc *PaymentMethodUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	if in.Label == nil && in.IsActive == nil && in.SortOrder == nil {
		return nil, fmt.Errorf("%w: nada para actualizar", domain.ErrInvalidInput)
	}
	pm, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if pm == nil {
		return nil, domain.ErrNotFound
	}
	var fields []repository.PaymentMethodField
	if in.Label != nil {
		label := strings.TrimSpace(*in.Label)
		if label == "" {
			return nil, fmt.Errorf("%w: label requerido", domain.ErrInvalidInput)
		}
		pm.Label = label
		fields = append(fields, repository.PaymentMethodLabel)
	}
	if in.IsActive != nil {
		pm.IsActive = *in.IsActive
		fields = append(fields, repository.PaymentMethodIsActive)
	}
	if in.SortOrder != nil {
		pm.SortOrder = *in.SortOrder
		fields = append(fields, repository.PaymentMethodSortOrder)
	}
	pm.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, pm, fields...); err != nil {
		return nil, err
	}
	out := toPaymentMethodResponse(pm)
	return &out, nil
}

func toPaymentMethodResponse(pm *entity.PaymentMethod) dto.PaymentMethodResponse {
	return dto.PaymentMethodResponse{
		ID:        pm.ID,
		Label:     pm.Label,
		IsActive:  pm.IsActive,
		SortOrder: pm.SortOrder,
	}
}
