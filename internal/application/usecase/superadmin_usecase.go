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

// SuperAdminUseCase alta de tenants y de sus primeros usuarios.
type SuperAdminUseCase struct {
	tx         TenantTxRunner
	tenantRepo repository.TenantRepository
	userRepo   repository.UserRepository
	now        func() time.Time
}

// NewSuperAdminUseCase construye el caso de uso.
func NewSuperAdminUseCase(tx TenantTxRunner, tenantRepo repository.TenantRepository, userRepo repository.UserRepository) *SuperAdminUseCase {
	return &SuperAdminUseCase{tx: tx, tenantRepo: tenantRepo, userRepo: userRepo, now: time.Now}
}

// ListTenants más recientes primero.
func (uc *SuperAdminUseCase) ListTenants(ctx context.Context) ([]dto.TenantSummaryResponse, error) {
	list, err := uc.tenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TenantSummaryResponse, 0, len(list))
	for _, t := range list {
		out = append(out, dto.TenantSummaryResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt})
	}
	return out, nil
}

// CreateTenant crea el tenant (business_name = name) y su contador de recibos en 0, de forma atómica.
func (uc *SuperAdminUseCase) CreateTenant(ctx context.Context, in dto.CreateTenantRequest) (*dto.TenantSummaryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name requerido", domain.ErrInvalidInput)
	}
	now := uc.now()
	business := name
	t := &entity.Tenant{
		ID:           uuid.New().String(),
		Name:         name,
		BusinessName: &business,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := uc.tx.RunTenant(ctx, func(tenantRepo repository.TenantRepository, counterRepo repository.CounterRepository) error {
		if err := tenantRepo.Create(ctx, t); err != nil {
			return err
		}
		return counterRepo.EnsureExists(ctx, t.ID, entity.ReceiptCounterKey)
	})
	if err != nil {
		return nil, err
	}
	return &dto.TenantSummaryResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt}, nil
}

// ListTenantUsers usuarios de un tenant; domain.ErrNotFound si el tenant no existe.
func (uc *SuperAdminUseCase) ListTenantUsers(ctx context.Context, tenantID string) ([]dto.UserResponse, error) {
	if err := uc.requireTenant(ctx, tenantID); err != nil {
		return nil, err
	}
	list, err := uc.userRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// CreateTenantUser crea un ADMIN o USER en el tenant. Nunca SUPERADMIN.
func (uc *SuperAdminUseCase) CreateTenantUser(ctx context.Context, tenantID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := entity.Role(in.Role)
	if !role.AssignableByTenant() {
		return nil, fmt.Errorf("%w: rol inválido", domain.ErrInvalidInput)
	}
	if err := uc.requireTenant(ctx, tenantID); err != nil {
		return nil, err
	}
	tid := tenantID
	user, err := newUser(&tid, in.Username, in.Password, role, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

// CreateSuperAdmin provisiona un SUPERADMIN sin tenant. Solo lo usa la CLI.
func (uc *SuperAdminUseCase) CreateSuperAdmin(ctx context.Context, username, plain string) (*dto.UserResponse, error) {
	user, err := newUser(nil, username, plain, entity.RoleSuperAdmin, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

func (uc *SuperAdminUseCase) requireTenant(ctx context.Context, tenantID string) error {
	t, err := uc.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return nil
}
