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
	"github.com/jhoicas/pos-api/pkg/password"
)

// MinPasswordLength largo mínimo de contraseña al crear o restablecer.
const MinPasswordLength = 6

// UserUseCase gestión de usuarios dentro de un tenant (ADMIN+).
type UserUseCase struct {
	repo repository.UserRepository
	now  func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, now: time.Now}
}

// List ordena por rol (mayor primero) y username.
func (uc *UserUseCase) List(ctx context.Context, tenantID string) ([]dto.UserResponse, error) {
	list, err := uc.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Create crea un usuario ADMIN o USER del tenant. domain.ErrDuplicate si el username existe.
func (uc *UserUseCase) Create(ctx context.Context, tenantID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := entity.Role(in.Role)
	if !role.AssignableByTenant() {
		return nil, fmt.Errorf("%w: rol inválido", domain.ErrInvalidInput)
	}
	tid := tenantID
	user, err := newUser(&tid, in.Username, in.Password, role, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

// Update activa/desactiva, cambia rol o restablece la contraseña de un usuario del tenant.
func (uc *UserUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.IsActive == nil && in.Role == nil && in.Password == nil {
		return nil, fmt.Errorf("%w: nada para actualizar", domain.ErrInvalidInput)
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.TenantID == nil || *user.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	var fields []repository.UserField
	if in.Role != nil {
		role := entity.Role(*in.Role)
		if !role.AssignableByTenant() {
			return nil, fmt.Errorf("%w: rol inválido", domain.ErrInvalidInput)
		}
		user.Role = role
		fields = append(fields, repository.UserRole)
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
		fields = append(fields, repository.UserIsActive)
	}
	if in.Password != nil {
		if len(*in.Password) < MinPasswordLength {
			return nil, fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, MinPasswordLength)
		}
		salt, hash, err := password.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordSalt, user.PasswordHash = salt, hash
		fields = append(fields, repository.UserPassword)
	}
	user.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, user, fields...); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

// newUser valida username y contraseña y deriva el hash.
func newUser(tenantID *string, username, plain string, role entity.Role, now time.Time) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username requerido", domain.ErrInvalidInput)
	}
	if len(plain) < MinPasswordLength {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, MinPasswordLength)
	}
	salt, hash, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}
	return &entity.User{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		Username:     username,
		Role:         role,
		PasswordSalt: salt,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
