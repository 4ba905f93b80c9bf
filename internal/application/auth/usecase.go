package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/logger"
	"github.com/jhoicas/pos-api/pkg/password"
)

// FailureCounter recibe un evento por cada login fallido (métricas).
type FailureCounter interface {
	LoginFailed()
}

// LoginResult token crudo para la cookie y su vencimiento.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// AuthUseCase casos de uso de autenticación por sesión opaca.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	ttl         time.Duration
	failures    FailureCounter
	log         *logger.Logger
	now         func() time.Time

	// se usa para igualar el costo de verificación cuando el usuario no existe
	dummySalt, dummyHash string
}

// NewAuthUseCase construye el caso de uso de auth. failures puede ser nil.
func NewAuthUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, ttl time.Duration, failures FailureCounter, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	salt, hash, _ := password.Hash(uuid.NewString())
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		ttl:         ttl,
		failures:    failures,
		log:         log.Component("auth"),
		now:         time.Now,
		dummySalt:   salt,
		dummyHash:   hash,
	}
}

// ResolveIdentity devuelve la identidad de un token vigente o nil. No modifica nada.
func (uc *AuthUseCase) ResolveIdentity(ctx context.Context, rawToken string) (*entity.Identity, error) {
	if rawToken == "" {
		return nil, nil
	}
	id, err := uc.sessionRepo.FindIdentity(ctx, password.HashToken(rawToken), uc.now())
	if err != nil {
		return nil, fmt.Errorf("resolver sesión: %w", err)
	}
	return id, nil
}

// Authenticate verifica usuario y contraseña y crea una sesión.
// Usuario inexistente, inactivo o contraseña incorrecta devuelven el mismo domain.ErrInvalidCredentials.
func (uc *AuthUseCase) Authenticate(ctx context.Context, username, plain string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || plain == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		password.Verify(plain, uc.dummySalt, uc.dummyHash)
		return nil, uc.rejected()
	}
	if !password.Verify(plain, user.PasswordSalt, user.PasswordHash) || !user.IsActive {
		return nil, uc.rejected()
	}

	token, err := password.NewToken()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	session := &entity.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: password.HashToken(token),
		ExpiresAt: now.Add(uc.ttl),
		CreatedAt: now,
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	uc.PurgeExpiredSessions(ctx)
	return &LoginResult{Token: token, ExpiresAt: session.ExpiresAt}, nil
}

func (uc *AuthUseCase) rejected() error {
	if uc.failures != nil {
		uc.failures.LoginFailed()
	}
	uc.log.Warn().Msg("login rechazado")
	return domain.ErrInvalidCredentials
}

// EndSession elimina la sesión del token. Idempotente; token vacío no hace nada.
func (uc *AuthUseCase) EndSession(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	return uc.sessionRepo.DeleteByTokenHash(ctx, password.HashToken(rawToken))
}

// PurgeExpiredSessions borra sesiones vencidas. Los errores solo se registran.
func (uc *AuthUseCase) PurgeExpiredSessions(ctx context.Context) {
	n, err := uc.sessionRepo.DeleteExpired(ctx, uc.now())
	if err != nil {
		uc.log.Error().Err(err).Msg("purgar sesiones vencidas")
		return
	}
	if n > 0 {
		uc.log.Debug().Int64("deleted", n).Msg("sesiones vencidas purgadas")
	}
}

// Authorize indica si la identidad alcanza el rol mínimo. Roles desconocidos nunca pasan.
func Authorize(identity *entity.Identity, min entity.Role) bool {
	return identity != nil && identity.Role.AtLeast(min)
}
