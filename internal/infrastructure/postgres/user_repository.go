package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, tenant_id, username, role, password_salt, password_hash, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(
		&u.ID, &u.TenantID, &u.Username, &u.Role, &u.PasswordSalt, &u.PasswordHash, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.TenantID, user.Username, user.Role, user.PasswordSalt, user.PasswordHash, user.IsActive,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByUsername obtiene un usuario por username (único global).
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1 LIMIT 1`, username)
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Update escribe solo los campos pedidos: rol, estado y/o credenciales.
func (r *UserRepo) Update(ctx context.Context, user *entity.User, fields ...repository.UserField) error {
	if len(fields) == 0 {
		fields = repository.AllUserFields
	}
	sets := make([]assignment, 0, len(fields)+2)
	for _, f := range fields {
		switch f {
		case repository.UserRole:
			sets = append(sets, assignment{column: "role", value: user.Role})
		case repository.UserIsActive:
			sets = append(sets, assignment{column: "is_active", value: user.IsActive})
		case repository.UserPassword:
			sets = append(sets,
				assignment{column: "password_salt", value: user.PasswordSalt},
				assignment{column: "password_hash", value: user.PasswordHash})
		default:
			return fmt.Errorf("update user: campo desconocido %q", f)
		}
	}
	sets = append(sets, assignment{column: "updated_at", value: user.UpdatedAt})

	query, args := updateStatement("users", "id = $1", []any{user.ID}, sets)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByTenant lista usuarios del tenant: ADMIN antes que USER, luego por username.
func (r *UserRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE tenant_id = $1
		ORDER BY CASE role WHEN 'SUPERADMIN' THEN 3 WHEN 'ADMIN' THEN 2 WHEN 'USER' THEN 1 ELSE 0 END DESC, username ASC`
	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}
