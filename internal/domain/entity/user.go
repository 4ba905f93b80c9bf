package entity

import "time"

// Role es el rol de un usuario. Orden total: USER < ADMIN < SUPERADMIN.
type Role string

// Roles válidos para User.
const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPERADMIN"
)

var roleRank = map[Role]int{
	RoleUser:       1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// Rank devuelve la posición del rol en el orden de autorización; 0 si el rol es desconocido.
func (r Role) Rank() int {
	return roleRank[r]
}

// Valid indica si el rol pertenece a la enumeración.
func (r Role) Valid() bool {
	return r.Rank() > 0
}

// AtLeast indica si r es mayor o igual que min. Un rol desconocido nunca cumple.
func (r Role) AtLeast(min Role) bool {
	return r.Valid() && r.Rank() >= min.Rank()
}

// AssignableByTenant indica si el rol puede asignarse desde la gestión de usuarios (nunca SUPERADMIN).
func (r Role) AssignableByTenant() bool {
	return r == RoleAdmin || r == RoleUser
}

// User representa un usuario del sistema. TenantID es nil solo para SUPERADMIN.
type User struct {
	ID           string
	TenantID     *string
	Username     string // único global
	Role         Role
	PasswordSalt string // base64
	PasswordHash string // base64 PBKDF2-SHA256, nunca la contraseña plana
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
