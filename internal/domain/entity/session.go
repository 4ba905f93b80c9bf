package entity

import "time"

// Session sesión de login. Solo se persiste el hash del token; el token crudo viaja en la cookie.
type Session struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Identity es el resultado de resolver un token de sesión válido.
type Identity struct {
	UserID     string
	Username   string
	Role       Role
	TenantID   *string
	TenantName *string
}

// HasTenant indica si la identidad opera sobre un tenant (SUPERADMIN no).
func (i *Identity) HasTenant() bool {
	return i != nil && i.TenantID != nil && *i.TenantID != ""
}

// Tenant devuelve el tenant_id o "" si no hay.
func (i *Identity) Tenant() string {
	if !i.HasTenant() {
		return ""
	}
	return *i.TenantID
}
