package entity

import "time"

// Tenant representa un negocio aislado; es dueño de todas las entidades con tenant_id.
type Tenant struct {
	ID           string
	Name         string  // único, visible
	BusinessName *string // razón social impresa en recibos
	Phone        *string
	Address      *string
	LogoURL      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName devuelve la razón social si existe, si no el nombre del tenant.
func (t *Tenant) DisplayName() string {
	if t.BusinessName != nil && *t.BusinessName != "" {
		return *t.BusinessName
	}
	return t.Name
}
