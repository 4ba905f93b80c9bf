package dto

import "time"

// TenantResponse perfil del negocio.
type TenantResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BusinessName *string   `json:"business_name"`
	Phone        *string   `json:"phone"`
	Address      *string   `json:"address"`
	LogoURL      *string   `json:"logo_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// UpdateTenantRequest reemplaza el perfil; los campos opcionales omitidos quedan en null.
type UpdateTenantRequest struct {
	Name         string  `json:"name" validate:"notblank,max=200"`
	BusinessName *string `json:"business_name" validate:"omitempty,max=200"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
	Address      *string `json:"address" validate:"omitempty,max=300"`
	LogoURL      *string `json:"logo_url" validate:"omitempty,max=500"`
}

// CreateTenantRequest alta de tenant por SUPERADMIN.
type CreateTenantRequest struct {
	Name string `json:"name" validate:"notblank,max=200"`
}

// TenantSummaryResponse fila del listado de tenants.
type TenantSummaryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
