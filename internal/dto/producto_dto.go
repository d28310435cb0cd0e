package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"       validate:"required,min=2,max=120"`
	Precio      decimal.Decimal `json:"precio"       validate:"required,gt=0"`
	Costo       decimal.Decimal `json:"costo"        validate:"min=0"`
	Stock       int             `json:"stock"        validate:"min=0"`
	CategoriaID string          `json:"categoria_id" validate:"required,uuid"`
	ImagenURL   *string         `json:"imagen_url"   validate:"omitempty,url"`
}

type ActualizarProductoRequest struct {
	Nombre    *string          `json:"nombre"     validate:"omitempty,min=2,max=120"`
	Precio    *decimal.Decimal `json:"precio"     validate:"omitempty,gt=0"`
	Costo     *decimal.Decimal `json:"costo"      validate:"omitempty,min=0"`
	Stock     *int             `json:"stock"      validate:"omitempty,min=0"`
	ImagenURL *string          `json:"imagen_url" validate:"omitempty,url"`
	Activo    *bool            `json:"activo"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductoFilter struct {
	CategoriaID string `form:"categoria_id"`
	Nombre      string `form:"nombre"`
	Activo      string `form:"activo"` // "false" | "all" | default: activos
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	CategoriaID string          `json:"categoria_id"`
	ImagenURL   *string         `json:"imagen_url"`
	Activo      bool            `json:"activo"`
	CreatedAt   string          `json:"created_at"`
	// PrecioTexto is the display price under the requested payment method,
	// recomputed on every request — never cached across a method change.
	PrecioTexto string `json:"precio_texto"`
	// Costo is only populated for admin requests.
	Costo *decimal.Decimal `json:"costo,omitempty"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
