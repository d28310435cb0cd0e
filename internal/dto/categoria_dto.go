package dto

import "github.com/google/uuid"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Nombre    string  `json:"nombre" validate:"required,min=2,max=80"`
	ImagenURL *string `json:"imagen_url" validate:"omitempty,url"`
}

type ActualizarCategoriaRequest struct {
	Nombre    *string `json:"nombre" validate:"omitempty,min=2,max=80"`
	ImagenURL *string `json:"imagen_url" validate:"omitempty,url"`
	Activo    *bool   `json:"activo"`
}

// AjusteMasivoRequest applies a percentage change to every product price in a
// category. Negative percentages decrease.
type AjusteMasivoRequest struct {
	Porcentaje float64 `json:"porcentaje" validate:"required,ne=0,min=-90,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CategoriaResponse struct {
	ID        uuid.UUID `json:"id"`
	Nombre    string    `json:"nombre"`
	ImagenURL *string   `json:"imagen_url"`
	Activo    bool      `json:"activo"`
}
