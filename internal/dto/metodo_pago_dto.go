package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearMetodoPagoRequest struct {
	Nombre string          `json:"nombre" validate:"required,min=2,max=60"`
	Codigo string          `json:"codigo" validate:"required,min=1,max=10"`
	Modo   string          `json:"modo"   validate:"required,oneof=none percent divide"`
	Valor  decimal.Decimal `json:"valor"  validate:"required"`
}

type ActualizarMetodoPagoRequest struct {
	Nombre *string          `json:"nombre" validate:"omitempty,min=2,max=60"`
	Modo   *string          `json:"modo"   validate:"omitempty,oneof=none percent divide"`
	Valor  *decimal.Decimal `json:"valor"`
	Activo *bool            `json:"activo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MetodoPagoResponse struct {
	ID     string          `json:"id"`
	Nombre string          `json:"nombre"`
	Codigo string          `json:"codigo"`
	Modo   string          `json:"modo"`
	Valor  decimal.Decimal `json:"valor"`
	Activo bool            `json:"activo"`
}
