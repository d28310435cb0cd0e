package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AgregarItemRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
}

// CambiarCantidadRequest adjusts a line by a signed delta. A line driven to
// zero or below is removed.
type CambiarCantidadRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LineaCarritoResponse struct {
	ProductoID  string          `json:"producto_id"`
	Nombre      string          `json:"nombre"`
	Cantidad    int             `json:"cantidad"`
	Precio      decimal.Decimal `json:"precio"`
	PrecioTexto string          `json:"precio_texto"`
	ImagenURL   *string         `json:"imagen_url"`
}

// CarritoResponse is the dependent state recomputed after every cart
// operation: line list, item count and the formatted total under the
// requested payment method.
type CarritoResponse struct {
	Items      []LineaCarritoResponse `json:"items"`
	Cantidad   int                    `json:"cantidad"`
	TotalBase  decimal.Decimal        `json:"total_base"`
	TotalTexto string                 `json:"total_texto"`
}
