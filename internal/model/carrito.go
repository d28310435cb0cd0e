package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineaCarrito is one cart line: a product snapshot taken at add-time plus a
// quantity. The snapshot price is only a fallback — totals and stock ceilings
// always prefer the live catalog row. Lines live in Redis, not in Postgres,
// and no two lines of the same cart reference the same product.
type LineaCarrito struct {
	ProductoID uuid.UUID       `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	ImagenURL  *string         `json:"imagen_url,omitempty"`
	Cantidad   int             `json:"cantidad"`
}
