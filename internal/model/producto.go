package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a storefront catalog item. It is only visible and orderable
// while Activo && Stock > 0; the stock check is always made against the live
// row, never against a cart snapshot.
type Producto struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string    `gorm:"index;not null"`
	// Precio is the base price, currency-neutral. The pricing engine converts
	// it per payment method at render and at checkout.
	Precio decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// Costo is the acquisition cost, consumed by the admin investment report only.
	Costo       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Stock       int             `gorm:"not null;default:0"`
	CategoriaID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ImagenURL   *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (Producto) TableName() string { return "productos" }

// Disponible reports whether the product can be shown and added to carts.
func (p *Producto) Disponible() bool { return p.Activo && p.Stock > 0 }
