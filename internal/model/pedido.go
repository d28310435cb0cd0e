package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order lifecycle. A direct (cash) settlement is completed immediately;
// proof-of-payment settlements stay pending until the operator verifies the
// uploaded receipt.
const (
	PedidoPendiente  = "pending"
	PedidoCompletado = "completed"
)

// Pedido is an immutable order record created exactly once per successful
// settlement. The storefront never mutates it; the admin surface may read and
// bulk-delete.
type Pedido struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	// Codigo is the human-facing order id, e.g. CS-EF-483920 or CS-ZELLE-483920.
	Codigo string `gorm:"uniqueIndex;not null"`
	// ClaveIdempotencia is the client-generated token that makes retries after
	// a reported failure safe: a duplicate submission returns the original
	// order instead of creating a second one.
	ClaveIdempotencia *string `gorm:"uniqueIndex"`
	ClienteNombre     string  `gorm:"not null"`
	Telefono          string  `gorm:"not null"`
	Direccion         string  `gorm:"not null"`
	Referencia        *string
	// TotalTexto is the pre-formatted, currency-prefixed total as shown to the
	// buyer at settlement time ("$20.00", "CUP 7,800.00").
	TotalTexto string `gorm:"not null"`
	MetodoPago string `gorm:"not null"` // method label, e.g. "Efectivo", "ZELLE"
	ReciboURL  *string
	Estado     string `gorm:"not null;default:'pending'"` // pending | completed
	CreatedAt  time.Time

	Items []PedidoItem `gorm:"foreignKey:PedidoID"`
}

func (Pedido) TableName() string { return "pedidos" }

// PedidoItem is a cart-line snapshot frozen into the order.
type PedidoItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null"`
	Nombre         string          `gorm:"not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// PrecioTexto freezes the formatted line subtotal under the settlement
	// method ("$20.00", "CUP 7,800.00"), like Pedido.TotalTexto does.
	PrecioTexto string `gorm:"not null;default:''"`
}

func (PedidoItem) TableName() string { return "pedido_items" }
