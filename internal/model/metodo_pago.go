package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pricing modes for a payment method. Valor is interpreted per mode:
// a surcharge percentage for ModoPercent, a conversion rate for ModoDivide,
// and ignored for ModoNone.
const (
	ModoNone    = "none"
	ModoPercent = "percent"
	ModoDivide  = "divide"
)

// CodigoBase is the code of the base currency. Prices under it are shown
// with a plain "$" prefix; any other code is shown as "<code> ".
const CodigoBase = "$"

// MetodoPago is a buyer-selectable pricing configuration. The admin surface
// creates and mutates these; the storefront only reads active ones.
type MetodoPago struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string    `gorm:"not null"`
	// Codigo is the machine tag used by the storefront to select the method
	// and to branch settlement: "$", "Z", "Tra", "mlc", "CUP", ...
	Codigo    string          `gorm:"uniqueIndex;not null"`
	Modo      string          `gorm:"not null;default:'none'"` // none | percent | divide
	Valor     decimal.Decimal `gorm:"type:decimal(12,4);not null;default:1"`
	Activo    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MetodoPago) TableName() string { return "metodos_pago" }

// MetodoEfectivo is the synthetic fallback used whenever the selected code
// does not resolve to an active method.
func MetodoEfectivo() MetodoPago {
	return MetodoPago{
		Nombre: "Efectivo",
		Codigo: CodigoBase,
		Modo:   ModoNone,
		Valor:  decimal.NewFromInt(1),
	}
}

// RequiereComprobante reports whether settlement under this method demands an
// uploaded payment receipt before the order may be persisted.
func (m *MetodoPago) RequiereComprobante() bool {
	switch m.Codigo {
	case "Z", "Tra", "mlc":
		return true
	}
	return false
}

// EtiquetaPedido is the tag embedded in generated order codes:
// "EF" for direct methods, the upper-cased settlement name otherwise.
func (m *MetodoPago) EtiquetaPedido() string {
	switch m.Codigo {
	case "Z":
		return "ZELLE"
	case "Tra":
		return "TRA"
	case "mlc":
		return "MLC"
	}
	return "EF"
}
