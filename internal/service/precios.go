package service

import (
	"context"
	"errors"

	"onyxshop/internal/model"
	"onyxshop/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gorm.io/gorm"
)

// precios.go — the pricing engine. Pure arithmetic over its inputs: callers
// must resolve a missing or inactive method to model.MetodoEfectivo() before
// invoking. Quotes are computed fresh on every render and every total, never
// cached across a method change, because Valor can change at any moment via
// the admin panel.

// Cotizacion is the result of pricing a base amount under a payment method.
type Cotizacion struct {
	// Texto is the currency-prefixed display string: "$1,250.00" for the base
	// code, "CUP 7,800.00" otherwise. Always exactly two fraction digits.
	Texto string
	// Monto is the numeric charge amount before display rounding.
	Monto decimal.Decimal
	// Metodo is the method's display label.
	Metodo string
}

var cien = decimal.NewFromInt(100)

// impresora formats amounts with locale-aware digit grouping.
var impresora = message.NewPrinter(language.English)

// CotizarPrecio converts a base price into its charge amount under the given
// payment method.
//
//	none:    monto = base
//	percent: monto = base * (1 + valor/100)   — surcharge
//	divide:  monto = base / valor             — rate conversion
func CotizarPrecio(base decimal.Decimal, metodo model.MetodoPago) Cotizacion {
	monto := base
	switch metodo.Modo {
	case model.ModoPercent:
		monto = base.Mul(decimal.NewFromInt(1).Add(metodo.Valor.Div(cien)))
	case model.ModoDivide:
		if !metodo.Valor.IsZero() {
			monto = base.Div(metodo.Valor)
		}
	}

	prefijo := metodo.Codigo + " "
	if metodo.Codigo == model.CodigoBase {
		prefijo = model.CodigoBase
	}

	return Cotizacion{
		Texto:  prefijo + FormatearImporte(monto),
		Monto:  monto,
		Metodo: metodo.Nombre,
	}
}

// FormatearImporte renders an amount with grouping separators and exactly two
// fraction digits: 7800 → "7,800.00".
func FormatearImporte(v decimal.Decimal) string {
	f, _ := v.Float64()
	return impresora.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// ResolverMetodo maps a storefront currency code to its active payment
// method, falling back to the synthetic direct-mode default when the code is
// unknown or the method was deactivated under the buyer's feet.
func ResolverMetodo(ctx context.Context, repo repository.MetodoPagoRepository, codigo string) model.MetodoPago {
	if codigo != "" {
		m, err := repo.ObtenerPorCodigo(ctx, codigo)
		if err == nil && m.Activo {
			return *m
		}
	}
	return model.MetodoEfectivo()
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// notFound reports whether err is the repository's record-not-found signal.
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
