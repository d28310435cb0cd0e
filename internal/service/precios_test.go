package service

import (
	"context"
	"testing"

	"onyxshop/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCotizarPrecioModoNone(t *testing.T) {
	metodo := model.MetodoEfectivo()

	cot := CotizarPrecio(decimal.NewFromInt(20), metodo)
	assert.Equal(t, "$20.00", cot.Texto)
	assert.True(t, cot.Monto.Equal(decimal.NewFromInt(20)))
}

func TestCotizarPrecioModoPercent(t *testing.T) {
	metodo := model.MetodoPago{
		Nombre: "Zelle",
		Codigo: "Z",
		Modo:   model.ModoPercent,
		Valor:  decimal.NewFromInt(5),
	}

	cot := CotizarPrecio(decimal.NewFromInt(100), metodo)
	assert.Equal(t, "Z 105.00", cot.Texto)
	assert.True(t, cot.Monto.Equal(decimal.NewFromInt(105)))
}

func TestCotizarPrecioModoDivide(t *testing.T) {
	metodo := model.MetodoPago{
		Nombre: "CUP",
		Codigo: "CUP",
		Modo:   model.ModoDivide,
		Valor:  decimal.RequireFromString("0.5"),
	}

	cot := CotizarPrecio(decimal.NewFromInt(3900), metodo)
	assert.Equal(t, "CUP 7,800.00", cot.Texto)
	assert.True(t, cot.Monto.Equal(decimal.NewFromInt(7800)))
}

func TestCotizarPrecioModoDivideValorCero(t *testing.T) {
	// A zero rate must not divide: the base amount passes through untouched.
	metodo := model.MetodoPago{
		Nombre: "Roto",
		Codigo: "X",
		Modo:   model.ModoDivide,
		Valor:  decimal.Zero,
	}

	cot := CotizarPrecio(decimal.NewFromInt(10), metodo)
	assert.True(t, cot.Monto.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "X 10.00", cot.Texto)
}

func TestFormatearImporte(t *testing.T) {
	casos := map[string]string{
		"0":          "0.00",
		"20":         "20.00",
		"7800":       "7,800.00",
		"1250.5":     "1,250.50",
		"1234567.89": "1,234,567.89",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, FormatearImporte(decimal.RequireFromString(entrada)), "entrada %s", entrada)
	}
}

func TestResolverMetodoFallback(t *testing.T) {
	inactivo := &model.MetodoPago{Nombre: "Zelle", Codigo: "Z", Modo: model.ModoPercent, Valor: decimal.NewFromInt(5), Activo: false}
	activo := &model.MetodoPago{Nombre: "Transferencia", Codigo: "Tra", Modo: model.ModoDivide, Valor: decimal.NewFromInt(1), Activo: true}
	repo := newStubMetodoRepo(inactivo, activo)
	ctx := context.Background()

	// Known active code resolves to the stored method.
	m := ResolverMetodo(ctx, repo, "Tra")
	assert.Equal(t, "Transferencia", m.Nombre)

	// Inactive, unknown and empty codes all fall back to direct cash.
	for _, codigo := range []string{"Z", "nope", ""} {
		m := ResolverMetodo(ctx, repo, codigo)
		assert.Equal(t, model.CodigoBase, m.Codigo, "codigo %q", codigo)
		assert.Equal(t, model.ModoNone, m.Modo)
	}
}
