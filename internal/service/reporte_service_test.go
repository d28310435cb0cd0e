package service

import (
	"context"
	"testing"

	"onyxshop/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImporteDeTexto(t *testing.T) {
	casos := map[string]string{
		"$20.00":       "20",
		"CUP 7,800.00": "7800",
		"Z 105.50":     "105.5",
		"sin importe":  "0",
		"":             "0",
	}
	for texto, esperado := range casos {
		assert.True(t, ImporteDeTexto(texto).Equal(decimal.RequireFromString(esperado)),
			"texto %q → %s", texto, ImporteDeTexto(texto))
	}
}

func sembrarPedido(repo *stubPedidoRepo, metodo, total, estado string) {
	_ = repo.Create(context.Background(), nil, &model.Pedido{
		Codigo:     "CS-EF-000001",
		MetodoPago: metodo,
		TotalTexto: total,
		Estado:     estado,
	})
}

func TestResumenPedidosAgrupaPorMetodo(t *testing.T) {
	pedidos := newStubPedidoRepo()
	sembrarPedido(pedidos, "Efectivo", "$20.00", model.PedidoCompletado)
	sembrarPedido(pedidos, "ZELLE", "Z 105.00", model.PedidoPendiente)
	sembrarPedido(pedidos, "MLC", "mlc 30.00", model.PedidoCompletado)
	sembrarPedido(pedidos, "TRA", "CUP 7,800.00", model.PedidoPendiente)

	config := newStubConfigRepo()
	require.NoError(t, config.Guardar(context.Background(), model.ClaveDeduccion, "10"))

	svc := NewReporteService(pedidos, newStubProductoRepo(), config)
	resumen, err := svc.ResumenPedidos(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, resumen.TotalPedidos)
	assert.True(t, resumen.IngresosTotal.Equal(decimal.RequireFromString("7955")), "ingresos %s", resumen.IngresosTotal)
	// 10% operator cut over every order regardless of state.
	assert.True(t, resumen.GananciaTotal.Equal(decimal.RequireFromString("795.5")), "ganancia %s", resumen.GananciaTotal)
	// MLC joins the Zelle bucket, CUP joins transfers.
	assert.True(t, resumen.TotalZelle.Equal(decimal.RequireFromString("135")), "zelle %s", resumen.TotalZelle)
	assert.True(t, resumen.TotalTra.Equal(decimal.RequireFromString("7800")), "tra %s", resumen.TotalTra)
	assert.True(t, resumen.TotalUSD.Equal(decimal.RequireFromString("20")), "usd %s", resumen.TotalUSD)
	assert.True(t, resumen.DeduccionPct.Equal(decimal.RequireFromString("10")))
}

func TestResumenPedidosSinDeduccionConfigurada(t *testing.T) {
	pedidos := newStubPedidoRepo()
	sembrarPedido(pedidos, "Efectivo", "$50.00", model.PedidoCompletado)

	svc := NewReporteService(pedidos, newStubProductoRepo(), newStubConfigRepo())
	resumen, err := svc.ResumenPedidos(context.Background())
	require.NoError(t, err)

	assert.True(t, resumen.GananciaTotal.IsZero())
	assert.True(t, resumen.DeduccionPct.IsZero())
}

func TestAnalisisInversionPendiente(t *testing.T) {
	productos := newStubProductoRepo(
		// cost 5, price 10 → 100% margin; investment 50, potential profit 50.
		&model.Producto{Nombre: "A", Costo: decimal.NewFromInt(5), Precio: decimal.NewFromInt(10), Stock: 10, Activo: true},
		// cost 20, price 25 → 25% margin; investment 100, potential profit 25.
		&model.Producto{Nombre: "B", Costo: decimal.NewFromInt(20), Precio: decimal.NewFromInt(25), Stock: 5, Activo: true},
	)
	pedidos := newStubPedidoRepo()
	sembrarPedido(pedidos, "Efectivo", "$300.00", model.PedidoCompletado)
	sembrarPedido(pedidos, "Efectivo", "$999.00", model.PedidoPendiente) // pending: no real profit

	config := newStubConfigRepo()
	require.NoError(t, config.Guardar(context.Background(), model.ClaveDeduccion, "10"))

	svc := NewReporteService(pedidos, productos, config)
	resp, err := svc.AnalisisInversion(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Productos, 2)
	assert.True(t, resp.Productos[0].MargenPct.Equal(decimal.RequireFromString("100")))
	assert.True(t, resp.Productos[1].MargenPct.Equal(decimal.RequireFromString("25")))

	assert.True(t, resp.InversionGlobal.Equal(decimal.RequireFromString("150")))
	assert.True(t, resp.GananciaPotencial.Equal(decimal.RequireFromString("75")))
	// Only the completed $300 order counts: 300 × 10% = 30.
	assert.True(t, resp.GananciaReal.Equal(decimal.RequireFromString("30")))

	assert.False(t, resp.Recuperado)
	assert.True(t, resp.ProgresoPct.Equal(decimal.RequireFromString("20")), "progreso %s", resp.ProgresoPct)

	// Deficit 120; average profit per stocked unit 75/15 = 5, exactly, so the
	// estimate is ceil(120/5) = 24 — never 25 from a truncated divisor.
	require.NotNil(t, resp.VentasFaltantes)
	assert.Equal(t, 24, *resp.VentasFaltantes)
}

func TestAnalisisInversionRecuperada(t *testing.T) {
	productos := newStubProductoRepo(
		&model.Producto{Nombre: "A", Costo: decimal.NewFromInt(2), Precio: decimal.NewFromInt(4), Stock: 5, Activo: true},
	)
	pedidos := newStubPedidoRepo()
	sembrarPedido(pedidos, "Efectivo", "$200.00", model.PedidoCompletado)

	config := newStubConfigRepo()
	require.NoError(t, config.Guardar(context.Background(), model.ClaveDeduccion, "50"))

	svc := NewReporteService(pedidos, productos, config)
	resp, err := svc.AnalisisInversion(context.Background())
	require.NoError(t, err)

	// Real profit 100 covers the 10 invested.
	assert.True(t, resp.Recuperado)
	assert.True(t, resp.ProgresoPct.Equal(decimal.RequireFromString("100")))
	assert.Nil(t, resp.VentasFaltantes)
}
