package service

import (
	"context"
	"math"
	"regexp"
	"strings"

	"onyxshop/internal/dto"
	"onyxshop/internal/model"
	"onyxshop/internal/repository"

	"github.com/shopspring/decimal"
)

// noDigitos strips everything that is not part of a plain decimal number, so
// stored totals like "CUP 7,800.00" or "$20.00" reduce to a parseable figure.
var noDigitos = regexp.MustCompile(`[^0-9.]`)

// ReporteService aggregates order history and inventory into the admin
// dashboard figures. Revenue always comes from the frozen TotalTexto of each
// order, never recomputed from current prices.
type ReporteService interface {
	ResumenPedidos(ctx context.Context) (dto.ResumenPedidosResponse, error)
	AnalisisInversion(ctx context.Context) (dto.InversionResponse, error)
}

type reporteService struct {
	pedidos   repository.PedidoRepository
	productos repository.ProductoRepository
	config    repository.ConfiguracionRepository
}

func NewReporteService(
	pedidos repository.PedidoRepository,
	productos repository.ProductoRepository,
	config repository.ConfiguracionRepository,
) ReporteService {
	return &reporteService{pedidos: pedidos, productos: productos, config: config}
}

// ImporteDeTexto recovers the numeric amount out of a formatted total.
// Unparseable text counts as zero, matching how historic rows behave.
func ImporteDeTexto(texto string) decimal.Decimal {
	limpio := noDigitos.ReplaceAllString(texto, "")
	v, err := decimal.NewFromString(limpio)
	if err != nil {
		return decimal.Zero
	}
	return v
}

func (s *reporteService) deduccion(ctx context.Context) decimal.Decimal {
	valor, err := s.config.Obtener(ctx, model.ClaveDeduccion)
	if err != nil {
		return decimal.Zero
	}
	pct, err := decimal.NewFromString(valor)
	if err != nil {
		return decimal.Zero
	}
	return pct
}

func (s *reporteService) ResumenPedidos(ctx context.Context) (dto.ResumenPedidosResponse, error) {
	pedidos, _, err := s.pedidos.List(ctx, dto.PedidoFilter{Estado: "all", Page: 1, Limit: 200})
	if err != nil {
		return dto.ResumenPedidosResponse{}, err
	}
	pct := s.deduccion(ctx)
	cien := decimal.NewFromInt(100)

	resumen := dto.ResumenPedidosResponse{
		TotalPedidos:  len(pedidos),
		IngresosTotal: decimal.Zero,
		GananciaTotal: decimal.Zero,
		TotalZelle:    decimal.Zero,
		TotalTra:      decimal.Zero,
		TotalUSD:      decimal.Zero,
		DeduccionPct:  pct,
	}

	for _, p := range pedidos {
		importe := ImporteDeTexto(p.TotalTexto)
		metodo := strings.ToLower(p.MetodoPago)

		resumen.IngresosTotal = resumen.IngresosTotal.Add(importe)
		resumen.GananciaTotal = resumen.GananciaTotal.Add(importe.Mul(pct).Div(cien))

		switch {
		case strings.Contains(metodo, "zelle") || strings.Contains(metodo, "mlc"):
			resumen.TotalZelle = resumen.TotalZelle.Add(importe)
		case strings.Contains(metodo, "tra") || strings.Contains(metodo, "cup"):
			resumen.TotalTra = resumen.TotalTra.Add(importe)
		default:
			resumen.TotalUSD = resumen.TotalUSD.Add(importe)
		}
	}
	return resumen, nil
}

func (s *reporteService) AnalisisInversion(ctx context.Context) (dto.InversionResponse, error) {
	productos, err := s.productos.ListAll(ctx)
	if err != nil {
		return dto.InversionResponse{}, err
	}
	completados, err := s.pedidos.ListCompletados(ctx)
	if err != nil {
		return dto.InversionResponse{}, err
	}

	pct := s.deduccion(ctx)
	cien := decimal.NewFromInt(100)

	// Real profit is the operator cut over completed orders only.
	gananciaReal := decimal.Zero
	for _, p := range completados {
		gananciaReal = gananciaReal.Add(ImporteDeTexto(p.TotalTexto).Mul(pct).Div(cien))
	}

	inversionGlobal := decimal.Zero
	gananciaPotencial := decimal.Zero
	unidadesTotales := 0

	filas := make([]dto.InversionProducto, 0, len(productos))
	for _, p := range productos {
		stock := decimal.NewFromInt(int64(p.Stock))
		inversion := p.Costo.Mul(stock)
		gananciaUnitaria := p.Precio.Sub(p.Costo)
		ganancia := gananciaUnitaria.Mul(stock)

		inversionGlobal = inversionGlobal.Add(inversion)
		gananciaPotencial = gananciaPotencial.Add(ganancia)
		unidadesTotales += p.Stock

		// Margin is relative to cost, not sale price.
		margen := decimal.Zero
		if p.Costo.IsPositive() {
			margen = gananciaUnitaria.Div(p.Costo).Mul(cien)
		}

		filas = append(filas, dto.InversionProducto{
			Nombre:            p.Nombre,
			Costo:             p.Costo,
			Precio:            p.Precio,
			Stock:             p.Stock,
			InversionTotal:    inversion,
			GananciaPotencial: ganancia,
			MargenPct:         margen.Round(2),
		})
	}

	resp := dto.InversionResponse{
		Productos:         filas,
		InversionGlobal:   inversionGlobal,
		GananciaPotencial: gananciaPotencial,
		GananciaReal:      gananciaReal,
	}

	deficit := inversionGlobal.Sub(gananciaReal)
	if !deficit.IsPositive() {
		resp.Recuperado = true
		resp.ProgresoPct = cien
		return resp, nil
	}

	if inversionGlobal.IsPositive() {
		resp.ProgresoPct = gananciaReal.Div(inversionGlobal).Mul(cien).Round(2)
	}

	// Estimated sales left to break even: deficit over the average profit per
	// stocked unit. Computed as one division; chaining avg price × avg margin
	// compounds decimal.Div truncation and inflates the ceiling by one.
	if unidadesTotales > 0 {
		gananciaPorUnidad := gananciaPotencial.Div(decimal.NewFromInt(int64(unidadesTotales)))
		if gananciaPorUnidad.IsPositive() {
			faltantes := int(math.Ceil(deficit.Div(gananciaPorUnidad).InexactFloat64()))
			resp.VentasFaltantes = &faltantes
		}
	}
	return resp, nil
}
