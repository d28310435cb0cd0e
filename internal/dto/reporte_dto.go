package dto

import "github.com/shopspring/decimal"

// ─── Deduction setting ───────────────────────────────────────────────────────

type DeduccionRequest struct {
	Porcentaje decimal.Decimal `json:"porcentaje" validate:"min=0,max=100"`
}

type DeduccionResponse struct {
	Porcentaje decimal.Decimal `json:"porcentaje"`
}

// ─── Orders summary ──────────────────────────────────────────────────────────

// ResumenPedidosResponse aggregates order history for the admin dashboard.
// Buckets follow the method label: zelle/mlc, tra/cup, and everything else
// counted as USD.
type ResumenPedidosResponse struct {
	TotalPedidos  int             `json:"total_pedidos"`
	IngresosTotal decimal.Decimal `json:"ingresos_total"`
	GananciaTotal decimal.Decimal `json:"ganancia_total"`
	TotalZelle    decimal.Decimal `json:"total_zelle"`
	TotalTra      decimal.Decimal `json:"total_tra"`
	TotalUSD      decimal.Decimal `json:"total_usd"`
	DeduccionPct  decimal.Decimal `json:"deduccion_pct"`
}

// ─── Investment analysis ─────────────────────────────────────────────────────

type InversionProducto struct {
	Nombre            string          `json:"nombre"`
	Costo             decimal.Decimal `json:"costo"`
	Precio            decimal.Decimal `json:"precio"`
	Stock             int             `json:"stock"`
	InversionTotal    decimal.Decimal `json:"inversion_total"`
	GananciaPotencial decimal.Decimal `json:"ganancia_potencial"`
	MargenPct         decimal.Decimal `json:"margen_pct"`
}

type InversionResponse struct {
	Productos         []InversionProducto `json:"productos"`
	InversionGlobal   decimal.Decimal     `json:"inversion_global"`
	GananciaPotencial decimal.Decimal     `json:"ganancia_potencial"`
	GananciaReal      decimal.Decimal     `json:"ganancia_real"`
	Recuperado        bool                `json:"recuperado"`
	ProgresoPct       decimal.Decimal     `json:"progreso_pct"`
	VentasFaltantes   *int                `json:"ventas_faltantes"`
}
