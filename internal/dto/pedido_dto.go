package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ───────────────────────────────────────────────────────────

type PedidoFilter struct {
	Estado string `form:"estado"` // pending | completed | all (default)
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PedidoItemResponse struct {
	ProductoID     string          `json:"producto_id"`
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	PrecioTexto    string          `json:"precio_texto"`
}

type PedidoResponse struct {
	ID            string               `json:"id"`
	Codigo        string               `json:"codigo"`
	ClienteNombre string               `json:"cliente_nombre"`
	Telefono      string               `json:"telefono"`
	Direccion     string               `json:"direccion"`
	Referencia    *string              `json:"referencia"`
	Items         []PedidoItemResponse `json:"items"`
	TotalTexto    string               `json:"total_texto"`
	MetodoPago    string               `json:"metodo_pago"`
	ReciboURL     *string              `json:"recibo_url"`
	Estado        string               `json:"estado"`
	CreatedAt     string               `json:"created_at"`
}

type PedidoListResponse struct {
	Data  []PedidoResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}
