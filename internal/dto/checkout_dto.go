package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CheckoutRequest carries the contact form plus the selected payment method
// code. It is bound from a multipart form so proof-of-payment methods can
// attach the receipt image in the same submission.
type CheckoutRequest struct {
	Nombre     string `form:"nombre"     validate:"required,min=3,max=120"`
	Telefono   string `form:"telefono"   validate:"required,telefono_movil"`
	Direccion  string `form:"direccion"  validate:"required,min=5,max=240"`
	Referencia string `form:"referencia" validate:"max=240"`
	Moneda     string `form:"moneda"     validate:"required,max=10"`
	// ClaveIdempotencia is generated client-side once per logical order;
	// resubmitting after a reported failure reuses it.
	ClaveIdempotencia string `form:"clave_idempotencia" validate:"omitempty,uuid"`
}

// Recibo is a receipt image already read from the multipart form.
// Format and size are validated before settlement starts.
type Recibo struct {
	Nombre      string
	ContentType string
	Datos       []byte
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CheckoutResponse struct {
	PedidoID   string  `json:"pedido_id"`
	Codigo     string  `json:"codigo"`
	Estado     string  `json:"estado"`
	TotalTexto string  `json:"total_texto"`
	MetodoPago string  `json:"metodo_pago"`
	ReciboURL  *string `json:"recibo_url,omitempty"`
	// WhatsAppURL is the pre-filled deep link the client opens to hand the
	// order off to the operator.
	WhatsAppURL string `json:"whatsapp_url"`
}
