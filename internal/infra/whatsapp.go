package infra

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// whatsapp.go — the external messaging handoff. The storefront never talks to
// WhatsApp directly; it hands the client a wa.me deep link with the order
// message pre-filled.

// ItemMensaje is one itemized line of the handoff message.
type ItemMensaje struct {
	Cantidad    int
	Nombre      string
	PrecioTexto string
}

// DatosMensaje collects every field embedded in the handoff message.
type DatosMensaje struct {
	Tienda     string
	Codigo     string
	Fecha      time.Time
	MetodoPago string
	Cliente    string
	Telefono   string
	PrefijoTel string
	Direccion  string
	Referencia string
	Items      []ItemMensaje
	TotalTexto string
	// ReciboURL, when set, appends the proof-of-payment block.
	ReciboURL string
}

// ComponerMensajePedido renders the structured operator notification.
func ComponerMensajePedido(d DatosMensaje) string {
	var items strings.Builder
	for i, it := range d.Items {
		if i > 0 {
			items.WriteString("\n")
		}
		fmt.Fprintf(&items, "┃ 📦 *%dx* %s (%s)", it.Cantidad, it.Nombre, it.PrecioTexto)
	}

	referencia := d.Referencia
	if referencia == "" {
		referencia = "No especificada"
	}

	cuerpo := fmt.Sprintf(`✨ *NUEVA ORDEN - %s* ✨
┏━━━━━━━━━━━━━━━━━━━━━┓
┃ 🆔 *ID:* #%s
┃ 📅 *FECHA:* %s
┃ 💳 *PAGO:* %s
┗━━━━━━━━━━━━━━━━━━━━━┛

👤 *DATOS DEL CLIENTE*
┃ *Nombre:* %s
┃ *Teléfono:* %s %s

📍 *ENTREGA*
┃ *Dirección:* %s
┃ *Referencia:* %s

🛍️ *PRODUCTOS SELECCIONADOS*
%s

──────────────────────
💰 *TOTAL A PAGAR:* *%s*
──────────────────────

🚀 _Por favor, confirme que ha recibido este pedido para comenzar a procesarlo._`,
		d.Tienda, d.Codigo, d.Fecha.Format("02/01/2006"), d.MetodoPago,
		d.Cliente, d.PrefijoTel, d.Telefono,
		d.Direccion, referencia,
		items.String(), d.TotalTexto)

	if d.ReciboURL != "" {
		return fmt.Sprintf("🖼️ *PAGO CON COMPROBANTE*\n\n%s\n\n🔗 *Recibo:* %s", cuerpo, d.ReciboURL)
	}
	return cuerpo
}

// EnlaceWhatsApp builds the wa.me deep link with the message pre-filled.
func EnlaceWhatsApp(telefono, mensaje string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", telefono, url.QueryEscape(mensaje))
}
