package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"onyxshop/internal/config"
	"onyxshop/internal/dto"
	"onyxshop/internal/infra"
	"onyxshop/internal/model"
	"onyxshop/internal/repository"
	"onyxshop/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrCarritoVacio         = errors.New("El carrito está vacío")
	ErrComprobanteRequerido = errors.New("Debe adjuntar el comprobante de pago")
	ErrComprobanteFormato   = errors.New("El comprobante debe ser una imagen PNG o JPEG")
	ErrComprobanteTamano    = errors.New("El comprobante supera el tamaño máximo permitido")
)

// Despachador is the slice of the async dispatcher checkout needs.
type Despachador interface {
	EnqueueNotificacion(ctx context.Context, payload interface{}) error
}

// CheckoutService settles a cart into an order. Settlement is the only write
// path for orders: it reserves stock, freezes cart lines into item snapshots,
// stores the proof-of-payment receipt when the method requires one, and hands
// the buyer a WhatsApp deep link for the operator.
type CheckoutService interface {
	Checkout(ctx context.Context, sessionID string, req dto.CheckoutRequest, recibo *dto.Recibo) (*dto.CheckoutResponse, error)
}

type checkoutService struct {
	cfg        *config.Config
	carrito    CarritoService
	inventario InventarioService
	metodos    repository.MetodoPagoRepository
	pedidos    repository.PedidoRepository
	storage    infra.Storage
	dispatcher Despachador
}

func NewCheckoutService(
	cfg *config.Config,
	carrito CarritoService,
	inventario InventarioService,
	metodos repository.MetodoPagoRepository,
	pedidos repository.PedidoRepository,
	storage infra.Storage,
	dispatcher Despachador,
) CheckoutService {
	return &checkoutService{
		cfg:        cfg,
		carrito:    carrito,
		inventario: inventario,
		metodos:    metodos,
		pedidos:    pedidos,
		storage:    storage,
		dispatcher: dispatcher,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, sessionID string, req dto.CheckoutRequest, recibo *dto.Recibo) (*dto.CheckoutResponse, error) {
	// A resubmission with a known idempotency key returns the original order
	// without touching stock, storage or the cart.
	if req.ClaveIdempotencia != "" {
		existente, err := s.pedidos.FindByClaveIdempotencia(ctx, req.ClaveIdempotencia)
		switch {
		case err != nil && !notFound(err):
			return nil, err
		case err == nil && existente != nil:
			log.Info().Str("pedido", existente.Codigo).Msg("checkout: reintento idempotente, devolviendo pedido existente")
			return s.respuestaExistente(existente)
		}
	}

	lineas, err := s.carrito.Lineas(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(lineas) == 0 {
		return nil, ErrCarritoVacio
	}

	metodo := ResolverMetodo(ctx, s.metodos, req.Moneda)

	// Proof-of-payment methods demand a valid receipt before any side effect.
	if metodo.RequiereComprobante() {
		if err := s.validarRecibo(recibo); err != nil {
			return nil, err
		}
	}

	// All-or-nothing: either every line is reserved or nothing is.
	productos, err := s.inventario.ReservarStock(ctx, lineas)
	if err != nil {
		return nil, err
	}

	// Totals use the live catalog price read inside the reservation, never the
	// cart snapshot.
	total := decimal.Zero
	items := make([]model.PedidoItem, 0, len(lineas))
	mensajeItems := make([]infra.ItemMensaje, 0, len(lineas))
	for _, linea := range lineas {
		precio := linea.Precio
		if p, ok := productos[linea.ProductoID]; ok {
			precio = p.Precio
		}
		subtotal := precio.Mul(decimal.NewFromInt(int64(linea.Cantidad)))
		total = total.Add(subtotal)
		subtotalTexto := CotizarPrecio(subtotal, metodo).Texto

		items = append(items, model.PedidoItem{
			ProductoID:     linea.ProductoID,
			Nombre:         linea.Nombre,
			Cantidad:       linea.Cantidad,
			PrecioUnitario: precio,
			PrecioTexto:    subtotalTexto,
		})
		mensajeItems = append(mensajeItems, infra.ItemMensaje{
			Cantidad:    linea.Cantidad,
			Nombre:      linea.Nombre,
			PrecioTexto: subtotalTexto,
		})
	}
	cotTotal := CotizarPrecio(total, metodo)

	ahora := time.Now()
	codigo := fmt.Sprintf("%s-%s-%06d", s.cfg.OrderPrefix, metodo.EtiquetaPedido(), ahora.UnixMilli()%1_000_000)

	// Receipt upload happens before the insert: an order row never references
	// a receipt that is not already stored.
	var reciboURL *string
	if metodo.RequiereComprobante() {
		ruta := fmt.Sprintf("orders/%s/%d%s", codigo, ahora.UnixMilli(), extensionRecibo(recibo.ContentType))
		url, err := s.storage.Guardar(ctx, "comprobantes", ruta, recibo.Datos)
		if err != nil {
			return nil, fmt.Errorf("no se pudo guardar el comprobante: %w", err)
		}
		reciboURL = &url
	}

	estado := model.PedidoCompletado
	etiquetaPago := metodo.Nombre
	if metodo.RequiereComprobante() {
		estado = model.PedidoPendiente
		etiquetaPago = metodo.EtiquetaPedido()
	}

	pedido := &model.Pedido{
		Codigo:        codigo,
		ClienteNombre: req.Nombre,
		Telefono:      req.Telefono,
		Direccion:     req.Direccion,
		TotalTexto:    cotTotal.Texto,
		MetodoPago:    etiquetaPago,
		ReciboURL:     reciboURL,
		Estado:        estado,
		Items:         items,
	}
	if req.Referencia != "" {
		pedido.Referencia = &req.Referencia
	}
	if req.ClaveIdempotencia != "" {
		pedido.ClaveIdempotencia = &req.ClaveIdempotencia
	}

	if err := s.pedidos.Create(ctx, nil, pedido); err != nil {
		return nil, err
	}

	datos := infra.DatosMensaje{
		Tienda:     s.cfg.StoreName,
		Codigo:     codigo,
		Fecha:      ahora,
		MetodoPago: etiquetaPago,
		Cliente:    req.Nombre,
		Telefono:   req.Telefono,
		PrefijoTel: s.cfg.PhonePrefix,
		Direccion:  req.Direccion,
		Referencia: req.Referencia,
		Items:      mensajeItems,
		TotalTexto: cotTotal.Texto,
	}
	if reciboURL != nil {
		datos.ReciboURL = *reciboURL
	}
	mensaje := infra.ComponerMensajePedido(datos)
	enlace := infra.EnlaceWhatsApp(s.cfg.WhatsAppPhone, mensaje)

	// The order is already committed; cart clearing and the operator
	// notification must not fail the settlement.
	if err := s.carrito.Vaciar(ctx, sessionID); err != nil {
		log.Warn().Err(err).Str("sesion", sessionID).Msg("checkout: no se pudo vaciar el carrito")
	}
	if s.dispatcher != nil {
		payload := worker.NotificacionPayload{
			PedidoID:   pedido.ID.String(),
			Codigo:     codigo,
			Estado:     estado,
			TotalTexto: cotTotal.Texto,
			Mensaje:    mensaje,
		}
		if err := s.dispatcher.EnqueueNotificacion(ctx, payload); err != nil {
			log.Warn().Err(err).Str("pedido", codigo).Msg("checkout: no se pudo encolar la notificación")
		}
	}

	log.Info().
		Str("pedido", codigo).
		Str("estado", estado).
		Str("metodo", etiquetaPago).
		Str("total", cotTotal.Texto).
		Msg("checkout: pedido registrado")

	return &dto.CheckoutResponse{
		PedidoID:    pedido.ID.String(),
		Codigo:      codigo,
		Estado:      estado,
		TotalTexto:  cotTotal.Texto,
		MetodoPago:  etiquetaPago,
		ReciboURL:   reciboURL,
		WhatsAppURL: enlace,
	}, nil
}

func (s *checkoutService) respuestaExistente(p *model.Pedido) (*dto.CheckoutResponse, error) {
	items := make([]infra.ItemMensaje, 0, len(p.Items))
	for _, it := range p.Items {
		texto := it.PrecioTexto
		if texto == "" {
			// Rows created before the column existed carry no frozen text.
			texto = "$" + it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad))).StringFixed(2)
		}
		items = append(items, infra.ItemMensaje{
			Cantidad:    it.Cantidad,
			Nombre:      it.Nombre,
			PrecioTexto: texto,
		})
	}
	datos := infra.DatosMensaje{
		Tienda:     s.cfg.StoreName,
		Codigo:     p.Codigo,
		Fecha:      p.CreatedAt,
		MetodoPago: p.MetodoPago,
		Cliente:    p.ClienteNombre,
		Telefono:   p.Telefono,
		PrefijoTel: s.cfg.PhonePrefix,
		Direccion:  p.Direccion,
		Items:      items,
		TotalTexto: p.TotalTexto,
	}
	if p.Referencia != nil {
		datos.Referencia = *p.Referencia
	}
	if p.ReciboURL != nil {
		datos.ReciboURL = *p.ReciboURL
	}

	return &dto.CheckoutResponse{
		PedidoID:    p.ID.String(),
		Codigo:      p.Codigo,
		Estado:      p.Estado,
		TotalTexto:  p.TotalTexto,
		MetodoPago:  p.MetodoPago,
		ReciboURL:   p.ReciboURL,
		WhatsAppURL: infra.EnlaceWhatsApp(s.cfg.WhatsAppPhone, infra.ComponerMensajePedido(datos)),
	}, nil
}

func (s *checkoutService) validarRecibo(recibo *dto.Recibo) error {
	if recibo == nil || len(recibo.Datos) == 0 {
		return ErrComprobanteRequerido
	}
	switch recibo.ContentType {
	case "image/png", "image/jpeg":
	default:
		return ErrComprobanteFormato
	}
	if len(recibo.Datos) > s.cfg.MaxReceiptSizeMB*1024*1024 {
		return ErrComprobanteTamano
	}
	return nil
}

func extensionRecibo(contentType string) string {
	if strings.Contains(contentType, "png") {
		return ".png"
	}
	return ".jpg"
}
