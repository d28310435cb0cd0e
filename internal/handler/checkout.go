package handler

import (
	"errors"
	"io"
	"net/http"

	"onyxshop/internal/apierror"
	"onyxshop/internal/dto"
	"onyxshop/internal/middleware"
	"onyxshop/internal/service"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	svc             service.CheckoutService
	maxReciboTamano int64
}

func NewCheckoutHandler(svc service.CheckoutService, maxReciboMB int) *CheckoutHandler {
	return &CheckoutHandler{svc: svc, maxReciboTamano: int64(maxReciboMB) * 1024 * 1024}
}

// Checkout POST /v1/checkout
// Multipart form: contact fields plus an optional "recibo" image for
// proof-of-payment methods.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindFormAndValidate(c, &req) {
		return
	}

	recibo, ok := h.leerRecibo(c)
	if !ok {
		return
	}

	resp, err := h.svc.Checkout(c.Request.Context(), middleware.GetSession(c), req, recibo)
	if err != nil {
		h.errorCheckout(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// leerRecibo pulls the optional receipt file out of the form. A missing file
// is fine here; the service decides whether the method demands one.
func (h *CheckoutHandler) leerRecibo(c *gin.Context) (*dto.Recibo, bool) {
	fh, err := c.FormFile("recibo")
	if err != nil {
		return nil, true
	}
	if fh.Size > h.maxReciboTamano {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New(service.ErrComprobanteTamano.Error()))
		return nil, false
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el comprobante"))
		return nil, false
	}
	defer f.Close()

	datos, err := io.ReadAll(io.LimitReader(f, h.maxReciboTamano+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el comprobante"))
		return nil, false
	}
	if int64(len(datos)) > h.maxReciboTamano {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New(service.ErrComprobanteTamano.Error()))
		return nil, false
	}

	return &dto.Recibo{
		Nombre:      fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Datos:       datos,
	}, true
}

func (h *CheckoutHandler) errorCheckout(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCarritoVacio),
		errors.Is(err, service.ErrComprobanteRequerido),
		errors.Is(err, service.ErrComprobanteFormato):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.Is(err, service.ErrComprobanteTamano):
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New(err.Error()))
	case errors.Is(err, service.ErrStockInsuficiente),
		errors.Is(err, service.ErrProductoNoDisponible):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, apierror.New("Error al procesar el pedido"))
	}
}
