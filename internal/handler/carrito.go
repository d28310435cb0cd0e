package handler

import (
	"errors"
	"net/http"
	"strconv"

	"onyxshop/internal/apierror"
	"onyxshop/internal/dto"
	"onyxshop/internal/middleware"
	"onyxshop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CarritoHandler exposes the session cart. Every route sits behind
// middleware.RequireSession, so the session id is always present.
type CarritoHandler struct{ svc service.CarritoService }

func NewCarritoHandler(svc service.CarritoService) *CarritoHandler {
	return &CarritoHandler{svc: svc}
}

// Obtener GET /v1/carrito
func (h *CarritoHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), middleware.GetSession(c), c.Query("moneda"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar el carrito"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AgregarItem POST /v1/carrito/items
func (h *CarritoHandler) AgregarItem(c *gin.Context) {
	var req dto.AgregarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de producto inválido"))
		return
	}
	resp, err := h.svc.AgregarItem(c.Request.Context(), middleware.GetSession(c), productoID, c.Query("moneda"))
	if err != nil {
		h.errorCarrito(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CambiarCantidad PUT /v1/carrito/items/:index
func (h *CarritoHandler) CambiarCantidad(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Índice inválido"))
		return
	}
	var req dto.CambiarCantidadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CambiarCantidad(c.Request.Context(), middleware.GetSession(c), index, req.Delta, c.Query("moneda"))
	if err != nil {
		h.errorCarrito(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// QuitarLinea DELETE /v1/carrito/items/:index
func (h *CarritoHandler) QuitarLinea(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Índice inválido"))
		return
	}
	resp, err := h.svc.QuitarLinea(c.Request.Context(), middleware.GetSession(c), index, c.Query("moneda"))
	if err != nil {
		h.errorCarrito(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Vaciar DELETE /v1/carrito
func (h *CarritoHandler) Vaciar(c *gin.Context) {
	if err := h.svc.Vaciar(c.Request.Context(), middleware.GetSession(c)); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al vaciar el carrito"))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

func (h *CarritoHandler) errorCarrito(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLineaInexistente):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrProductoNoDisponible),
		errors.Is(err, service.ErrStockMaximo),
		errors.Is(err, service.ErrLimiteStock):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar el carrito"))
	}
}
