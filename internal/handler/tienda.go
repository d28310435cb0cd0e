package handler

import (
	"net/http"

	"onyxshop/internal/apierror"
	"onyxshop/internal/dto"
	"onyxshop/internal/service"

	"github.com/gin-gonic/gin"
)

// TiendaHandler is the public, unauthenticated storefront read surface.
// Every listing takes an optional ?moneda=<codigo> so prices render under the
// shopper's selected payment method.
type TiendaHandler struct{ svc service.CatalogoService }

func NewTiendaHandler(svc service.CatalogoService) *TiendaHandler {
	return &TiendaHandler{svc: svc}
}

// Productos GET /v1/tienda/productos
func (h *TiendaHandler) Productos(c *gin.Context) {
	var filter dto.ProductoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros inválidos"))
		return
	}
	resp, err := h.svc.ListarProductos(c.Request.Context(), filter, c.Query("moneda"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Categorias GET /v1/tienda/categorias
func (h *TiendaHandler) Categorias(c *gin.Context) {
	resp, err := h.svc.ListarCategorias(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar categorías"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MetodosPago GET /v1/tienda/metodos-pago
func (h *TiendaHandler) MetodosPago(c *gin.Context) {
	resp, err := h.svc.ListarMetodosPago(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar métodos de pago"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
