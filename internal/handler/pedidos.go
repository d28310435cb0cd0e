package handler

import (
	"errors"
	"net/http"

	"onyxshop/internal/apierror"
	"onyxshop/internal/dto"
	"onyxshop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Listar GET /v1/admin/pedidos
func (h *PedidosHandler) Listar(c *gin.Context) {
	var filter dto.PedidoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros inválidos"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar pedidos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /v1/admin/pedidos/:id
func (h *PedidosHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, svcErr := h.svc.Obtener(c.Request.Context(), id)
	if svcErr != nil {
		if errors.Is(svcErr, service.ErrPedidoNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(svcErr.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar el pedido"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PDF GET /v1/admin/pedidos/:id/pdf
func (h *PedidosHandler) PDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	data, nombre, svcErr := h.svc.GenerarPDF(c.Request.Context(), id)
	if svcErr != nil {
		if errors.Is(svcErr, service.ErrPedidoNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(svcErr.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el PDF"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// EliminarTodos DELETE /v1/admin/pedidos
// Wipes the whole history. Admin role only; there is no per-order delete.
func (h *PedidosHandler) EliminarTodos(c *gin.Context) {
	if err := h.svc.EliminarTodos(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar los pedidos"))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
