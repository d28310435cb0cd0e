package handler

import (
	"net/http"

	"onyxshop/internal/apierror"
	"onyxshop/internal/dto"
	"onyxshop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MetodosPagoHandler struct{ svc service.MetodoPagoService }

func NewMetodosPagoHandler(svc service.MetodoPagoService) *MetodosPagoHandler {
	return &MetodosPagoHandler{svc: svc}
}

// Crear POST /v1/admin/metodos-pago
func (h *MetodosPagoHandler) Crear(c *gin.Context) {
	var req dto.CrearMetodoPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/admin/metodos-pago
func (h *MetodosPagoHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar métodos de pago"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/admin/metodos-pago/:id
func (h *MetodosPagoHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarMetodoPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.Actualizar(c.Request.Context(), id, req)
	if svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/admin/metodos-pago/:id
func (h *MetodosPagoHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if svcErr := h.svc.Eliminar(c.Request.Context(), id); svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
