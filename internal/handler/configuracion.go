package handler

import (
	"net/http"

	"onyxshop/internal/apierror"
	"onyxshop/internal/dto"
	"onyxshop/internal/service"

	"github.com/gin-gonic/gin"
)

type ConfiguracionHandler struct{ svc service.ConfiguracionService }

func NewConfiguracionHandler(svc service.ConfiguracionService) *ConfiguracionHandler {
	return &ConfiguracionHandler{svc: svc}
}

// ObtenerDeduccion GET /v1/admin/configuracion/deduccion
func (h *ConfiguracionHandler) ObtenerDeduccion(c *gin.Context) {
	resp, err := h.svc.ObtenerDeduccion(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar la configuración"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GuardarDeduccion PUT /v1/admin/configuracion/deduccion
func (h *ConfiguracionHandler) GuardarDeduccion(c *gin.Context) {
	var req dto.DeduccionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GuardarDeduccion(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al guardar la configuración"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
