package handler

import (
	"net/http"

	"onyxshop/internal/apierror"
	"onyxshop/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Resumen GET /v1/admin/reportes/resumen
func (h *ReportesHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.ResumenPedidos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular el resumen"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Inversion GET /v1/admin/reportes/inversion
func (h *ReportesHandler) Inversion(c *gin.Context) {
	resp, err := h.svc.AnalisisInversion(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular la inversión"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
