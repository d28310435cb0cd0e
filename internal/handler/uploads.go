package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"onyxshop/internal/apierror"
	"onyxshop/internal/infra"

	"github.com/gin-gonic/gin"
)

const maxImagenBytes = 3 * 1024 * 1024

// UploadsHandler stores catalog images (products and categories) uploaded
// from the admin panel.
type UploadsHandler struct{ storage infra.Storage }

func NewUploadsHandler(storage infra.Storage) *UploadsHandler {
	return &UploadsHandler{storage: storage}
}

// SubirImagen POST /v1/admin/uploads/imagenes
func (h *UploadsHandler) SubirImagen(c *gin.Context) {
	fh, err := c.FormFile("imagen")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Debe adjuntar una imagen"))
		return
	}
	if fh.Size > maxImagenBytes {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("La imagen supera el tamaño máximo permitido"))
		return
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		c.JSON(http.StatusBadRequest, apierror.New("Formato de imagen no soportado"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer la imagen"))
		return
	}
	defer f.Close()
	datos, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer la imagen"))
		return
	}

	ruta := fmt.Sprintf("catalogo/%d%s", time.Now().UnixMilli(), ext)
	url, err := h.storage.Guardar(c.Request.Context(), "imagenes", ruta, datos)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al guardar la imagen"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
