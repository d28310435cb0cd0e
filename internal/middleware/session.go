package middleware

import (
	"net/http"

	"onyxshop/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionKey = "session_id"

// RequireSession demands the anonymous cart session header on storefront
// routes that touch a cart. The client generates the ID once and reuses it;
// the server only validates the shape.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader("X-Session-ID")
		if sid == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, apierror.New("Falta el encabezado X-Session-ID"))
			return
		}
		if _, err := uuid.Parse(sid); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, apierror.New("X-Session-ID inválido"))
			return
		}
		c.Set(SessionKey, sid)
		c.Next()
	}
}

// GetSession retrieves the validated session id from the Gin context.
func GetSession(c *gin.Context) string {
	return c.GetString(SessionKey)
}
