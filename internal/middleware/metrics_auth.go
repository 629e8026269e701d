package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// MetricsAuth protects /metrics with a bearer token. An empty token leaves
// the endpoint open.
func MetricsAuth(token string) gin.HandlerFunc {
	deny := func(c *gin.Context, message string) {
		c.Header("WWW-Authenticate", `Bearer realm="Metrics"`)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":   "unauthorized",
			"message": message,
		})
	}

	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		provided, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok {
			deny(c, "Bearer token required")
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			deny(c, "Invalid token")
			return
		}
		c.Next()
	}
}
