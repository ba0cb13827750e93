package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS adds basic CORS headers and short-circuits OPTIONS preflight requests.
// origin is sent as Access-Control-Allow-Origin; "*" allows any origin.
func CORS(origin string) gin.HandlerFunc {
	const (
		allowedMethods = "GET, POST, OPTIONS"
		allowedHeaders = "Accept, Content-Type, X-Request-ID"
		exposedHeaders = "X-Request-ID"
		maxAge         = "600"
	)
	if origin == "" {
		origin = "*"
	}

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", allowedMethods)
		c.Header("Access-Control-Allow-Headers", allowedHeaders)
		c.Header("Access-Control-Expose-Headers", exposedHeaders)
		c.Header("Access-Control-Max-Age", maxAge)
		if origin != "*" {
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		}

		// For preflight requests, return immediately.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
