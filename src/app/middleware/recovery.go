package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"jokester/src/app/http/response"
)

// Recovery is a middleware that recovers from panics and renders the generic
// error boundary. It logs the panic with stack trace for debugging.
//
// This should be the first middleware in the chain to catch all panics.
//
// Usage:
//
//	router.Use(middleware.Recovery(logger))
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)

				log.Error("panic recovered",
					"request_id", requestID,
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"stack", string(debug.Stack()),
				)

				// Don't expose internal details
				c.Abort()
				if !c.Writer.Written() {
					response.InternalError(c, requestID)
				}
			}
		}()

		c.Next()
	}
}
