// Package handler contains HTTP handlers for the site.
// Handlers are responsible for:
// - Parsing form submissions and path parameters
// - Calling use case methods
// - Rendering pages, JSON payloads or redirects
//
// Errors a handler can't answer itself are attached with c.Error and
// rendered by middleware.Boundary.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jokester/src/core/usecase"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	healthService *usecase.HealthService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(healthService *usecase.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// HealthResponse is the response for the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health reports that the process is serving requests.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}

// DetailedHealth checks every component. A degraded result is served
// with 503 so load balancers can act on it.
// GET /health/detailed
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	status := h.healthService.Check(c.Request.Context())
	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
