package usecase

import (
	"context"
	"log/slog"
	"sort"

	"jokester/src/core/ports"
)

// HealthService reports the health of the application's dependencies.
type HealthService struct {
	log      *slog.Logger
	checkers map[string]ports.HealthChecker
}

// NewHealthService creates a new HealthService checking the given named components.
func NewHealthService(log *slog.Logger, checkers map[string]ports.HealthChecker) *HealthService {
	return &HealthService{
		log:      log,
		checkers: checkers,
	}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check performs a health check of all registered components.
// The overall status is "degraded" when any component is unhealthy.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth, len(s.checkers)),
	}

	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.checkers[name].Health(ctx); err != nil {
			status.Status = "degraded"
			status.Components[name] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
			s.log.Warn("health check failed", "component", name, "error", err)
			continue
		}
		status.Components[name] = ComponentHealth{Status: "healthy"}
	}

	return status
}
