package ports

import (
	"context"
)

// HealthChecker is implemented by any dependency whose reachability is reported
// by the detailed health endpoint.
type HealthChecker interface {
	// Health returns nil when the dependency is reachable.
	Health(ctx context.Context) error
}
