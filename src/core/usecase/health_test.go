package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"jokester/src/core/ports"
	"jokester/src/core/usecase"
)

func TestHealthService_Check(t *testing.T) {
	t.Parallel()

	healthy := checkerFunc(func(context.Context) error { return nil })
	broken := checkerFunc(func(context.Context) error { return errDatabaseDown })

	t.Run("all healthy", func(t *testing.T) {
		t.Parallel()

		svc := usecase.NewHealthService(discardLogger(), map[string]ports.HealthChecker{"database": healthy})
		status := svc.Check(context.Background())

		assert.Equal(t, "ok", status.Status)
		assert.Equal(t, "healthy", status.Components["database"].Status)
	})

	t.Run("unhealthy component degrades status", func(t *testing.T) {
		t.Parallel()

		svc := usecase.NewHealthService(discardLogger(), map[string]ports.HealthChecker{
			"database": broken,
			"other":    healthy,
		})
		status := svc.Check(context.Background())

		assert.Equal(t, "degraded", status.Status)
		assert.Equal(t, usecase.ComponentHealth{Status: "unhealthy", Message: "database down"}, status.Components["database"])
		assert.Equal(t, "healthy", status.Components["other"].Status)
	})
}
