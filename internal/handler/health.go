package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/transitsim/internal/middleware"
	"github.com/deppfellow/transitsim/internal/model"
	"github.com/deppfellow/transitsim/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves the connectivity check used by the dashboard and
// the liveness endpoint used by monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// Test returns the fixed greeting the dashboard uses to check connectivity.
func (h *HealthHandler) Test(c echo.Context) error {
	return c.JSON(http.StatusOK, model.TestResponse{
		Message: model.GreetingMessage,
		Status:  model.StatusSuccess,
	})
}

// CheckHealth reports liveness. The service has no dependencies, so it is
// healthy whenever it can answer.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	uptime := time.Since(h.server.StartedAt).Truncate(time.Second)

	middleware.GetLogger(c).Debug().
		Str("operation", "health_check").
		Dur("uptime", uptime).
		Msg("health check passed")

	return c.JSON(http.StatusOK, model.HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Uptime:      uptime.String(),
		Version:     server.Version,
	})
}
