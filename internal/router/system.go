package router

import (
	"net/http"

	"github.com/deppfellow/transitsim/internal/handler"
	"github.com/deppfellow/transitsim/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the API
// contract: liveness and Prometheus metrics.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	r.Match([]string{http.MethodGet, http.MethodHead}, "/status", h.Health.CheckHealth)

	r.GET("/metrics", m.Metrics.Handler())
}
