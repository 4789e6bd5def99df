// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and maps the API routes to their
// handlers.
package router

import (
	"net/http"

	"github.com/deppfellow/transitsim/internal/handler"
	"github.com/deppfellow/transitsim/internal/middleware"
	"github.com/deppfellow/transitsim/internal/model"
	"github.com/deppfellow/transitsim/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// Route is an entry of the startup banner.
type Route struct {
	Method string
	Path   string
}

// Routes lists the canned endpoints in banner order.
var Routes = []Route{
	{http.MethodGet, "/test"},
	{http.MethodPost, "/api/ai-optimize"},
	{http.MethodPost, "/api/genetic-optimize"},
	{http.MethodPost, "/api/lstm-forecast"},
	{http.MethodPost, "/api/prophet-forecast"},
	{http.MethodPost, "/api/run-simulation"},
}

func NewRouter(s *server.Server, h *handler.Handlers) (*echo.Echo, error) {
	middlewares, err := middleware.NewMiddlewares(s)
	if err != nil {
		return nil, err
	}

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	// Request logging goes through zerolog; keep echo's own logger quiet.
	router.Logger.SetLevel(log.OFF)

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Metrics.Collect(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h, middlewares)

	router.Match([]string{http.MethodGet, http.MethodHead}, "/test", h.Health.Test)

	api := router.Group("/api")

	api.POST("/ai-optimize", handler.Handle(
		h.Optimization.Handler,
		h.Optimization.AIOptimize,
		http.StatusOK,
		func() *model.AIOptimizeRequest { return &model.AIOptimizeRequest{} },
	))

	api.POST("/genetic-optimize", handler.Handle(
		h.Optimization.Handler,
		h.Optimization.GeneticOptimize,
		http.StatusOK,
		func() *model.GeneticOptimizeRequest { return &model.GeneticOptimizeRequest{} },
	))

	api.POST("/lstm-forecast", handler.Handle(
		h.Forecast.Handler,
		h.Forecast.LSTM,
		http.StatusOK,
		func() *model.ForecastRequest { return &model.ForecastRequest{} },
	))

	api.POST("/prophet-forecast", handler.Handle(
		h.Forecast.Handler,
		h.Forecast.Prophet,
		http.StatusOK,
		func() *model.ForecastRequest { return &model.ForecastRequest{} },
	))

	api.POST("/run-simulation", handler.Handle(
		h.Simulation.Handler,
		h.Simulation.RunSimulation,
		http.StatusOK,
		func() *model.SimulationRequest { return &model.SimulationRequest{} },
	))

	return router, nil
}
