package handler

import (
	"github.com/deppfellow/transitsim/internal/server"
	"github.com/deppfellow/transitsim/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one object.
type Handlers struct {
	Health       *HealthHandler
	Optimization *OptimizationHandler
	Forecast     *ForecastHandler
	Simulation   *SimulationHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		Optimization: NewOptimizationHandler(s, services.Optimization),
		Forecast:     NewForecastHandler(s, services.Forecast),
		Simulation:   NewSimulationHandler(s, services.Simulation),
	}
}
