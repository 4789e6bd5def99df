package service

import (
	"time"

	"github.com/deppfellow/transitsim/internal/server"
)

type Services struct {
	Optimization *OptimizationService
	Forecast     *ForecastService
	Simulation   *SimulationService
}

// NewServices wires every service to the server's random source, logger
// and latency table.
func NewServices(s *server.Server) (*Services, error) {
	b := base{
		sampler: s.Random,
		logger:  s.Logger,
		sleep:   time.Sleep,
	}
	latency := s.Config.Simulation.Latency

	return &Services{
		Optimization: NewOptimizationService(b, latency),
		Forecast:     NewForecastService(b, latency),
		Simulation:   NewSimulationService(b, latency),
	}, nil
}
