package service

import (
	"context"

	"github.com/deppfellow/transitsim/internal/config"
	"github.com/deppfellow/transitsim/internal/model"
)

type SimulationService struct {
	base
	latency config.LatencyConfig
}

func NewSimulationService(b base, latency config.LatencyConfig) *SimulationService {
	return &SimulationService{base: b, latency: latency}
}

// Run reports the outcome of a network simulation over req.Duration days.
func (s *SimulationService) Run(ctx context.Context, req *model.SimulationRequest) *model.SimulationResponse {
	s.pause(ctx, "run_simulation", s.latency.RunSimulation)

	return &model.SimulationResponse{
		Success: true,
		SimulationResults: model.SimulationResults{
			TotalPassengers: s.sampler.IntBetween(300000, 400000),
			BusAssignments:  s.sampler.IntBetween(2000, 2500),
			StopUtilization: s.sampler.Uniform(95, 99, 1),
			MaxOccupancy:    s.sampler.IntBetween(150, 180),
			EfficiencyScore: s.sampler.Uniform(85, 92, 1),
			CostReduction:   s.sampler.IntBetween(100000, 150000),
		},
		DurationDays: req.Duration,
	}
}
