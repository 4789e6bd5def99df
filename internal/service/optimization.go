package service

import (
	"context"

	"github.com/deppfellow/transitsim/internal/config"
	"github.com/deppfellow/transitsim/internal/model"
)

type OptimizationService struct {
	base
	latency config.LatencyConfig
}

func NewOptimizationService(b base, latency config.LatencyConfig) *OptimizationService {
	return &OptimizationService{base: b, latency: latency}
}

// AIOptimize returns improvement and post-optimization network metrics for
// the uploaded files.
func (s *OptimizationService) AIOptimize(ctx context.Context, req *model.AIOptimizeRequest) *model.AIOptimizeResponse {
	s.pause(ctx, "ai_optimize", s.latency.AIOptimize)

	return &model.AIOptimizeResponse{
		Success: true,
		Improvements: model.AIImprovements{
			WaitTimeReduction:     s.sampler.Uniform(10, 20, 1),
			EfficiencyGain:        s.sampler.Uniform(8, 15, 1),
			OvercrowdingReduction: s.sampler.Uniform(30, 50, 1),
			SatisfactionIncrease:  s.sampler.Uniform(20, 30, 1),
		},
		NewMetrics: model.NetworkMetrics{
			AvgWaitTime:      s.sampler.Uniform(6, 8, 1),
			OccupancyRate:    s.sampler.IntBetween(65, 80),
			OnTimePerf:       s.sampler.Uniform(92, 98, 1),
			OvercrowdingRate: s.sampler.Uniform(0.01, 0.03, 3),
		},
		ProcessedFiles: req.FileCount,
	}
}

// GeneticOptimize reports a finished genetic algorithm run of
// req.MaxGenerations generations.
func (s *OptimizationService) GeneticOptimize(ctx context.Context, req *model.GeneticOptimizeRequest) *model.GeneticOptimizeResponse {
	s.loggerFrom(ctx).Debug().
		Int("population_size", req.PopulationSize).
		Int("max_generations", req.MaxGenerations).
		Msg("genetic optimization requested")

	s.pause(ctx, "genetic_optimize", s.latency.GeneticOptimize)

	return &model.GeneticOptimizeResponse{
		Success:              true,
		BestFitness:          s.sampler.Uniform(85, 95, 2),
		GenerationsCompleted: req.MaxGenerations,
		OptimizationComplete: true,
		Improvements: model.GeneticImprovements{
			RouteEfficiency: s.sampler.Uniform(15, 25, 1),
			CostReduction:   int64(s.sampler.Uniform(10000, 50000, 0)),
		},
	}
}
