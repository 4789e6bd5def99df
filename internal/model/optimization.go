package model

import "github.com/deppfellow/transitsim/internal/binding"

const (
	DefaultFileCount      = 0
	DefaultPopulationSize = 20
	DefaultMaxGenerations = 30
)

// AIOptimizeRequest is the body of POST /api/ai-optimize.
type AIOptimizeRequest struct {
	FileCount int `json:"file_count"`
}

func (r *AIOptimizeRequest) Bind(f binding.Fields) {
	r.FileCount = f.Int("file_count", DefaultFileCount)
}

// AIImprovements are percentage improvements reported by the AI optimizer.
type AIImprovements struct {
	WaitTimeReduction     float64 `json:"wait_time_reduction"`
	EfficiencyGain        float64 `json:"efficiency_gain"`
	OvercrowdingReduction float64 `json:"overcrowding_reduction"`
	SatisfactionIncrease  float64 `json:"satisfaction_increase"`
}

// NetworkMetrics are the dashboard metrics after optimization. The camelCase
// keys are what the dashboard reads.
type NetworkMetrics struct {
	AvgWaitTime      float64 `json:"avgWaitTime"`
	OccupancyRate    int     `json:"occupancyRate"`
	OnTimePerf       float64 `json:"onTimePerf"`
	OvercrowdingRate float64 `json:"overcrowdingRate"`
}

type AIOptimizeResponse struct {
	Success        bool           `json:"success"`
	Improvements   AIImprovements `json:"improvements"`
	NewMetrics     NetworkMetrics `json:"new_metrics"`
	ProcessedFiles int            `json:"processed_files"`
}

// GeneticOptimizeRequest is the body of POST /api/genetic-optimize.
// PopulationSize is read but does not influence the response.
type GeneticOptimizeRequest struct {
	PopulationSize int `json:"population_size"`
	MaxGenerations int `json:"max_generations"`
}

func (r *GeneticOptimizeRequest) Bind(f binding.Fields) {
	r.PopulationSize = f.Int("population_size", DefaultPopulationSize)
	r.MaxGenerations = f.Int("max_generations", DefaultMaxGenerations)
}

type GeneticImprovements struct {
	RouteEfficiency float64 `json:"route_efficiency"`
	CostReduction   int64   `json:"cost_reduction"`
}

type GeneticOptimizeResponse struct {
	Success              bool                `json:"success"`
	BestFitness          float64             `json:"best_fitness"`
	GenerationsCompleted int                 `json:"generations_completed"`
	OptimizationComplete bool                `json:"optimization_complete"`
	Improvements         GeneticImprovements `json:"improvements"`
}
