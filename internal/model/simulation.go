package model

import "github.com/deppfellow/transitsim/internal/binding"

const DefaultDurationDays = 7

// SimulationRequest is the body of POST /api/run-simulation.
type SimulationRequest struct {
	Duration int `json:"duration"`
}

func (r *SimulationRequest) Bind(f binding.Fields) {
	r.Duration = f.Int("duration", DefaultDurationDays)
}

type SimulationResults struct {
	TotalPassengers int     `json:"total_passengers"`
	BusAssignments  int     `json:"bus_assignments"`
	StopUtilization float64 `json:"stop_utilization"`
	MaxOccupancy    int     `json:"max_occupancy"`
	EfficiencyScore float64 `json:"efficiency_score"`
	CostReduction   int     `json:"cost_reduction"`
}

type SimulationResponse struct {
	Success           bool              `json:"success"`
	SimulationResults SimulationResults `json:"simulation_results"`
	DurationDays      int               `json:"duration_days"`
}
