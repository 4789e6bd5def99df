package model

import (
	"testing"

	"github.com/deppfellow/transitsim/internal/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestDefaults(t *testing.T) {
	ai := &AIOptimizeRequest{FileCount: -1}
	ai.Bind(nil)
	assert.Equal(t, 0, ai.FileCount)

	ga := &GeneticOptimizeRequest{}
	ga.Bind(nil)
	assert.Equal(t, 20, ga.PopulationSize)
	assert.Equal(t, 30, ga.MaxGenerations)

	sim := &SimulationRequest{}
	sim.Bind(nil)
	assert.Equal(t, 7, sim.Duration)
}

func TestRequestBindsBody(t *testing.T) {
	fields, err := binding.Parse([]byte(`{"file_count": 5, "population_size": 50, "max_generations": 42, "duration": 14}`))
	require.NoError(t, err)

	ai := &AIOptimizeRequest{}
	ai.Bind(fields)
	assert.Equal(t, 5, ai.FileCount)

	ga := &GeneticOptimizeRequest{}
	ga.Bind(fields)
	assert.Equal(t, 50, ga.PopulationSize)
	assert.Equal(t, 42, ga.MaxGenerations)

	sim := &SimulationRequest{}
	sim.Bind(fields)
	assert.Equal(t, 14, sim.Duration)
}
