package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in     float64
		places int32
		want   float64
	}{
		{12.25, 1, 12.3},
		{12.24, 1, 12.2},
		{0.0125, 3, 0.013},
		{89.995, 2, 90.0},
		{23456.5, 0, 23457},
		{7, 1, 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in, tt.places), "Round(%v, %d)", tt.in, tt.places)
	}
}

func TestUniformStaysInRange(t *testing.T) {
	src := New(42)

	for i := 0; i < 5000; i++ {
		v := src.Uniform(0.01, 0.03, 3)
		require.GreaterOrEqual(t, v, 0.01)
		require.LessOrEqual(t, v, 0.03)
		assert.Equal(t, v, Round(v, 3))
	}
}

func TestIntBetweenIsInclusive(t *testing.T) {
	src := New(7)
	seen := map[int]bool{}

	for i := 0; i < 2000; i++ {
		v := src.IntBetween(65, 70)
		require.GreaterOrEqual(t, v, 65)
		require.LessOrEqual(t, v, 70)
		seen[v] = true
	}

	assert.Len(t, seen, 6)
	assert.Equal(t, 5, src.IntBetween(5, 5))
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(99), New(99)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uniform(85, 95, 2), b.Uniform(85, 95, 2))
		assert.Equal(t, a.IntBetween(2500000, 3000000), b.IntBetween(2500000, 3000000))
	}
}

func TestConcurrentUse(t *testing.T) {
	src := New(0)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				v := src.IntBetween(150, 180)
				assert.True(t, v >= 150 && v <= 180)
			}
		}()
	}
	wg.Wait()
}
