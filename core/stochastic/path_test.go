package stochastic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathReproducible(t *testing.T) {
	gen := NewPathGenerator(42, 10, 0.3, 0.005)
	a := gen.Path(7)
	b := gen.Path(7)
	require.Len(t, a, 10)
	assert.Equal(t, a, b, "same seed and iteration must give identical draws")

	other := NewPathGenerator(42, 10, 0.3, 0.005).Path(8)
	assert.NotEqual(t, a, other, "different iterations must give different draws")

	reseeded := NewPathGenerator(43, 10, 0.3, 0.005).Path(7)
	assert.NotEqual(t, a, reseeded, "different seeds must give different draws")
}

func TestPathDrawRanges(t *testing.T) {
	gen := NewPathGenerator(1, 50, 0.4, 0.005)
	for i := 0; i < 20; i++ {
		for _, d := range gen.Path(i) {
			assert.Greater(t, d.PriceMultiplier, 0.0)
			assert.GreaterOrEqual(t, d.FailureU, 0.0)
			assert.Less(t, d.FailureU, 1.0)
		}
	}
}

func TestPathZeroVolatility(t *testing.T) {
	gen := NewPathGenerator(9, 5, 0, 0)
	for _, d := range gen.Path(0) {
		assert.InDelta(t, 1.0, d.PriceMultiplier, 1e-12)
		assert.InDelta(t, 0.0, d.DegradationNoise, 1e-12)
	}
}

func TestPathMultiplierMeanRevertsToOne(t *testing.T) {
	gen := NewPathGenerator(123, 200, 0.3, 0.005)
	var sum float64
	var n int
	for i := 0; i < 200; i++ {
		for _, d := range gen.Path(i) {
			sum += d.PriceMultiplier
			n++
		}
	}
	assert.InDelta(t, 1.0, sum/float64(n), 0.02)
}
