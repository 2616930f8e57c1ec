package stochastic

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// YearDraw holds the random variates for one simulated year. FailureU is a
// uniform in [0,1) rather than a boolean so that each scenario can compare it
// against its own failure probability without breaking the pairing.
type YearDraw struct {
	// PriceMultiplier scales the spot price. Lognormal with mean 1.
	PriceMultiplier float64
	// DegradationNoise is added to the deterministic annual fade.
	DegradationNoise float64
	// FailureU decides the unplanned-outage event: the event fires when
	// FailureU falls below the scenario's failure probability.
	FailureU float64
}

// PathGenerator produces reproducible per-iteration draw sequences.
type PathGenerator struct {
	seed       uint64
	horizon    int
	priceSigma float64
	noiseSigma float64
}

// NewPathGenerator returns a generator for the given run seed and horizon.
// priceSigma is the lognormal sigma of the price multiplier, noiseSigma the
// standard deviation of the degradation noise.
func NewPathGenerator(seed uint64, horizon int, priceSigma, noiseSigma float64) *PathGenerator {
	return &PathGenerator{seed: seed, horizon: horizon, priceSigma: priceSigma, noiseSigma: noiseSigma}
}

// Path returns the draw sequence for the given iteration, one YearDraw per
// horizon year. Calling it twice with the same iteration yields identical
// draws: the stream is keyed on (seed, iteration) and consumed in fixed year
// order.
func (g *PathGenerator) Path(iteration int) []YearDraw {
	src := rand.NewPCG(g.seed, uint64(iteration))
	rng := rand.New(src)

	// Mu = -sigma^2/2 keeps the multiplier mean-reverting to 1.
	price := distuv.LogNormal{Mu: -0.5 * g.priceSigma * g.priceSigma, Sigma: g.priceSigma, Src: src}
	noise := distuv.Normal{Mu: 0, Sigma: g.noiseSigma, Src: src}

	draws := make([]YearDraw, g.horizon)
	for y := range draws {
		draws[y] = YearDraw{
			PriceMultiplier:  price.Rand(),
			DegradationNoise: noise.Rand(),
			FailureU:         rng.Float64(),
		}
	}
	return draws
}
