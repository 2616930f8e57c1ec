package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridcortex/bessval/core/model"
	"github.com/gridcortex/bessval/core/stochastic"
)

func testAsset() model.BESSAsset {
	return model.BESSAsset{
		Name:                "test",
		CapacityMWh:         100,
		PowerRatingMW:       50,
		Chemistry:           model.ChemistryLFP,
		RoundTripEfficiency: 0.85,
		InitialCost:         80_000_000,
		CycleLife:           8000,
	}
}

func testMarket() model.MarketConditions {
	return model.MarketConditions{SpotPrice: 85, PriceVolatility: 0.3, FCASPrice: 12, CapacityFactor: 0.35}
}

func testSpec() model.APMPlatformSpec {
	return model.APMPlatformSpec{
		Name:                     "test platform",
		AnnualFee:                400_000,
		ImplementationCost:       1_000_000,
		PredictiveMaintenance:    0.15,
		DispatchOptimization:     0.12,
		DegradationReduction:     0.08,
		MaintenanceCostReduction: 0.20,
	}
}

func drawsFor(horizon int) []stochastic.YearDraw {
	return stochastic.NewPathGenerator(42, horizon, 0.3, 0.005).Path(0)
}

func TestRunShapes(t *testing.T) {
	sim := New(testAsset(), testMarket(), testSpec(), model.DefaultCalibration())
	p := sim.Run(drawsFor(10))
	require.Len(t, p.Years, 10)
	require.Len(t, p.CashFlows, 11)
	assert.Equal(t, -1_000_000.0, p.CashFlows[0], "year 0 carries the implementation outlay")

	base := New(testAsset(), testMarket(), model.NoAPM(), model.DefaultCalibration())
	bp := base.Run(drawsFor(10))
	assert.Equal(t, 0.0, bp.CashFlows[0])
}

func TestCapacityFractionInvariants(t *testing.T) {
	sim := New(testAsset(), testMarket(), model.NoAPM(), model.DefaultCalibration())
	for i := 0; i < 50; i++ {
		draws := stochastic.NewPathGenerator(7, 25, 0.5, 0.01).Path(i)
		p := sim.Run(draws)
		prev := 1.0
		for _, y := range p.Years {
			assert.GreaterOrEqual(t, y.CapacityFraction, 0.0)
			assert.LessOrEqual(t, y.CapacityFraction, 1.0)
			assert.LessOrEqual(t, y.CapacityFraction, prev, "capacity must never recover")
			assert.GreaterOrEqual(t, y.Availability, 0.0)
			assert.LessOrEqual(t, y.Availability, 1.0)
			prev = y.CapacityFraction
		}
	}
}

func TestZeroBenefitSpecIsNoOp(t *testing.T) {
	calib := model.DefaultCalibration()
	base := New(testAsset(), testMarket(), model.NoAPM(), calib)
	zero := New(testAsset(), testMarket(), model.APMPlatformSpec{Name: "empty"}, calib)
	draws := drawsFor(15)
	assert.Equal(t, base.Run(draws), zero.Run(draws))
}

func TestDispatchUpliftMonotonic(t *testing.T) {
	calib := model.DefaultCalibration()
	draws := drawsFor(10)
	var prevRevenue float64
	for _, uplift := range []float64{0, 0.05, 0.10, 0.18} {
		spec := testSpec()
		spec.DispatchOptimization = uplift
		p := New(testAsset(), testMarket(), spec, calib).Run(draws)
		var total float64
		for _, y := range p.Years {
			total += y.Revenue
		}
		assert.GreaterOrEqual(t, total, prevRevenue,
			"raising the dispatch uplift must not lower revenue")
		prevRevenue = total
	}
}

func TestFailureEventCutsAvailability(t *testing.T) {
	calib := model.DefaultCalibration()
	sim := New(testAsset(), testMarket(), model.NoAPM(), calib)

	quiet := []stochastic.YearDraw{{PriceMultiplier: 1, FailureU: 0.99}}
	outage := []stochastic.YearDraw{{PriceMultiplier: 1, FailureU: 0.0}}

	pq := sim.Run(quiet)
	po := sim.Run(outage)
	assert.InDelta(t, 1-calib.BaseDowntime, pq.Years[0].Availability, 1e-12)
	assert.InDelta(t, 1-calib.BaseDowntime-calib.OutageDowntime, po.Years[0].Availability, 1e-12)
	assert.Less(t, po.Years[0].Revenue, pq.Years[0].Revenue)
}

func TestRetiredAssetEarnsNothing(t *testing.T) {
	// A massive noise draw wipes the capacity out in year one.
	draws := []stochastic.YearDraw{
		{PriceMultiplier: 1, DegradationNoise: 2, FailureU: 0.99},
		{PriceMultiplier: 1, FailureU: 0.99},
		{PriceMultiplier: 1, FailureU: 0.99},
	}
	p := New(testAsset(), testMarket(), model.NoAPM(), model.DefaultCalibration()).Run(draws)
	for i, y := range p.Years {
		assert.Equal(t, 0.0, y.CapacityFraction, "year %d", i)
		assert.Equal(t, 0.0, y.Revenue, "year %d", i)
		assert.Greater(t, y.Opex, 0.0, "maintenance is still owed")
	}
}

func TestNegativeNoiseNeverGrowsCapacity(t *testing.T) {
	// Noise more negative than the deterministic fade clamps to zero fade.
	draws := []stochastic.YearDraw{{PriceMultiplier: 1, DegradationNoise: -1, FailureU: 0.99}}
	p := New(testAsset(), testMarket(), model.NoAPM(), model.DefaultCalibration()).Run(draws)
	assert.Equal(t, 1.0, p.Years[0].CapacityFraction)
}
