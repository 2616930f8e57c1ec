package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAsset() BESSAsset {
	return BESSAsset{
		Name:                "test",
		CapacityMWh:         100,
		PowerRatingMW:       50,
		Chemistry:           ChemistryLFP,
		RoundTripEfficiency: 0.85,
		InitialCost:         80_000_000,
		CycleLife:           8000,
	}
}

func TestBESSAssetValidate(t *testing.T) {
	require.NoError(t, validAsset().Validate())

	cases := []struct {
		name   string
		mutate func(*BESSAsset)
		field  string
	}{
		{"zero capacity", func(a *BESSAsset) { a.CapacityMWh = 0 }, "asset.capacity_mwh"},
		{"negative power", func(a *BESSAsset) { a.PowerRatingMW = -1 }, "asset.power_rating_mw"},
		{"zero efficiency", func(a *BESSAsset) { a.RoundTripEfficiency = 0 }, "asset.round_trip_efficiency"},
		{"efficiency above one", func(a *BESSAsset) { a.RoundTripEfficiency = 1.1 }, "asset.round_trip_efficiency"},
		{"negative cost", func(a *BESSAsset) { a.InitialCost = -1 }, "asset.initial_cost"},
		{"zero cycle life", func(a *BESSAsset) { a.CycleLife = 0 }, "asset.cycle_life"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := validAsset()
			tc.mutate(&a)
			err := a.Validate()
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestMarketConditionsValidate(t *testing.T) {
	m := MarketConditions{SpotPrice: 85, PriceVolatility: 0.3, FCASPrice: 12, CapacityFactor: 0.35}
	require.NoError(t, m.Validate())

	m.CapacityFactor = 1.2
	var verr *ValidationError
	require.ErrorAs(t, m.Validate(), &verr)
	assert.Equal(t, "market.capacity_factor", verr.Field)

	m = MarketConditions{PriceVolatility: -0.1}
	require.ErrorAs(t, m.Validate(), &verr)
	assert.Equal(t, "market.price_volatility", verr.Field)
}

func TestAPMPlatformSpecValidate(t *testing.T) {
	s := APMPlatformSpec{
		Name:                     "test platform",
		AnnualFee:                100_000,
		ImplementationCost:       500_000,
		PredictiveMaintenance:    0.15,
		DispatchOptimization:     0.12,
		DegradationReduction:     0.08,
		MaintenanceCostReduction: 0.20,
	}
	require.NoError(t, s.Validate())

	s.DispatchOptimization = 1.5
	var verr *ValidationError
	require.ErrorAs(t, s.Validate(), &verr)
	assert.Equal(t, "apm.dispatch_optimization", verr.Field)
}

func TestNoAPMIsZero(t *testing.T) {
	assert.True(t, NoAPM().IsZero())
	assert.NoError(t, NoAPM().Validate())
	assert.False(t, APMPlatformSpec{AnnualFee: 1}.IsZero())
}

func TestSimulationParametersValidate(t *testing.T) {
	p := SimulationParameters{Iterations: 100, HorizonYears: 10, DiscountRate: 0.08}
	p.SetDefaults()
	require.NoError(t, p.Validate())
	assert.Equal(t, 0.95, p.VaRConfidence)
	assert.Equal(t, DefaultCalibration(), p.Calibration)

	var verr *ValidationError

	zeroIter := p
	zeroIter.Iterations = 0
	require.ErrorAs(t, zeroIter.Validate(), &verr)
	assert.Equal(t, "simulation.iterations", verr.Field)

	negRate := p
	negRate.DiscountRate = -0.01
	require.ErrorAs(t, negRate.Validate(), &verr)
	assert.Equal(t, "simulation.discount_rate", verr.Field)

	badQ := p
	badQ.Percentiles = []float64{0.5, 1.0}
	require.ErrorAs(t, badQ.Validate(), &verr)
	assert.Equal(t, "simulation.percentiles", verr.Field)
}

func TestParseChemistry(t *testing.T) {
	for in, want := range map[string]Chemistry{
		"LFP": ChemistryLFP, "nmc": ChemistryNMC, "LTO": ChemistryLTO,
	} {
		got, err := ParseChemistry(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseChemistry("NaS")
	assert.Error(t, err)
}

func TestChemistryConstants(t *testing.T) {
	for _, c := range []Chemistry{ChemistryLFP, ChemistryNMC, ChemistryLTO} {
		assert.Greater(t, c.CalendarFadeRate(), 0.0, c.String())
		assert.Greater(t, c.FailureProbability(), 0.0, c.String())
		assert.Less(t, c.FailureProbability(), 1.0, c.String())
	}
	// LTO cells age slower than NMC.
	assert.Less(t, ChemistryLTO.CalendarFadeRate(), ChemistryNMC.CalendarFadeRate())
}
