// Package catalog holds the static presets shipped with the tool: named APM
// platform offerings, reference assets and market profiles. The engine never
// reads this package itself; callers resolve a preset and pass the value in.
package catalog

import (
	"fmt"
	"sort"

	"github.com/gridcortex/bessval/core/model"
)

var platforms = map[string]model.APMPlatformSpec{
	"basic_monitoring": {
		Name:                     "Basic Monitoring Platform",
		AnnualFee:                150_000,
		ImplementationCost:       400_000,
		PredictiveMaintenance:    0.08,
		DispatchOptimization:     0.05,
		DegradationReduction:     0.03,
		MaintenanceCostReduction: 0.12,
	},
	"advanced_analytics": {
		Name:                     "Advanced Analytics Platform",
		AnnualFee:                400_000,
		ImplementationCost:       1_000_000,
		PredictiveMaintenance:    0.15,
		DispatchOptimization:     0.12,
		DegradationReduction:     0.08,
		MaintenanceCostReduction: 0.20,
	},
	"ai_powered_enterprise": {
		Name:                     "AI-Powered Enterprise Platform",
		AnnualFee:                750_000,
		ImplementationCost:       2_000_000,
		PredictiveMaintenance:    0.25,
		DispatchOptimization:     0.18,
		DegradationReduction:     0.12,
		MaintenanceCostReduction: 0.30,
	},
	"vendor_specific_premium": {
		Name:                     "Vendor-Specific Premium Solution",
		AnnualFee:                600_000,
		ImplementationCost:       1_500_000,
		PredictiveMaintenance:    0.22,
		DispatchOptimization:     0.16,
		DegradationReduction:     0.10,
		MaintenanceCostReduction: 0.25,
	},
}

var assets = map[string]model.BESSAsset{
	"utility_scale_lfp": {
		Name:                "Utility Scale LFP BESS",
		CapacityMWh:         100,
		PowerRatingMW:       50,
		Chemistry:           model.ChemistryLFP,
		RoundTripEfficiency: 0.85,
		InitialCost:         80_000_000,
		CycleLife:           8000,
	},
	"commercial_nmc": {
		Name:                "Commercial NMC BESS",
		CapacityMWh:         20,
		PowerRatingMW:       10,
		Chemistry:           model.ChemistryNMC,
		RoundTripEfficiency: 0.88,
		InitialCost:         18_000_000,
		CycleLife:           6000,
	},
	"grid_scale_lfp": {
		Name:                "Grid Scale LFP BESS",
		CapacityMWh:         500,
		PowerRatingMW:       200,
		Chemistry:           model.ChemistryLFP,
		RoundTripEfficiency: 0.87,
		InitialCost:         350_000_000,
		CycleLife:           10000,
	},
	"frequency_response_lto": {
		Name:                "Fast Response LTO BESS",
		CapacityMWh:         10,
		PowerRatingMW:       20,
		Chemistry:           model.ChemistryLTO,
		RoundTripEfficiency: 0.92,
		InitialCost:         15_000_000,
		CycleLife:           20000,
	},
}

var markets = map[string]model.MarketConditions{
	"high_volatility_nsw": {
		SpotPrice:       95,
		PriceVolatility: 0.45,
		FCASPrice:       15,
		CapacityFactor:  0.40,
	},
	"stable_vic": {
		SpotPrice:       75,
		PriceVolatility: 0.25,
		FCASPrice:       10,
		CapacityFactor:  0.35,
	},
	"renewable_heavy_sa": {
		SpotPrice:       110,
		PriceVolatility: 0.55,
		FCASPrice:       20,
		CapacityFactor:  0.45,
	},
	"coal_transition_qld": {
		SpotPrice:       85,
		PriceVolatility: 0.35,
		FCASPrice:       12,
		CapacityFactor:  0.30,
	},
}

// Platform returns the named APM platform preset.
func Platform(name string) (model.APMPlatformSpec, error) {
	p, ok := platforms[name]
	if !ok {
		return model.APMPlatformSpec{}, fmt.Errorf("unknown APM platform preset %q", name)
	}
	return p, nil
}

// Asset returns the named reference asset.
func Asset(name string) (model.BESSAsset, error) {
	a, ok := assets[name]
	if !ok {
		return model.BESSAsset{}, fmt.Errorf("unknown asset preset %q", name)
	}
	return a, nil
}

// Market returns the named market profile.
func Market(name string) (model.MarketConditions, error) {
	m, ok := markets[name]
	if !ok {
		return model.MarketConditions{}, fmt.Errorf("unknown market preset %q", name)
	}
	return m, nil
}

// PlatformNames lists the preset keys in stable order.
func PlatformNames() []string { return sortedKeys(platforms) }

// AssetNames lists the asset keys in stable order.
func AssetNames() []string { return sortedKeys(assets) }

// MarketNames lists the market keys in stable order.
func MarketNames() []string { return sortedKeys(markets) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
