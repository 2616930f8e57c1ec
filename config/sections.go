package config

import (
	"fmt"

	"github.com/gridcortex/bessval/core/catalog"
	"github.com/gridcortex/bessval/core/model"
)

// AssetConfig describes the battery asset, either by catalog preset name or
// inline. Inline fields are ignored when Preset is set.
type AssetConfig struct {
	Preset string `json:"preset"`

	Name                string  `json:"name"`
	CapacityMWh         float64 `json:"capacity_mwh"`
	PowerRatingMW       float64 `json:"power_rating_mw"`
	Chemistry           string  `json:"chemistry"`
	RoundTripEfficiency float64 `json:"round_trip_efficiency"`
	InitialCost         float64 `json:"initial_cost"`
	CycleLife           int     `json:"cycle_life"`
}

// Resolve returns the asset value, consulting the catalog for presets.
func (c AssetConfig) Resolve() (model.BESSAsset, error) {
	if c.Preset != "" {
		return catalog.Asset(c.Preset)
	}
	chem, err := model.ParseChemistry(c.Chemistry)
	if err != nil {
		return model.BESSAsset{}, fmt.Errorf("asset.chemistry: %w", err)
	}
	return model.BESSAsset{
		Name:                c.Name,
		CapacityMWh:         c.CapacityMWh,
		PowerRatingMW:       c.PowerRatingMW,
		Chemistry:           chem,
		RoundTripEfficiency: c.RoundTripEfficiency,
		InitialCost:         c.InitialCost,
		CycleLife:           c.CycleLife,
	}, nil
}

// MarketConfig describes market conditions, by preset or inline.
type MarketConfig struct {
	Preset string `json:"preset"`

	SpotPrice       float64 `json:"spot_price"`
	PriceVolatility float64 `json:"price_volatility"`
	FCASPrice       float64 `json:"fcas_price"`
	CapacityFactor  float64 `json:"capacity_factor"`
}

// Resolve returns the market value, consulting the catalog for presets.
func (c MarketConfig) Resolve() (model.MarketConditions, error) {
	if c.Preset != "" {
		return catalog.Market(c.Preset)
	}
	return model.MarketConditions{
		SpotPrice:       c.SpotPrice,
		PriceVolatility: c.PriceVolatility,
		FCASPrice:       c.FCASPrice,
		CapacityFactor:  c.CapacityFactor,
	}, nil
}

// APMConfig describes the platform under evaluation, by preset or inline.
type APMConfig struct {
	Preset string `json:"preset"`

	Name                     string  `json:"name"`
	AnnualFee                float64 `json:"annual_fee"`
	ImplementationCost       float64 `json:"implementation_cost"`
	PredictiveMaintenance    float64 `json:"predictive_maintenance"`
	DispatchOptimization     float64 `json:"dispatch_optimization"`
	DegradationReduction     float64 `json:"degradation_reduction"`
	MaintenanceCostReduction float64 `json:"maintenance_cost_reduction"`
}

// Resolve returns the platform spec, consulting the catalog for presets.
func (c APMConfig) Resolve() (model.APMPlatformSpec, error) {
	if c.Preset != "" {
		return catalog.Platform(c.Preset)
	}
	return model.APMPlatformSpec{
		Name:                     c.Name,
		AnnualFee:                c.AnnualFee,
		ImplementationCost:       c.ImplementationCost,
		PredictiveMaintenance:    c.PredictiveMaintenance,
		DispatchOptimization:     c.DispatchOptimization,
		DegradationReduction:     c.DegradationReduction,
		MaintenanceCostReduction: c.MaintenanceCostReduction,
	}, nil
}

// CalibrationConfig overrides the model calibration constants. Fields are
// pointers so a partial block only touches the constants it names; omitted
// fields keep the stock calibration, and an explicit zero stays zero.
type CalibrationConfig struct {
	BaseDowntime          *float64 `json:"base_downtime"`
	OutageDowntime        *float64 `json:"outage_downtime"`
	MaintenanceRate       *float64 `json:"maintenance_rate"`
	WearCostFactor        *float64 `json:"wear_cost_factor"`
	FCASDutyCycle         *float64 `json:"fcas_duty_cycle"`
	EndOfLifeFade         *float64 `json:"end_of_life_fade"`
	DegradationNoiseSigma *float64 `json:"degradation_noise_sigma"`
}

// Merge applies the set overrides on top of the stock calibration.
func (c CalibrationConfig) Merge() model.Calibration {
	calib := model.DefaultCalibration()
	for _, f := range []struct {
		override *float64
		target   *float64
	}{
		{c.BaseDowntime, &calib.BaseDowntime},
		{c.OutageDowntime, &calib.OutageDowntime},
		{c.MaintenanceRate, &calib.MaintenanceRate},
		{c.WearCostFactor, &calib.WearCostFactor},
		{c.FCASDutyCycle, &calib.FCASDutyCycle},
		{c.EndOfLifeFade, &calib.EndOfLifeFade},
		{c.DegradationNoiseSigma, &calib.DegradationNoiseSigma},
	} {
		if f.override != nil {
			*f.target = *f.override
		}
	}
	return calib
}

// SimulationConfig maps onto model.SimulationParameters.
type SimulationConfig struct {
	Iterations    int               `json:"iterations"`
	HorizonYears  int               `json:"horizon_years"`
	DiscountRate  float64           `json:"discount_rate"`
	Seed          uint64            `json:"seed"`
	Workers       int               `json:"workers"`
	VaRConfidence float64           `json:"var_confidence"`
	Percentiles   []float64         `json:"percentiles"`
	Calibration   CalibrationConfig `json:"calibration"`
}

// ToParams converts the section into engine parameters. Defaults for omitted
// optional fields are applied by the engine.
func (c SimulationConfig) ToParams() model.SimulationParameters {
	return model.SimulationParameters{
		Iterations:    c.Iterations,
		HorizonYears:  c.HorizonYears,
		DiscountRate:  c.DiscountRate,
		Seed:          c.Seed,
		Workers:       c.Workers,
		VaRConfidence: c.VaRConfidence,
		Percentiles:   c.Percentiles,
		Calibration:   c.Calibration.Merge(),
	}
}

// ExportConfig selects where and how the results are written.
type ExportConfig struct {
	// Format is "json" or "csv". Empty disables export.
	Format string `json:"format"`
	// Path is the output file. Empty writes to stdout.
	Path string `json:"path"`
}

// Validate checks the export format.
func (c ExportConfig) Validate() error {
	switch c.Format {
	case "", "json", "csv":
		return nil
	default:
		return fmt.Errorf("unknown export format %q", c.Format)
	}
}
