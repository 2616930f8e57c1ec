package model

// APMPlatformSpec describes an asset performance management platform: what it
// costs and the operational benefits it claims. Benefit factors are fractions
// in [0,1]. The zero value is a valid "no platform" spec.
type APMPlatformSpec struct {
	Name               string
	AnnualFee          float64
	ImplementationCost float64

	// PredictiveMaintenance reduces planned downtime and the unplanned
	// failure probability.
	PredictiveMaintenance float64
	// DispatchOptimization scales gross dispatch revenue up.
	DispatchOptimization float64
	// DegradationReduction slows the deterministic capacity fade.
	DegradationReduction float64
	// MaintenanceCostReduction lowers the annual maintenance bill.
	MaintenanceCostReduction float64
}

// NoAPM returns the zero-benefit, zero-cost spec used as the baseline
// scenario. Running it through the full pipeline is a strict no-op relative
// to having no platform at all.
func NoAPM() APMPlatformSpec {
	return APMPlatformSpec{Name: "baseline"}
}

// IsZero reports whether the spec carries no benefits and no costs.
func (s APMPlatformSpec) IsZero() bool {
	return s.AnnualFee == 0 && s.ImplementationCost == 0 &&
		s.PredictiveMaintenance == 0 && s.DispatchOptimization == 0 &&
		s.DegradationReduction == 0 && s.MaintenanceCostReduction == 0
}

// Validate checks fees and benefit fractions.
func (s APMPlatformSpec) Validate() error {
	if s.AnnualFee < 0 {
		return invalid("apm.annual_fee", "must be >= 0")
	}
	if s.ImplementationCost < 0 {
		return invalid("apm.implementation_cost", "must be >= 0")
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"apm.predictive_maintenance", s.PredictiveMaintenance},
		{"apm.dispatch_optimization", s.DispatchOptimization},
		{"apm.degradation_reduction", s.DegradationReduction},
		{"apm.maintenance_cost_reduction", s.MaintenanceCostReduction},
	} {
		if f.value < 0 || f.value > 1 {
			return invalid(f.name, "must be in [0, 1]")
		}
	}
	return nil
}
