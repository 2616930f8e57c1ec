package model

import "fmt"

// Chemistry identifies the battery cell chemistry of a BESS asset. It drives
// the deterministic degradation rate and the unplanned failure probability.
type Chemistry int

const (
	ChemistryLFP Chemistry = iota
	ChemistryNMC
	ChemistryLTO
)

// String returns a human-readable representation of the chemistry.
func (c Chemistry) String() string {
	switch c {
	case ChemistryLFP:
		return "LFP"
	case ChemistryNMC:
		return "NMC"
	case ChemistryLTO:
		return "LTO"
	default:
		return "unknown"
	}
}

// ParseChemistry converts a configuration string into a Chemistry.
func ParseChemistry(s string) (Chemistry, error) {
	switch s {
	case "LFP", "lfp":
		return ChemistryLFP, nil
	case "NMC", "nmc":
		return ChemistryNMC, nil
	case "LTO", "lto":
		return ChemistryLTO, nil
	default:
		return 0, fmt.Errorf("unknown chemistry %q", s)
	}
}

// CalendarFadeRate returns the annual calendar-aging capacity fade for the
// chemistry. Values are calibration data, chosen so that combined calendar and
// cycle aging lands near published fleet averages (roughly 1.5-2.5% per year
// at typical utilisation).
func (c Chemistry) CalendarFadeRate() float64 {
	switch c {
	case ChemistryNMC:
		return 0.018
	case ChemistryLTO:
		return 0.007
	default:
		return 0.012
	}
}

// FailureProbability returns the annual probability of an unplanned outage
// event for the chemistry, before any APM adjustment.
func (c Chemistry) FailureProbability() float64 {
	switch c {
	case ChemistryNMC:
		return 0.07
	case ChemistryLTO:
		return 0.04
	default:
		return 0.05
	}
}

// BESSAsset describes a battery energy storage system. The struct is treated
// as immutable once validated; downstream components receive it by value.
type BESSAsset struct {
	Name                string
	CapacityMWh         float64 // total energy capacity
	PowerRatingMW       float64 // maximum power output
	Chemistry           Chemistry
	RoundTripEfficiency float64 // fraction in (0,1]
	InitialCost         float64 // capital cost, currency units
	CycleLife           int     // nominal design cycles
}

// Validate checks the asset parameters and returns a ValidationError for the
// first violation found.
func (a BESSAsset) Validate() error {
	if a.CapacityMWh <= 0 {
		return invalid("asset.capacity_mwh", "must be > 0")
	}
	if a.PowerRatingMW <= 0 {
		return invalid("asset.power_rating_mw", "must be > 0")
	}
	if a.RoundTripEfficiency <= 0 || a.RoundTripEfficiency > 1 {
		return invalid("asset.round_trip_efficiency", "must be in (0, 1]")
	}
	if a.InitialCost < 0 {
		return invalid("asset.initial_cost", "must be >= 0")
	}
	if a.CycleLife <= 0 {
		return invalid("asset.cycle_life", "must be > 0")
	}
	return nil
}
