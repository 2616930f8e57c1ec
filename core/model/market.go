package model

// MarketConditions describes the revenue environment of the asset: wholesale
// spot prices, their volatility, the FCAS price level and how intensively the
// asset is utilised. Immutable once validated.
type MarketConditions struct {
	SpotPrice       float64 // average spot price, currency/MWh
	PriceVolatility float64 // lognormal sigma of the annual price multiplier
	FCASPrice       float64 // average FCAS price, currency/MW/h
	CapacityFactor  float64 // fraction of rated energy actually dispatched [0,1]
}

// Validate checks the market parameters.
func (m MarketConditions) Validate() error {
	if m.SpotPrice < 0 {
		return invalid("market.spot_price", "must be >= 0")
	}
	if m.PriceVolatility < 0 {
		return invalid("market.price_volatility", "must be >= 0")
	}
	if m.FCASPrice < 0 {
		return invalid("market.fcas_price", "must be >= 0")
	}
	if m.CapacityFactor < 0 || m.CapacityFactor > 1 {
		return invalid("market.capacity_factor", "must be in [0, 1]")
	}
	return nil
}
