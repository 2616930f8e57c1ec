// Package finance converts cash-flow sequences into the usual investment
// metrics. A cash-flow sequence is indexed by year, index 0 being the initial
// outlay year that is not discounted.
package finance

import "math"

// PaybackNever marks a cash-flow sequence whose cumulative sum never turns
// non-negative within the horizon.
const PaybackNever = -1

// IRR search bounds and stopping criteria for the bisection.
const (
	irrLow       = -0.99
	irrHigh      = 10.0
	irrTolerance = 1e-7
	irrMaxSteps  = 200
)

// Result bundles the metrics of one cash-flow sequence. IRR is only
// meaningful when IRRDefined is true; callers must skip undefined IRRs when
// aggregating, never coerce them to zero.
type Result struct {
	NPV           float64
	IRR           float64
	IRRDefined    bool
	PaybackYears  int // year index, or PaybackNever
	TerminalValue float64
}

// NPV discounts the cash-flow sequence at the given rate.
func NPV(cashFlows []float64, rate float64) float64 {
	var npv float64
	for t, cf := range cashFlows {
		npv += cf / math.Pow(1+rate, float64(t))
	}
	return npv
}

// IRR finds the discount rate at which NPV is zero, by bisection over
// [irrLow, irrHigh]. The second return value is false when no root is
// bracketed, which happens for all-positive or all-negative sequences; that
// is a distinct result state, not an error.
func IRR(cashFlows []float64) (float64, bool) {
	allZero := true
	for _, cf := range cashFlows {
		if cf != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		// NPV is zero at every rate; no single rate is the IRR.
		return 0, false
	}
	lo, hi := irrLow, irrHigh
	fLo := NPV(cashFlows, lo)
	fHi := NPV(cashFlows, hi)
	if fLo == 0 {
		return lo, true
	}
	if fHi == 0 {
		return hi, true
	}
	if (fLo > 0) == (fHi > 0) {
		return 0, false
	}
	for i := 0; i < irrMaxSteps && hi-lo > irrTolerance; i++ {
		mid := (lo + hi) / 2
		fMid := NPV(cashFlows, mid)
		if fMid == 0 {
			return mid, true
		}
		if (fMid > 0) == (fLo > 0) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, true
}

// Payback returns the first year index at which the cumulative undiscounted
// cash flow is non-negative, or PaybackNever.
func Payback(cashFlows []float64) int {
	var cum float64
	for t, cf := range cashFlows {
		cum += cf
		if cum >= 0 {
			return t
		}
	}
	return PaybackNever
}

// Evaluate computes all metrics for one sequence at the given discount rate.
func Evaluate(cashFlows []float64, discountRate float64) Result {
	irr, defined := IRR(cashFlows)
	var terminal float64
	for _, cf := range cashFlows {
		terminal += cf
	}
	return Result{
		NPV:           NPV(cashFlows, discountRate),
		IRR:           irr,
		IRRDefined:    defined,
		PaybackYears:  Payback(cashFlows),
		TerminalValue: terminal,
	}
}
