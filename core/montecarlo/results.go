package montecarlo

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/gridcortex/bessval/core/finance"
	"github.com/gridcortex/bessval/core/metrics"
	"github.com/gridcortex/bessval/core/model"
)

// Percentile pairs a quantile with its empirical value.
type Percentile struct {
	Quantile float64
	Value    float64
}

// Summary holds the aggregate statistics of the NPV-improvement distribution.
type Summary struct {
	Mean   float64
	Median float64
	StdDev float64
	// Percentiles of the NPV-improvement distribution, ascending quantiles.
	Percentiles []Percentile
	// ProbPositiveROI is the fraction of iterations with improvement > 0.
	ProbPositiveROI float64
	// ValueAtRisk is the (1-VaRConfidence) quantile of the improvement
	// distribution: the downside not exceeded with VaRConfidence.
	ValueAtRisk   float64
	VaRConfidence float64
}

// ScenarioStats aggregates one scenario across all iterations. IRR means are
// taken over iterations with a defined IRR only; payback means over
// iterations paying back within the horizon.
type ScenarioStats struct {
	MeanNPV           float64
	MeanTerminalValue float64

	MeanIRR    float64
	IRRDefined int // iterations with a defined IRR

	MeanPayback          float64
	PaybackWithinHorizon int // iterations paying back within the horizon

	MeanFinalCapacity float64
	MeanAvailability  float64
	MeanTotalRevenue  float64
	MeanTotalOpex     float64
}

// Recommendation bands the outcome for the presentation layer.
type Recommendation int

const (
	NotRecommended Recommendation = iota
	ModerateBuy
	StrongBuy
)

// String returns a human-readable representation of the recommendation.
func (r Recommendation) String() string {
	switch r {
	case StrongBuy:
		return "strong buy"
	case ModerateBuy:
		return "moderate buy"
	default:
		return "not recommended"
	}
}

// Results is the read-only outcome of one full run, handed to the
// presentation layer.
type Results struct {
	RunID string

	// Echoed inputs for provenance.
	Asset  model.BESSAsset
	Market model.MarketConditions
	Spec   model.APMPlatformSpec
	Params model.SimulationParameters
	// Seed is the seed actually used, whether configured or picked.
	Seed uint64

	// NPVImprovement holds one entry per iteration, in iteration order.
	NPVImprovement []float64

	Baseline ScenarioStats
	WithAPM  ScenarioStats
	Summary  Summary

	Elapsed time.Duration
}

func newResults(runID string, asset model.BESSAsset, market model.MarketConditions,
	spec model.APMPlatformSpec, params model.SimulationParameters, seed uint64,
	trials []trial, elapsed time.Duration) *Results {

	improvements := make([]float64, len(trials))
	positive := 0
	for i, t := range trials {
		improvements[i] = t.improvement
		if t.improvement > 0 {
			positive++
		}
	}

	sorted := make([]float64, len(improvements))
	copy(sorted, improvements)
	sort.Float64s(sorted)

	percentiles := make([]Percentile, 0, len(params.Percentiles))
	qs := make([]float64, len(params.Percentiles))
	copy(qs, params.Percentiles)
	sort.Float64s(qs)
	for _, q := range qs {
		percentiles = append(percentiles, Percentile{Quantile: q, Value: stat.Quantile(q, stat.Empirical, sorted, nil)})
	}

	// The sample standard deviation divides by n-1; a single-iteration run
	// would report NaN and break JSON export downstream.
	stdDev := 0.0
	if len(sorted) > 1 {
		stdDev = stat.StdDev(sorted, nil)
	}

	summary := Summary{
		Mean:            stat.Mean(sorted, nil),
		Median:          stat.Quantile(0.5, stat.Empirical, sorted, nil),
		StdDev:          stdDev,
		Percentiles:     percentiles,
		ProbPositiveROI: float64(positive) / float64(len(trials)),
		ValueAtRisk:     stat.Quantile(1-params.VaRConfidence, stat.Empirical, sorted, nil),
		VaRConfidence:   params.VaRConfidence,
	}

	return &Results{
		RunID:          runID,
		Asset:          asset,
		Market:         market,
		Spec:           spec,
		Params:         params,
		Seed:           seed,
		NPVImprovement: improvements,
		Baseline:       scenarioStats(trials, func(t trial) scenarioOutcome { return t.baseline }),
		WithAPM:        scenarioStats(trials, func(t trial) scenarioOutcome { return t.withAPM }),
		Summary:        summary,
		Elapsed:        elapsed,
	}
}

func scenarioStats(trials []trial, pick func(trial) scenarioOutcome) ScenarioStats {
	var s ScenarioStats
	var irrSum, paybackSum float64
	for _, t := range trials {
		o := pick(t)
		s.MeanNPV += o.fin.NPV
		s.MeanTerminalValue += o.fin.TerminalValue
		s.MeanFinalCapacity += o.finalCapacity
		s.MeanAvailability += o.meanAvailability
		s.MeanTotalRevenue += o.totalRevenue
		s.MeanTotalOpex += o.totalOpex
		if o.fin.IRRDefined {
			irrSum += o.fin.IRR
			s.IRRDefined++
		}
		if o.fin.PaybackYears != finance.PaybackNever {
			paybackSum += float64(o.fin.PaybackYears)
			s.PaybackWithinHorizon++
		}
	}
	n := float64(len(trials))
	s.MeanNPV /= n
	s.MeanTerminalValue /= n
	s.MeanFinalCapacity /= n
	s.MeanAvailability /= n
	s.MeanTotalRevenue /= n
	s.MeanTotalOpex /= n
	if s.IRRDefined > 0 {
		s.MeanIRR = irrSum / float64(s.IRRDefined)
	}
	if s.PaybackWithinHorizon > 0 {
		s.MeanPayback = paybackSum / float64(s.PaybackWithinHorizon)
	}
	return s
}

// Recommendation bands the run outcome: a strong buy needs a high probability
// of positive ROI and a mean improvement well above the implementation cost.
func (r *Results) Recommendation() Recommendation {
	switch {
	case r.Summary.ProbPositiveROI >= 0.70 && r.Summary.Mean > r.Spec.ImplementationCost*0.5:
		return StrongBuy
	case r.Summary.ProbPositiveROI >= 0.50 && r.Summary.Mean > 0:
		return ModerateBuy
	default:
		return NotRecommended
	}
}

// RunSummary converts the results into the record consumed by metrics sinks.
func (r *Results) RunSummary() metrics.RunSummary {
	return metrics.RunSummary{
		RunID:                r.RunID,
		Time:                 time.Now(),
		Iterations:           r.Params.Iterations,
		HorizonYears:         r.Params.HorizonYears,
		Seed:                 r.Seed,
		MeanNPVImprovement:   r.Summary.Mean,
		MedianNPVImprovement: r.Summary.Median,
		ProbPositiveROI:      r.Summary.ProbPositiveROI,
		ValueAtRisk:          r.Summary.ValueAtRisk,
		VaRConfidence:        r.Summary.VaRConfidence,
		Elapsed:              r.Elapsed,
	}
}
