package metrics

import (
	coremetrics "github.com/gridcortex/bessval/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records run summaries in Prometheus metrics.
type PromSink struct {
	runs        *prometheus.CounterVec
	duration    prometheus.Histogram
	meanNPV     prometheus.Gauge
	positiveROI prometheus.Gauge
	valueAtRisk prometheus.Gauge
}

// NewPromSink registers simulation metrics on the default Prometheus
// registerer. The Prometheus server should be started separately with
// StartPromServer.
func NewPromSink() (coremetrics.RunSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.RunSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simulation_runs_total",
		Help: "Total number of completed simulation runs",
	}, []string{"positive_roi"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "simulation_run_duration_seconds",
		Help:    "Wall-clock duration of a full Monte Carlo run",
		Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
	})
	meanNPV := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "simulation_mean_npv_improvement",
		Help: "Mean NPV improvement of the last completed run",
	})
	positiveROI := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "simulation_prob_positive_roi",
		Help: "Probability of positive ROI in the last completed run",
	})
	valueAtRisk := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "simulation_value_at_risk",
		Help: "Value at risk of the last completed run",
	})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	for _, c := range []struct {
		collector prometheus.Collector
		assign    func(prometheus.Collector)
	}{
		{duration, func(c prometheus.Collector) { duration = c.(prometheus.Histogram) }},
		{meanNPV, func(c prometheus.Collector) { meanNPV = c.(prometheus.Gauge) }},
		{positiveROI, func(c prometheus.Collector) { positiveROI = c.(prometheus.Gauge) }},
		{valueAtRisk, func(c prometheus.Collector) { valueAtRisk = c.(prometheus.Gauge) }},
	} {
		if err := reg.Register(c.collector); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				c.assign(are.ExistingCollector)
			} else {
				return nil, err
			}
		}
	}

	return &PromSink{
		runs:        runs,
		duration:    duration,
		meanNPV:     meanNPV,
		positiveROI: positiveROI,
		valueAtRisk: valueAtRisk,
	}, nil
}

// RecordRun implements coremetrics.RunSink.
func (s *PromSink) RecordRun(sum coremetrics.RunSummary) error {
	label := "false"
	if sum.MeanNPVImprovement > 0 {
		label = "true"
	}
	s.runs.WithLabelValues(label).Inc()
	s.duration.Observe(sum.Elapsed.Seconds())
	s.meanNPV.Set(sum.MeanNPVImprovement)
	s.positiveROI.Set(sum.ProbPositiveROI)
	s.valueAtRisk.Set(sum.ValueAtRisk)
	return nil
}
