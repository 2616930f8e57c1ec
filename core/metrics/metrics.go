package metrics

import "time"

// RunSummary is the per-run record handed to sinks once a Monte Carlo run
// finishes.
type RunSummary struct {
	RunID        string
	Time         time.Time
	Iterations   int
	HorizonYears int
	Seed         uint64

	MeanNPVImprovement   float64
	MedianNPVImprovement float64
	ProbPositiveROI      float64
	ValueAtRisk          float64
	VaRConfidence        float64

	Elapsed time.Duration
}

// RunSink records completed simulation runs for observability purposes.
type RunSink interface {
	RecordRun(summary RunSummary) error
}

// NopSink discards everything.
type NopSink struct{}

// RecordRun implements RunSink.
func (NopSink) RecordRun(RunSummary) error { return nil }

// MultiSink fans a summary out to several sinks. The first error is returned
// after all sinks have been attempted.
type MultiSink struct {
	sinks []RunSink
}

// NewMultiSink combines the given sinks.
func NewMultiSink(sinks ...RunSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordRun implements RunSink.
func (m *MultiSink) RecordRun(s RunSummary) error {
	var first error
	for _, sink := range m.sinks {
		if err := sink.RecordRun(s); err != nil && first == nil {
			first = err
		}
	}
	return first
}
