package montecarlo

import (
	"context"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/gridcortex/bessval/core/events"
	"github.com/gridcortex/bessval/core/finance"
	"github.com/gridcortex/bessval/core/logger"
	"github.com/gridcortex/bessval/core/model"
	"github.com/gridcortex/bessval/core/scenario"
	"github.com/gridcortex/bessval/core/stochastic"
	"github.com/gridcortex/bessval/internal/eventbus"
)

// Engine orchestrates one full simulation run.
type Engine struct {
	asset  model.BESSAsset
	market model.MarketConditions
	apm    model.APMPlatformSpec
	params model.SimulationParameters
	log    logger.Logger
	bus    eventbus.EventBus
}

// New validates all inputs and returns a ready Engine. Validation happens
// here so that an invalid parameter set never starts a partial run. log and
// bus may be nil.
func New(asset model.BESSAsset, market model.MarketConditions, apm model.APMPlatformSpec,
	params model.SimulationParameters, log logger.Logger, bus eventbus.EventBus) (*Engine, error) {
	params.SetDefaults()
	if err := asset.Validate(); err != nil {
		return nil, err
	}
	if err := market.Validate(); err != nil {
		return nil, err
	}
	if err := apm.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = nopLogger{}
	}
	return &Engine{asset: asset, market: market, apm: apm, params: params, log: log, bus: bus}, nil
}

// scenarioOutcome collects what one scenario produced in one iteration.
type scenarioOutcome struct {
	fin              finance.Result
	finalCapacity    float64
	meanAvailability float64
	totalRevenue     float64
	totalOpex        float64
}

// trial is one iteration's paired outcome, stored at its iteration index.
type trial struct {
	improvement float64
	baseline    scenarioOutcome
	withAPM     scenarioOutcome
}

// Run executes all iterations and aggregates them. The context is only
// consulted between iterations; a cancelled run returns ctx.Err() and no
// partial results.
func (e *Engine) Run(ctx context.Context) (*Results, error) {
	start := time.Now()
	runID := uuid.NewString()

	seed := e.params.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	calib := e.params.Calibration
	gen := stochastic.NewPathGenerator(seed, e.params.HorizonYears,
		e.market.PriceVolatility, calib.DegradationNoiseSigma)
	baseSim := scenario.New(e.asset, e.market, model.NoAPM(), calib)
	apmSim := scenario.New(e.asset, e.market, e.apm, calib)

	n := e.params.Iterations
	workers := e.params.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	e.log.Infof("starting run %s: %d iterations, %d year horizon, %d workers, seed %d",
		runID, n, e.params.HorizonYears, workers, seed)

	trials := make([]trial, n)
	progressStep := n / 20
	if progressStep == 0 {
		progressStep = 1
	}

	var next, completed atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n || ctx.Err() != nil {
					return
				}
				trials[i] = e.runIteration(gen, baseSim, apmSim, i)
				done := completed.Add(1)
				if e.bus != nil && done%int64(progressStep) == 0 {
					e.bus.Publish(events.ProgressEvent{RunID: runID, Completed: int(done), Total: n})
				}
			}
		}()
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := newResults(runID, e.asset, e.market, e.apm, e.params, seed, trials, time.Since(start))
	if e.bus != nil {
		e.bus.Publish(events.RunCompletedEvent{RunID: runID, Iterations: n, Elapsed: res.Elapsed})
	}
	e.log.Infof("run %s finished in %s: mean NPV improvement %.0f, P(positive ROI) %.1f%%",
		runID, res.Elapsed.Round(time.Millisecond), res.Summary.Mean, res.Summary.ProbPositiveROI*100)
	return res, nil
}

// runIteration evaluates both scenarios on the same stochastic path.
func (e *Engine) runIteration(gen *stochastic.PathGenerator, baseSim, apmSim *scenario.Simulator, i int) trial {
	draws := gen.Path(i)
	base := baseSim.Run(draws)
	apm := apmSim.Run(draws)
	bo := summarize(base, e.params.DiscountRate)
	ao := summarize(apm, e.params.DiscountRate)
	return trial{
		improvement: ao.fin.NPV - bo.fin.NPV,
		baseline:    bo,
		withAPM:     ao,
	}
}

func summarize(p scenario.Path, discountRate float64) scenarioOutcome {
	o := scenarioOutcome{fin: finance.Evaluate(p.CashFlows, discountRate)}
	for _, y := range p.Years {
		o.meanAvailability += y.Availability
		o.totalRevenue += y.Revenue
		o.totalOpex += y.Opex
	}
	if len(p.Years) > 0 {
		o.meanAvailability /= float64(len(p.Years))
		o.finalCapacity = p.Years[len(p.Years)-1].CapacityFraction
	}
	return o
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
