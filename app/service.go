package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gridcortex/bessval/config"
	"github.com/gridcortex/bessval/core/events"
	coremetrics "github.com/gridcortex/bessval/core/metrics"
	"github.com/gridcortex/bessval/core/montecarlo"
	"github.com/gridcortex/bessval/infra/logger"
	"github.com/gridcortex/bessval/infra/metrics"
	"github.com/gridcortex/bessval/internal/eventbus"
)

// Service wires configuration, engine, sinks and export together.
type Service struct {
	cfg    *config.Config
	engine *montecarlo.Engine
	sink   coremetrics.RunSink
	bus    *eventbus.Bus
	log    logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	cfg.Logging.Apply()
	logg := logger.New("service")

	asset, err := cfg.Asset.Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolve asset: %w", err)
	}
	market, err := cfg.Market.Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolve market: %w", err)
	}
	apm, err := cfg.APM.Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolve apm platform: %w", err)
	}

	sink, err := coremetrics.NewRunSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	bus := eventbus.New()
	engine, err := montecarlo.New(asset, market, apm, cfg.Simulation.ToParams(),
		logger.New("montecarlo"), bus)
	if err != nil {
		return nil, err
	}

	return &Service{cfg: cfg, engine: engine, sink: sink, bus: bus, log: logg}, nil
}

// Run executes the simulation, records the summary and exports the results.
func (s *Service) Run(ctx context.Context) error {
	if addr := s.cfg.Metrics.PrometheusAddr; addr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, addr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	sub := s.bus.Subscribe()
	go func() {
		for ev := range sub {
			if p, ok := ev.(events.ProgressEvent); ok {
				s.log.Debugf("run %s: %d/%d iterations", p.RunID, p.Completed, p.Total)
			}
		}
	}()

	res, err := s.engine.Run(ctx)
	if err != nil {
		return err
	}

	if err := s.sink.RecordRun(res.RunSummary()); err != nil {
		s.log.Warnf("record run: %v", err)
	}

	s.log.Infof("recommendation: %s (mean improvement %.0f, VaR@%.0f%% %.0f)",
		res.Recommendation(), res.Summary.Mean, res.Summary.VaRConfidence*100, res.Summary.ValueAtRisk)

	return s.export(res)
}

func (s *Service) export(res *montecarlo.Results) error {
	if s.cfg.Export.Format == "" {
		return nil
	}
	var w io.Writer = os.Stdout
	if s.cfg.Export.Path != "" {
		f, err := os.Create(s.cfg.Export.Path)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				s.log.Errorf("close export file: %v", err)
			}
		}()
		w = f
	}
	return writeResults(w, s.cfg.Export.Format, res)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}
