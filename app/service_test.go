package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridcortex/bessval/config"
	"github.com/gridcortex/bessval/core/factory"
	"github.com/gridcortex/bessval/core/montecarlo"
)

func testConfig(exportPath string) *config.Config {
	return &config.Config{
		Asset:  config.AssetConfig{Preset: "utility_scale_lfp"},
		Market: config.MarketConfig{Preset: "coal_transition_qld"},
		APM:    config.APMConfig{Preset: "advanced_analytics"},
		Simulation: config.SimulationConfig{
			Iterations:   200,
			HorizonYears: 10,
			DiscountRate: 0.08,
			Seed:         7,
		},
		Metrics: config.MetricsConfig{
			Sinks: []factory.ModuleConfig{{Type: "nop"}},
		},
		Export: config.ExportConfig{Format: "json", Path: exportPath},
	}
}

func TestServiceRunExportsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	svc, err := New(testConfig(path))
	require.NoError(t, err)
	defer func() { assert.NoError(t, svc.Close()) }()

	require.NoError(t, svc.Run(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var res montecarlo.Results
	require.NoError(t, json.Unmarshal(data, &res))
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, uint64(7), res.Seed)
	assert.Len(t, res.NPVImprovement, 200)
}

func TestServiceRunNoExport(t *testing.T) {
	cfg := testConfig("")
	cfg.Export = config.ExportConfig{}
	svc, err := New(cfg)
	require.NoError(t, err)
	defer func() { assert.NoError(t, svc.Close()) }()
	assert.NoError(t, svc.Run(context.Background()))
}

func TestNewRejectsUnknownPreset(t *testing.T) {
	cfg := testConfig("")
	cfg.Asset = config.AssetConfig{Preset: "does_not_exist"}
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNewRejectsUnknownSink(t *testing.T) {
	cfg := testConfig("")
	cfg.Metrics.Sinks = []factory.ModuleConfig{{Type: "statsd"}}
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestWriteResultsUnknownFormat(t *testing.T) {
	err := writeResults(os.Stderr, "xml", &montecarlo.Results{})
	assert.Error(t, err)
}
