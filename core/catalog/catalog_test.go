package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllPresetsValidate(t *testing.T) {
	for _, name := range PlatformNames() {
		p, err := Platform(name)
		require.NoError(t, err)
		assert.NoError(t, p.Validate(), name)
		assert.False(t, p.IsZero(), name)
	}
	for _, name := range AssetNames() {
		a, err := Asset(name)
		require.NoError(t, err)
		assert.NoError(t, a.Validate(), name)
	}
	for _, name := range MarketNames() {
		m, err := Market(name)
		require.NoError(t, err)
		assert.NoError(t, m.Validate(), name)
	}
}

func TestUnknownPresets(t *testing.T) {
	_, err := Platform("does-not-exist")
	assert.Error(t, err)
	_, err = Asset("does-not-exist")
	assert.Error(t, err)
	_, err = Market("does-not-exist")
	assert.Error(t, err)
}

func TestNamesAreSorted(t *testing.T) {
	names := PlatformNames()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

func TestAdvancedAnalyticsBenefits(t *testing.T) {
	p, err := Platform("advanced_analytics")
	require.NoError(t, err)
	assert.Equal(t, 0.15, p.PredictiveMaintenance)
	assert.Equal(t, 0.12, p.DispatchOptimization)
	assert.Equal(t, 0.08, p.DegradationReduction)
}
