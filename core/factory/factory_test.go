package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCreate(t *testing.T) {
	reg := NewRegistry[string]()
	require.NoError(t, reg.Register("echo", func(conf map[string]any) (string, error) {
		var c struct {
			Value string `json:"value"`
		}
		if err := Decode(conf, &c); err != nil {
			return "", err
		}
		return c.Value, nil
	}))

	got, err := reg.Create(ModuleConfig{Type: "echo", Conf: map[string]any{"value": "hello"}})
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestRegistryUnknownType(t *testing.T) {
	reg := NewRegistry[int]()
	_, err := reg.Create(ModuleConfig{Type: "missing"})
	assert.Error(t, err)
}

func TestRegisterDuplicate(t *testing.T) {
	reg := NewRegistry[int]()
	f := func(map[string]any) (int, error) { return 1, nil }
	require.NoError(t, reg.Register("a", f))
	assert.Error(t, reg.Register("a", f))
	assert.Error(t, reg.Register("b", nil))
}
