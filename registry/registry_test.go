package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiusxyz/radius-sdk-go/registry"
)

// fakeActivator implements registry.Activator for testing.
type fakeActivator struct {
	name     string
	versions []string
	handle   registry.Handle
	err      error
	calls    []registry.Activation
}

func (f *fakeActivator) Name() string       { return f.name }
func (f *fakeActivator) Versions() []string { return f.versions }

func (f *fakeActivator) Activate(ctx context.Context, act registry.Activation) (registry.Handle, error) {
	f.calls = append(f.calls, act)
	if f.err != nil {
		return nil, f.err
	}
	return f.handle, nil
}

type kvConfig struct {
	Path     string `json:"path"`
	ReadOnly bool   `json:"read_only,omitempty"`
}

func TestRegistry_Register(t *testing.T) {
	r := registry.New()

	require.NoError(t, r.Register(&fakeActivator{name: "kvstore", versions: []string{"0.4.2"}}, kvConfig{}))
	require.NoError(t, r.Register(&fakeActivator{name: "signature"}, nil))

	assert.Equal(t, []string{"kvstore", "signature"}, r.List())

	_, ok := r.Activator("kvstore")
	assert.True(t, ok)
	_, ok = r.Activator("liveness")
	assert.False(t, ok)

	assert.Equal(t, []string{"0.4.2"}, r.Versions("kvstore"))
	assert.Nil(t, r.Versions("liveness"))
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(&fakeActivator{name: "kvstore"}, nil))

	err := r.Register(&fakeActivator{name: "kvstore"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_Register_EmptyName(t *testing.T) {
	err := registry.New().Register(&fakeActivator{}, nil)
	assert.Error(t, err)
}

func TestRegistry_ValidateConfig(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(&fakeActivator{name: "kvstore"}, kvConfig{}))
	require.NoError(t, r.Register(&fakeActivator{name: "signature"}, nil))

	t.Run("valid config", func(t *testing.T) {
		err := r.ValidateConfig("kvstore", map[string]any{"path": "./data", "read_only": true})
		assert.NoError(t, err)
	})

	t.Run("wrong type", func(t *testing.T) {
		err := r.ValidateConfig("kvstore", map[string]any{"path": 42})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})

	t.Run("empty config always passes", func(t *testing.T) {
		assert.NoError(t, r.ValidateConfig("kvstore", nil))
		assert.NoError(t, r.ValidateConfig("signature", nil))
	})

	t.Run("config-free subsystem rejects config", func(t *testing.T) {
		err := r.ValidateConfig("signature", map[string]any{"curve": "secp256k1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "takes no configuration")
	})

	t.Run("unregistered subsystem", func(t *testing.T) {
		err := r.ValidateConfig("liveness", map[string]any{"url": "http://localhost"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unregistered")
	})
}
