package sdk_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdk "github.com/radiusxyz/radius-sdk-go"
	"github.com/radiusxyz/radius-sdk-go/feature"
	"github.com/radiusxyz/radius-sdk-go/lockfile"
	"github.com/radiusxyz/radius-sdk-go/manifest"
	"github.com/radiusxyz/radius-sdk-go/registry"
	"github.com/radiusxyz/radius-sdk-go/types"
)

// stubActivator implements registry.Activator and records activations.
type stubActivator struct {
	name     string
	versions []string
	err      error
	calls    []registry.Activation
}

func (s *stubActivator) Name() string       { return s.name }
func (s *stubActivator) Versions() []string { return s.versions }

func (s *stubActivator) Activate(ctx context.Context, act registry.Activation) (registry.Handle, error) {
	s.calls = append(s.calls, act)
	if s.err != nil {
		return nil, s.err
	}
	return s.name + "-handle", nil
}

type kvConfig struct {
	Path string `json:"path"`
}

func newTestRegistry(t *testing.T) (*registry.Registry, map[string]*stubActivator) {
	t.Helper()

	subsystems := map[string][]string{
		feature.SubsystemContext:        {"0.2.3"},
		feature.SubsystemJSONRPC:        {"0.3.4"},
		feature.SubsystemKvStore:        {"0.4.2"},
		feature.SubsystemKvStoreCodegen: {"0.4.1"},
		feature.SubsystemLiveness:       {"0.5.0"},
		feature.SubsystemSignature:      {"0.2.1"},
		feature.SubsystemValidation:     {"0.1.7"},
	}

	reg := registry.New()
	stubs := make(map[string]*stubActivator, len(subsystems))
	for name, versions := range subsystems {
		stub := &stubActivator{name: name, versions: versions}
		stubs[name] = stub

		var model any
		if name == feature.SubsystemKvStore {
			model = kvConfig{}
		}
		require.NoError(t, reg.Register(stub, model))
	}
	return reg, stubs
}

func doc(capabilities ...string) *manifest.Document {
	return &manifest.Document{SDKVersion: 1, Capabilities: capabilities}
}

func TestNew_ActivatesClosureExactly(t *testing.T) {
	reg, stubs := newTestRegistry(t)

	s, err := sdk.New(t.Context(), feature.Radius(), doc("kvstore-json"), reg)
	require.NoError(t, err)

	// kvstore and its codegen helper, nothing else.
	require.Len(t, stubs[feature.SubsystemKvStore].calls, 1)
	require.Len(t, stubs[feature.SubsystemKvStoreCodegen].calls, 1)
	for name, stub := range stubs {
		if name == feature.SubsystemKvStore || name == feature.SubsystemKvStoreCodegen {
			continue
		}
		assert.Empty(t, stub.calls, "subsystem %s must stay untouched", name)
	}

	assert.Equal(t, []string{"json"}, stubs[feature.SubsystemKvStore].calls[0].Modes)

	handle, err := s.KvStore()
	require.NoError(t, err)
	assert.Equal(t, "kvstore-handle", handle)
}

func TestNew_AccessorsOutsideClosure(t *testing.T) {
	reg, _ := newTestRegistry(t)

	s, err := sdk.New(t.Context(), feature.Radius(), doc("kvstore-json"), reg)
	require.NoError(t, err)

	_, err = s.Signer()
	require.Error(t, err)
	assert.ErrorIs(t, err, sdk.ErrNotActivated)

	var notActivated *sdk.NotActivatedError
	require.ErrorAs(t, err, &notActivated)
	assert.Equal(t, feature.SubsystemSignature, notActivated.Subsystem)

	_, err = s.Liveness()
	assert.ErrorIs(t, err, sdk.ErrNotActivated)
}

func TestNew_ModeSpecificAccessors(t *testing.T) {
	reg, _ := newTestRegistry(t)

	s, err := sdk.New(t.Context(), feature.Radius(), doc("json-rpc-client"), reg)
	require.NoError(t, err)

	_, err = s.JSONRPCClient()
	assert.NoError(t, err)

	// The subsystem is active, but the server surface is not.
	_, err = s.JSONRPCServer()
	require.Error(t, err)
	assert.ErrorIs(t, err, sdk.ErrNotActivated)

	var notActivated *sdk.NotActivatedError
	require.ErrorAs(t, err, &notActivated)
	assert.Equal(t, feature.ModeServer, notActivated.Mode)
}

func TestNew_FullActivatesEverySubsystem(t *testing.T) {
	reg, stubs := newTestRegistry(t)

	s, err := sdk.New(t.Context(), feature.Radius(), doc("full"), reg)
	require.NoError(t, err)

	for name, stub := range stubs {
		assert.Len(t, stub.calls, 1, "subsystem %s must be activated exactly once", name)
	}

	for _, access := range []func() (registry.Handle, error){
		s.Context, s.JSONRPCClient, s.JSONRPCServer, s.KvStore, s.Liveness, s.Signer,
	} {
		_, err := access()
		assert.NoError(t, err)
	}
	_, err = s.Validation(types.ValidationProviderEigenLayer)
	assert.NoError(t, err)
	_, err = s.Validation(types.ValidationProviderSymbiotic)
	assert.NoError(t, err)

	// full selects the json kvstore variant.
	assert.Equal(t, []string{"json"}, stubs[feature.SubsystemKvStore].calls[0].Modes)
}

func TestNew_UnknownCapability(t *testing.T) {
	reg, stubs := newTestRegistry(t)

	_, err := sdk.New(t.Context(), feature.Radius(), doc("not-a-real-capability"), reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, feature.ErrUnknownCapability)

	// Nothing was activated.
	for _, stub := range stubs {
		assert.Empty(t, stub.calls)
	}
}

func TestNew_ActivationFailureAborts(t *testing.T) {
	reg, stubs := newTestRegistry(t)
	stubs[feature.SubsystemKvStore].err = errors.New("kvstore backend unavailable")

	_, err := sdk.New(t.Context(), feature.Radius(), doc("kvstore-json"), reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "activating subsystem")
}

func TestNew_ConfigValidation(t *testing.T) {
	t.Run("valid config is handed to the activator", func(t *testing.T) {
		reg, stubs := newTestRegistry(t)
		d := doc("kvstore-json")
		d.Config = map[string]map[string]any{
			feature.SubsystemKvStore: {"path": "./data"},
		}

		_, err := sdk.New(t.Context(), feature.Radius(), d, reg)
		require.NoError(t, err)
		assert.Equal(t, "./data", stubs[feature.SubsystemKvStore].calls[0].Config["path"])
	})

	t.Run("schema violation aborts", func(t *testing.T) {
		reg, _ := newTestRegistry(t)
		d := doc("kvstore-json")
		d.Config = map[string]map[string]any{
			feature.SubsystemKvStore: {"path": 42},
		}

		_, err := sdk.New(t.Context(), feature.Radius(), d, reg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})

	t.Run("config for inactive subsystem aborts", func(t *testing.T) {
		reg, _ := newTestRegistry(t)
		d := doc("signature")
		d.Config = map[string]map[string]any{
			feature.SubsystemKvStore: {"path": "./data"},
		}

		_, err := sdk.New(t.Context(), feature.Radius(), d, reg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no requested capability activates")
	})
}

func TestNew_UnregisteredSubsystem(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(&stubActivator{name: feature.SubsystemKvStore}, nil))
	// kvstore-codegen is in the closure of kvstore-json but never registered.

	_, err := sdk.New(t.Context(), feature.Radius(), doc("kvstore-json"), reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestNew_WithLockfile(t *testing.T) {
	reg, _ := newTestRegistry(t)
	path := filepath.Join(t.TempDir(), "radius-sdk.lock")

	s, err := sdk.New(t.Context(), feature.Radius(), doc("kvstore-json"), reg,
		sdk.WithLockfile(path))
	require.NoError(t, err)

	lock := s.Lockfile()
	require.NotNil(t, lock)
	assert.Equal(t, "0.4.2", lock.Get(feature.SubsystemKvStore).Resolved)

	// A later build with a different request trips drift detection.
	_, err = sdk.New(t.Context(), feature.Radius(), doc("signature"), reg,
		sdk.WithLockfile(path))
	require.Error(t, err)
	assert.ErrorIs(t, err, lockfile.ErrDrift)
}

func TestNew_GlobRequest(t *testing.T) {
	reg, stubs := newTestRegistry(t)

	_, err := sdk.New(t.Context(), feature.Radius(), doc("validation-*"), reg)
	require.NoError(t, err)

	require.Len(t, stubs[feature.SubsystemValidation].calls, 1)
	assert.ElementsMatch(t, []string{"eigenlayer", "symbiotic"}, stubs[feature.SubsystemValidation].calls[0].Modes)
}

func TestSDK_Closure(t *testing.T) {
	reg, _ := newTestRegistry(t)

	s, err := sdk.New(t.Context(), feature.Radius(), doc("kvstore-bytes", "kvstore-json"), reg)
	require.NoError(t, err)

	closure := s.Closure()
	assert.Equal(t, []string{"bytes", "json"}, closure.Modes(feature.SubsystemKvStore))
	assert.Nil(t, s.Lockfile())
}
