// Package sdk is the facade over the radius subsystem family. A consumer
// declares the capabilities a build needs, the facade resolves them into a
// closed activation set over the feature lattice, validates per-subsystem
// configuration, optionally pins subsystem versions into a lockfile, and
// activates exactly the chosen subsystems. Nothing outside the closure is
// touched.
package sdk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/radiusxyz/radius-sdk-go/feature"
	"github.com/radiusxyz/radius-sdk-go/lockfile"
	"github.com/radiusxyz/radius-sdk-go/manifest"
	"github.com/radiusxyz/radius-sdk-go/registry"
	"github.com/radiusxyz/radius-sdk-go/types"
)

// ErrNotActivated is returned by accessors for capabilities outside the
// build's closure.
var ErrNotActivated = errors.New("capability not activated")

// NotActivatedError reports an accessor call for a subsystem or mode the
// build did not activate.
type NotActivatedError struct {
	Subsystem string
	Mode      string
}

func (e *NotActivatedError) Error() string {
	if e.Mode == "" {
		return fmt.Sprintf("subsystem %q is not activated in this build", e.Subsystem)
	}
	return fmt.Sprintf("subsystem %q mode %q is not activated in this build", e.Subsystem, e.Mode)
}

// Is implements error matching for errors.Is() checks.
func (e *NotActivatedError) Is(target error) bool {
	return target == ErrNotActivated
}

// SDK is an activated facade. Immutable after New returns; safe for
// concurrent use.
type SDK struct {
	closure feature.ActivationSet
	handles map[string]registry.Handle
	lock    *lockfile.Lockfile
}

// Option configures facade construction.
type Option func(*config)

type config struct {
	logger       *slog.Logger
	lockfilePath string
}

// WithLogger routes activation logging to the given logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithLockfile pins resolved subsystem versions at path. A fresh lockfile is
// written when none exists; an existing one is verified against the current
// resolution, and drift aborts construction.
func WithLockfile(path string) Option {
	return func(c *config) {
		c.lockfilePath = path
	}
}

// New resolves the build configuration against the lattice and activates the
// closure through the registered activators. Every failure aborts before any
// handle becomes visible; there is no partially activated facade.
func New(ctx context.Context, lattice *feature.Lattice, doc *manifest.Document, reg *registry.Registry, opts ...Option) (*SDK, error) {
	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	requested, err := manifest.Expand(doc, lattice)
	if err != nil {
		return nil, err
	}

	closure, err := lattice.Resolve(requested...)
	if err != nil {
		return nil, err
	}

	active := make(map[string]struct{})
	for _, sub := range closure.Subsystems() {
		active[sub] = struct{}{}
	}
	for sub, conf := range doc.Config {
		if _, ok := active[sub]; !ok {
			return nil, fmt.Errorf("config for subsystem %q, which no requested capability activates", sub)
		}
		if err := reg.ValidateConfig(sub, conf); err != nil {
			return nil, err
		}
	}

	var lock *lockfile.Lockfile
	if cfg.lockfilePath != "" {
		lock, err = lockfile.NewService().Ensure(cfg.lockfilePath, lattice, requested, reg)
		if err != nil {
			return nil, err
		}
	}

	handles := make(map[string]registry.Handle, len(active))
	for _, sub := range closure.Subsystems() {
		activator, ok := reg.Activator(sub)
		if !ok {
			return nil, fmt.Errorf("subsystem %q is activated but not registered", sub)
		}

		modes := activeModes(closure, sub)
		handle, err := activator.Activate(ctx, registry.Activation{
			Subsystem: sub,
			Modes:     modes,
			Config:    doc.Config[sub],
		})
		if err != nil {
			return nil, fmt.Errorf("activating subsystem %q: %w", sub, err)
		}
		handles[sub] = handle

		cfg.logger.LogAttrs(ctx, slog.LevelInfo, "subsystem activated",
			slog.String("subsystem", sub),
			slog.String("modes", strings.Join(modes, ",")),
		)
	}

	return &SDK{closure: closure, handles: handles, lock: lock}, nil
}

// Closure returns the resolved activation set of this build.
func (s *SDK) Closure() feature.ActivationSet {
	return s.closure
}

// Lockfile returns the lockfile in force, or nil when version pinning was
// not requested.
func (s *SDK) Lockfile() *lockfile.Lockfile {
	return s.lock
}

// Context returns the context-propagation subsystem.
func (s *SDK) Context() (registry.Handle, error) {
	return s.handle(feature.SubsystemContext, "")
}

// JSONRPCClient returns the JSON-RPC client surface.
func (s *SDK) JSONRPCClient() (registry.Handle, error) {
	return s.handle(feature.SubsystemJSONRPC, feature.ModeClient)
}

// JSONRPCServer returns the JSON-RPC server surface.
func (s *SDK) JSONRPCServer() (registry.Handle, error) {
	return s.handle(feature.SubsystemJSONRPC, feature.ModeServer)
}

// KvStore returns the key-value subsystem, in whichever serialization modes
// the build activated.
func (s *SDK) KvStore() (registry.Handle, error) {
	return s.handle(feature.SubsystemKvStore, "")
}

// Liveness returns the radius liveness subsystem.
func (s *SDK) Liveness() (registry.Handle, error) {
	return s.handle(feature.SubsystemLiveness, feature.ModeRadius)
}

// Signer returns the signature subsystem.
func (s *SDK) Signer() (registry.Handle, error) {
	return s.handle(feature.SubsystemSignature, "")
}

// Validation returns the validation bridge for one restaking provider.
func (s *SDK) Validation(provider types.ValidationProvider) (registry.Handle, error) {
	return s.handle(feature.SubsystemValidation, provider.String())
}

// handle looks up an activated subsystem, checking mode membership when a
// specific mode is required.
func (s *SDK) handle(subsystem, mode string) (registry.Handle, error) {
	h, ok := s.handles[subsystem]
	if !ok {
		return nil, &NotActivatedError{Subsystem: subsystem}
	}
	if mode != "" && !s.closure.Contains(feature.Activation{Subsystem: subsystem, Mode: mode}) {
		return nil, &NotActivatedError{Subsystem: subsystem, Mode: mode}
	}
	return h, nil
}

func activeModes(closure feature.ActivationSet, subsystem string) []string {
	var out []string
	for _, mode := range closure.Modes(subsystem) {
		if mode != "" {
			out = append(out, mode)
		}
	}
	return out
}
