// Package registry holds the subsystem activators known to a build and the
// configuration contract of each. A subsystem exposes exactly one contract
// to the SDK: accept an activation request with optional modes and
// configuration, or remain entirely absent from the artifact.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/invopop/jsonschema"
	jsonschemav5 "github.com/santhosh-tekuri/jsonschema/v5"
)

// Handle is the opaque surface an activated subsystem hands back to the
// facade. The SDK never inspects it; it only routes it to the consumer.
type Handle any

// Activation is the single request a subsystem receives: the modes to turn
// on and the subsystem's validated configuration section.
type Activation struct {
	Subsystem string
	Modes     []string
	Config    map[string]any
}

// Activator is implemented by each external subsystem made available to a
// build. Versions reports the subsystem versions this build can link, for
// lockfile pinning.
type Activator interface {
	Name() string
	Versions() []string
	Activate(ctx context.Context, act Activation) (Handle, error)
}

// Registry maps subsystem names to their activators and compiled
// configuration schemas. Safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	activators map[string]Activator
	schemas    map[string]*jsonschemav5.Schema
	reflector  *jsonschema.Reflector
}

// Option configures the Registry.
type Option func(*Registry)

// WithReflector replaces the schema reflector used for config models.
func WithReflector(r *jsonschema.Reflector) Option {
	return func(reg *Registry) {
		reg.reflector = r
	}
}

// New creates an empty activator registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		activators: make(map[string]Activator),
		schemas:    make(map[string]*jsonschemav5.Schema),
		reflector:  new(jsonschema.Reflector),
	}
	r.reflector.ExpandedStruct = true

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds an activator together with its configuration model. The
// model is a Go struct value whose reflected JSON Schema governs the
// subsystem's config section in the build document; a nil model declares the
// subsystem configuration-free, and any config for it is rejected.
func (r *Registry) Register(a Activator, configModel any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := a.Name()
	if name == "" {
		return fmt.Errorf("activator has no subsystem name")
	}
	if _, exists := r.activators[name]; exists {
		return fmt.Errorf("subsystem already registered: %s", name)
	}

	var schema *jsonschemav5.Schema
	if configModel != nil {
		reflected := r.reflector.Reflect(configModel)
		raw, err := json.Marshal(reflected)
		if err != nil {
			return fmt.Errorf("subsystem %s: marshaling config schema: %w", name, err)
		}
		schema, err = jsonschemav5.CompileString(name+"-config.json", string(raw))
		if err != nil {
			return fmt.Errorf("subsystem %s: compiling config schema: %w", name, err)
		}
	}

	r.activators[name] = a
	r.schemas[name] = schema
	return nil
}

// Activator returns the registered activator for a subsystem.
func (r *Registry) Activator(name string) (Activator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.activators[name]
	return a, ok
}

// List returns all registered subsystem names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.activators))
	for name := range r.activators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Versions reports the available versions of a registered subsystem.
func (r *Registry) Versions(name string) []string {
	r.mu.RLock()
	a, ok := r.activators[name]
	r.mu.RUnlock()
	if !ok {
		return nil
	}
	return a.Versions()
}

// ValidateConfig checks a subsystem's config section against its registered
// schema. Config for a configuration-free or unregistered subsystem is
// rejected.
func (r *Registry) ValidateConfig(name string, config map[string]any) error {
	r.mu.RLock()
	_, registered := r.activators[name]
	schema := r.schemas[name]
	r.mu.RUnlock()

	if !registered {
		return fmt.Errorf("config for unregistered subsystem %q", name)
	}
	if len(config) == 0 {
		return nil
	}
	if schema == nil {
		return fmt.Errorf("subsystem %q takes no configuration", name)
	}

	// Canonicalize through JSON so YAML-decoded scalars validate uniformly.
	raw, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("subsystem %q: canonicalizing config: %w", name, err)
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("subsystem %q: canonicalizing config: %w", name, err)
	}

	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("subsystem %q: invalid config: %w", name, err)
	}
	return nil
}
