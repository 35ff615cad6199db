// Package feature models capability composition for the SDK as an explicit
// lattice: declared subsystems, the capabilities that activate them, and
// umbrella capabilities defined as the union of other capabilities.
//
// The lattice is fixed at build-configuration time. Resolving a requested set
// of capability names computes the transitive closure of subsystem
// activations; the closure is immutable for the lifetime of the build
// artifact. All failures are configuration-time fatals.
package feature

import (
	"fmt"
	"strings"
)

// Name identifies a declared capability.
type Name string

func (n Name) String() string {
	return string(n)
}

// validName reports whether a capability or subsystem name is well formed:
// non-empty, lowercase alphanumeric and hyphens, no leading or trailing
// hyphen.
func validName(s string) bool {
	if s == "" || len(s) > 64 {
		return false
	}
	if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
		return false
	}
	for _, ch := range s {
		valid := (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '-'
		if !valid {
			return false
		}
	}
	return true
}

// DefaultsPolicy states whether activating a subsystem binding also pulls in
// the subsystem's own default activation bundle, or selects exactly the named
// variant.
type DefaultsPolicy int

const (
	// DefaultsInherited activates the subsystem with its default bundle.
	DefaultsInherited DefaultsPolicy = iota

	// DefaultsSuppressed activates only the explicitly named mode.
	DefaultsSuppressed
)

func (p DefaultsPolicy) String() string {
	switch p {
	case DefaultsSuppressed:
		return "suppressed"
	default:
		return "inherited"
	}
}

// Activation is a single subsystem activation, optionally parameterized by a
// mode. Mode is empty for single-mode subsystems.
type Activation struct {
	Subsystem string
	Mode      string
}

// String returns the canonical "subsystem:mode" form, or just the subsystem
// name when unparameterized.
func (a Activation) String() string {
	if a.Mode == "" {
		return a.Subsystem
	}
	return a.Subsystem + ":" + a.Mode
}

// Binding relates a capability to one subsystem activation it must turn on.
// Constraint, when non-empty, is a semver range the activated subsystem
// version must satisfy; constraints from every capability binding the same
// subsystem are intersected when pinning versions.
type Binding struct {
	Activation Activation
	Defaults   DefaultsPolicy
	Constraint string
}

// Subsystem declares an external collaborator the lattice may activate.
// When ExclusiveModes is set, two different modes of the subsystem cannot be
// active simultaneously and resolution fails instead of picking one.
type Subsystem struct {
	Name           string
	ExclusiveModes bool
}

// Capability is a named, independently requestable unit. Bindings are the
// subsystem activations it turns on directly; Requires names other declared
// capabilities whose activations it implies transitively.
type Capability struct {
	Name     Name
	Bindings []Binding
	Requires []Name
}

// Umbrella is a capability defined only by a member list; its closure is the
// union of its members' closures. The member list is maintained explicitly:
// adding a capability to the lattice without revisiting the umbrella is a
// structural defect the test suite pins.
type Umbrella struct {
	Name    Name
	Members []Name
}

// Lattice is the immutable set of declared subsystems, capabilities and
// umbrellas. Construct with NewLattice; the validating constructor is the
// only way invariants are established.
type Lattice struct {
	subsystems   map[string]Subsystem
	capabilities map[Name]Capability
	umbrellas    map[Name]Umbrella
	declared     []Name
}

// NewLattice builds a lattice and checks its structural invariants: unique
// well-formed names, bindings against declared subsystems, requires edges and
// umbrella members against declared capabilities.
func NewLattice(subsystems []Subsystem, capabilities []Capability, umbrellas []Umbrella) (*Lattice, error) {
	l := &Lattice{
		subsystems:   make(map[string]Subsystem, len(subsystems)),
		capabilities: make(map[Name]Capability, len(capabilities)),
		umbrellas:    make(map[Name]Umbrella, len(umbrellas)),
	}

	for _, s := range subsystems {
		if !validName(s.Name) {
			return nil, fmt.Errorf("invalid subsystem name %q", s.Name)
		}
		if _, exists := l.subsystems[s.Name]; exists {
			return nil, fmt.Errorf("duplicate subsystem %q", s.Name)
		}
		l.subsystems[s.Name] = s
	}

	for _, c := range capabilities {
		if !validName(string(c.Name)) {
			return nil, fmt.Errorf("invalid capability name %q", c.Name)
		}
		if _, exists := l.capabilities[c.Name]; exists {
			return nil, fmt.Errorf("duplicate capability %q", c.Name)
		}
		l.capabilities[c.Name] = c
		l.declared = append(l.declared, c.Name)
	}

	for _, u := range umbrellas {
		if !validName(string(u.Name)) {
			return nil, fmt.Errorf("invalid umbrella name %q", u.Name)
		}
		if _, exists := l.capabilities[u.Name]; exists {
			return nil, fmt.Errorf("umbrella %q collides with a capability", u.Name)
		}
		if _, exists := l.umbrellas[u.Name]; exists {
			return nil, fmt.Errorf("duplicate umbrella %q", u.Name)
		}
		if len(u.Members) == 0 {
			return nil, fmt.Errorf("umbrella %q has no members", u.Name)
		}
		l.umbrellas[u.Name] = u
		l.declared = append(l.declared, u.Name)
	}

	// Edge validation after all nodes are known.
	for _, c := range capabilities {
		for _, b := range c.Bindings {
			if _, ok := l.subsystems[b.Activation.Subsystem]; !ok {
				return nil, fmt.Errorf("capability %q binds undeclared subsystem %q", c.Name, b.Activation.Subsystem)
			}
		}
		for _, req := range c.Requires {
			if _, ok := l.capabilities[req]; !ok {
				return nil, fmt.Errorf("capability %q requires undeclared capability %q", c.Name, req)
			}
		}
	}
	for _, u := range umbrellas {
		for _, m := range u.Members {
			if _, capOK := l.capabilities[m]; !capOK {
				return nil, fmt.Errorf("umbrella %q lists undeclared member %q", u.Name, m)
			}
		}
	}

	return l, nil
}

// MustNewLattice builds a lattice or panics. Intended for static, known-good
// declarations.
func MustNewLattice(subsystems []Subsystem, capabilities []Capability, umbrellas []Umbrella) *Lattice {
	l, err := NewLattice(subsystems, capabilities, umbrellas)
	if err != nil {
		panic(err)
	}
	return l
}

// Declared returns every declared name, capabilities first, then umbrellas,
// in declaration order.
func (l *Lattice) Declared() []Name {
	out := make([]Name, len(l.declared))
	copy(out, l.declared)
	return out
}

// Capability returns the declared capability for name.
func (l *Lattice) Capability(name Name) (Capability, bool) {
	c, ok := l.capabilities[name]
	return c, ok
}

// Umbrella returns the declared umbrella for name.
func (l *Lattice) Umbrella(name Name) (Umbrella, bool) {
	u, ok := l.umbrellas[name]
	return u, ok
}

// Subsystem returns the declared subsystem for name.
func (l *Lattice) Subsystem(name string) (Subsystem, bool) {
	s, ok := l.subsystems[name]
	return s, ok
}

// IsDeclared reports whether name is a declared capability or umbrella.
func (l *Lattice) IsDeclared(name Name) bool {
	if _, ok := l.capabilities[name]; ok {
		return true
	}
	_, ok := l.umbrellas[name]
	return ok
}
