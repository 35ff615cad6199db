package feature

import (
	"sort"
	"strings"
)

// ActivationSet is an immutable set of subsystem activations. The zero value
// is the empty set. Listing methods return deterministic, sorted results.
type ActivationSet struct {
	items map[Activation]struct{}
}

// NewActivationSet builds a set from the given activations.
func NewActivationSet(items ...Activation) ActivationSet {
	s := ActivationSet{items: make(map[Activation]struct{}, len(items))}
	for _, a := range items {
		s.items[a] = struct{}{}
	}
	return s
}

// Len returns the number of activations in the set.
func (s ActivationSet) Len() int {
	return len(s.items)
}

// Contains reports whether a is in the set.
func (s ActivationSet) Contains(a Activation) bool {
	_, ok := s.items[a]
	return ok
}

// Activations lists the set sorted by subsystem, then mode.
func (s ActivationSet) Activations() []Activation {
	out := make([]Activation, 0, len(s.items))
	for a := range s.items {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Subsystem != out[j].Subsystem {
			return out[i].Subsystem < out[j].Subsystem
		}
		return out[i].Mode < out[j].Mode
	})
	return out
}

// Subsystems lists the distinct activated subsystems, sorted.
func (s ActivationSet) Subsystems() []string {
	seen := make(map[string]struct{})
	for a := range s.items {
		seen[a.Subsystem] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Modes lists the active modes of one subsystem, sorted. An unparameterized
// activation contributes the empty mode.
func (s ActivationSet) Modes(subsystem string) []string {
	var out []string
	for a := range s.items {
		if a.Subsystem == subsystem {
			out = append(out, a.Mode)
		}
	}
	sort.Strings(out)
	return out
}

// Union returns a new set holding every activation of s and other.
func (s ActivationSet) Union(other ActivationSet) ActivationSet {
	out := ActivationSet{items: make(map[Activation]struct{}, len(s.items)+len(other.items))}
	for a := range s.items {
		out.items[a] = struct{}{}
	}
	for a := range other.items {
		out.items[a] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same activations.
func (s ActivationSet) Equal(other ActivationSet) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for a := range s.items {
		if !other.Contains(a) {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every activation of s is in other.
func (s ActivationSet) SubsetOf(other ActivationSet) bool {
	for a := range s.items {
		if !other.Contains(a) {
			return false
		}
	}
	return true
}

// String renders the set in canonical sorted form, e.g.
// "{kvstore:json, kvstore-codegen}".
func (s ActivationSet) String() string {
	parts := make([]string, 0, len(s.items))
	for _, a := range s.Activations() {
		parts = append(parts, a.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
