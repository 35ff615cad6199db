package lockfile

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/radiusxyz/radius-sdk-go/feature"
)

// Sentinel errors for pinning and verification.
var (
	// ErrVersionConflict is returned when no available subsystem version
	// satisfies every capability's constraint on it. This is the version-skew
	// fatal: the build must not proceed with mismatched expectations on a
	// shared subsystem.
	ErrVersionConflict = errors.New("subsystem version conflict")

	// ErrDrift is returned when an existing lockfile no longer matches the
	// closure the lattice resolves today.
	ErrDrift = errors.New("lockfile drift")
)

// VersionConflictError reports constraints that exclude every available
// version of a subsystem.
type VersionConflictError struct {
	Subsystem   string
	Constraints []string
	Available   []string
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf(
		"no version of subsystem %q satisfies constraints [%s] (available: %s)",
		e.Subsystem, strings.Join(e.Constraints, ", "), strings.Join(e.Available, ", "),
	)
}

// Is implements error matching for errors.Is() checks.
func (e *VersionConflictError) Is(target error) bool {
	return target == ErrVersionConflict
}

// DriftError reports a recorded closure that diverged from the resolved one.
type DriftError struct {
	Subsystem string
	Reason    string
}

func (e *DriftError) Error() string {
	if e.Subsystem == "" {
		return fmt.Sprintf("lockfile drift: %s", e.Reason)
	}
	return fmt.Sprintf("lockfile drift: subsystem %q: %s", e.Subsystem, e.Reason)
}

// Is implements error matching for errors.Is() checks.
func (e *DriftError) Is(target error) bool {
	return target == ErrDrift
}

// VersionSource reports the versions of a subsystem a build can link.
// Typically backed by the activator registry.
type VersionSource interface {
	Versions(subsystem string) []string
}

// Service pins capability resolutions into lockfiles and verifies existing
// lockfiles against the current lattice.
type Service struct {
	repo *FileRepository
}

// NewService creates a lockfile service backed by the local filesystem.
func NewService() *Service {
	return &Service{repo: NewFileRepository()}
}

// Pin resolves the requested capabilities and pins every activated subsystem
// to the highest available version satisfying the intersection of all
// constraints placed on it. Subsystems reporting no versions stay unpinned.
func (s *Service) Pin(lattice *feature.Lattice, requested []feature.Name, versions VersionSource) (*Lockfile, error) {
	closure, err := lattice.Resolve(requested...)
	if err != nil {
		return nil, err
	}
	names, err := lattice.CapabilityClosure(requested...)
	if err != nil {
		return nil, err
	}

	constraints := make(map[string][]string)
	requestedBy := make(map[string][]string)
	for _, name := range names {
		c, ok := lattice.Capability(name)
		if !ok {
			continue
		}
		for _, b := range c.Bindings {
			sub := b.Activation.Subsystem
			requestedBy[sub] = appendUnique(requestedBy[sub], string(name))
			if b.Constraint != "" {
				constraints[sub] = appendUnique(constraints[sub], b.Constraint)
			}
		}
	}

	lock := New()
	for _, subsystem := range closure.Subsystems() {
		resolved, err := resolveVersion(subsystem, constraints[subsystem], versions.Versions(subsystem))
		if err != nil {
			return nil, err
		}

		entry := ActivationLock{
			Subsystem:   subsystem,
			Modes:       nonEmpty(closure.Modes(subsystem)),
			RequestedBy: sorted(requestedBy[subsystem]),
			Constraint:  strings.Join(constraints[subsystem], ", "),
			Resolved:    resolved,
		}
		if err := lock.Add(entry); err != nil {
			return nil, err
		}
	}
	return lock, nil
}

// Verify checks an existing lockfile against the closure the lattice
// resolves for the requested capabilities. Any divergence in the activated
// subsystem set or mode set is reported as drift; entry digests are verified
// as well.
func (s *Service) Verify(lock *Lockfile, lattice *feature.Lattice, requested []feature.Name) error {
	if err := lock.Validate(); err != nil {
		return fmt.Errorf("invalid lockfile: %w", err)
	}

	closure, err := lattice.Resolve(requested...)
	if err != nil {
		return err
	}

	resolved := closure.Subsystems()
	recorded := lock.Subsystems()

	for _, sub := range resolved {
		entry := lock.Get(sub)
		if entry == nil {
			return &DriftError{Subsystem: sub, Reason: "activated but not recorded"}
		}
		want := nonEmpty(closure.Modes(sub))
		got := sorted(entry.Modes)
		if !slices.Equal(want, got) {
			return &DriftError{
				Subsystem: sub,
				Reason:    fmt.Sprintf("modes changed: recorded [%s], resolved [%s]", strings.Join(got, ", "), strings.Join(want, ", ")),
			}
		}
	}
	active := make(map[string]struct{}, len(resolved))
	for _, sub := range resolved {
		active[sub] = struct{}{}
	}
	for _, sub := range recorded {
		if _, ok := active[sub]; !ok {
			return &DriftError{Subsystem: sub, Reason: "recorded but no longer activated"}
		}
	}
	return nil
}

// Ensure loads the lockfile at path, pinning and saving a fresh one when it
// is absent, and verifying it against the current resolution when present.
func (s *Service) Ensure(path string, lattice *feature.Lattice, requested []feature.Name, versions VersionSource) (*Lockfile, error) {
	existing, err := s.repo.Load(path)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		lock, err := s.Pin(lattice, requested, versions)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Save(lock, path); err != nil {
			return nil, err
		}
		return lock, nil
	}

	if err := s.Verify(existing, lattice, requested); err != nil {
		return nil, err
	}
	return existing, nil
}

// resolveVersion picks the highest available version satisfying every
// constraint. An empty availability list leaves the subsystem unpinned.
func resolveVersion(subsystem string, constraints, available []string) (string, error) {
	if len(available) == 0 {
		return "", nil
	}

	parsed := make([]*semver.Constraints, 0, len(constraints))
	for _, raw := range constraints {
		c, err := semver.NewConstraint(raw)
		if err != nil {
			return "", fmt.Errorf("subsystem %q: invalid constraint %q: %w", subsystem, raw, err)
		}
		parsed = append(parsed, c)
	}

	var valid []*semver.Version
	for _, raw := range available {
		v, err := semver.NewVersion(raw)
		if err != nil {
			continue
		}
		ok := true
		for _, c := range parsed {
			if !c.Check(v) {
				ok = false
				break
			}
		}
		if ok {
			valid = append(valid, v)
		}
	}

	if len(valid) == 0 {
		return "", &VersionConflictError{
			Subsystem:   subsystem,
			Constraints: constraints,
			Available:   available,
		}
	}

	sort.Sort(semver.Collection(valid))
	return valid[len(valid)-1].Original(), nil
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}

func nonEmpty(list []string) []string {
	var out []string
	for _, s := range list {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func sorted(list []string) []string {
	out := append([]string(nil), list...)
	sort.Strings(out)
	return out
}
