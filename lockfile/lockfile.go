// Package lockfile pins the result of capability resolution: the closed set
// of subsystem activations and the subsystem version selected for each. A
// lockfile makes a build configuration reproducible and lets later builds
// detect drift between the recorded closure and the lattice they resolve.
package lockfile

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Version is the current lockfile format version.
const Version = 1

// Lockfile is the aggregate of pinned subsystem activations.
//
// Invariants:
//   - every entry carries a digest
//   - the generated timestamp is set whenever entries exist
type Lockfile struct {
	Generated   time.Time
	Version     int
	Activations map[string]ActivationLock
}

// ActivationLock pins one activated subsystem: its active modes, the
// capabilities that requested it, the version constraint intersection in
// force, and the resolved version.
type ActivationLock struct {
	Subsystem   string
	Modes       []string
	RequestedBy []string
	Constraint  string
	Resolved    string
	Digest      string
}

// New creates an empty lockfile at the current version.
func New() *Lockfile {
	return &Lockfile{
		Version:     Version,
		Generated:   time.Now().UTC(),
		Activations: make(map[string]ActivationLock),
	}
}

// Add records an activation lock, computing its digest. Returns an error if
// the subsystem name is empty.
func (l *Lockfile) Add(lock ActivationLock) error {
	if lock.Subsystem == "" {
		return fmt.Errorf("activation lock without subsystem name")
	}
	lock.Digest = digest(lock)
	if l.Activations == nil {
		l.Activations = make(map[string]ActivationLock)
	}
	l.Activations[lock.Subsystem] = lock
	return nil
}

// Get retrieves the lock entry for a subsystem. Returns nil if absent.
func (l *Lockfile) Get(subsystem string) *ActivationLock {
	if l.Activations == nil {
		return nil
	}
	if lock, ok := l.Activations[subsystem]; ok {
		return &lock
	}
	return nil
}

// Count returns the number of pinned subsystems.
func (l *Lockfile) Count() int {
	return len(l.Activations)
}

// Subsystems lists the pinned subsystem names, sorted.
func (l *Lockfile) Subsystems() []string {
	out := make([]string, 0, len(l.Activations))
	for name := range l.Activations {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Validate checks lockfile invariants, including that every entry's digest
// matches its content.
func (l *Lockfile) Validate() error {
	if l.Count() > 0 && l.Generated.IsZero() {
		return fmt.Errorf("generated timestamp is required")
	}
	for name, lock := range l.Activations {
		if lock.Digest == "" {
			return fmt.Errorf("subsystem %q: digest is required", name)
		}
		if lock.Digest != digest(lock) {
			return fmt.Errorf("subsystem %q: digest does not match entry", name)
		}
	}
	return nil
}

// digest computes the canonical content hash of an entry, excluding the
// digest field itself.
func digest(lock ActivationLock) string {
	modes := append([]string(nil), lock.Modes...)
	sort.Strings(modes)
	requested := append([]string(nil), lock.RequestedBy...)
	sort.Strings(requested)

	canonical := strings.Join([]string{
		lock.Subsystem,
		strings.Join(modes, ","),
		strings.Join(requested, ","),
		lock.Constraint,
		lock.Resolved,
	}, "\n")

	sum := sha256.Sum256([]byte(canonical))
	return "sha256:" + hex.EncodeToString(sum[:])
}
