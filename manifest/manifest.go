// Package manifest reads and interprets the SDK build-configuration
// document: the set of requested capabilities plus optional per-subsystem
// configuration. The document is parsed from YAML or JSON, checked against an
// embedded JSON Schema, and its capability entries expanded against a
// declared lattice before resolution.
package manifest

import (
	"errors"
	"fmt"
)

// DocumentVersion is the current build-configuration document version.
const DocumentVersion = 1

// Document is a parsed build configuration.
//
// Capabilities entries are declared capability names or glob patterns over
// them (e.g. "validation-*"). Config holds per-subsystem parameterization,
// keyed by subsystem name, validated against the registered schema of the
// subsystem at activation time.
type Document struct {
	SDKVersion   int                       `yaml:"sdk_version" json:"sdk_version"`
	Capabilities []string                  `yaml:"capabilities" json:"capabilities"`
	Config       map[string]map[string]any `yaml:"config,omitempty" json:"config,omitempty"`
}

// Sentinel errors for manifest interpretation.
var (
	// ErrInvalidDocument is returned when a document fails schema validation
	// or carries an unsupported version.
	ErrInvalidDocument = errors.New("invalid build configuration")

	// ErrNoPatternMatch is returned when a capability glob matches no
	// declared name. A silently empty pattern would be a missing-activation
	// bug, so it is fatal.
	ErrNoPatternMatch = errors.New("capability pattern matched nothing")
)

// InvalidDocumentError reports a document rejected before interpretation.
type InvalidDocumentError struct {
	Reason string
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid build configuration: %s", e.Reason)
}

// Is implements error matching for errors.Is() checks.
func (e *InvalidDocumentError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// PatternMatchError reports a glob entry that matched no declared capability.
type PatternMatchError struct {
	Pattern string
}

func (e *PatternMatchError) Error() string {
	return fmt.Sprintf("capability pattern %q matched no declared capability", e.Pattern)
}

// Is implements error matching for errors.Is() checks.
func (e *PatternMatchError) Is(target error) bool {
	return target == ErrNoPatternMatch
}
