package feature

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error patterns. These allow errors.Is() checks
// while the typed variants carry the offending names for reporting.
var (
	// ErrUnknownCapability is returned when a requested name is not declared
	// in the lattice.
	ErrUnknownCapability = errors.New("unknown capability")

	// ErrConflictingParameterization is returned when two requested
	// capabilities need different modes of a subsystem that cannot host both.
	ErrConflictingParameterization = errors.New("conflicting parameterization")
)

// UnknownCapabilityError reports a requested name outside the declared
// lattice.
type UnknownCapabilityError struct {
	Name Name
}

func (e *UnknownCapabilityError) Error() string {
	return fmt.Sprintf("unknown capability: %s", e.Name)
}

// Is implements error matching for errors.Is() checks.
func (e *UnknownCapabilityError) Is(target error) bool {
	return target == ErrUnknownCapability
}

// ConflictingParameterizationError reports two simultaneously requested modes
// on a subsystem declared with exclusive modes. The build must halt rather
// than silently pick one.
type ConflictingParameterizationError struct {
	Subsystem string
	ModeA     string
	ModeB     string
}

func (e *ConflictingParameterizationError) Error() string {
	return fmt.Sprintf(
		"conflicting parameterization of subsystem %q: mode %q and mode %q cannot both be active",
		e.Subsystem, e.ModeA, e.ModeB,
	)
}

// Is implements error matching for errors.Is() checks.
func (e *ConflictingParameterizationError) Is(target error) bool {
	return target == ErrConflictingParameterization
}
