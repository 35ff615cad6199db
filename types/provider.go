package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LivenessProvider identifies the liveness service a sequencer registers
// with. Serialized as its canonical lowercase name.
type LivenessProvider string

const (
	LivenessProviderRadius LivenessProvider = "radius"
)

// UnsupportedLivenessProviderError reports an unknown liveness provider.
type UnsupportedLivenessProviderError struct {
	Value string
}

func (e *UnsupportedLivenessProviderError) Error() string {
	return fmt.Sprintf("unsupported liveness provider: %s", e.Value)
}

// ParseLivenessProvider parses a liveness provider name, case-insensitively.
func ParseLivenessProvider(s string) (LivenessProvider, error) {
	switch strings.ToLower(s) {
	case "radius":
		return LivenessProviderRadius, nil
	default:
		return "", &UnsupportedLivenessProviderError{Value: s}
	}
}

func (p LivenessProvider) String() string {
	return string(p)
}

// MarshalJSON serializes the canonical lowercase name.
func (p LivenessProvider) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

// UnmarshalJSON accepts any casing and normalizes to the canonical name.
func (p *LivenessProvider) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLivenessProvider(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ValidationProvider identifies the restaking validation service securing a
// cluster. Serialized as its canonical lowercase name.
type ValidationProvider string

const (
	ValidationProviderEigenLayer ValidationProvider = "eigenlayer"
	ValidationProviderSymbiotic  ValidationProvider = "symbiotic"
)

// UnsupportedValidationProviderError reports an unknown validation provider.
type UnsupportedValidationProviderError struct {
	Value string
}

func (e *UnsupportedValidationProviderError) Error() string {
	return fmt.Sprintf("unsupported validation provider: %s", e.Value)
}

// ParseValidationProvider parses a validation provider name,
// case-insensitively.
func ParseValidationProvider(s string) (ValidationProvider, error) {
	switch strings.ToLower(s) {
	case "eigenlayer":
		return ValidationProviderEigenLayer, nil
	case "symbiotic":
		return ValidationProviderSymbiotic, nil
	default:
		return "", &UnsupportedValidationProviderError{Value: s}
	}
}

func (p ValidationProvider) String() string {
	return string(p)
}

// MarshalJSON serializes the canonical lowercase name.
func (p ValidationProvider) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

// UnmarshalJSON accepts any casing and normalizes to the canonical name.
func (p *ValidationProvider) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseValidationProvider(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
