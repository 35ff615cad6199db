// Package types holds the data contracts the SDK shares with its consumers:
// platform and provider identifiers, and the JSON-RPC parameter types of the
// sequencing network. Transport, storage and signing live in the activated
// subsystems; these are wire shapes only.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Platform identifies the settlement platform a cluster runs against.
// Serialized as its canonical lowercase name.
type Platform string

const (
	PlatformEthereum Platform = "ethereum"
	PlatformLocal    Platform = "local"
)

// UnsupportedPlatformError reports a platform name outside the supported set.
type UnsupportedPlatformError struct {
	Value string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s", e.Value)
}

// ParsePlatform parses a platform name, case-insensitively.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(s) {
	case "ethereum":
		return PlatformEthereum, nil
	case "local":
		return PlatformLocal, nil
	default:
		return "", &UnsupportedPlatformError{Value: s}
	}
}

func (p Platform) String() string {
	return string(p)
}

// MarshalJSON serializes the canonical lowercase name.
func (p Platform) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

// UnmarshalJSON accepts any casing and normalizes to the canonical name.
func (p *Platform) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePlatform(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
