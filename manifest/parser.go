package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Parser parses raw build-configuration bytes into a Document. The raw
// document is checked against the embedded schema before it is decoded into
// the typed form, so structural violations surface as ErrInvalidDocument
// rather than decode errors.
type Parser interface {
	Parse(data []byte) (*Document, error)
}

// YAMLParser implements Parser for YAML documents.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser.
func NewYAMLParser() Parser {
	return &YAMLParser{}
}

// Parse unmarshals YAML bytes into a validated Document.
func (p *YAMLParser) Parse(data []byte) (*Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding build configuration YAML: %w", err)
	}
	if err := validateRaw(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding build configuration YAML: %w", err)
	}
	if err := validateVersion(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// JSONParser implements Parser for JSON documents.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser.
func NewJSONParser() Parser {
	return &JSONParser{}
}

// Parse unmarshals JSON bytes into a validated Document.
func (p *JSONParser) Parse(data []byte) (*Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding build configuration JSON: %w", err)
	}
	if err := validateRaw(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding build configuration JSON: %w", err)
	}
	if err := validateVersion(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
