package manifest

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema is the structural contract of the build-configuration
// document. Validation happens before the typed decode; a document that
// fails here never reaches capability resolution.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["sdk_version", "capabilities"],
  "additionalProperties": false,
  "properties": {
    "sdk_version": {
      "type": "integer",
      "minimum": 1
    },
    "capabilities": {
      "type": "array",
      "minItems": 1,
      "uniqueItems": true,
      "items": {
        "type": "string",
        "minLength": 1
      }
    },
    "config": {
      "type": "object",
      "additionalProperties": {
        "type": "object"
      }
    }
  }
}`

var compiledSchema = sync.OnceValue(func() *jsonschema.Schema {
	return jsonschema.MustCompileString("build-configuration.json", documentSchema)
})

// validateRaw checks a decoded generic document against the embedded schema.
// The value is canonicalized through JSON first so YAML-typed scalars
// validate identically to JSON ones.
func validateRaw(raw any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("canonicalizing build configuration: %w", err)
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("canonicalizing build configuration: %w", err)
	}

	if err := compiledSchema().Validate(value); err != nil {
		return &InvalidDocumentError{Reason: err.Error()}
	}
	return nil
}

// validateVersion rejects documents written for another document version.
func validateVersion(doc *Document) error {
	if doc.SDKVersion != DocumentVersion {
		return &InvalidDocumentError{
			Reason: fmt.Sprintf("unsupported sdk_version %d (want %d)", doc.SDKVersion, DocumentVersion),
		}
	}
	return nil
}
