// Package schemas provides JSON Schema validation for wire payloads at the
// API boundary.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// experienceSchema is the structural contract for a submitted experience:
// required text fields and ISO-8601 calendar dates. The semantic rule that
// the end date follows the start date is checked separately after parsing.
const experienceSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Experience",
  "type": "object",
  "required": ["jobTitle", "companyName", "startDate", "endDate"],
  "additionalProperties": false,
  "properties": {
    "id": { "type": "string" },
    "jobTitle": { "type": "string", "minLength": 2 },
    "companyName": { "type": "string", "minLength": 2 },
    "description": { "type": "string" },
    "startDate": { "$ref": "#/definitions/isoDate" },
    "endDate": { "$ref": "#/definitions/isoDate" }
  },
  "definitions": {
    "isoDate": {
      "type": "string",
      "pattern": "^\\d{4}-\\d{2}-\\d{2}(T\\d{2}:\\d{2}:\\d{2}(\\.\\d+)?(Z|[+-]\\d{2}:\\d{2}))?$"
    }
  }
}`

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateExperience validates a raw experience payload against the schema.
// Returns a ValidationError listing every violated field.
func ValidateExperience(payload []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(experienceSchema)
	documentLoader := gojsonschema.NewBytesLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
