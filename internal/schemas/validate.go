// Package schemas provides JSON Schema validation of raw provider payloads.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed providers/*.schema.json
var providerSchemas embed.FS

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Schema != "" {
		sb.WriteString(fmt.Sprintf("%s payload validation failed:\n", ve.Schema))
	} else {
		sb.WriteString("validation failed:\n")
	}
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Validator checks documents against one compiled schema.
type Validator struct {
	name   string
	schema *gojsonschema.Schema
}

// ForProvider compiles the embedded payload schema for a provider.
// name is the lowercase provider name, e.g. "remotive".
func ForProvider(name string) (*Validator, error) {
	path := fmt.Sprintf("providers/%s.schema.json", name)
	content, err := providerSchemas.ReadFile(path)
	if err != nil {
		return nil, &SchemaLoadError{
			Path:    path,
			Message: "schema not found",
			Cause:   err,
		}
	}
	return Compile(name, string(content))
}

// MustForProvider is like ForProvider but panics on error.
// The provider schemas are embedded, so failure means a broken build.
func MustForProvider(name string) *Validator {
	v, err := ForProvider(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Compile parses schema content into a reusable Validator.
func Compile(name, schemaContent string) (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaContent))
	if err != nil {
		return nil, &SchemaLoadError{
			Path:    name,
			Message: "invalid schema",
			Cause:   err,
		}
	}
	return &Validator{name: name, schema: schema}, nil
}

// Validate checks a JSON document against the compiled schema.
func (v *Validator) Validate(document []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		// The document itself could not be loaded (not JSON)
		return &ValidationError{
			Schema: v.name,
			Errors: []FieldError{{Field: "(root)", Message: err.Error()}},
		}
	}
	return toValidationError(v.name, result)
}

func toValidationError(name string, result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Schema: name,
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
