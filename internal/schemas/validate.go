// Package schemas checks resume records and extraction results against
// their JSON Schemas.
package schemas

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// FieldError is one schema violation, located by its JSON field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError is returned when a document loads but violates its schema.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "validation failed against %s:", e.Schema)
	for _, fe := range e.Errors {
		fmt.Fprintf(&sb, "\n  - %s: %s", fe.Field, fe.Message)
	}
	return sb.String()
}

// SchemaLoadError means the schema itself could not be read or compiled.
// Callers treat it differently from a document that fails validation.
type SchemaLoadError struct {
	Source string
	Cause  error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("cannot load schema %s: %v", e.Source, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validator is a compiled schema bound to the name it was loaded from.
type Validator struct {
	source string
	schema *gojsonschema.Schema
}

func compile(source string, content []byte) (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(content))
	if err != nil {
		return nil, &SchemaLoadError{Source: source, Cause: err}
	}
	return &Validator{source: source, schema: schema}, nil
}

// FromFile compiles a schema stored on disk.
func FromFile(path string) (*Validator, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &SchemaLoadError{Source: path, Cause: err}
	}
	return compile(path, content)
}

// Source names the schema, either its embedded name or its file path.
func (v *Validator) Source() string {
	return v.source
}

// Validate checks a JSON document. Malformed JSON is reported as a plain
// error; schema violations as a *ValidationError.
func (v *Validator) Validate(data []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to read JSON document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Schema: v.source, Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}
