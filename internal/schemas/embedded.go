package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Names of the embedded schemas
const (
	ExtractionResultSchema = "extraction_result.schema.json"
	ResumeRecordSchema     = "resume_record.schema.json"
)

//go:embed *.schema.json
var schemaFS embed.FS

var (
	compiled   = make(map[string]*Validator)
	compiledMu sync.Mutex
)

// Schema returns the raw content of an embedded schema
func Schema(name string) (string, error) {
	data, err := schemaFS.ReadFile(name)
	if err != nil {
		return "", &SchemaLoadError{Source: name, Cause: err}
	}
	return string(data), nil
}

// Embedded returns the compiled validator for an embedded schema, compiling it
// on first use.
func Embedded(name string) (*Validator, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if v, ok := compiled[name]; ok {
		return v, nil
	}

	content, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, &SchemaLoadError{Source: name, Cause: err}
	}
	v, err := compile(name, content)
	if err != nil {
		return nil, err
	}

	compiled[name] = v
	return v, nil
}

// ValidateBytes validates a JSON document against the named embedded schema
func ValidateBytes(name string, data []byte) error {
	v, err := Embedded(name)
	if err != nil {
		return err
	}
	return v.Validate(data)
}

// ValidateExtractionResult checks that result serializes to the published output contract
func ValidateExtractionResult(result *types.ExtractionResult) error {
	if result == nil {
		return fmt.Errorf("extraction result is nil")
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal extraction result: %w", err)
	}

	return ValidateBytes(ExtractionResultSchema, data)
}
