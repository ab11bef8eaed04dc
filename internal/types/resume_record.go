package types

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ResumeRecord is the upstream parsing stage's output for a single resume
type ResumeRecord struct {
	StructuredData string         `json:"structured_data" validate:"required"`
	RawText        string         `json:"raw_text,omitempty"`
	FileName       string         `json:"file_name,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// Message is a single message passed between pipeline stages
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Validate validates the ResumeRecord using the validator.
func (r *ResumeRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// String returns the JSON serialization of the whole record.
// It is the broadest text surface available for skill matching.
func (r *ResumeRecord) String() string {
	if r == nil {
		return ""
	}
	data, err := json.Marshal(r)
	if err != nil {
		// Metadata may hold values encoding/json rejects; fall back to the text fields
		return fmt.Sprintf("%s\n%s\n%s", r.FileName, r.StructuredData, r.RawText)
	}
	return string(data)
}
