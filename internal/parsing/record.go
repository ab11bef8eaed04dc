package parsing

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// DecodeRecord decodes an upstream resume record from its JSON payload and validates it.
// The payload is only ever deserialized, never evaluated.
func DecodeRecord(data []byte) (*types.ResumeRecord, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, &ParseError{Message: "resume record payload is empty"}
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &ParseError{
			Message: "failed to decode resume record",
			Cause:   err,
		}
	}

	if err := record.Validate(); err != nil {
		return nil, &ParseError{
			Message: "invalid resume record",
			Cause:   err,
		}
	}

	return &record, nil
}
