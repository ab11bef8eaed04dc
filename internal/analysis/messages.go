package analysis

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// RecordFromMessages decodes the resume record carried by the last upstream message.
// The content must be a JSON object; it is deserialized, never executed.
func RecordFromMessages(messages []types.Message) (*types.ResumeRecord, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("no upstream messages")
	}

	record, err := parsing.DecodeRecord([]byte(messages[len(messages)-1].Content))
	if err != nil {
		return nil, fmt.Errorf("failed to read resume record from upstream message: %w", err)
	}
	return record, nil
}
