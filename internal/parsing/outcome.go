// Package parsing turns model output and upstream payloads into typed, schema-conformant data.
package parsing

// Failure reasons carried by a Failed outcome
const (
	ReasonEmpty       = "empty response"
	ReasonUnparseable = "unparseable"
)

// Outcome is the result of interpreting model output as a JSON object.
// It is either Parsed or Failed; callers branch with a type switch.
type Outcome interface {
	isOutcome()
}

// Parsed holds the decoded top-level JSON object
type Parsed struct {
	Fields map[string]any
}

// Failed records why no JSON object could be recovered
type Failed struct {
	Reason string
}

func (Parsed) isOutcome() {}
func (Failed) isOutcome() {}
