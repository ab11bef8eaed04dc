package parsing

import (
	"context"
	"errors"
	"fmt"
)

// ModelCallError records a model query that produced no text.
// Analysis continues on the fallback path; the error is only logged.
type ModelCallError struct {
	Model string
	Cause error
}

func (e *ModelCallError) Error() string {
	return fmt.Sprintf("model %s: query failed: %v", e.Model, e.Cause)
}

func (e *ModelCallError) Unwrap() error { return e.Cause }

// TimedOut reports whether the query hit its deadline rather than failing outright.
func (e *ModelCallError) TimedOut() bool {
	return errors.Is(e.Cause, context.DeadlineExceeded)
}

// ParseError is returned for request payloads that cannot be decoded into a resume record.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause == nil {
		return "parse error: " + e.Message
	}
	return "parse error: " + e.Message + ": " + e.Cause.Error()
}

func (e *ParseError) Unwrap() error { return e.Cause }
