package parsing

import (
	"encoding/json"
	"strings"
)

const fence = "```"

// ParseProfileJSON recovers a JSON object from raw model output.
// It accepts plain JSON, JSON inside markdown fences, and JSON surrounded by prose.
// It never panics; anything it cannot decode becomes a Failed outcome.
func ParseProfileJSON(raw string) Outcome {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Failed{Reason: ReasonEmpty}
	}

	if fields, ok := decodeObject(text); ok {
		return Parsed{Fields: fields}
	}

	if body, ok := fencedBody(text); ok {
		if fields, ok := decodeObject(body); ok {
			return Parsed{Fields: fields}
		}
	}

	// Outermost braces: first '{' through last '}'
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		if fields, ok := decodeObject(text[start : end+1]); ok {
			return Parsed{Fields: fields}
		}
	}

	return Failed{Reason: ReasonUnparseable}
}

// decodeObject decodes text as a single JSON object.
// null and non-object values are rejected.
func decodeObject(text string) (map[string]any, bool) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(text), &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

// fencedBody returns the content of a leading markdown code fence, dropping an
// info string such as "json" and anything after the closing fence.
func fencedBody(text string) (string, bool) {
	if !strings.HasPrefix(text, fence) {
		return "", false
	}
	body := text[len(fence):]

	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		if info := strings.TrimSpace(body[:nl]); !strings.ContainsAny(info, "{[ ") {
			body = body[nl+1:]
		}
	}
	if end := strings.Index(body, fence); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body), true
}
