package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfileJSON(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantFailed string
		wantKey    string
	}{
		{
			name:    "well-formed JSON",
			raw:     `{"technical_skills": ["go"], "years_of_experience": 3}`,
			wantKey: "technical_skills",
		},
		{
			name:    "json code fence",
			raw:     "```json\n{\"technical_skills\": [\"go\"]}\n```",
			wantKey: "technical_skills",
		},
		{
			name:    "bare fence with trailing commentary",
			raw:     "```\n{\"domain_expertise\": [\"fintech\"]}\n```\nHope this helps!",
			wantKey: "domain_expertise",
		},
		{
			name:    "prose before and after",
			raw:     "Sure! Here is the analysis:\n{\"experience_level\": \"Senior\"}\nLet me know if you need more.",
			wantKey: "experience_level",
		},
		{
			name:    "nested objects keep outermost braces",
			raw:     `Result: {"education": {"level": "Masters", "field": "Physics"}} done`,
			wantKey: "education",
		},
		{
			name:    "empty object",
			raw:     `{}`,
			wantKey: "",
		},
		{
			name:       "empty text",
			raw:        "   \n ",
			wantFailed: ReasonEmpty,
		},
		{
			name:       "plain prose",
			raw:        "not json at all",
			wantFailed: ReasonUnparseable,
		},
		{
			name:       "broken JSON between braces",
			raw:        `here {"technical_skills": [} there`,
			wantFailed: ReasonUnparseable,
		},
		{
			name:       "JSON array is not an object",
			raw:        `["python", "go"]`,
			wantFailed: ReasonUnparseable,
		},
		{
			name:       "null",
			raw:        `null`,
			wantFailed: ReasonUnparseable,
		},
		{
			name:       "closing brace before opening brace",
			raw:        `} nothing {`,
			wantFailed: ReasonUnparseable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := ParseProfileJSON(tt.raw)

			switch o := outcome.(type) {
			case Parsed:
				require.Empty(t, tt.wantFailed, "expected Failed outcome")
				require.NotNil(t, o.Fields)
				if tt.wantKey != "" {
					assert.Contains(t, o.Fields, tt.wantKey)
				}
			case Failed:
				require.NotEmpty(t, tt.wantFailed, "unexpected Failed outcome: %s", o.Reason)
				assert.Equal(t, tt.wantFailed, o.Reason)
			default:
				t.Fatalf("unexpected outcome type %T", outcome)
			}
		})
	}
}

func TestParseProfileJSON_NeverPanics(t *testing.T) {
	inputs := []string{"{", "}", "{{}}", "\x00\xff", "```", "```json", `{"a":`, "{\"a\": \"\\u12\"}"}

	for _, input := range inputs {
		assert.NotPanics(t, func() {
			_ = ParseProfileJSON(input)
		})
	}
}

func TestFencedBody(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "json info string", text: "```json\n{\"a\": 1}\n```", want: `{"a": 1}`, wantOK: true},
		{name: "other info string", text: "```javascript\n{\"a\": 1}\n```", want: `{"a": 1}`, wantOK: true},
		{name: "no info string", text: "```\n{\"a\": 1}\n```", want: `{"a": 1}`, wantOK: true},
		{name: "object on the fence line", text: "```{\"a\": 1}\n```", want: `{"a": 1}`, wantOK: true},
		{name: "commentary after fence", text: "```json\n{\"a\": 1}\n```\nHope this helps!", want: `{"a": 1}`, wantOK: true},
		{name: "unterminated fence", text: "```json\n{\"a\": 1}", want: `{"a": 1}`, wantOK: true},
		{name: "no fence", text: `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := fencedBody(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
