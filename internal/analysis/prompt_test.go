package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateProfileSchema(t *testing.T) {
	schema := CandidateProfileSchema()

	names := make([]string, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"technical_skills",
		"years_of_experience",
		"education",
		"experience_level",
		"key_achievements",
		"domain_expertise",
	}, names)

	var example map[string]any
	require.NoError(t, json.Unmarshal([]byte(schema.Example), &example))
	assert.Contains(t, example, "technical_skills")
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Jane Doe\nSkills: Go, Kafka")

	assert.Contains(t, prompt, "Return ONLY valid JSON")
	assert.Contains(t, prompt, "Example output:")
	assert.Contains(t, prompt, "Mid-level")
	assert.Contains(t, prompt, "Jane Doe\nSkills: Go, Kafka")
	assert.Contains(t, prompt, "exactly one of Junior, Mid-level, Senior")
	assert.Contains(t, prompt, `"experience_level": "Junior" | "Mid-level" | "Senior" (required)`)
	assert.NotContains(t, prompt, "{{.")
}
