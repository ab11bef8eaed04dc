package analysis

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var experienceLevels = []types.ExperienceLevel{types.LevelJunior, types.LevelMid, types.LevelSenior}

// levelList joins the experience levels as sep-separated, optionally quoted names
func levelList(sep string, quote bool) string {
	names := make([]string, len(experienceLevels))
	for i, level := range experienceLevels {
		names[i] = string(level)
		if quote {
			names[i] = `"` + names[i] + `"`
		}
	}
	return strings.Join(names, sep)
}

const fallbackSystemPrompt = `You are an expert technical recruiter. Analyze the resume data below and extract the candidate's skills and experience profile.

IMPORTANT: Return ONLY valid JSON, no explanations or markdown.`

const fallbackExample = `{
  "technical_skills": ["python", "javascript", "react"],
  "years_of_experience": 5,
  "education": {"level": "Bachelors", "field": "Computer Science"},
  "experience_level": "Mid-level",
  "key_achievements": ["achievement1", "achievement2"],
  "domain_expertise": ["domain1", "domain2"]
}`

// CandidateProfileSchema returns the extraction schema for a candidate's skills profile.
func CandidateProfileSchema() llm.ExtractionSchema {
	description, err := prompts.Render("analysis.json", "candidate-profile-system", map[string]string{
		"Levels": levelList(", ", false),
	})
	if err != nil {
		description = fallbackSystemPrompt
	}
	example, _ := prompts.Get("analysis.json", "candidate-profile-example")
	if example == "" {
		example = fallbackExample
	}

	return llm.ExtractionSchema{
		Name:        "CandidateProfile",
		Description: description,
		Example:     example,
		Fields: []llm.SchemaField{
			{
				Name:        "technical_skills",
				Type:        "[\"string\"]",
				Description: "Technical skills, one lowercase skill name per entry",
				Required:    true,
			},
			{
				Name:        "years_of_experience",
				Type:        "integer",
				Description: "Total years of professional experience",
				Required:    true,
			},
			{
				Name:        "education",
				Type:        "{\"level\": \"string\", \"field\": \"string\"}",
				Description: "Highest degree level and its field of study",
				Required:    true,
			},
			{
				Name:     "experience_level",
				Type:     levelList(" | ", true),
				Required: true,
			},
			{
				Name:        "key_achievements",
				Type:        "[\"string\"]",
				Description: "Notable accomplishments, quoted or closely paraphrased",
			},
			{
				Name:        "domain_expertise",
				Type:        "[\"string\"]",
				Description: "Industries or problem domains the candidate knows well",
			},
		},
	}
}

// BuildPrompt builds the profile extraction prompt for the given resume text
func BuildPrompt(structuredData string) string {
	return llm.BuildExtractionPrompt(CandidateProfileSchema(), structuredData)
}
