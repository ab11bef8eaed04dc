package parsing

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// leadingIntPattern pulls the first integer out of answers like "5+ years"
var leadingIntPattern = regexp.MustCompile(`\d+`)

// ProfileFromFields coerces a decoded model reply into a CandidateProfile.
// Missing or mistyped fields take their defaults; nothing here fails.
func ProfileFromFields(fields map[string]any) types.CandidateProfile {
	profile := types.DefaultProfile()
	if fields == nil {
		return profile
	}

	profile.TechnicalSkills = NormalizeSkills(stringList(fields["technical_skills"]))
	profile.YearsOfExperience = years(fields["years_of_experience"])
	profile.Education = education(fields["education"])
	profile.ExperienceLevel = NormalizeExperienceLevel(fields["experience_level"])
	profile.KeyAchievements = stringList(fields["key_achievements"])
	profile.DomainExpertise = stringList(fields["domain_expertise"])

	return profile
}

// NormalizeSkills title-cases skill names and removes case-insensitive duplicates,
// keeping the first occurrence order. The result is never nil.
func NormalizeSkills(names []string) []string {
	normalized := make([]string, 0, len(names))
	seen := make(map[string]bool)

	for _, name := range names {
		titled := skills.TitleCase(name)
		if titled == "" {
			continue
		}
		key := strings.ToLower(titled)
		if seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, titled)
	}

	return normalized
}

// NormalizeExperienceLevel maps a model-supplied level onto the three canonical levels.
// Anything unrecognized becomes Mid-level.
func NormalizeExperienceLevel(value any) types.ExperienceLevel {
	s, _ := value.(string)
	level := strings.ToLower(strings.TrimSpace(s))
	level = strings.NewReplacer("-", " ", "_", " ").Replace(level)

	switch level {
	case "junior", "entry", "entry level":
		return types.LevelJunior
	case "senior", "lead", "principal":
		return types.LevelSenior
	default:
		return types.LevelMid
	}
}

// stringList accepts a JSON array of strings or a single comma-separated string
func stringList(value any) []string {
	result := []string{}

	switch v := value.(type) {
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				result = append(result, s)
			}
		}
	case string:
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}

	return result
}

// years accepts a JSON number or a string containing one; negatives clamp to 0
func years(value any) int {
	var n float64

	switch v := value.(type) {
	case float64:
		n = v
	case string:
		match := leadingIntPattern.FindString(v)
		if match == "" {
			return 0
		}
		parsed, err := strconv.Atoi(match)
		if err != nil {
			return 0
		}
		n = float64(parsed)
	default:
		return 0
	}

	if n <= 0 || math.IsNaN(n) {
		return 0
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// education accepts {"level", "field"} or a bare string naming the level
func education(value any) types.Education {
	edu := types.Education{
		Level: types.UnknownEducation,
		Field: types.UnknownEducation,
	}

	switch v := value.(type) {
	case map[string]any:
		if level, ok := v["level"].(string); ok && strings.TrimSpace(level) != "" {
			edu.Level = level
		}
		if field, ok := v["field"].(string); ok && strings.TrimSpace(field) != "" {
			edu.Field = field
		}
	case string:
		if strings.TrimSpace(v) != "" {
			edu.Level = v
		}
	}

	return edu
}
