// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExperienceLevel is the seniority bucket assigned to a candidate
type ExperienceLevel string

// Experience levels accepted in a CandidateProfile
const (
	LevelJunior ExperienceLevel = "Junior"
	LevelMid    ExperienceLevel = "Mid-level"
	LevelSenior ExperienceLevel = "Senior"
)

// UnknownEducation is the placeholder for education fields the model could not determine
const UnknownEducation = "Unknown"

// CandidateProfile is the structured skills/experience profile extracted from a resume
type CandidateProfile struct {
	TechnicalSkills   []string        `json:"technical_skills"`
	YearsOfExperience int             `json:"years_of_experience"`
	Education         Education       `json:"education"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	KeyAchievements   []string        `json:"key_achievements"`
	DomainExpertise   []string        `json:"domain_expertise"`
}

// Education represents the candidate's highest education entry
type Education struct {
	Level string `json:"level"`
	Field string `json:"field"`
}

// DefaultProfile returns a profile with every field at its default value.
// Slices are empty rather than nil so they serialize as [].
func DefaultProfile() CandidateProfile {
	return CandidateProfile{
		TechnicalSkills:   []string{},
		YearsOfExperience: 0,
		Education: Education{
			Level: UnknownEducation,
			Field: UnknownEducation,
		},
		ExperienceLevel: LevelMid,
		KeyAchievements: []string{},
		DomainExpertise: []string{},
	}
}
