package types

// Confidence scores attached to an ExtractionResult
const (
	ConfidenceModel    = 0.85
	ConfidenceFallback = 0.5
)

// ExtractionPath records which branch of the analyzer produced a profile
type ExtractionPath string

const (
	// PathModel means the model's profile was complete and used as-is
	PathModel ExtractionPath = "model"
	// PathPartialFallback means the model's profile was kept but its skills came from the regex extractor
	PathPartialFallback ExtractionPath = "partial_fallback"
	// PathFullFallback means the model reply was unusable and a default profile was built
	PathFullFallback ExtractionPath = "full_fallback"
)

// ExtractionResult wraps a CandidateProfile with provenance metadata
type ExtractionResult struct {
	SkillsAnalysis    CandidateProfile `json:"skills_analysis"`
	AnalysisTimestamp string           `json:"analysis_timestamp"`
	ConfidenceScore   float64          `json:"confidence_score"`

	// Path is diagnostic only and never serialized
	Path ExtractionPath `json:"-"`
}
