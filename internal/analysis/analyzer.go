// Package analysis builds a candidate's skills profile from resume text, asking a model first
// and falling back to deterministic regex extraction when the reply is unusable.
package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultTimeout bounds a single model query
const DefaultTimeout = 60 * time.Second

// Analyzer extracts candidate profiles. It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	client    llm.Client
	extractor *skills.Extractor
	tier      llm.ModelTier
	timeout   time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithTier selects the model tier used for the profile query
func WithTier(tier llm.ModelTier) Option {
	return func(a *Analyzer) { a.tier = tier }
}

// WithTimeout bounds the model query; zero or negative disables the bound
func WithTimeout(d time.Duration) Option {
	return func(a *Analyzer) { a.timeout = d }
}

// WithLogger sets the logger used for fallback and failure reporting
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithClock overrides the time source used for analysis timestamps
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		if now != nil {
			a.now = now
		}
	}
}

// New creates an Analyzer. A nil client skips the model entirely and every analysis
// takes the regex fallback path; a nil extractor uses the default lexicon.
func New(client llm.Client, extractor *skills.Extractor, opts ...Option) *Analyzer {
	if extractor == nil {
		extractor = skills.NewExtractor(nil)
	}

	a := &Analyzer{
		client:    client,
		extractor: extractor,
		tier:      llm.TierStandard,
		timeout:   DefaultTimeout,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze extracts a candidate profile from record. It never fails: model and parse
// failures degrade to a regex-derived profile with a lower confidence score.
func (a *Analyzer) Analyze(ctx context.Context, record *types.ResumeRecord) *types.ExtractionResult {
	if record == nil {
		record = &types.ResumeRecord{}
	}

	raw := a.query(ctx, BuildPrompt(record.StructuredData))

	var profile types.CandidateProfile
	path := types.PathModel
	confidence := types.ConfidenceModel

	switch outcome := parsing.ParseProfileJSON(raw).(type) {
	case parsing.Parsed:
		profile = parsing.ProfileFromFields(outcome.Fields)
		if len(profile.TechnicalSkills) == 0 {
			path = types.PathPartialFallback
			a.logger.Warn("profile extraction incomplete, using regex fallback",
				"path", path, "reason", "no technical skills in model reply")

			if found := a.extractor.Extract(record.StructuredData); len(found) > 0 {
				profile.TechnicalSkills = found
			}
		}
	case parsing.Failed:
		path = types.PathFullFallback
		confidence = types.ConfidenceFallback
		a.logger.Warn("profile extraction incomplete, using regex fallback",
			"path", path, "reason", outcome.Reason)

		profile = types.DefaultProfile()
		profile.TechnicalSkills = a.extractor.Extract(record.StructuredData)
	}

	// Last resort: search every field of the record, not just structured_data
	if len(profile.TechnicalSkills) == 0 {
		profile.TechnicalSkills = a.extractor.Extract(record.String())
	}

	a.logger.Debug("profile extraction finished",
		"path", path,
		"skills", len(profile.TechnicalSkills),
		"confidence", confidence)

	return &types.ExtractionResult{
		SkillsAnalysis:    profile,
		AnalysisTimestamp: a.now().Format(time.RFC3339Nano),
		ConfidenceScore:   confidence,
		Path:              path,
	}
}

// query sends the prompt to the model. Failures are logged and yield empty text.
func (a *Analyzer) query(ctx context.Context, prompt string) string {
	if a.client == nil {
		return ""
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	raw, err := a.client.GenerateJSON(ctx, prompt, a.tier)
	if err != nil {
		callErr := &parsing.ModelCallError{Model: a.client.GetModel(a.tier), Cause: err}
		a.logger.Warn("profile extraction model call failed",
			"model", callErr.Model,
			"timed_out", callErr.TimedOut(),
			"error", callErr)
		return ""
	}
	return raw
}
