package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var validate = validator.New()

// ExtractSkillsRequest is the body of POST /extract-skills
type ExtractSkillsRequest struct {
	Text string `json:"text" validate:"required"`
}

// ExtractSkillsResponse is the reply of POST /extract-skills
type ExtractSkillsResponse struct {
	TechnicalSkills []string `json:"technical_skills"`
}

// AnalyzeMessagesRequest is the body of POST /analyze/messages
type AnalyzeMessagesRequest struct {
	Messages []types.Message `json:"messages" validate:"required,min=1"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze extracts a candidate profile from a resume record
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	record, err := parsing.DecodeRecord(body)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.analyzer.Analyze(r.Context(), record))
}

// handleAnalyzeMessages analyzes the record carried by the last upstream message
func (s *Server) handleAnalyzeMessages(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeMessagesRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	record, err := analysis.RecordFromMessages(req.Messages)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.analyzer.Analyze(r.Context(), record))
}

// handleExtractSkills runs the lexicon extractor alone, without a model call
func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req ExtractSkillsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ExtractSkillsResponse{
		TechnicalSkills: s.extractor.Extract(req.Text),
	})
}

// decode reads a size-limited JSON body into dst and validates it
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &ErrValidation{Field: fieldErrs[0].Field(), Message: fieldErrs[0].Tag()}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// fail logs err and writes it with the status HTTPStatus assigns
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	s.logger.Warn("request failed",
		"request_id", requestID(r.Context()),
		"path", r.URL.Path,
		"status", status,
		"error", err)
	s.errorResponse(w, status, err.Error())
}
