package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract a candidate profile from a parsed resume record",
	Long: `Extract a candidate profile from a resume record JSON file ({"structured_data": "..."}),
or from a JSON array of upstream messages with --messages. The result validates against
schemas/extraction_result.schema.json.`,
	RunE: runAnalyze,
}

var (
	analyzeInputFile  string
	analyzeOutputFile string
	analyzeMessages   bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to resume record JSON file, or - for stdin (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	analyzeCmd.Flags().BoolVar(&analyzeMessages, "messages", false, "Input is a JSON array of messages; the last one carries the record")
	_ = analyzeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg.Verbose)

	input, err := readInput(analyzeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	record, err := decodeInput(input, analyzeMessages)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	analyzer, cleanup, err := newAnalyzer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	result := analyzer.Analyze(ctx, record)
	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintExtractionResult(result)
	}

	jsonBytes, err := encodeResult(result, logger)
	if err != nil {
		return err
	}

	if err := writeOutput(analyzeOutputFile, jsonBytes); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if analyzeOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stderr, "Output: %s\n", analyzeOutputFile)
	}
	return nil
}

// decodeInput reads a resume record directly or from a message list
func decodeInput(data []byte, messages bool) (*types.ResumeRecord, error) {
	if !messages {
		return parsing.DecodeRecord(data)
	}

	var msgs []types.Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, &parsing.ParseError{Message: "failed to decode message list", Cause: err}
	}
	return analysis.RecordFromMessages(msgs)
}

// encodeResult marshals the result and checks it against the published schema.
// A schema that fails to load is reported but does not block the output.
func encodeResult(result *types.ExtractionResult, logger *slog.Logger) ([]byte, error) {
	if err := schemas.ValidateExtractionResult(result); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		switch {
		case errors.As(err, &validationErr):
			return nil, fmt.Errorf("generated JSON does not validate against schema: %w", err)
		case errors.As(err, &schemaLoadErr):
			logger.Warn("could not validate output against schema (schema loading failed)", "error", err)
		default:
			logger.Warn("could not validate output against schema", "error", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return jsonBytes, nil
}

// analyzeReader is used by analyze-batch and tests to run one record end to end
func analyzeReader(ctx context.Context, a *analysis.Analyzer, r io.Reader, messages bool, logger *slog.Logger) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	record, err := decodeInput(data, messages)
	if err != nil {
		return nil, err
	}
	return encodeResult(a.Analyze(ctx, record), logger)
}
