package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/spf13/cobra"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "List lexicon skills found in a text file, without a model call",
	Long:  "Run the deterministic skill extractor over a plain text file and print {\"technical_skills\": [...]}.",
	RunE:  runExtractSkills,
}

var extractInputFile string

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to text file, or - for stdin (required)")
	_ = extractSkillsCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	text, err := readInput(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	extractor, err := newExtractor(cfg)
	if err != nil {
		return err
	}

	found := extractor.Extract(string(text))
	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintSkills(found)
	}

	jsonBytes, err := json.MarshalIndent(map[string][]string{"technical_skills": found}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeOutput("", jsonBytes)
}
