// Package main provides the resume_agent CLI for extracting candidate profiles from resumes.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_agent",
	Short: "Resume skills analyzer",
	Long: `Resume skills analyzer extracts a structured candidate profile (skills, experience,
education, achievements) from parsed resume text using a generative model, falling back to a
deterministic skill lexicon when the model reply is missing or unusable.`,
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
