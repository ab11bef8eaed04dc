package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a schema",
	Long: `Validate an extraction result (default) or a resume record (--record) against
its embedded JSON Schema, or any document against a schema file (--schema).`,
	RunE: runValidate,
}

var (
	validateInputFile  string
	validateRecord     bool
	validateSchemaFile string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to JSON file, or - for stdin (required)")
	validateCmd.Flags().BoolVar(&validateRecord, "record", false, "Validate as a resume record instead of an extraction result")
	validateCmd.Flags().StringVar(&validateSchemaFile, "schema", "", "Path to a JSON Schema file to validate against")
	_ = validateCmd.MarkFlagRequired("in")
	validateCmd.MarkFlagsMutuallyExclusive("record", "schema")

	rootCmd.AddCommand(validateCmd)
}

// selectValidator picks the schema named by the validate flags
func selectValidator(schemaFile string, record bool) (*schemas.Validator, error) {
	switch {
	case schemaFile != "":
		return schemas.FromFile(schemaFile)
	case record:
		return schemas.Embedded(schemas.ResumeRecordSchema)
	default:
		return schemas.Embedded(schemas.ExtractionResultSchema)
	}
}

func runValidate(_ *cobra.Command, _ []string) error {
	v, err := selectValidator(validateSchemaFile, validateRecord)
	if err != nil {
		return err
	}

	data, err := readInput(validateInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if err := v.Validate(data); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Valid against %s\n", v.Source())
	return nil
}
