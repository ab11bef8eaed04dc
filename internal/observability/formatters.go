// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines on rune boundaries
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList appends a bulleted list of at most limit items
func writeList(sb *strings.Builder, title string, items []string, limit int) {
	if len(items) == 0 {
		return
	}

	sb.WriteString(title + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// PrintExtractionResult outputs a human-readable summary of an extracted candidate profile.
func (p *Printer) PrintExtractionResult(result *types.ExtractionResult) {
	if result == nil {
		return
	}

	profile := result.SkillsAnalysis
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Level:       %s (%d years)\n", profile.ExperienceLevel, profile.YearsOfExperience))
	sb.WriteString(fmt.Sprintf("Education:   %s, %s\n", profile.Education.Level, profile.Education.Field))
	sb.WriteString(fmt.Sprintf("Confidence:  %.2f", result.ConfidenceScore))
	if result.Path != "" {
		sb.WriteString(fmt.Sprintf(" via %s", result.Path))
	}
	sb.WriteString("\n\n")

	if len(profile.TechnicalSkills) == 0 {
		sb.WriteString("No technical skills found\n\n")
	}
	writeList(&sb, fmt.Sprintf("Technical Skills (%d)", len(profile.TechnicalSkills)), profile.TechnicalSkills, maxItemsToShow*2)
	writeList(&sb, "Key Achievements", profile.KeyAchievements, maxItemsToShow)
	writeList(&sb, "Domain Expertise", profile.DomainExpertise, 3)

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n\n"))
}

// PrintSkills outputs the skills found by the regex extractor alone.
func (p *Printer) PrintSkills(found []string) {
	var sb strings.Builder

	if len(found) == 0 {
		sb.WriteString("No lexicon skills found")
	} else {
		sb.WriteString(strings.Join(found, ", "))
	}

	p.printBox(fmt.Sprintf("LEXICON SKILLS (%d)", len(found)), sb.String())
}
