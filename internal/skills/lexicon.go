// Package skills provides the skill lexicon and the deterministic regex-based skill extractor.
package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultEntries is the built-in set of recognized skills, all lower-case
var defaultEntries = []string{
	"python", "javascript", "java", "c++", "c#", "typescript", "sql",
	"react", "angular", "vue", "nodejs", "express", "django", "flask",
	"aws", "azure", "gcp", "kubernetes", "docker", "git", "linux",
	"machine learning", "ml", "ai", "deep learning", "nlp", "computer vision",
	"data science", "analytics", "tableau", "power bi", "excel",
	"html", "css", "bootstrap", "tailwind", "sass",
	"mongodb", "postgresql", "mysql", "redis", "elasticsearch",
	"agile", "scrum", "kanban", "jira", "confluence",
	"rest api", "graphql", "microservices", "oop", "solid",
	"testing", "jest", "pytest", "selenium", "junit",
	"ci/cd", "jenkins", "gitlab", "github", "terraform",
	"communication", "leadership", "project management", "problem solving",
}

// Lexicon is an immutable set of known skill tokens.
// It is safe for concurrent use once constructed.
type Lexicon struct {
	// normalized maps a lower-case entry to its title form
	normalized map[string]string
}

// NewLexicon builds a lexicon from the given entries.
// Entries are trimmed and lower-cased; blanks are dropped and duplicates collapse.
func NewLexicon(entries []string) *Lexicon {
	normalized := make(map[string]string, len(entries))
	for _, entry := range entries {
		key := strings.ToLower(strings.TrimSpace(entry))
		if key == "" {
			continue
		}
		normalized[key] = TitleCase(key)
	}
	return &Lexicon{normalized: normalized}
}

// DefaultLexicon returns the built-in lexicon
func DefaultLexicon() *Lexicon {
	return NewLexicon(defaultEntries)
}

// LoadLexicon reads a JSON array of skill names from path
func LoadLexicon(path string) (*Lexicon, error) {
	if path == "" {
		return nil, fmt.Errorf("lexicon path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}

	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon file %s: %w", path, err)
	}

	lex := NewLexicon(entries)
	if lex.Len() == 0 {
		return nil, fmt.Errorf("lexicon file %s contains no entries", path)
	}
	return lex, nil
}

// Normalize returns the title form of token when it exactly matches an entry (case-insensitive).
func (l *Lexicon) Normalize(token string) (string, bool) {
	name, ok := l.normalized[strings.ToLower(strings.TrimSpace(token))]
	return name, ok
}

// Contains reports whether token is a lexicon entry
func (l *Lexicon) Contains(token string) bool {
	_, ok := l.Normalize(token)
	return ok
}

// Entries returns the lower-case entries in ascending order
func (l *Lexicon) Entries() []string {
	entries := make([]string, 0, len(l.normalized))
	for entry := range l.normalized {
		entries = append(entries, entry)
	}
	sort.Strings(entries)
	return entries
}

// Len returns the number of entries
func (l *Lexicon) Len() int {
	return len(l.normalized)
}

// TitleCase upper-cases the first letter of every word and lower-cases the rest.
// Any non-letter separator ("machine learning", "ci/cd") starts a new word.
func TitleCase(s string) string {
	// Casers are stateful, so one is built per call
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}
