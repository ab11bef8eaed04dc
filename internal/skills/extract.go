package skills

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// sectionHeadingPattern finds the heading of a skills-like section and the separator after it
	sectionHeadingPattern = regexp.MustCompile(`(?:skills?|competencies?|expertise|technical)[\s:]*`)
	// sectionDelimiterPattern splits an itemized section body into candidate tokens
	sectionDelimiterPattern = regexp.MustCompile(`[,;/•\-\n]`)
)

// Extractor finds lexicon skills in free text without calling a model.
// It is safe for concurrent use.
type Extractor struct {
	lexicon  *Lexicon
	patterns []entryPattern
}

type entryPattern struct {
	name    string
	literal string
}

// matchIn reports whether the literal occurs in text as a whole word. Letters
// and digits of any script count as word characters, so "ópython" does not
// contain "python".
func (p entryPattern) matchIn(text string) bool {
	for offset := 0; offset < len(text); {
		i := strings.Index(text[offset:], p.literal)
		if i < 0 {
			return false
		}
		start := offset + i
		if boundaryAt(text, start) && boundaryAt(text, start+len(p.literal)) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

// boundaryAt reports whether byte offset i sits between a word and a non-word rune.
func boundaryAt(s string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWordRune(r)
	}
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// NewExtractor prepares one whole-word matcher per lexicon entry.
// A nil lexicon selects DefaultLexicon.
func NewExtractor(lexicon *Lexicon) *Extractor {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}

	entries := lexicon.Entries()
	patterns := make([]entryPattern, 0, len(entries))
	for _, entry := range entries {
		name, _ := lexicon.Normalize(entry)
		patterns = append(patterns, entryPattern{name: name, literal: entry})
	}

	return &Extractor{
		lexicon:  lexicon,
		patterns: patterns,
	}
}

// Lexicon returns the lexicon the extractor matches against
func (e *Extractor) Lexicon() *Lexicon {
	return e.lexicon
}

// Extract returns the normalized skills found in text, sorted ascending.
// The result is never nil.
func (e *Extractor) Extract(text string) []string {
	lower := strings.ToLower(text)
	found := make(map[string]struct{})

	// Skills mentioned anywhere in prose
	for _, p := range e.patterns {
		if p.matchIn(lower) {
			found[p.name] = struct{}{}
		}
	}

	// Itemized skills section: only exact lexicon tokens count
	for _, token := range sectionDelimiterPattern.Split(skillsSection(lower), -1) {
		if name, ok := e.lexicon.Normalize(token); ok {
			found[name] = struct{}{}
		}
	}

	result := make([]string, 0, len(found))
	for name := range found {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// skillsSection returns the body of the first skills-like section: everything after the
// heading up to the next blank line or the end of text.
func skillsSection(text string) string {
	loc := sectionHeadingPattern.FindStringIndex(text)
	if loc == nil {
		return ""
	}

	body := text[loc[1]:]
	if idx := strings.Index(body, "\n\n"); idx >= 0 {
		body = body[:idx]
	}
	return body
}
