package skills

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_SkillsSection(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Extract("Skills: Python, React, Machine Learning\n\nExperience: ...")

	assert.Contains(t, got, "Python")
	assert.Contains(t, got, "React")
	assert.Contains(t, got, "Machine Learning")
}

func TestExtract_Prose(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Extract("Worked extensively with python and docker.")

	assert.Equal(t, []string{"Docker", "Python"}, got)
}

func TestExtract_SortedAndUnique(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Extract("Docker, docker and DOCKER. Also Kubernetes, AWS and aws.")

	assert.Equal(t, []string{"Aws", "Docker", "Kubernetes"}, got)
}

func TestExtract_NoSkills(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Extract("Managed a bakery for ten years.")

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtract_EmptyText(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Extract("")

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtract_SectionScanRequiresExactToken(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Extract("Skills: pythonista, rustacean\n\nHobbies: chess")

	assert.NotContains(t, got, "Python")
	assert.Empty(t, got)
}

func TestExtract_SectionBulletDelimiters(t *testing.T) {
	lex := NewLexicon([]string{"go", "rust", "zig"})
	e := NewExtractor(lex)

	got := e.Extract("Technical:\n• go\n• rust\n- zig")

	assert.Equal(t, []string{"Go", "Rust", "Zig"}, got)
}

func TestExtract_SectionStopsAtBlankLine(t *testing.T) {
	// "c#" never satisfies a trailing word boundary, so only the section scan can find it
	lex := NewLexicon([]string{"c#"})
	e := NewExtractor(lex)

	inSection := e.Extract("Skills: c#, f#\n\nNotes")
	afterSection := e.Extract("Skills: cooking\n\nLater I learned: c#")

	assert.Equal(t, []string{"C#"}, inSection)
	assert.Empty(t, afterSection)
}

func TestExtract_MultiWordPhraseNeedsContiguousWords(t *testing.T) {
	lex := NewLexicon([]string{"machine learning"})
	e := NewExtractor(lex)

	assert.Equal(t, []string{"Machine Learning"}, e.Extract("Applied machine learning to fraud."))
	assert.Empty(t, e.Extract("A learning machine."))
}

func TestExtract_CustomLexicon(t *testing.T) {
	lex := NewLexicon([]string{"cobol", "fortran"})
	e := NewExtractor(lex)

	got := e.Extract("Maintained COBOL batch jobs alongside Python tooling.")

	assert.Equal(t, []string{"Cobol"}, got)
	assert.Same(t, lex, e.Lexicon())
}

func TestExtract_Deterministic(t *testing.T) {
	e := NewExtractor(nil)
	text := "Skills: SQL; Tableau; Power BI / Excel\n\nBuilt dashboards with python and aws."

	first := e.Extract(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Extract(text))
	}
}

func TestExtract_ConcurrentUse(t *testing.T) {
	e := NewExtractor(nil)
	text := "Worked extensively with python and docker."

	var wg sync.WaitGroup
	results := make([][]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.Extract(text)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, []string{"Docker", "Python"}, got)
	}
}

func TestExtract_SeparatorInsideEntry(t *testing.T) {
	e := NewExtractor(nil)

	got := e.Extract("Built CI/CD pipelines for every service.")

	assert.Contains(t, got, "Ci/Cd")
}

func TestExtract_UnicodeWordBoundaries(t *testing.T) {
	e := NewExtractor(nil)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "accented prefix", text: "ópython", want: []string{}},
		{name: "accented suffix", text: "pythoné", want: []string{}},
		{name: "underscore joins words", text: "python_tools", want: []string{}},
		{name: "accented neighbor word", text: "naïve python", want: []string{"Python"}},
		{name: "second occurrence is whole", text: "ópython and python", want: []string{"Python"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text))
		})
	}
}
