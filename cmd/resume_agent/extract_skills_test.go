package main

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkillsCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract-skills", "--in", "-")
	cmd.Stdin = strings.NewReader("Skills: Python, React, Machine Learning\n\nExperience: ...")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	require.NoError(t, cmd.Run())

	var out map[string][]string
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, []string{"Machine Learning", "Python", "React"}, out["technical_skills"])
}

func TestExtractSkillsCommand_MissingLexicon(t *testing.T) {
	binaryPath := getBinaryPath(t)

	input := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(input, []byte("go"), 0644))

	cmd := exec.Command(binaryPath, "extract-skills", "--in", input, "--lexicon", "/nonexistent/lexicon.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "lexicon file not found")
}
