package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfigPath(t *testing.T, path string) {
	t.Helper()
	old := configPath
	configPath = path
	t.Cleanup(func() { configPath = old })
}

func TestLoadSettings_FileAndEnv(t *testing.T) {
	t.Setenv(config.EnvGeminiAPIKey, "env-key")
	t.Setenv(config.EnvProvider, "")
	t.Setenv(config.EnvOllamaHost, "")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tier": "lite", "concurrency": 3}`), 0644))
	withConfigPath(t, path)

	cfg, err := loadSettings(&cobra.Command{})

	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "lite", cfg.Tier)
	assert.Equal(t, 3, cfg.Concurrency)
	assert.Equal(t, config.DefaultTimeoutSeconds, cfg.TimeoutSeconds)
}

func TestLoadSettings_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"provider": "openai"}`), 0644))
	withConfigPath(t, path)

	_, err := loadSettings(&cobra.Command{})

	assert.Error(t, err)
}

func TestNewExtractor_CustomLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.json")
	require.NoError(t, os.WriteFile(path, []byte(`["cobol", "fortran"]`), 0644))

	extractor, err := newExtractor(config.Config{Lexicon: path})

	require.NoError(t, err)
	assert.Equal(t, []string{"Cobol"}, extractor.Extract("COBOL and python"))
}

func TestNewAnalyzer_RequiresGeminiKey(t *testing.T) {
	old := flagOffline
	flagOffline = false
	t.Cleanup(func() { flagOffline = old })

	_, _, err := newAnalyzer(context.Background(), config.Config{Provider: "gemini"}, discardLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestNewAnalyzer_Ollama(t *testing.T) {
	old := flagOffline
	flagOffline = false
	t.Cleanup(func() { flagOffline = old })

	cfg := config.Defaults()
	cfg.Provider = "ollama"

	a, cleanup, err := newAnalyzer(context.Background(), cfg, discardLogger())

	require.NoError(t, err)
	require.NotNil(t, a)
	cleanup()
}
