// Package config provides configuration loading and validation for the CLI and HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-analyzer/internal/llm"
)

// Default values applied by Defaults
const (
	DefaultTimeoutSeconds = 60
	DefaultConcurrency    = 4
	DefaultPort           = 8080
)

// Config represents the analyzer configuration that can be loaded from a JSON file.
// All fields are optional; missing values come from the environment, CLI flags or defaults.
type Config struct {
	// Model
	Provider  string `json:"provider,omitempty" validate:"omitempty,oneof=gemini ollama"` // Model provider
	APIKey    string `json:"api_key,omitempty"`                                         // Gemini API key
	OllamaURL string `json:"ollama_url,omitempty" validate:"omitempty,url"`             // Ollama server address
	Model     string `json:"model,omitempty"`                                           // Overrides the model for the configured tier
	Tier      string `json:"tier,omitempty" validate:"omitempty,oneof=lite standard advanced"`

	// Behavior
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" validate:"gte=0,lte=600"` // Per-call model timeout
	Lexicon        string `json:"lexicon,omitempty"`                                  // Path to a JSON skill lexicon
	Concurrency    int    `json:"concurrency,omitempty" validate:"gte=0,lte=64"`      // Parallel analyses in batch mode
	Port           int    `json:"port,omitempty" validate:"gte=0,lte=65535"`          // HTTP server port
	Verbose        bool   `json:"verbose,omitempty"`                                  // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Provider:       string(llm.ProviderGemini),
		OllamaURL:      llm.DefaultOllamaURL,
		Tier:           string(llm.TierStandard),
		TimeoutSeconds: DefaultTimeoutSeconds,
		Concurrency:    DefaultConcurrency,
		Port:           DefaultPort,
	}
}

// Validate checks that the configuration has valid values.
// Required credentials are checked separately by RequireCredentials once all sources are merged.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Lexicon != "" {
		if _, err := os.Stat(c.Lexicon); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.Lexicon)
		}
	}

	return nil
}

// RequireCredentials reports a missing API key for providers that need one
func (c *Config) RequireCredentials() error {
	if llm.Provider(c.Provider) == llm.ProviderGemini && c.APIKey == "" {
		return fmt.Errorf("API key is required for provider %q (set --api-key or GEMINI_API_KEY)", c.Provider)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file and environment values beneath CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.OllamaURL == "" {
		result.OllamaURL = defaults.OllamaURL
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Tier == "" {
		result.Tier = defaults.Tier
	}
	if result.Lexicon == "" {
		result.Lexicon = defaults.Lexicon
	}

	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LLMConfig builds the model client configuration for the selected provider
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.ConfigForProvider(llm.Provider(c.Provider))
	if cfg.Provider == llm.ProviderOllama && c.OllamaURL != "" {
		cfg.BaseURL = c.OllamaURL
	}
	if c.Model != "" {
		cfg = cfg.WithModel(c.ModelTier(), c.Model)
	}
	return cfg
}

// ModelTier returns the configured tier, standard when unset
func (c *Config) ModelTier() llm.ModelTier {
	if c.Tier == "" {
		return llm.TierStandard
	}
	return llm.ModelTier(c.Tier)
}

// Timeout returns the per-call model timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
