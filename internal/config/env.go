package config

import (
	"os"
	"strings"
)

// Environment variables read by FromEnv
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvOllamaHost   = "OLLAMA_HOST"
	EnvProvider     = "RESUME_AGENT_PROVIDER"
)

// FromEnv reads the configuration values that may come from the environment.
// Unset variables leave their fields empty.
func FromEnv() Config {
	return Config{
		Provider:  os.Getenv(EnvProvider),
		APIKey:    os.Getenv(EnvGeminiAPIKey),
		OllamaURL: ollamaURL(os.Getenv(EnvOllamaHost)),
	}
}

// ollamaURL accepts OLLAMA_HOST in the host:port form the Ollama CLI uses
func ollamaURL(host string) string {
	host = strings.TrimSpace(host)
	if host == "" || strings.Contains(host, "://") {
		return host
	}
	return "http://" + host
}

// Resolve layers the configuration sources: c (file plus flags) wins over the
// environment, which wins over the built-in defaults.
func (c *Config) Resolve() Config {
	env := FromEnv()
	withEnv := c.MergeWithDefaults(env)
	return withEnv.MergeWithDefaults(Defaults())
}
