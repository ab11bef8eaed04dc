package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
}

func TestDefaultOllamaConfig(t *testing.T) {
	config := DefaultOllamaConfig()

	assert.Equal(t, ProviderOllama, config.Provider)
	assert.Equal(t, DefaultOllamaURL, config.BaseURL)
	assert.NotEmpty(t, config.GetModel(TierStandard))
}

func TestConfigForProvider(t *testing.T) {
	assert.Equal(t, ProviderOllama, ConfigForProvider(ProviderOllama).Provider)
	assert.Equal(t, ProviderGemini, ConfigForProvider(ProviderGemini).Provider)
	assert.Equal(t, ProviderGemini, ConfigForProvider("unknown").Provider)
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite: "fallback-model",
		},
	}

	// Unknown tier should fallback to TierStandard, then TierLite
	assert.Equal(t, "fallback-model", config.GetModel("unknown"))
}

func TestGetModel_EmptyConfig(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{},
	}

	assert.Equal(t, "", config.GetModel(TierAdvanced))
}

func TestWithModel(t *testing.T) {
	config := DefaultOllamaConfig()
	newConfig := config.WithModel(TierStandard, "qwen2.5:7b")

	// Original should be unchanged
	assert.Equal(t, "llama3.1:8b", config.GetModel(TierStandard))

	assert.Equal(t, "qwen2.5:7b", newConfig.GetModel(TierStandard))
	assert.Equal(t, "llama3.2:3b", newConfig.GetModel(TierLite))
	assert.Equal(t, config.BaseURL, newConfig.BaseURL)
}

func TestProviderConstants(t *testing.T) {
	assert.Equal(t, Provider("gemini"), ProviderGemini)
	assert.Equal(t, Provider("ollama"), ProviderOllama)
}
