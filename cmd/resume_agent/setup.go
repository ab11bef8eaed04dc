package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/spf13/cobra"
)

// Flags shared by every command
var (
	configPath     string
	flagProvider   string
	flagAPIKey     string
	flagOllamaURL  string
	flagModel      string
	flagTier       string
	flagTimeout    int
	flagLexicon    string
	flagVerbose    bool
	flagOffline    bool
	flagConcurrent int
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	flags.StringVar(&flagProvider, "provider", "", "Model provider: gemini or ollama")
	flags.StringVar(&flagAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	flags.StringVar(&flagOllamaURL, "ollama-url", "", "Ollama server URL (overrides OLLAMA_HOST env var)")
	flags.StringVar(&flagModel, "model", "", "Model name for the selected tier")
	flags.StringVar(&flagTier, "tier", "", "Model tier: lite, standard or advanced")
	flags.IntVar(&flagTimeout, "timeout", 0, "Model call timeout in seconds")
	flags.StringVar(&flagLexicon, "lexicon", "", "Path to a JSON array of skill names replacing the built-in lexicon")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
	flags.BoolVar(&flagOffline, "offline", false, "Skip the model and use lexicon extraction only")
}

// loadSettings merges the config file, changed flags, environment and defaults, then validates.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("provider") {
		cfg.Provider = flagProvider
	}
	if flags.Changed("api-key") {
		cfg.APIKey = flagAPIKey
	}
	if flags.Changed("ollama-url") {
		cfg.OllamaURL = flagOllamaURL
	}
	if flags.Changed("model") {
		cfg.Model = flagModel
	}
	if flags.Changed("tier") {
		cfg.Tier = flagTier
	}
	if flags.Changed("timeout") {
		cfg.TimeoutSeconds = flagTimeout
	}
	if flags.Changed("lexicon") {
		cfg.Lexicon = flagLexicon
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = flagConcurrent
	}
	if flagVerbose {
		cfg.Verbose = true
	}

	cfg = cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger writes text logs to w, at debug level when verbose
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newExtractor builds the regex extractor over the configured lexicon
func newExtractor(cfg config.Config) (*skills.Extractor, error) {
	if cfg.Lexicon == "" {
		return skills.NewExtractor(nil), nil
	}
	lex, err := skills.LoadLexicon(cfg.Lexicon)
	if err != nil {
		return nil, err
	}
	return skills.NewExtractor(lex), nil
}

// newAnalyzer wires the model client and extractor. The returned cleanup closes the client.
func newAnalyzer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*analysis.Analyzer, func(), error) {
	extractor, err := newExtractor(cfg)
	if err != nil {
		return nil, nil, err
	}

	opts := []analysis.Option{
		analysis.WithTier(cfg.ModelTier()),
		analysis.WithTimeout(cfg.Timeout()),
		analysis.WithLogger(logger),
	}

	if flagOffline {
		logger.Debug("offline mode, model calls disabled")
		return analysis.New(nil, extractor, opts...), func() {}, nil
	}

	if err := cfg.RequireCredentials(); err != nil {
		return nil, nil, err
	}

	llmConfig := cfg.LLMConfig()
	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	logger.Debug("model client ready", "provider", llmConfig.Provider, "model", client.GetModel(cfg.ModelTier()))

	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Warn("closing model client", "error", err)
		}
	}
	return analysis.New(client, extractor, opts...), cleanup, nil
}

// readInput reads path, or stdin when path is "-"
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes data to path, or stdout when path is empty
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0644)
}
