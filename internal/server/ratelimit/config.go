package ratelimit

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule limits requests to one method and path, per client.
// A Path ending in "/" matches every path below it.
type Rule struct {
	Method string
	Path   string
	Limit  int           // Requests per Window; zero or less means unlimited
	Window time.Duration // Refill period for Limit tokens
	Burst  int           // Bucket capacity, Limit when zero
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled bool
	Default Rule            // Applies when no entry in Rules matches
	Rules   []Rule          // Endpoint-specific limits
	Exempt  map[string]bool // Client IDs that are never limited
	IdleTTL time.Duration   // Buckets idle longer than this are pruned
}

// DefaultRules returns the endpoint limits used by the analyzer API.
// The analyze endpoints query the model on every call and get the strictest limit.
func DefaultRules() []Rule {
	return []Rule{
		{Method: http.MethodPost, Path: "/analyze", Limit: 60, Window: time.Minute, Burst: 10},
		{Method: http.MethodPost, Path: "/analyze/messages", Limit: 60, Window: time.Minute, Burst: 10},
		{Method: http.MethodPost, Path: "/extract-skills", Limit: 600, Window: time.Minute, Burst: 60},
		{Method: http.MethodGet, Path: "/health", Limit: 0},
	}
}

// modelBacked lists the paths RATE_LIMIT_ANALYZE_LIMIT applies to.
var modelBacked = map[string]bool{
	"/analyze":          true,
	"/analyze/messages": true,
}

// DefaultConfig returns an enabled configuration with the default rules
func DefaultConfig() *Config {
	return &Config{
		Enabled: true,
		Default: Rule{Limit: 1000, Window: time.Minute},
		Rules:   DefaultRules(),
		Exempt:  make(map[string]bool),
		IdleTTL: time.Hour,
	}
}

// LoadConfig loads rate limiting configuration from environment variables,
// starting from DefaultConfig.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = envBool("RATE_LIMIT_ENABLED", true)
	cfg.Default.Limit = envInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.Default.Limit)
	cfg.Default.Window = envDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.Default.Window)
	cfg.IdleTTL = envDuration("RATE_LIMIT_IDLE_TTL", cfg.IdleTTL)
	cfg.Exempt = parseClientList(os.Getenv("RATE_LIMIT_EXEMPT"))

	if limit := envInt("RATE_LIMIT_ANALYZE_LIMIT", 0); limit > 0 {
		for i := range cfg.Rules {
			if modelBacked[cfg.Rules[i].Path] {
				cfg.Rules[i].Limit = limit
			}
		}
	}

	return cfg
}

// match returns the rule for a request, falling back to the default rule
func (c *Config) match(method, path string) Rule {
	for _, rule := range c.Rules {
		if rule.Method == method && rule.Path == path {
			return rule
		}
	}
	for _, rule := range c.Rules {
		if rule.Method == method && strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) {
			return rule
		}
	}
	return c.Default
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

// parseClientList parses a comma-separated list of client IDs into a set
func parseClientList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, id := range strings.Split(list, ",") {
		if id = strings.TrimSpace(id); id != "" {
			result[id] = true
		}
	}
	return result
}
