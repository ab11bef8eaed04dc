package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath locates a prebuilt resume_agent binary for the CLI tests.
// Tests skip when it is missing or when -short is set.
func getBinaryPath(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping CLI tests in short mode")
	}

	if p := os.Getenv("RESUME_AGENT_BIN"); p != "" {
		return p
	}

	binaryPath := filepath.Join("..", "..", "bin", "resume_agent")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("binary not found at %s, build it with 'go build -o bin/resume_agent ./cmd/resume_agent'", binaryPath)
	}
	return binaryPath
}
