package main

import (
	"context"
	"os"

	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing POST /analyze, POST /analyze/messages, POST /extract-skills and GET /health.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	logger := newLogger(os.Stderr, cfg.Verbose)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	analyzer, cleanup, err := newAnalyzer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	extractor, err := newExtractor(cfg)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{Port: cfg.Port, Logger: logger}, analyzer, extractor)
	return srv.Start()
}
