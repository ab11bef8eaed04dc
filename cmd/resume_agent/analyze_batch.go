package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var analyzeBatchCmd = &cobra.Command{
	Use:   "analyze-batch",
	Short: "Extract candidate profiles for every resume record in a directory",
	Long: `Analyze every *.json resume record in --in-dir concurrently and write one
<name>.result.json per record to --out-dir. Records that cannot be decoded are reported
and skipped; the command fails if any record failed.`,
	RunE: runAnalyzeBatch,
}

var (
	batchInputDir  string
	batchOutputDir string
	batchMessages  bool
)

func init() {
	analyzeBatchCmd.Flags().StringVar(&batchInputDir, "in-dir", "", "Directory of resume record JSON files (required)")
	analyzeBatchCmd.Flags().StringVar(&batchOutputDir, "out-dir", "", "Directory for result JSON files (required)")
	analyzeBatchCmd.Flags().BoolVar(&batchMessages, "messages", false, "Each input file is a JSON array of messages")
	analyzeBatchCmd.Flags().IntVar(&flagConcurrent, "concurrency", 0, "Maximum records analyzed in parallel")
	_ = analyzeBatchCmd.MarkFlagRequired("in-dir")
	_ = analyzeBatchCmd.MarkFlagRequired("out-dir")

	rootCmd.AddCommand(analyzeBatchCmd)
}

// batchSummary reports the outcome of a batch run
type batchSummary struct {
	ID        string
	Succeeded []string
	Failed    map[string]error
}

func runAnalyzeBatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
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

	summary, err := analyzeDir(ctx, analyzer, batchInputDir, batchOutputDir, batchMessages, cfg.Concurrency, logger)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Analyzed %d record(s), %d failed\n", len(summary.Succeeded), len(summary.Failed))
	if len(summary.Failed) > 0 {
		return fmt.Errorf("batch %s: %d record(s) failed", summary.ID, len(summary.Failed))
	}
	return nil
}

const resultSuffix = ".result.json"

// analyzeDir analyzes every JSON file in inDir with at most limit analyses in flight.
// Per-record failures are collected in the summary; only setup and write errors abort the run.
func analyzeDir(ctx context.Context, a *analysis.Analyzer, inDir, outDir string, messages bool, limit int, logger *slog.Logger) (*batchSummary, error) {
	matches, err := filepath.Glob(filepath.Join(inDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list input directory: %w", err)
	}
	// Earlier outputs are skipped when --out-dir is --in-dir
	files := matches[:0]
	for _, file := range matches {
		if !strings.HasSuffix(file, resultSuffix) {
			files = append(files, file)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .json files found in %s", inDir)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	summary := &batchSummary{ID: uuid.NewString(), Failed: make(map[string]error)}
	logger = logger.With("batch_id", summary.ID)
	logger.Info("batch started", "records", len(files), "concurrency", limit)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, file := range files {
		file := file
		g.Go(func() error {
			name := filepath.Base(file)

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", name, err)
			}
			defer f.Close()

			out, err := analyzeReader(gctx, a, f, messages, logger.With("file", name))
			if err != nil {
				logger.Warn("record skipped", "file", name, "error", err)
				mu.Lock()
				summary.Failed[name] = err
				mu.Unlock()
				return nil
			}

			dest := filepath.Join(outDir, strings.TrimSuffix(name, ".json")+resultSuffix)
			if err := os.WriteFile(dest, out, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", dest, err)
			}

			mu.Lock()
			summary.Succeeded = append(summary.Succeeded, name)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, err
	}

	sort.Strings(summary.Succeeded)
	logger.Info("batch finished", "succeeded", len(summary.Succeeded), "failed", len(summary.Failed))
	return summary, nil
}
