// Package ingest fans per-file workbook parsing out across goroutines,
// implementing spec.md §5's "Extractor touches no shared state, caller
// concatenates its output" concurrency model. The Reconciler and Reporter
// stay strictly serial, as the pipeline package's wiring shows.
package ingest

import (
	"bedcensus/internal/model"
	"bedcensus/internal/pipeline"
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FileResult pairs one input file with its outcome, so a batch run can
// report per-file failures without aborting the rest (spec.md §7:
// ParseError is fatal only for the file it names).
type FileResult struct {
	Path      string
	Snapshots []model.Snapshot
	Err       error
}

// Files implements spec.md §5's cancellable, file-boundary-granular batch
// ingestion: errgroup.WithContext stops launching new per-file parses once
// ctx is cancelled, while in-flight ones still finish and report their own
// result. concurrency <= 0 means unbounded (one goroutine per file).
//
// Every call is tagged with a fresh run ID (the same correlation-ID pattern
// wisefido-data stamps onto its stored entities), so the per-file log lines
// of one batch can be grepped apart from another running concurrently.
func Files(ctx context.Context, paths []string, concurrency int, logger *zap.Logger) []FileResult {
	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))
	logger.Info("ingest run started", zap.Int("file_count", len(paths)))

	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if ctx.Err() != nil {
				results[i] = FileResult{Path: path, Err: ctx.Err()}
				return nil
			}

			f, err := os.Open(path)
			if err != nil {
				results[i] = FileResult{Path: path, Err: fmt.Errorf("open %s: %w", path, err)}
				return nil
			}
			defer f.Close()

			snapshots, err := pipeline.ParseWorkbook(f, path, logger)
			results[i] = FileResult{Path: path, Snapshots: snapshots, Err: err}
			return nil
		})
	}
	_ = g.Wait() // per-file errors are carried in results, not propagated.

	logger.Info("ingest run finished")
	return results
}

// Merge concatenates every successful file's snapshots in the same order
// Files returned them (which matches the input path order). Order doesn't
// affect downstream correctness (the Reconciler re-sorts by date), but a
// stable merge order keeps runs reproducible for diffing.
func Merge(results []FileResult) []model.Snapshot {
	var all []model.Snapshot
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		all = append(all, r.Snapshots...)
	}
	return all
}
