package scan

import (
	"context"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ryanezv/scan-qr-files/internal/config"
	"github.com/ryanezv/scan-qr-files/internal/logging"
)

// ReportWriter persists the accumulated results. Implemented by the report
// package; the runner only cares that writing may fail independently of the
// scan itself.
type ReportWriter interface {
	Write(results []Result, dir string) (path string, err error)
}

// Runner drives one batch: discover, extract+classify every document,
// aggregate, report. Construct it with every field set (Report may be nil
// to skip report writing, e.g. in tests).
type Runner struct {
	Cfg        *config.Config
	Log        *logging.Logger
	Extractor  *Extractor
	Classifier *Classifier
	Report     ReportWriter

	// OnProgress and OnSummary are optional observers; nil is fine.
	OnProgress ProgressFunc
	OnSummary  SummaryFunc
}

// Run executes the batch and returns the ordered result sequence, the
// aggregate stats, and the report-write error if any. Per-document failures
// never stop the loop; only cancellation does, and even then the partial
// results are reported. The returned error concerns the report step alone —
// the result sequence is valid regardless.
func (r *Runner) Run(ctx context.Context) ([]Result, RunStats, error) {
	docs := Discover(r.Cfg.InputDir, r.Log)

	stats := RunStats{Total: len(docs)}
	r.Log.Info("New scan initiated.")
	r.Log.Info("  Input directory: %s", r.Cfg.InputDir)
	r.Log.Info("  Scanning page:   %d", r.Cfg.Page)
	r.Log.Info("  Number of files: %d", stats.Total)

	var results []Result
	if r.Cfg.Workers > 1 {
		results = r.runParallel(ctx, docs, &stats)
	} else {
		results = r.runSequential(ctx, docs, &stats)
	}

	for _, res := range results {
		if res.Status == StatusCodeFound {
			stats.Found++
		} else {
			stats.Failed++
		}
	}
	stats.Processed = len(results)

	r.Log.Info("Summary: scanned %d files: %d successful, %d unsuccessful.",
		stats.Total, stats.Found, stats.Failed)
	if r.OnSummary != nil {
		r.OnSummary(stats.Total, stats.Found, stats.Failed)
	}

	var reportErr error
	if r.Report != nil {
		path, err := r.Report.Write(results, r.Cfg.InputDir)
		if err != nil {
			reportErr = err
			r.Log.Error("Unable to log results in CSV file: %v", err)
		} else {
			stats.ReportPath = path
			r.Log.Info("Results were logged to CSV file: %s.", filepath.Base(path))
		}
	}
	return results, stats, reportErr
}

// runSequential is the original loop: one document at a time, in
// collection order.
func (r *Runner) runSequential(ctx context.Context, docs []*Document, stats *RunStats) []Result {
	results := make([]Result, 0, len(docs))
	for _, doc := range docs {
		if ctx.Err() != nil {
			r.Log.Warn("Interrupted, reporting %d partial results", len(results))
			stats.Cancelled = true
			break
		}
		results = append(results, r.processOne(ctx, doc))
		r.emitProgress(len(results), len(docs))
	}
	return results
}

// runParallel fans documents out over a bounded worker pool. Each worker
// owns its document exclusively; results land in per-index slots so the
// returned sequence keeps collection order, and progress is emitted under
// one mutex so processed counts stay strictly increasing.
func (r *Runner) runParallel(ctx context.Context, docs []*Document, stats *RunStats) []Result {
	slots := make([]Result, len(docs))
	done := make([]bool, len(docs))

	var mu sync.Mutex
	processed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Cfg.Workers)
	for i, doc := range docs {
		if gctx.Err() != nil {
			break
		}
		i, doc := i, doc
		g.Go(func() error {
			// Pool slots freed after cancellation must not start new work.
			if gctx.Err() != nil {
				return nil
			}
			res := r.processOne(gctx, doc)
			mu.Lock()
			slots[i] = res
			done[i] = true
			processed++
			r.emitProgress(processed, len(docs))
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if ctx.Err() != nil {
		stats.Cancelled = true
	}

	// Compact in collection order; on cancellation some trailing slots were
	// never scheduled.
	results := make([]Result, 0, len(docs))
	for i := range slots {
		if done[i] {
			results = append(results, slots[i])
		}
	}
	if stats.Cancelled {
		r.Log.Warn("Interrupted, reporting %d partial results", len(results))
	}
	return results
}

// processOne handles one document: extract, classify, log. Never fails the
// batch — every failure mode is already folded into the Result.
func (r *Runner) processOne(ctx context.Context, doc *Document) Result {
	name := filepath.Base(doc.Path)
	r.Log.Info("Now scanning file %s.", name)

	outcome := r.Extractor.Extract(ctx, doc, r.Cfg.Page, r.Cfg.UseAttrs, r.Cfg.WriteAttrs)
	res := r.Classifier.Classify(ctx, doc, r.Cfg.Page, outcome)

	switch res.Status {
	case StatusCodeFound:
		r.Log.Info("Found QR code %s in %s.", res.Code, name)
	case StatusNoFileAccess:
		r.Log.Warn("Unable to access %s or page not found: %v", name, outcome.Err)
	case StatusNoCodeFound:
		r.Log.Warn("Unable to find QR code at specified page in %s.", name)
	}
	return res
}

func (r *Runner) emitProgress(processed, total int) {
	if r.OnProgress != nil {
		r.OnProgress(processed, total)
	}
}
