// Command qrscan is the CLI entrypoint for the QRScan batch scanner.
//
// It parses flags, validates configuration, and either runs system
// diagnostics (--check), tags a single file (--tag), or scans a directory
// tree of PDFs for QR codes and writes a CSV report.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ryanezv/scan-qr-files/internal/attrs"
	"github.com/ryanezv/scan-qr-files/internal/check"
	"github.com/ryanezv/scan-qr-files/internal/config"
	"github.com/ryanezv/scan-qr-files/internal/display"
	"github.com/ryanezv/scan-qr-files/internal/fetch"
	"github.com/ryanezv/scan-qr-files/internal/logging"
	"github.com/ryanezv/scan-qr-files/internal/qr"
	"github.com/ryanezv/scan-qr-files/internal/render"
	"github.com/ryanezv/scan-qr-files/internal/report"
	"github.com/ryanezv/scan-qr-files/internal/scan"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "qrscan: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "qrscan: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qrscan: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	if cfg.TagMode() {
		return runTag(&cfg, log)
	}

	log.Info("=== QRScan v%s (%s) ===", version, commit)
	log.Info("In:   %s", cfg.InputDir)
	log.Info("Page: %d", cfg.Page)
	log.Info("")

	// Fail fast if the input directory or the decoder is unusable.
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}
	if (cfg.UseAttrs || cfg.WriteAttrs) && !attrs.Supported(cfg.InputDir) {
		log.Warn("Extended attributes not supported here; codes will not be cached")
	}

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// scan can stop between files and still write a partial report.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	// Phase 4: Run the scan (discover → extract+classify → aggregate → report).
	runner := &scan.Runner{
		Cfg: &cfg,
		Log: log,
		Extractor: &scan.Extractor{
			Renderer: render.New(),
			Decoder:  qr.NewDecoder(),
			Store:    attrs.Store{},
			Log:      log,
			Verbose:  cfg.Verbose,
		},
		Classifier: &scan.Classifier{
			Fetcher:   fetch.New(cfg.FetchTimeout),
			FetchURLs: cfg.FetchURLs,
			Log:       log,
		},
		Report: report.Writer{},
		OnProgress: func(processed, total int) {
			log.Debug(cfg.Verbose, "Progress: %d/%d", processed, total)
		},
	}

	start := time.Now()
	_, stats, reportErr := runner.Run(ctx)
	log.Info("Done: %s scanned, %d found, %d failed in %s",
		display.Plural(stats.Processed, "file"), stats.Found, stats.Failed,
		display.FormatDuration(time.Since(start)))

	if reportErr != nil {
		// The scan itself completed; only the report step failed. That is
		// the one condition that makes the run "not completed successfully".
		return 1
	}
	if cfg.OpenReport && stats.ReportPath != "" {
		if err := report.Open(stats.ReportPath); err != nil {
			log.Warn("%v", err)
		}
	}
	if stats.Cancelled {
		return 1
	}
	return 0
}

// runTag handles --tag/--code: validate the code and write the attribute
// pair for the configured page onto the single file.
func runTag(cfg *config.Config, log *logging.Logger) int {
	if !attrs.IsValidCode(cfg.TagCode) {
		log.Error("Invalid characters in code %q (use letters, digits, '-' or '_')", cfg.TagCode)
		return 1
	}
	if _, err := os.Stat(cfg.TagFile); err != nil {
		log.Error("Cannot access %s: %v", cfg.TagFile, err)
		return 1
	}
	if err := (attrs.Store{}).WriteCode(cfg.TagFile, cfg.Page, cfg.TagCode); err != nil {
		log.Error("Could not tag %s: %v", cfg.TagFile, err)
		return 1
	}
	log.Success("Tagged %s with code %s (page %d)", cfg.TagFile, cfg.TagCode, cfg.Page)
	return 0
}
