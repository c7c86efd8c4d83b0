// Package check provides system diagnostics (--check mode) and pre-scan
// validation (CheckDeps) for the input directory, extended-attribute
// support, and the QR decoder.
package check

import (
	"errors"
	"os"

	"github.com/ryanezv/scan-qr-files/internal/attrs"
	"github.com/ryanezv/scan-qr-files/internal/config"
	"github.com/ryanezv/scan-qr-files/internal/qr"
	"github.com/ryanezv/scan-qr-files/internal/scan"
)

// Sentinel errors returned by CheckDeps when a precondition fails.
var (
	ErrInputNotReadable = errors.New("input directory does not exist or is not readable")
	ErrDecoderBroken    = errors.New("QR decoder self-test failed")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: input directory readability
// and PDF count (when a directory was given), extended-attribute support,
// and an in-memory decoder round trip. Informational only — it reports
// every finding and returns false when something required is broken.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkDecoder(log)
	if cfg.InputDir != "" {
		ok = checkInputDir(cfg, log) && ok
	} else {
		checkAttrSupport(os.TempDir(), log)
	}
	return ok
}

// checkInputDir verifies the directory is readable, counts PDFs beneath it,
// and probes attribute support on its filesystem.
func checkInputDir(cfg *config.Config, log Logger) bool {
	fi, err := os.Stat(cfg.InputDir)
	if err != nil || !fi.IsDir() {
		log.Error("Input directory not readable: %s", cfg.InputDir)
		return false
	}
	log.Success("Input directory: %s", cfg.InputDir)

	docs := len(scan.DiscoverQuiet(cfg.InputDir))
	if docs == 0 {
		log.Warn("No PDF files found under %s", cfg.InputDir)
	} else {
		log.Success("Found %d PDF files", docs)
	}

	checkAttrSupport(cfg.InputDir, log)
	return true
}

func checkAttrSupport(dir string, log Logger) {
	if attrs.Supported(dir) {
		log.Success("Extended attributes supported on %s", dir)
	} else {
		log.Warn("Extended attributes NOT supported on %s (caching will be skipped)", dir)
	}
}

// checkDecoder encodes a known value to an in-memory QR code and decodes it
// back, verifying the decode stack end to end without touching a file.
func checkDecoder(log Logger) bool {
	const probe = "qrscan-self-test"
	img, err := qr.Encode(probe, 256)
	if err != nil {
		log.Error("QR encoder failed: %v", err)
		return false
	}
	got, err := qr.NewDecoder().Decode(img)
	if err != nil || got != probe {
		log.Error("QR decoder self-test failed (got %q, err %v)", got, err)
		return false
	}
	log.Success("QR decoder works")
	return true
}

// CheckDeps is the pre-scan validation: the input directory must be
// readable and the decoder must pass its self-test. Attribute support is a
// soft dependency — when the attribute flags are on but the filesystem
// refuses attributes, the scan still runs (cache reads return nothing and
// cache writes fail per-file, logged). Returns a sentinel error on failure.
func CheckDeps(cfg *config.Config) error {
	fi, err := os.Stat(cfg.InputDir)
	if err != nil || !fi.IsDir() {
		return ErrInputNotReadable
	}
	img, err := qr.Encode("qrscan-self-test", 256)
	if err != nil {
		return ErrDecoderBroken
	}
	if _, err := qr.NewDecoder().Decode(img); err != nil {
		return ErrDecoderBroken
	}
	return nil
}
