// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Defaults match the original QRScan desktop behavior.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Input (set from the positional arg).
	InputDir string

	// Scan settings.
	Page       int  // 1-based page where QR codes are expected. Default: 1.
	UseAttrs   bool // Default: true. Read cached codes from file attributes. Cleared by --no-use-attrs.
	WriteAttrs bool // Default: true. Write the attribute after a successful decode. Cleared by --no-write-attrs.
	Workers    int  // Default: 1 (sequential, matching the original loop).

	// URL resolution.
	FetchURLs    bool          // Default: true. Fetch payloads for decoded URL values. Cleared by --no-fetch.
	FetchTimeout time.Duration // Default: 30s. Per-request client timeout.

	// Report.
	OpenReport bool // Open the CSV report with the platform opener after the run.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.

	// Manual tagging mode (--tag/--code). When TagFile is set, the run tags
	// that single file instead of scanning a directory.
	TagFile string
	TagCode string
}

// DefaultConfig returns a Config with all defaults matching the original
// QRScan scan task. Used as the base before [ParseFlags] applies CLI
// overrides.
func DefaultConfig() Config {
	return Config{
		Page:         1,
		UseAttrs:     true,
		WriteAttrs:   true,
		Workers:      1,
		FetchURLs:    true,
		FetchTimeout: 30 * time.Second,
		OpenReport:   false,
		Verbose:      false,
		ColorMode:    ColorAuto,
		CheckOnly:    false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// TagMode reports whether the run is a manual-tag invocation rather than a
// directory scan.
func (c *Config) TagMode() bool {
	return c.TagFile != "" || c.TagCode != ""
}

// Validate checks field ranges and mode-dependent required arguments.
// CheckOnly runs accept a missing input directory; tag mode requires both
// --tag and --code.
func (c *Config) Validate() error {
	if c.Page < 1 {
		return fmt.Errorf("page must be a positive 1-based number (got %d)", c.Page)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1 (got %d)", c.Workers)
	}
	if c.FetchTimeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.TagMode() {
		if c.TagFile == "" || c.TagCode == "" {
			return errors.New("tag mode needs both --tag <pdf> and --code <value>")
		}
		return nil
	}
	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("need exactly one input_dir")
	}
	return nil
}
