// Package term resolves the color mode and configures the shared color
// state used by logging and display.
//
// The fatih/color package keeps a single global switch (color.NoColor);
// [Configure] sets it once during startup from the configured mode, TTY
// detection, and the NO_COLOR env var (https://no-color.org).
package term

import (
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/ryanezv/scan-qr-files/internal/config"
)

// Configure resolves the color mode and sets the global color switch.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	color.NoColor = !resolve(mode)
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return !color.NoColor }

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var.
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
