package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into scan, URL resolution, report, display, and utility.
// Negated flags (e.g. --no-use-attrs) are applied after Parse so Config
// defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing positional
// arg).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("qrscan", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	// Negated flags: we capture bools then apply to cfg after Parse, so that
	// defaults from DefaultConfig() hold unless the user passes the flag.
	var negated negatedFlags

	defineScanFlags(fs, cfg)
	defineFetchFlags(fs, cfg, &negated)
	defineReportFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, cfg, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "qrscan v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noUseAttrs -> UseAttrs=false) or
// trigger exit (showHelp, showVersion).
type negatedFlags struct {
	noUseAttrs   bool
	noWriteAttrs bool
	noFetch      bool
	forceColor   bool
	noColor      bool
	showVersion  bool
	showHelp     bool
}

// defineScanFlags registers -p/--page, --no-use-attrs, --no-write-attrs,
// -j/--workers.
func defineScanFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Page, "page", cfg.Page, "1-based page where QR codes are expected")
	fs.IntVar(&cfg.Page, "p", cfg.Page, "Same as --page")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of concurrent scan workers")
	fs.IntVar(&cfg.Workers, "j", cfg.Workers, "Same as --workers")
}

// defineFetchFlags registers --no-fetch and --fetch-timeout.
func defineFetchFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.noFetch, "no-fetch", false, "Do not fetch payloads for decoded URL values")
	fs.DurationVar(&cfg.FetchTimeout, "fetch-timeout", cfg.FetchTimeout, "Timeout per URL fetch")
}

// defineReportFlags registers --open-report.
func defineReportFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.OpenReport, "open-report", false, "Open the CSV report when the run completes")
	fs.BoolVar(&cfg.OpenReport, "o", false, "Same as --open-report")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers the attribute negations, tag mode, --check,
// --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.noUseAttrs, "no-use-attrs", false, "Always decode; ignore cached file attributes")
	fs.BoolVar(&n.noWriteAttrs, "no-write-attrs", false, "Do not store decoded codes as file attributes")
	fs.StringVar(&cfg.TagFile, "tag", "", "Tag a single PDF with --code and exit")
	fs.StringVar(&cfg.TagCode, "code", "", "Code value for --tag")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated flag values into cfg
// (e.g. noUseAttrs -> UseAttrs=false).
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noUseAttrs {
		cfg.UseAttrs = false
	}
	if n.noWriteAttrs {
		cfg.WriteAttrs = false
	}
	if n.noFetch {
		cfg.FetchURLs = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets InputDir from the single positional arg when the
// run is a directory scan. Check and tag modes take no positional args.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly && len(args) == 1 {
		// --check accepts an optional directory to probe.
		cfg.InputDir = NormalizeDirArg(args[0])
		return nil
	}
	if cfg.CheckOnly || cfg.TagMode() {
		if len(args) != 0 {
			return fmt.Errorf("unexpected argument %q", args[0])
		}
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need exactly one input_dir")
	}
	cfg.InputDir = NormalizeDirArg(args[0])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "QRScan v" + version + " — batch QR code scanner for PDF files"},
		{"", ""},
		{"  qrscan [OPTIONS] <input_dir>", ""},
		{"", ""},
		{"Scanning", ""},
		{"  -p, --page <n>", "1-based page where QR codes are expected (default: 1)"},
		{"  -j, --workers <n>", "Concurrent scan workers (default: 1)"},
		{"  --no-use-attrs", "Always decode; ignore cached file attributes"},
		{"  --no-write-attrs", "Do not store decoded codes as file attributes"},
		{"", ""},
		{"URL resolution", ""},
		{"  --no-fetch", "Do not fetch payloads for decoded URL values"},
		{"  --fetch-timeout <dur>", "Timeout per URL fetch (default: 30s)"},
		{"", ""},
		{"Report", ""},
		{"  -o, --open-report", "Open the CSV report when the run completes"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  --tag <pdf> --code <value>", "Write a code attribute manually and exit"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check [dir]", "System diagnostics (input dir, attributes, decoder)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
