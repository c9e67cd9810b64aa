// Package main is the entry point for the inkwell script runner.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Options holds the parsed command line.
type Options struct {
	ConfigPath string
	LogLevel   string
	Journal    string
	Verify     bool
	Watch      bool
	NoColor    bool
	Scripts    []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts == nil {
		fmt.Fprintf(stdout, "inkwell %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if opts.LogLevel != "" {
		if _, ok := logging.ParseLevel(opts.LogLevel); !ok {
			fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
			return 1
		}
		cfg.Log.Level = opts.LogLevel
	}
	logger := cfg.Logger(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := &replayer{
		cfg:    cfg,
		logger: logger,
		out:    stdout,
		color:  !opts.NoColor && isTerminal(stdout),
		opts:   *opts,
	}

	failed := r.runAll(ctx)
	if opts.Watch {
		if err := r.watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}
	if failed {
		return 1
	}
	return 0
}

// parseFlags returns nil options when only the version was requested.
func parseFlags(args []string, stderr io.Writer) (*Options, error) {
	var opts Options
	var showVersion bool

	fs := flag.NewFlagSet("inkwell", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.Journal, "journal", "", "Write the command journal to this file (- for stdout)")
	fs.BoolVar(&opts.Verify, "verify", false, "Replay the journal on a fresh tree and compare")
	fs.BoolVar(&opts.Watch, "watch", false, "Re-run scripts when they change")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable colored JSON output")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "inkwell - structured document editing core\n\n")
		fmt.Fprintf(stderr, "Usage: inkwell [options] script.yaml...\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  inkwell bold.yaml                 Replay a script and print the tree\n")
		fmt.Fprintf(stderr, "  inkwell -journal - bold.yaml      Also print the command journal\n")
		fmt.Fprintf(stderr, "  inkwell -verify bold.yaml         Check the journal replays to the same tree\n")
		fmt.Fprintf(stderr, "  inkwell -watch scripts/*.yaml     Re-run on save\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if showVersion {
		return nil, nil
	}

	opts.Scripts = fs.Args()
	if len(opts.Scripts) == 0 {
		fs.Usage()
		return nil, errors.New("no scripts given")
	}
	return &opts, nil
}
