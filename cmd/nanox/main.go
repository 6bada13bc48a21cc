// Package main is the entry point for the nanox viewer.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/nanox/internal/app"
	"github.com/dshills/nanox/internal/config"
	"github.com/dshills/nanox/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	rules       string
	colorscheme string
	tabWidth    int
	logFile     string
	logLevel    string
	dump        bool
	noWatch     bool
	files       []string
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	settings, err := config.Load(config.LoadOptions{})
	if err != nil {
		// Load always returns usable settings.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	applyFlags(&settings, f)

	logger, closer, err := openLogger(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if closer != nil {
		defer closer.Close()
	}

	application, err := app.New(app.Options{
		Settings: settings,
		Files:    f.files,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if f.dump {
		if err := application.Dump(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	term, err := backend.NewTCell()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		<-signals
		application.Quit()
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() flags {
	var f flags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&f.rules, "rules", "", "Path to the highlight rule file")
	flag.StringVar(&f.colorscheme, "colorscheme", "", "Colorscheme name (overrides the rule file)")
	flag.StringVar(&f.colorscheme, "s", "", "Colorscheme name (shorthand)")
	flag.IntVar(&f.tabWidth, "tab-width", 0, "Tab width in columns")
	flag.StringVar(&f.logFile, "log", "", "Append log records to this file")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&f.dump, "dump", false, "Print the highlighted file to stdout and exit")
	flag.BoolVar(&f.noWatch, "no-watch", false, "Do not reload rules and colorschemes on change")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "nanox - syntax highlighting file viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: nanox [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  nanox main.c                    View a file\n")
		fmt.Fprintf(os.Stderr, "  nanox -s solarized main.go      Pick a colorscheme\n")
		fmt.Fprintf(os.Stderr, "  nanox -dump main.c | less -R    Print highlighted text\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("nanox %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch f.logLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", f.logLevel)
		os.Exit(1)
	}
	if f.tabWidth < 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid tab width %d\n", f.tabWidth)
		os.Exit(1)
	}

	f.files = flag.Args()
	return f
}

// applyFlags lets command-line flags override loaded settings.
func applyFlags(s *config.Settings, f flags) {
	if f.rules != "" {
		s.RulesPath = f.rules
	}
	if f.colorscheme != "" {
		s.Colorscheme = f.colorscheme
	}
	if f.tabWidth > 0 {
		s.TabWidth = f.tabWidth
	}
	if f.logFile != "" {
		s.LogFile = f.logFile
	}
	if f.logLevel != "" {
		s.LogLevel = f.logLevel
	}
	if f.noWatch || f.dump {
		s.Watch = false
	}
}

func openLogger(s config.Settings) (*app.Logger, io.Closer, error) {
	if s.LogFile == "" {
		return app.NullLogger, nil, nil
	}
	return app.OpenLogFile(s.LogFile, app.ParseLogLevel(s.LogLevel))
}
