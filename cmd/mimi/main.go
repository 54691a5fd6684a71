// Package main provides the mimi journal application. It is a private,
// offline journal that runs entirely in the terminal: posts, comments,
// bookmarks and progression all live in a single JSON store under the
// user's home directory and never leave the machine.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mimijournal/mimi/pkg/app"
	"github.com/mimijournal/mimi/pkg/config"
	"github.com/mimijournal/mimi/pkg/i18n"
	"github.com/mimijournal/mimi/pkg/logging"
	"github.com/mimijournal/mimi/pkg/store"
	"github.com/mimijournal/mimi/pkg/ui"
)

const version = "0.1.0"

// Options holds the command line options.
type Options struct {
	ConfigPath  string
	DataPath    string
	Language    string
	ShowVersion bool
}

func main() {
	opts := parseFlags()

	if opts.ShowVersion {
		fmt.Printf("mimi v%s\n", version)
		return
	}

	if err := run(opts); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// parseFlags parses command line flags.
func parseFlags() *Options {
	opts := &Options{}

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to the config file (default: ~/.mimi/config.json)")
	flag.StringVar(&opts.DataPath, "data", "", "Path to the journal store file (default: ~/.mimi/journal.json)")
	flag.StringVar(&opts.Language, "lang", "", "UI language for this session (en, zh-CN)")
	flag.BoolVar(&opts.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "mimi - a private offline journal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: mimi [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mimi                           # journal in ~/.mimi\n")
		fmt.Fprintf(os.Stderr, "  mimi -lang en                  # English UI for this session\n")
		fmt.Fprintf(os.Stderr, "  mimi -data /backup/journal.json\n")
	}

	flag.Parse()
	return opts
}

// run wires the store, controller, i18n bundle and TUI together.
func run(opts *Options) error {
	configPath := opts.ConfigPath
	if configPath == "" {
		var err error
		configPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Command line options win over the config file for this session.
	if opts.DataPath != "" {
		cfg.DataPath = opts.DataPath
	}
	if opts.Language != "" {
		cfg.Language = opts.Language
	}

	logger, err := logging.NewLogger("main")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: file logging unavailable: %v\n", err)
	}
	defer logger.Close()
	logger.Infof("mimi v%s starting, session %s", version, logger.SessionID())

	fileStore, err := store.NewFileStore(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("open journal store: %w", err)
	}
	logger.Infof("journal store at %s", fileStore.Path())

	bundle, err := i18n.NewBundle(cfg.Language)
	if err != nil {
		return err
	}

	journalApp := app.New(store.NewCodec(fileStore, logger))
	model := ui.New(journalApp, bundle, logger, cfg.PageSize)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}

	// Persist the preferences actually used so the next session matches
	// this one.
	if err := cfg.Save(configPath); err != nil {
		logger.Warnf("failed to save config: %v", err)
	}
	return nil
}
