package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shelf/internal/catalog"
	"github.com/mmcdole/shelf/internal/config"
	"github.com/mmcdole/shelf/internal/log"
	"github.com/mmcdole/shelf/internal/menu"
	"github.com/mmcdole/shelf/internal/store"
	"github.com/mmcdole/shelf/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

// options are the command line overrides
type options struct {
	configFile string
	storePath  string
	backend    string
}

func main() {
	var (
		showVersion bool
		opts        options
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&opts.configFile, "config", "", "config file (default: config.yaml in "+config.DefaultConfigDir()+" or .)")
	flag.StringVar(&opts.storePath, "store", "", "catalog file, overrides store.path")
	flag.StringVar(&opts.backend, "backend", "", "store backend: json, bolt or memory")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Printf("shelf %s\n", Version)
		return
	}

	if err := run(flag.Args(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: shelf [flags] [command]

Commands:
  menu    numbered interactive menu (default)
  browse  full-screen browser
  init    write the effective configuration to the config file

Flags:
`)
	flag.PrintDefaults()
}

func run(args []string, opts options) error {
	command := "menu"
	if len(args) > 0 {
		command = args[0]
	}

	// init creates the file -config names, so it cannot be read first
	loadFrom := opts.configFile
	if command == "init" {
		loadFrom = ""
	}

	cfg, err := config.LoadConfig(loadFrom)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.storePath != "" {
		cfg.Store.Path = config.ExpandHome(opts.storePath)
	}
	if opts.backend != "" {
		cfg.Store.Backend = opts.backend
	}

	logger, logCloser, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	} else {
		defer logCloser.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting shelf", "version", Version, "command", command,
		"backend", cfg.Store.Backend, "store", cfg.Store.Path)

	if command == "init" {
		return writeConfig(cfg, opts.configFile)
	}

	st, err := store.Open(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	svc := catalog.NewService(st, logger)

	switch command {
	case "menu":
		err = menu.New(svc, os.Stdin, os.Stdout, logger).Run()
	case "browse":
		err = runBrowser(svc, logger)
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	logger.Info("shutting down", "error", err)
	return err
}

func runBrowser(svc *catalog.Service, logger *slog.Logger) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("browse needs an interactive terminal, use the menu instead")
	}

	p := tea.NewProgram(tui.NewModel(svc), tea.WithAltScreen())

	logger.Info("starting TUI")
	final, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

func writeConfig(cfg *config.Config, path string) error {
	if path == "" {
		path = filepath.Join(config.DefaultConfigDir(), "config.yaml")
	}
	if err := config.SaveConfig(cfg, path); err != nil {
		return err
	}
	fmt.Printf("✓ Configuration saved to %s\n", path)
	return nil
}
