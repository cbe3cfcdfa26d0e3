// Package main is the entry point for the inkwell editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dshills/inkwell/internal/command"
	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/doc"
	lua "github.com/dshills/inkwell/internal/plugin/lua"
	"github.com/dshills/inkwell/internal/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	pluginDir  string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	d := starterDocument()
	engine, err := command.New(d, command.WithExpansions(cfg.Table()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	if err := engine.RegisterDefaults(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to register key commands: %v\n", err)
		return 1
	}
	engine.SetCursor(doc.Collapsed(doc.TailOf(d.Last())))

	// Scripted key bindings are optional.
	pluginDir := opts.pluginDir
	if pluginDir == "" {
		pluginDir = cfg.PluginDir
	}
	if pluginDir != "" {
		host, err := lua.NewHost(engine.Registry())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to start plugin host: %v\n", err)
			return 1
		}
		defer host.Close()
		if err := host.LoadDir(pluginDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	// Live-reload the special-markup table on config edits.
	watcher, err := config.Watch(opts.configPath, func(cfg *config.Config) {
		engine.SetExpansions(cfg.Table())
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config reload disabled: %v\n", err)
	} else {
		defer watcher.Close()
	}

	host, err := term.NewHost(engine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		host.Stop()
	}()

	if err := host.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// starterDocument is what an empty session opens with.
func starterDocument() *doc.Document {
	return doc.NewWithBlocks(
		doc.NewHeading(1, doc.NewMarker("Untitled", doc.MarkupNone)),
		doc.NewParagraph(),
	)
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", defaultConfigPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&opts.pluginDir, "plugin", "", "Directory of Lua key-binding scripts")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Inkwell - structured rich-text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: inkwell [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if showVersion {
		fmt.Printf("Inkwell %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "inkwell.toml"
	}
	return filepath.Join(dir, "inkwell", "inkwell.toml")
}
