// Package main provides the CLI entrypoint for glimmer.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/glimmer/internal/config"
	"github.com/jmylchreest/glimmer/internal/page"
	"github.com/jmylchreest/glimmer/internal/store"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		stateFile  string
		configPath string
	}
	logger *slog.Logger

	// prefs and themeStore are built once per invocation
	prefs      *store.FilePreferences
	themeStore *store.ThemeStore
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "glimmer",
	Short: "Theme preference manager for the Glimmerink site",
	Long: `glimmer manages the persisted dark/light theme preference of the
Glimmerink site and applies it to the rendered page.

The preference is stored under a single key in a state file shared by every
glimmer process; changes made by one process are picked up by the others.

Running glimmer without a subcommand launches the interactive TUI.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			setupLogger(config.DefaultLogLevel)
			return fmt.Errorf("failed to load config: %w", err)
		}

		setupLogger(cfg.Log.Level)

		statePath := globalOpts.stateFile
		if statePath == "" {
			statePath = cfg.ResolvedStatePath()
		}

		// Ensure the state directory exists so watchers can attach before
		// the first toggle
		if err := os.MkdirAll(filepath.Dir(statePath), 0700); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}

		prefs = store.NewFilePreferences(statePath)
		themeStore = store.NewThemeStore(prefs, cfg.Storage.Key, logger)
		logger.Debug("theme store ready", "state_file", statePath, "key", themeStore.Key(), "theme", themeStore.Current())

		return nil
	},
	// Default to TUI when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args)
	},
}

// Execute runs the root command. Any error is logged and the process exits
// non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if logger == nil {
			setupLogger(config.DefaultLogLevel)
		}
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.stateFile, "state-file", "",
		"Path to state file (default: ~/.local/share/glimmer/state.json)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/glimmer/config.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger(levelName string) {
	level, err := config.ParseLevel(levelName)
	if err != nil {
		level = slog.LevelWarn
	}
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// newDocument builds the page surface with the current theme applied and
// subscribes it to future changes.
func newDocument() (*page.Document, error) {
	doc := page.NewDocument(cfg.Page.Avatars)
	if err := doc.Apply(themeStore.Current()); err != nil {
		return nil, err
	}
	themeStore.Subscribe(doc.Apply)
	return doc, nil
}
