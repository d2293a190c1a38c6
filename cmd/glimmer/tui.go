package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/glimmer/internal/store"
	"github.com/jmylchreest/glimmer/internal/tui"
)

var tuiOpts struct {
	noWatch bool
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive theme switcher",
	Long: `Launch the interactive terminal interface.

The preview card is styled with the active theme. Changes made by other
glimmer processes are picked up live unless watching is disabled.

Key bindings:
  t, space    Toggle theme
  ?           Show help
  q, esc      Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().BoolVar(&tuiOpts.noWatch, "no-watch", false,
		"Do not reload when the state file changes")
}

func runTUI(cmd *cobra.Command, args []string) error {
	doc, err := newDocument()
	if err != nil {
		return err
	}

	var watcher *store.FileWatcher
	if cfg.Watch.Enabled && !tuiOpts.noWatch {
		watcher, err = store.NewFileWatcher(themeStore, prefs.Path(), logger)
		if err != nil {
			logger.Warn("failed to create file watcher", "error", err)
			watcher = nil
		}
	}

	return tui.Run(tui.RunOptions{
		Store:    themeStore,
		Document: doc,
		Watcher:  watcher,
	})
}
