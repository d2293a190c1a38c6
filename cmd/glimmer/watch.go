package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/glimmer/internal/store"
	"github.com/jmylchreest/glimmer/internal/theme"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print theme changes as they happen",
	Long: `Watch the state file and print the theme whenever another process
changes it. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchUntil(ctx, cmd)
}

// watchUntil prints the current theme and every later change until ctx is done.
func watchUntil(ctx context.Context, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	themeStore.Subscribe(func(t theme.Theme) error {
		_, err := fmt.Fprintln(out, t)
		return err
	})

	watcher, err := store.NewFileWatcher(themeStore, prefs.Path(), logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer watcher.Stop()

	fmt.Fprintln(out, themeStore.Current())

	<-ctx.Done()
	return nil
}
