package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleOpts struct {
	quiet bool
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between the dark and light theme",
	Long: `Switch the theme, persist it and apply it to the page surface.

Other running glimmer processes (tui, watch) pick up the change from the
state file.`,
	Args: cobra.NoArgs,
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)

	toggleCmd.Flags().BoolVarP(&toggleOpts.quiet, "quiet", "q", false,
		"Suppress output")
}

func runToggle(cmd *cobra.Command, args []string) error {
	doc, err := newDocument()
	if err != nil {
		return err
	}

	if err := themeStore.Toggle(); err != nil {
		return err
	}

	current := themeStore.Current()
	logger.Debug("theme applied to page", "theme", current, "nav_background", doc.NavBackground())

	if !toggleOpts.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", current)
	}
	return nil
}
