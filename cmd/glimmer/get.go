package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var getOpts struct {
	json bool
}

// ThemeStatus is the machine-readable output of get.
type ThemeStatus struct {
	Theme     string `json:"theme"`
	Key       string `json:"key"`
	StateFile string `json:"state_file"`
	UpdatedAt int64  `json:"updated_at,omitempty"`
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current theme",
	Long: `Show the current theme and when it was last changed.

When nothing valid is stored the default theme (dark) is shown; the default
is not written back.`,
	Args: cobra.NoArgs,
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().BoolVar(&getOpts.json, "json", false, "Output as JSON")
}

func runGet(cmd *cobra.Command, args []string) error {
	current := themeStore.Current()
	updatedAt, known := prefs.UpdatedAt(themeStore.Key())

	out := cmd.OutOrStdout()

	if getOpts.json {
		status := ThemeStatus{
			Theme:     current.String(),
			Key:       themeStore.Key(),
			StateFile: prefs.Path(),
		}
		if known {
			status.UpdatedAt = updatedAt.Unix()
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	fmt.Fprintf(out, "Theme: %s\n", current)
	if known {
		fmt.Fprintf(out, "  Last change: %s\n", formatChangeTime(updatedAt))
	} else {
		fmt.Fprintln(out, "  Last change: never (default)")
	}
	return nil
}

// formatChangeTime formats a timestamp as a human-readable relative time.
func formatChangeTime(t time.Time) string {
	return humanize.Time(t)
}
