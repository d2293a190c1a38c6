package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/glimmer/internal/config"
)

var configInitOpts struct {
	force bool
}

// configCmd represents the config command group.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the glimmer configuration file",
	Long: `Manage the glimmer configuration file.

Use 'glimmer config path' to show where the config file is read from.
Use 'glimmer config init' to write a config file with the default settings.`,
	// Config commands must work even when the existing file is invalid
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(config.DefaultLogLevel)
		return nil
	},
	RunE: configPathRun,
}

// configPathCmd prints the config file location.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  configPathRun,
}

// configInitCmd writes the default configuration.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long: `Write a config file containing the default settings. An existing file is
left untouched unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: configInitRun,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)

	configInitCmd.Flags().BoolVarP(&configInitOpts.force, "force", "f", false,
		"Overwrite an existing config file")
}

func resolvedConfigPath() string {
	if globalOpts.configPath != "" {
		return globalOpts.configPath
	}
	return config.ConfigPath()
}

func configPathRun(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), resolvedConfigPath())
	return nil
}

func configInitRun(cmd *cobra.Command, args []string) error {
	path := resolvedConfigPath()

	if !configInitOpts.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	logger.Debug("wrote default config", "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
	return nil
}
