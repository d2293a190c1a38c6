package main

import (
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the page skeleton for the current theme",
	Long: `Render the themed page skeleton (root theme attribute, navigation
background and avatar filters) as HTML on stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := newDocument()
		if err != nil {
			return err
		}
		return doc.Render(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
