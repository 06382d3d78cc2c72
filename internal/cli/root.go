package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "trendscout",
		Short: "Terminal table for trending shop products",
		Long:  "Trendscout: skim, filter, and rank trending shop products in a sortable TUI table.",
	}

	root.PersistentFlags().StringP("source", "s", "", "Product feed URL or file path (JSON or CSV)")
	root.PersistentFlags().String("format", "auto", "Feed format: json, csv, or auto")
	root.PersistentFlags().String("theme", "", "Base theme: dark or light (default: last used)")

	// Add subcommands
	root.AddCommand(newBrowseCmd())

	if err := root.Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}
