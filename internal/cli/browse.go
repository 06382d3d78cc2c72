package cli

import (
	"github.com/interpretive-systems/trendscout/internal/feed"
	"github.com/interpretive-systems/trendscout/internal/tui"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the TUI and browse the product table",
		RunE: func(cmd *cobra.Command, args []string) error {
			source := mustGetStringFlag(cmd.Root(), "source")
			format := mustGetStringFlag(cmd.Root(), "format")
			theme := mustGetStringFlag(cmd.Root(), "theme")
			loader := feed.New(source, feed.Format(format))
			return tui.Run(loader, theme)
		},
	}
	return cmd
}
