package tui

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/trendscout/internal/feed"
)

// loadProducts fetches the product feed. Failures come back inside the
// message; the table renders empty rather than the program dying.
func loadProducts(loader *feed.Loader) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		products, err := loader.Fetch(ctx)
		return productsMsg{products: products, err: err}
	}
}

// openLink hands a product URL to the OS opener. The "#" placeholder means
// the record carried no link.
func openLink(label, url string) tea.Cmd {
	return func() tea.Msg {
		if url == "" || url == "#" {
			return linkOpenedMsg{label: label, err: fmt.Errorf("no %s link for this product", label)}
		}
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			cmd = exec.Command("xdg-open", url)
		}
		if err := cmd.Start(); err != nil {
			return linkOpenedMsg{label: label, err: fmt.Errorf("open %s: %w", label, err)}
		}
		return linkOpenedMsg{label: label}
	}
}
