package tui

import (
	"github.com/interpretive-systems/trendscout/internal/catalog"
)

// productsMsg contains the loaded product records.
type productsMsg struct {
	products []catalog.Product
	err      error
}

// linkOpenedMsg reports the outcome of handing a URL to the OS opener.
type linkOpenedMsg struct {
	label string
	err   error
}
