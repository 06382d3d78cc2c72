// Package feed loads product records from a JSON or CSV source. Failures are
// absorbed at this boundary: a broken feed yields an error alongside zero
// records, and individual malformed fields default instead of rejecting the
// record.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/interpretive-systems/trendscout/internal/catalog"
)

// Format selects how the source payload is decoded.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Loader fetches product records from a URL or file path. An empty source
// serves the built-in sample set.
type Loader struct {
	source string
	format Format
	client *http.Client
}

// New creates a loader for the given source and format.
func New(source string, format Format) *Loader {
	if format == "" {
		format = FormatAuto
	}
	return &Loader{
		source: source,
		format: format,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Source returns the configured source, or a placeholder for the sample set.
func (l *Loader) Source() string {
	if l.source == "" {
		return "(sample data)"
	}
	return l.source
}

// Fetch loads and decodes the product feed. On any failure it returns zero
// records with the error; callers render the empty table rather than die.
func (l *Loader) Fetch(ctx context.Context) ([]catalog.Product, error) {
	if l.source == "" {
		return sampleProducts(), nil
	}

	raw, err := l.read(ctx)
	if err != nil {
		return nil, err
	}

	format := l.format
	if format == FormatAuto {
		format = sniffFormat(l.source, raw)
	}

	var products []catalog.Product
	switch format {
	case FormatCSV:
		products, err = decodeCSV(raw)
	default:
		products, err = decodeJSON(raw)
	}
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (l *Loader) read(ctx context.Context) ([]byte, error) {
	if strings.Contains(l.source, "://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
		if err != nil {
			return nil, fmt.Errorf("feed request: %w", err)
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("feed fetch: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("feed fetch: unexpected status %s", resp.Status)
		}
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("feed read: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(l.source)
	if err != nil {
		return nil, fmt.Errorf("feed read: %w", err)
	}
	return b, nil
}

// payload mirrors the wire shape { "products": [...] }. A missing products
// field decodes to nil and is treated as an empty feed, not an error.
type payload struct {
	Products []record `json:"products"`
}

func decodeJSON(raw []byte) ([]catalog.Product, error) {
	trimmed := strings.TrimSpace(string(raw))
	var records []record

	if strings.HasPrefix(trimmed, "[") {
		// Bare array form, as served by /api/products.
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("feed decode: %w", err)
		}
	} else {
		var p payload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("feed decode: %w", err)
		}
		records = p.Products
	}

	products := make([]catalog.Product, 0, len(records))
	for _, r := range records {
		products = append(products, r.product())
	}
	return products, nil
}

func sniffFormat(source string, raw []byte) Format {
	if strings.HasSuffix(strings.ToLower(strings.SplitN(source, "?", 2)[0]), ".csv") {
		return FormatCSV
	}
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return FormatJSON
	}
	return FormatCSV
}
