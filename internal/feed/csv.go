package feed

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/interpretive-systems/trendscout/internal/catalog"
)

// decodeCSV parses the published-spreadsheet form of the feed. The sheet's
// column names (commission_pct, virality_score, views_7d, ...) are accepted
// alongside the JSON field names; numbers may carry thousands separators.
func decodeCSV(raw []byte) ([]catalog.Product, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1 // ragged rows default rather than fail

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("feed csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	pick := func(row []string, names ...string) string {
		for _, n := range names {
			if i, ok := cols[n]; ok && i < len(row) {
				return strings.TrimSpace(row[i])
			}
		}
		return ""
	}

	products := make([]catalog.Product, 0, len(rows)-1)
	for _, row := range rows[1:] {
		p := catalog.Product{
			Name:       pick(row, "name"),
			Category:   pick(row, "category"),
			Price:      catalog.ParseOrZero(pick(row, "price")),
			Commission: catalog.ParseOrZero(pick(row, "commission_pct", "commission")),
			Virality:   catalog.ParseOrZero(pick(row, "virality_score", "virality")),
			Views7d:    catalog.ParseOrZero(pick(row, "views_7d", "views7d")),
			Rating:     catalog.ParseOrZero(pick(row, "rating")),
			TikTokURL:  pick(row, "tiktok_video_url", "tiktokurl"),
			ShopURL:    pick(row, "tiktok_shop_url", "shopurl"),
		}
		if score := pick(row, "agent_score", "agentscore"); score != "" {
			p.AgentScore = catalog.ParseOrZero(score)
		} else {
			p.AgentScore = catalog.DeriveAgentScore(p.Commission, p.Virality, p.Views7d)
		}
		products = append(products, p)
	}
	return products, nil
}
