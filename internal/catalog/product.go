package catalog

import (
	"math"
	"strconv"
	"strings"
)

// Product is one product record from the feed. Records are value types:
// created once per load and never mutated afterwards.
type Product struct {
	Name       string
	Category   string
	Price      float64
	Commission float64
	AgentScore float64
	Virality   float64
	Views7d    float64
	Rating     float64
	TikTokURL  string
	ShopURL    string
}

// DisplayCategory returns the category, or "Unknown" when the record has none.
func (p Product) DisplayCategory() string {
	if strings.TrimSpace(p.Category) == "" {
		return "Unknown"
	}
	return p.Category
}

// TikTokLink returns the record's video link, falling back to "#".
func (p Product) TikTokLink() string {
	if strings.TrimSpace(p.TikTokURL) == "" {
		return "#"
	}
	return p.TikTokURL
}

// ShopLink returns the record's shop link, falling back to "#".
func (p Product) ShopLink() string {
	if strings.TrimSpace(p.ShopURL) == "" {
		return "#"
	}
	return p.ShopURL
}

// Field returns the value behind a sort key: a string for textual keys,
// a float64 for numeric ones. Unknown keys yield the empty string.
func (p Product) Field(key Key) any {
	switch key {
	case KeyName:
		return p.Name
	case KeyCategory:
		return p.Category
	case KeyPrice:
		return p.Price
	case KeyCommission:
		return p.Commission
	case KeyAgentScore:
		return p.AgentScore
	case KeyVirality:
		return p.Virality
	case KeyViews7d:
		return p.Views7d
	case KeyRating:
		return p.Rating
	default:
		return ""
	}
}

// ParseOrZero converts an arbitrary textual value to a float64, stripping
// thousands separators. Anything unparsable contributes 0 rather than an
// error; the table must never fail to render over one malformed field.
func ParseOrZero(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// DeriveAgentScore computes the ranking score for records whose feed did not
// carry one: commission and virality normalized, plus seven-day views with
// diminishing returns, rounded to two decimals.
func DeriveAgentScore(commission, virality, views7d float64) float64 {
	score := commission/5 + virality/25 + math.Pow(views7d, 0.25)/10
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0
	}
	return math.Round(score*100) / 100
}
