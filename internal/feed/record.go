package feed

import (
	"encoding/json"
	"strconv"

	"github.com/interpretive-systems/trendscout/internal/catalog"
)

// record is the tolerant wire form of one product. Number fields accept JSON
// numbers, numeric strings, or garbage (coerced to 0); string fields accept
// strings or numbers. A record never fails to decode over one bad field.
type record struct {
	Name       flexString  `json:"name"`
	Category   flexString  `json:"category"`
	Price      flexNumber  `json:"price"`
	Commission flexNumber  `json:"commission"`
	AgentScore *flexNumber `json:"agentScore"` // nil when the feed omits it
	Virality   flexNumber  `json:"virality"`
	Views7d    flexNumber  `json:"views7d"`
	Rating     flexNumber  `json:"rating"`
	TikTokURL  flexString  `json:"tiktokUrl"`
	ShopURL    flexString  `json:"shopUrl"`
}

func (r record) product() catalog.Product {
	p := catalog.Product{
		Name:       string(r.Name),
		Category:   string(r.Category),
		Price:      float64(r.Price),
		Commission: float64(r.Commission),
		Virality:   float64(r.Virality),
		Views7d:    float64(r.Views7d),
		Rating:     float64(r.Rating),
		TikTokURL:  string(r.TikTokURL),
		ShopURL:    string(r.ShopURL),
	}
	if r.AgentScore != nil {
		p.AgentScore = float64(*r.AgentScore)
	} else {
		p.AgentScore = catalog.DeriveAgentScore(p.Commission, p.Virality, p.Views7d)
	}
	return p
}

type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	var v float64
	if err := json.Unmarshal(b, &v); err == nil {
		*n = flexNumber(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = flexNumber(catalog.ParseOrZero(s))
		return nil
	}
	*n = 0
	return nil
}

type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err == nil {
		*s = flexString(v)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*s = flexString(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	}
	*s = ""
	return nil
}
