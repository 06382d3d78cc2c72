package catalog

import "testing"

func TestProduct_Defaults(t *testing.T) {
	var p Product
	if got := p.DisplayCategory(); got != "Unknown" {
		t.Fatalf("empty category should display as Unknown, got %q", got)
	}
	if got := p.TikTokLink(); got != "#" {
		t.Fatalf("missing tiktok url should fall back to #, got %q", got)
	}
	if got := p.ShopLink(); got != "#" {
		t.Fatalf("missing shop url should fall back to #, got %q", got)
	}
}

func TestProduct_Field(t *testing.T) {
	p := Product{Name: "Widget", Category: "Home", Price: 19.99, Views7d: 12345}

	if got := p.Field(KeyName); got != "Widget" {
		t.Fatalf("Field(name) = %v", got)
	}
	if got := p.Field(KeyPrice); got != 19.99 {
		t.Fatalf("Field(price) = %v", got)
	}
	if got := p.Field(Key("bogus")); got != "" {
		t.Fatalf("unknown key should yield empty string, got %v", got)
	}
}

func TestParseOrZero(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"19.99", 19.99},
		{" 19.99 ", 19.99},
		{"1,500", 1500},
		{"1,500,000", 1500000},
		{"-3.5", -3.5},
	}
	for _, c := range cases {
		if got := ParseOrZero(c.in); got != c.want {
			t.Fatalf("ParseOrZero(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDeriveAgentScore(t *testing.T) {
	// The seed record for the car phone holder carries this exact score.
	if got := DeriveAgentScore(28, 86.7, 1_500_000); got != 12.57 {
		t.Fatalf("DeriveAgentScore = %v, want 12.57", got)
	}
	if got := DeriveAgentScore(0, 0, 0); got != 0 {
		t.Fatalf("zero inputs should score 0, got %v", got)
	}
}
