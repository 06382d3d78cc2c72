// Package format holds the pure display formatting for product fields.
// Every function is total: NaN, infinities, and out-of-range input degrade
// to a zero-valued rendering instead of failing.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Glyph is one position of a five-glyph rating strip.
type Glyph int

const (
	GlyphEmpty Glyph = iota
	// GlyphHalf marks a fractional position. It currently renders the same
	// as GlyphEmpty; the distinction is kept for styling that tells them apart.
	GlyphHalf
	GlyphFilled
)

// Currency renders a price as "$19.99". Non-finite input renders "$0.00".
func Currency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return "$" + fixed(v, 2)
}

// Count abbreviates a view count: 1500 -> "1.5K", 2000000 -> "2M",
// 999 -> "999". A trailing ".0" is stripped from abbreviated values.
func Count(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	switch {
	case v >= 1_000_000:
		return abbrev(v/1_000_000) + "M"
	case v >= 1_000:
		s := abbrev(v / 1_000)
		if s == "1000" {
			// 999,950 and up round to "1000.0" thousands; roll over instead.
			return "1M"
		}
		return s + "K"
	default:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	}
}

// RatingGlyphs maps a nominal 0-5 rating onto five glyphs: filled below the
// integer part, a half glyph where the fraction lies in [0.25, 0.75), empty
// beyond.
func RatingGlyphs(r float64) [5]Glyph {
	if math.IsNaN(r) || r < 0 {
		r = 0
	}
	if r > 5 {
		r = 5
	}
	full := int(math.Floor(r))
	frac := r - math.Floor(r)

	var out [5]Glyph
	for i := range out {
		switch {
		case i < full:
			out[i] = GlyphFilled
		case i == full && frac >= 0.25 && frac < 0.75:
			out[i] = GlyphHalf
		default:
			out[i] = GlyphEmpty
		}
	}
	return out
}

// Stars renders a glyph strip as "★★★★☆".
func Stars(glyphs [5]Glyph) string {
	var b strings.Builder
	for _, g := range glyphs {
		if g == GlyphFilled {
			b.WriteString("★")
		} else {
			b.WriteString("☆")
		}
	}
	return b.String()
}

// Label returns the column label for a sort key. Unknown keys pass through
// unchanged.
func Label(key string) string {
	switch key {
	case "name":
		return "Name"
	case "category":
		return "Category"
	case "price":
		return "Price"
	case "commission":
		return "Commission %"
	case "agentScore":
		return "Agent score"
	case "virality":
		return "Virality"
	case "views7d":
		return "7-day views"
	case "rating":
		return "Rating"
	default:
		return key
	}
}

// CountLabel renders the result count: "1 product", "17 products".
func CountLabel(n int) string {
	if n == 1 {
		return "1 product"
	}
	return fmt.Sprintf("%d products", n)
}

// SortLabel renders the active-sort line, e.g. "Sorted by Agent score (desc)".
func SortLabel(label string, ascending bool) string {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	return fmt.Sprintf("Sorted by %s (%s)", label, dir)
}

// Percent renders a commission percentage with no decimals: "28%".
func Percent(v float64) string {
	return fixed(v, 0) + "%"
}

// Fixed renders v with the given number of decimals, treating non-finite
// values as zero.
func Fixed(v float64, decimals int) string {
	return fixed(v, decimals)
}

func fixed(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func abbrev(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
