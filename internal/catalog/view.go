package catalog

import (
	"sort"
	"strings"
)

// Key names a sortable product field.
type Key string

const (
	KeyName       Key = "name"
	KeyCategory   Key = "category"
	KeyPrice      Key = "price"
	KeyCommission Key = "commission"
	KeyAgentScore Key = "agentScore"
	KeyVirality   Key = "virality"
	KeyViews7d    Key = "views7d"
	KeyRating     Key = "rating"
)

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// View owns the source list and derives the filtered, sorted sequence that
// gets rendered. All mutation happens through its methods; the renderer only
// ever reads Displayed and the current key/direction/term.
type View struct {
	source   []Product
	filtered []Product
	term     string
	key      Key
	dir      Direction
}

// NewView returns a view with no records, ranked by agent score descending.
func NewView() *View {
	return &View{key: KeyAgentScore, dir: Descending}
}

// Load replaces the source list wholesale. The filtered list is reset to the
// full new source; a retained search term is not reapplied until the next
// SetSearchTerm.
func (v *View) Load(records []Product) {
	v.source = append([]Product(nil), records...)
	v.filtered = append([]Product(nil), v.source...)
}

// SetSearchTerm recomputes the filtered list: records whose name or category
// contains the trimmed, lower-cased term. An empty term selects everything.
func (v *View) SetSearchTerm(term string) {
	v.term = strings.ToLower(strings.TrimSpace(term))
	if v.term == "" {
		v.filtered = append([]Product(nil), v.source...)
		return
	}
	v.filtered = v.filtered[:0]
	for _, p := range v.source {
		if strings.Contains(strings.ToLower(p.Name), v.term) ||
			strings.Contains(strings.ToLower(p.Category), v.term) {
			v.filtered = append(v.filtered, p)
		}
	}
}

// SetSort handles a column activation: the active key toggles direction,
// a new key resets it. Text sorts ascending by default, metrics descending.
func (v *View) SetSort(key Key) {
	if key == v.key {
		if v.dir == Ascending {
			v.dir = Descending
		} else {
			v.dir = Ascending
		}
		return
	}
	v.key = key
	if key == KeyName || key == KeyCategory {
		v.dir = Ascending
	} else {
		v.dir = Descending
	}
}

// SetSortExplicit sets both sort fields unconditionally. Used by shortcut
// actions like "rank by agent score".
func (v *View) SetSortExplicit(key Key, dir Direction) {
	v.key = key
	v.dir = dir
}

// Displayed returns the filtered list stably sorted by the current key and
// direction. It is recomputed fresh on every call; ties keep their relative
// order from the source list.
func (v *View) Displayed() []Product {
	out := append([]Product(nil), v.filtered...)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareValues(out[i].Field(v.key), out[j].Field(v.key))
		if v.dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

// Term returns the current search term (trimmed, lower-cased).
func (v *View) Term() string { return v.term }

// SortKey returns the current sort key.
func (v *View) SortKey() Key { return v.key }

// SortDir returns the current sort direction.
func (v *View) SortDir() Direction { return v.dir }

// Len reports how many records are currently filtered in.
func (v *View) Len() int { return len(v.filtered) }

// SourceLen reports the size of the full source list.
func (v *View) SourceLen() int { return len(v.source) }

// compareValues orders two field values. If either side is numeric, both are
// compared as numbers with unparsable values coerced to 0; otherwise the
// comparison is case-insensitive on strings.
func compareValues(a, b any) int {
	an, aNum := a.(float64)
	bn, bNum := b.(float64)
	if aNum || bNum {
		if !aNum {
			an = coerceFloat(a)
		}
		if !bNum {
			bn = coerceFloat(b)
		}
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	as := strings.ToLower(coerceString(a))
	bs := strings.ToLower(coerceString(b))
	return strings.Compare(as, bs)
}

func coerceFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		return ParseOrZero(x)
	default:
		return 0
	}
}

func coerceString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
