package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/interpretive-systems/trendscout/internal/catalog"
	"github.com/interpretive-systems/trendscout/internal/prefs"
)

func baseModelForTest() model {
	ti := textinput.New()
	ti.Prompt = "Filter: "

	m := model{
		theme:       darkTheme(),
		view:        catalog.NewView(),
		columns:     tableColumns(),
		filterInput: ti,
		width:       140,
		height:      24,
		lastRefresh: time.Date(2024, 10, 1, 12, 34, 56, 0, time.UTC),
	}
	m.view.Load([]catalog.Product{
		{Name: "Widget", Category: "Home", Price: 19.99, Commission: 25,
			AgentScore: 8.421, Virality: 88.1, Views7d: 12345, Rating: 4.6},
	})
	return m
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_RendersFormattedRow(t *testing.T) {
	m := baseModelForTest()
	out := m.View()
	plain := ansi.Strip(out)

	// Snapshot-like assertions
	if !strings.Contains(plain, "Trendscout  1 product  |  Sorted by Agent score (desc)") {
		t.Fatalf("unexpected header: %q", strings.SplitN(plain, "\n", 2)[0])
	}
	if !strings.Contains(plain, "Agent score ▼") {
		t.Fatalf("expected active-sort indicator on the agent score column")
	}
	if !strings.Contains(plain, "$19.99") {
		t.Fatalf("expected formatted price in view")
	}
	if !strings.Contains(plain, "8.42") {
		t.Fatalf("expected agent score to two decimals")
	}
	if !strings.Contains(plain, "12.3K") {
		t.Fatalf("expected abbreviated views")
	}
	if !strings.Contains(plain, "★★★★☆ 4.6") {
		t.Fatalf("expected star rating cell, got: %q", plain)
	}
	if !strings.Contains(plain, "Widget · Home") {
		t.Fatalf("expected name with category")
	}
	if !strings.Contains(plain, "refreshed: 12:34:56") {
		t.Fatalf("expected bottom bar timestamp")
	}
}

func TestUpdate_SortKeyToggle(t *testing.T) {
	m := baseModelForTest()

	nm, _ := m.Update(keyMsg("1"))
	m = nm.(model)
	if m.view.SortKey() != catalog.KeyName || m.view.SortDir() != catalog.Ascending {
		t.Fatalf("column 1 should sort name ascending, got %v/%v", m.view.SortKey(), m.view.SortDir())
	}

	nm, _ = m.Update(keyMsg("1"))
	m = nm.(model)
	if m.view.SortDir() != catalog.Descending {
		t.Fatalf("same column should toggle direction")
	}

	plain := ansi.Strip(m.View())
	if !strings.Contains(plain, "Name ▼") {
		t.Fatalf("indicator should follow the active column")
	}
}

func TestUpdate_ShortcutSorts(t *testing.T) {
	m := baseModelForTest()

	nm, _ := m.Update(keyMsg("v"))
	m = nm.(model)
	if m.view.SortKey() != catalog.KeyVirality || m.view.SortDir() != catalog.Descending {
		t.Fatalf("v should rank by virality descending")
	}

	nm, _ = m.Update(keyMsg("a"))
	m = nm.(model)
	if m.view.SortKey() != catalog.KeyAgentScore || m.view.SortDir() != catalog.Descending {
		t.Fatalf("a should rank by agent score descending")
	}
}

func TestUpdate_FeedErrorRendersEmptyTable(t *testing.T) {
	m := baseModelForTest()

	nm, _ := m.Update(productsMsg{err: errors.New("connection refused")})
	m = nm.(model)

	if m.view.Len() != 0 {
		t.Fatalf("load failure must clear the table, got %d records", m.view.Len())
	}
	plain := ansi.Strip(m.View())
	if !strings.Contains(plain, "0 products") {
		t.Fatalf("expected zero count label, got: %q", plain)
	}
	if !strings.Contains(plain, "No products found") {
		t.Fatalf("expected empty-table line")
	}
	if !strings.Contains(plain, "feed error: connection refused") {
		t.Fatalf("expected feed error in status, got: %q", plain)
	}
}

func TestUpdate_FilterToEmpty(t *testing.T) {
	m := baseModelForTest()
	m.filterInput.SetValue("zzz")
	m.view.SetSearchTerm("zzz")

	plain := ansi.Strip(m.View())
	if !strings.Contains(plain, "0 products") {
		t.Fatalf("expected zero count label for non-matching filter")
	}
	if !strings.Contains(plain, "Filter: zzz") {
		t.Fatalf("expected filter bar with retained term")
	}
}

func TestUpdate_ProductsMsgReplacesView(t *testing.T) {
	m := baseModelForTest()
	m.selected = 5

	nm, _ := m.Update(productsMsg{products: []catalog.Product{
		{Name: "A", AgentScore: 1},
		{Name: "B", AgentScore: 2},
	}})
	m = nm.(model)

	if m.view.Len() != 2 {
		t.Fatalf("expected 2 records after reload, got %d", m.view.Len())
	}
	if m.selected != 0 {
		t.Fatalf("selection should reset on reload, got %d", m.selected)
	}
	if m.status != "" {
		t.Fatalf("status should clear on success, got %q", m.status)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := baseModelForTest()
	m.showHelp = true

	plain := ansi.Strip(m.View())
	if !strings.Contains(plain, "Rank by agent score") {
		t.Fatalf("expected help overlay contents")
	}

	nm, _ := m.Update(keyMsg("h"))
	m = nm.(model)
	if m.showHelp {
		t.Fatalf("h should close the help overlay")
	}
}

func TestSavePrefs_KeepsTheme(t *testing.T) {
	dir := t.TempDir()
	m := baseModelForTest()
	m.prefsDir = dir
	m.themeName = "light"

	nm, _ := m.Update(keyMsg("a"))
	m = nm.(model)

	p := prefs.Load(dir)
	if p.Theme != "light" {
		t.Fatalf("sorting should not clobber the theme preference, got %q", p.Theme)
	}
	if p.SortKey != string(catalog.KeyAgentScore) {
		t.Fatalf("expected sort key persisted alongside theme, got %q", p.SortKey)
	}
}
