package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/interpretive-systems/trendscout/internal/catalog"
	"github.com/interpretive-systems/trendscout/internal/feed"
	"github.com/interpretive-systems/trendscout/internal/format"
	"github.com/interpretive-systems/trendscout/internal/prefs"
)

// column describes one table column. Columns without a key are not sortable.
type column struct {
	title string
	key   catalog.Key
	width int
}

func tableColumns() []column {
	return []column{
		{format.Label("name"), catalog.KeyName, 30},
		{format.Label("price"), catalog.KeyPrice, 11},
		{format.Label("commission"), catalog.KeyCommission, 15},
		{format.Label("agentScore"), catalog.KeyAgentScore, 14},
		{format.Label("virality"), catalog.KeyVirality, 11},
		{format.Label("views7d"), catalog.KeyViews7d, 14},
		{format.Label("rating"), catalog.KeyRating, 13},
		{"Links", "", 12},
	}
}

type model struct {
	loader    *feed.Loader
	theme     Theme
	themeName string
	prefsDir  string
	view      *catalog.View
	columns   []column

	selected    int
	offset      int
	width       int
	height      int
	status      string
	lastRefresh time.Time
	loading     bool
	showHelp    bool

	filterInput   textinput.Model
	filterFocused bool
}

// Run instantiates and runs the Bubble Tea program. An empty themeName falls
// back to the persisted preference, then to the dark default.
func Run(loader *feed.Loader, themeName string) error {
	dir := prefs.DefaultDir()
	view := catalog.NewView()

	p := prefs.Load(dir)
	if p.SortSet {
		sortDir := catalog.Descending
		if p.Ascending {
			sortDir = catalog.Ascending
		}
		view.SetSortExplicit(catalog.Key(p.SortKey), sortDir)
	}
	if themeName == "" {
		themeName = p.Theme
	}

	ti := textinput.New()
	ti.Placeholder = "name or category"
	ti.Prompt = "Filter: "
	ti.CharLimit = 64

	m := model{
		loader:      loader,
		theme:       loadTheme(dir, themeName),
		themeName:   themeName,
		prefsDir:    dir,
		view:        view,
		columns:     tableColumns(),
		loading:     true,
		filterInput: ti,
	}
	prog := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return loadProducts(m.loader)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "h", "esc":
				m.showHelp = false
			}
			return m, nil
		}
		if m.filterFocused {
			return m.handleFilterKeys(msg)
		}
		return m.handleTableKeys(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()
		return m, nil
	case productsMsg:
		m.loading = false
		m.lastRefresh = time.Now()
		if msg.err != nil {
			// Broken feed degrades to an empty table, never a dead program.
			m.status = fmt.Sprintf("feed error: %v", msg.err)
			m.view.Load(nil)
		} else {
			m.status = ""
			m.view.Load(msg.products)
		}
		m.selected = 0
		m.offset = 0
		return m, nil
	case linkOpenedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = "opened " + msg.label + " link"
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.filterFocused = false
		m.filterInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.view.SetSearchTerm(m.filterInput.Value())
	m.selected = 0
	m.offset = 0
	return m, cmd
}

func (m model) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "h":
		m.showHelp = true
		return m, nil
	case "/":
		m.filterFocused = true
		m.filterInput.Focus()
		return m, textinput.Blink
	case "esc":
		if m.filterInput.Value() != "" {
			m.filterInput.SetValue("")
			m.view.SetSearchTerm("")
			m.selected = 0
			m.offset = 0
		}
		return m, nil
	case "r":
		m.loading = true
		return m, loadProducts(m.loader)
	case "j", "down":
		if m.selected < m.view.Len()-1 {
			m.selected++
			if m.selected >= m.offset+m.visibleRows() {
				m.offset = m.selected - m.visibleRows() + 1
			}
		}
		return m, nil
	case "k", "up":
		if m.selected > 0 {
			m.selected--
			if m.selected < m.offset {
				m.offset = m.selected
			}
		}
		return m, nil
	case "g":
		m.selected = 0
		m.offset = 0
		return m, nil
	case "G":
		m.selected = max(0, m.view.Len()-1)
		if m.selected >= m.visibleRows() {
			m.offset = m.selected - m.visibleRows() + 1
		}
		return m, nil
	case "a":
		m.view.SetSortExplicit(catalog.KeyAgentScore, catalog.Descending)
		m.savePrefs()
		return m, nil
	case "v":
		m.view.SetSortExplicit(catalog.KeyVirality, catalog.Descending)
		m.savePrefs()
		return m, nil
	case "t":
		if p, ok := m.selectedProduct(); ok {
			return m, openLink("TikTok", p.TikTokLink())
		}
		return m, nil
	case "s":
		if p, ok := m.selectedProduct(); ok {
			return m, openLink("Shop", p.ShopLink())
		}
		return m, nil
	case "1", "2", "3", "4", "5", "6", "7":
		idx := int(key[0] - '1')
		if idx < len(m.columns) && m.columns[idx].key != "" {
			m.view.SetSort(m.columns[idx].key)
			m.savePrefs()
		}
		return m, nil
	}
	return m, nil
}

func (m *model) savePrefs() {
	if m.prefsDir == "" {
		return
	}
	// Best effort; an unwritable config dir is not worth interrupting the UI.
	_ = prefs.Save(m.prefsDir, prefs.Prefs{
		SortKey:   string(m.view.SortKey()),
		Ascending: m.view.SortDir() == catalog.Ascending,
		Theme:     m.themeName,
	})
}

func (m model) selectedProduct() (catalog.Product, bool) {
	displayed := m.view.Displayed()
	if m.selected >= 0 && m.selected < len(displayed) {
		return displayed[m.selected], true
	}
	return catalog.Product{}, false
}

func (m *model) clampCursor() {
	if m.selected >= m.view.Len() {
		m.selected = max(0, m.view.Len()-1)
	}
	if m.offset > m.selected {
		m.offset = m.selected
	}
}

// visibleRows is the number of table rows that fit between the chrome lines.
func (m model) visibleRows() int {
	// top bar + top rule + header + header rule + bottom rule + bottom bar
	used := 6
	if m.filterVisible() {
		used++
	}
	if m.showHelp {
		used += len(m.helpOverlayLines(m.width))
	}
	return max(1, m.height-used)
}

func (m model) filterVisible() bool {
	return m.filterFocused || m.filterInput.Value() != ""
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	// Row 1: top bar
	b.WriteString(m.topBar())
	b.WriteByte('\n')
	b.WriteString(m.theme.DividerText(strings.Repeat("─", m.width)))
	b.WriteByte('\n')

	// Optional filter bar
	if m.filterVisible() {
		if m.filterFocused {
			b.WriteString(m.filterInput.View())
		} else {
			b.WriteString(m.theme.SubtleText("Filter: " + m.filterInput.Value()))
		}
		b.WriteByte('\n')
	}

	// Header + rule
	b.WriteString(m.headerRow())
	b.WriteByte('\n')
	b.WriteString(m.theme.DividerText(strings.Repeat("─", m.width)))
	b.WriteByte('\n')

	// Body rows
	displayed := m.view.Displayed()
	visible := m.visibleRows()
	rendered := 0
	if len(displayed) == 0 {
		b.WriteString(m.emptyLine())
		b.WriteByte('\n')
		rendered = 1
	} else {
		end := min(m.offset+visible, len(displayed))
		for i := m.offset; i < end; i++ {
			b.WriteString(m.renderRow(displayed[i], i == m.selected))
			b.WriteByte('\n')
			rendered++
		}
	}
	for ; rendered < visible; rendered++ {
		b.WriteByte('\n')
	}

	// Help overlay right above the bottom bar
	if m.showHelp {
		for _, line := range m.helpOverlayLines(m.width) {
			b.WriteString(padToWidth(line, m.width))
			b.WriteByte('\n')
		}
	}

	b.WriteString(strings.Repeat("─", m.width))
	b.WriteByte('\n')
	b.WriteString(m.bottomBar())
	return b.String()
}

func (m model) topBar() string {
	title := m.theme.HeaderText("Trendscout")
	count := format.CountLabel(m.view.Len())
	sorted := format.SortLabel(format.Label(string(m.view.SortKey())), m.view.SortDir() == catalog.Ascending)
	line := title + "  " + count + "  |  " + sorted
	if m.loading {
		line += "  " + m.theme.SubtleText("(loading…)")
	}
	return padToWidth(line, m.width)
}

func (m model) headerRow() string {
	var cells []string
	for _, col := range m.columns {
		title := col.title
		if col.key != "" && col.key == m.view.SortKey() {
			if m.view.SortDir() == catalog.Ascending {
				title += " ▲"
			} else {
				title += " ▼"
			}
		}
		cells = append(cells, padToWidth(m.theme.HeaderText(title), col.width))
	}
	return padToWidth("  "+strings.Join(cells, ""), m.width)
}

func (m model) emptyLine() string {
	if m.loading {
		return m.theme.SubtleText("  Loading products…")
	}
	return m.theme.SubtleText("  No products found")
}

func (m model) renderRow(p catalog.Product, selected bool) string {
	marker := "  "
	if selected {
		marker = m.theme.AccentText("> ")
	}

	name := p.Name + " " + m.theme.SubtleText("· "+p.DisplayCategory())

	glyphs := format.RatingGlyphs(p.Rating)
	rating := m.theme.RatingText(format.Stars(glyphs)) + " " + format.Fixed(p.Rating, 1)

	links := linkLabel(m.theme, "TikTok", p.TikTokLink()) + " " + linkLabel(m.theme, "Shop", p.ShopLink())

	cells := []string{
		name,
		format.Currency(p.Price),
		format.Percent(p.Commission),
		m.theme.ScoreText(format.Fixed(p.AgentScore, 2)),
		format.Fixed(p.Virality, 1),
		format.Count(p.Views7d),
		rating,
		links,
	}

	var b strings.Builder
	b.WriteString(marker)
	for i, cell := range cells {
		b.WriteString(padToWidth(cell, m.columns[i].width))
	}
	return padToWidth(b.String(), m.width)
}

func linkLabel(t Theme, label, href string) string {
	if href == "#" {
		return t.SubtleText(label)
	}
	return t.AccentText(label)
}

func (m model) bottomBar() string {
	left := "h: help  /: filter  r: refresh  t/s: open link"
	if m.status != "" {
		left += "  |  " + m.status
	}
	faint := lipgloss.NewStyle().Faint(true)
	right := faint.Render("refreshed: " + m.lastRefresh.Format("15:04:05"))
	return splitBar(faint.Render(left), right, m.width)
}

// splitBar lays left and right segments across one line. The right segment
// keeps priority: when the line runs short, the left side gives way first.
func splitBar(left, right string, w int) string {
	rightW := lipgloss.Width(right)
	if rightW >= w {
		return ansi.Truncate(right, w, "…")
	}
	return padToWidth(left, w-rightW-1) + " " + right
}

// helpOverlayLines returns the bottom overlay lines (without trailing newline).
func (m model) helpOverlayLines(width int) []string {
	title := lipgloss.NewStyle().Bold(true).Render("Help — press 'h' or Esc to close")
	keys := []string{
		"j/k or arrows  Move selection",
		"g / G          Top / Bottom",
		"/              Filter by name or category",
		"1-7            Sort by column (again: flip direction)",
		"a              Rank by agent score",
		"v              Rank by virality",
		"t / s          Open TikTok / Shop link",
		"r              Refresh now",
		"q              Quit",
	}
	lines := make([]string, 0, 2+len(keys))
	lines = append(lines, strings.Repeat("─", width))
	lines = append(lines, title)
	lines = append(lines, keys...)
	return lines
}

// padToWidth brings s to exactly w display cells, padding or truncating with
// an ellipsis as needed. ANSI sequences do not count toward the width.
func padToWidth(s string, w int) string {
	switch width := lipgloss.Width(s); {
	case width < w:
		return s + strings.Repeat(" ", w-width)
	case width > w:
		return ansi.Truncate(s, w, "…")
	default:
		return s
	}
}
