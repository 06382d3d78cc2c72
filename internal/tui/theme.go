package tui

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines customizable colors for rendering.
type Theme struct {
	AccentColor  string `json:"accentColor"`
	HeaderColor  string `json:"headerColor"`
	ScoreColor   string `json:"scoreColor"`
	RatingColor  string `json:"ratingColor"`
	SubtleColor  string `json:"subtleColor"`
	DividerColor string `json:"dividerColor"`
}

func darkTheme() Theme {
	return Theme{
		AccentColor:  "63",
		HeaderColor:  "99",
		ScoreColor:   "34",
		RatingColor:  "220",
		SubtleColor:  "245",
		DividerColor: "240",
	}
}

func lightTheme() Theme {
	return Theme{
		AccentColor:  "27",
		HeaderColor:  "55",
		ScoreColor:   "22",
		RatingColor:  "130",
		SubtleColor:  "244",
		DividerColor: "250",
	}
}

// getTheme returns the requested base theme.
func getTheme(name string) Theme {
	switch name {
	case "light":
		return lightTheme()
	default: // "dark" or any other value
		return darkTheme()
	}
}

// loadTheme tries theme.json in the config dir, merging over the named base.
func loadTheme(dir, base string) Theme {
	t := getTheme(base)
	if dir == "" {
		return t
	}
	b, err := os.ReadFile(filepath.Join(dir, "theme.json"))
	if err != nil {
		return t
	}
	var u Theme
	if err := json.Unmarshal(b, &u); err != nil {
		return t
	}
	// Merge, keeping defaults for empty fields
	if u.AccentColor != "" {
		t.AccentColor = u.AccentColor
	}
	if u.HeaderColor != "" {
		t.HeaderColor = u.HeaderColor
	}
	if u.ScoreColor != "" {
		t.ScoreColor = u.ScoreColor
	}
	if u.RatingColor != "" {
		t.RatingColor = u.RatingColor
	}
	if u.SubtleColor != "" {
		t.SubtleColor = u.SubtleColor
	}
	if u.DividerColor != "" {
		t.DividerColor = u.DividerColor
	}
	return t
}

func (t Theme) AccentText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.AccentColor)).Render(s)
}

func (t Theme) HeaderText(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.HeaderColor)).Render(s)
}

func (t Theme) ScoreText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.ScoreColor)).Render(s)
}

func (t Theme) RatingText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.RatingColor)).Render(s)
}

func (t Theme) SubtleText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.SubtleColor)).Render(s)
}

func (t Theme) DividerText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DividerColor)).Render(s)
}
