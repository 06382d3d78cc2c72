package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Prefs represents persisted UI preferences.
type Prefs struct {
	SortKey   string `json:"sortKey,omitempty"`
	Ascending bool   `json:"ascending"`
	SortSet   bool   `json:"-"`
	Theme     string `json:"theme,omitempty"`
}

const fileName = "prefs.json"

// DefaultDir resolves the trendscout config directory, e.g.
// ~/.config/trendscout on Linux.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "trendscout")
}

// Load reads preferences from dir. Missing or unreadable prefs come back
// zero-valued; a broken prefs file never stops the app.
func Load(dir string) Prefs {
	var p Prefs
	if dir == "" {
		return p
	}
	b, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		return p
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return Prefs{}
	}
	p.SortSet = p.SortKey != ""
	return p
}

// Save writes preferences to dir, creating it as needed.
func Save(dir string, p Prefs) error {
	if dir == "" {
		return fmt.Errorf("no config dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("prefs dir: %w", err)
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("prefs encode: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), b, 0o644); err != nil {
		return fmt.Errorf("prefs write: %w", err)
	}
	return nil
}
