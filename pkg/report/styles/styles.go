// Package styles holds the lipgloss styles used to color report lines and
// CLI errors.
//
// Definitions live in styles.yaml, embedded at build time. Colors are
// adaptive: each has a light and a dark variant picked from the terminal
// background.
package styles

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/arthur-debert/csvmv/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

type styleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

type document struct {
	Colors map[string]colorDef `yaml:"colors"`
	Styles map[string]styleDef `yaml:"styles"`
}

// statusStyles names the style used for each row outcome
var statusStyles = map[types.RenameStatus]string{
	types.StatusRenamed:  "Renamed",
	types.StatusNotFound: "NotFound",
	types.StatusFailed:   "Failed",
}

var (
	mu       sync.RWMutex
	registry map[string]lipgloss.Style
)

func init() {
	if err := Load(defaultStyles); err != nil {
		panic(fmt.Sprintf("failed to load styles: %v", err))
	}
}

// Load replaces every style with the definitions in data (YAML). A style
// whose foreground names an undefined color is an error.
func Load(data []byte) error {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse styles: %w", err)
	}

	loaded := make(map[string]lipgloss.Style, len(doc.Styles))
	for name, def := range doc.Styles {
		style := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if def.Foreground != "" {
			color, ok := doc.Colors[def.Foreground]
			if !ok {
				return fmt.Errorf("style %s: unknown color %q", name, def.Foreground)
			}
			style = style.Foreground(lipgloss.AdaptiveColor{Light: color.Light, Dark: color.Dark})
		}
		loaded[name] = style
	}

	mu.Lock()
	registry = loaded
	mu.Unlock()
	return nil
}

// Has reports whether a style called name is loaded
func Has(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registry[name]
	return ok
}

// GetStyle returns the named style, or an empty style if there is none
func GetStyle(name string) lipgloss.Style {
	mu.RLock()
	defer mu.RUnlock()
	if style, ok := registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// ForStatus returns the style for a row outcome
func ForStatus(status types.RenameStatus) lipgloss.Style {
	return GetStyle(statusStyles[status])
}
