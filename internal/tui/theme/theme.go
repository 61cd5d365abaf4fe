// Package theme maps the config's curses-style color names onto lipgloss
// styles and holds the fixed chrome styles of the UI.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"tnotes/internal/config"
)

// ---------------------------------------------------------------------------
// Fixed palette for UI chrome (not configurable)
// ---------------------------------------------------------------------------

var (
	Text      = lipgloss.Color("7")
	TextMuted = lipgloss.Color("8")

	Primary = lipgloss.Color("4") // blue
	Danger  = lipgloss.Color("1") // red
	Success = lipgloss.Color("2") // green

	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	Error = lipgloss.NewStyle().Bold(true).Foreground(Danger)

	Header = lipgloss.NewStyle().Bold(true)

	Separator = lipgloss.NewStyle().Foreground(TextMuted)

	Legend = lipgloss.NewStyle().Foreground(TextMuted)

	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	StatusBar = lipgloss.NewStyle().
			Foreground(TextMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(TextMuted)
)

// ansiByName maps the eight basic color names to their ANSI codes.
var ansiByName = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
}

// Color resolves a configured color name, falling back when unknown.
func Color(name string, fallback lipgloss.Color) lipgloss.Color {
	if c, ok := ansiByName[name]; ok {
		return c
	}
	return fallback
}

// ListTheme holds the resolved styles for list entries.
type ListTheme struct {
	Highlight lipgloss.Style
	Normal    lipgloss.Style
}

// FromConfig builds the list styles from the configured color roles.
// Unknown names fall back to highlight black-on-cyan, normal white.
func FromConfig(t config.Theme) ListTheme {
	return ListTheme{
		Highlight: lipgloss.NewStyle().
			Foreground(Color(t.HighlightFg, lipgloss.Color("0"))).
			Background(Color(t.HighlightBg, lipgloss.Color("6"))),
		Normal: lipgloss.NewStyle().
			Foreground(Color(t.NormalFg, lipgloss.Color("7"))).
			Background(Color(t.NormalBg, lipgloss.Color("0"))),
	}
}
