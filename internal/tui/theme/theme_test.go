package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"tnotes/internal/config"
)

func TestColorMapping(t *testing.T) {
	if got := Color("cyan", "9"); got != lipgloss.Color("6") {
		t.Errorf("expected cyan -> 6, got %q", got)
	}
	if got := Color("not-a-color", "9"); got != lipgloss.Color("9") {
		t.Errorf("expected fallback for unknown name, got %q", got)
	}
}

func TestFromConfigFallsBack(t *testing.T) {
	th := FromConfig(config.Theme{
		HighlightFg: "bogus",
		HighlightBg: "magenta",
	})

	if th.Highlight.GetForeground() != lipgloss.Color("0") {
		t.Errorf("expected highlight fg fallback, got %v", th.Highlight.GetForeground())
	}
	if th.Highlight.GetBackground() != lipgloss.Color("5") {
		t.Errorf("expected magenta highlight bg, got %v", th.Highlight.GetBackground())
	}
}
