package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tnotes/internal/tui/theme"
)

func (m AppModel) renderHelpOverlay() string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	descStyle := lipgloss.NewStyle().Foreground(theme.Text)

	line := func(key, desc string) string {
		return "  " + keyStyle.Width(12).Render(key) + descStyle.Render(desc)
	}

	var content string
	content += theme.Title.Render("Terminal Notes - Keyboard Shortcuts") + "\n\n"

	content += theme.Title.Render("List") + "\n"
	content += line("↑/↓, k/j", "Move cursor") + "\n"
	content += line("enter", "Open note in editor") + "\n"
	content += line("n", "New note (title, then description)") + "\n"
	content += line("d", "Delete selected note") + "\n"
	content += line("p", "Preview selected note") + "\n"
	content += line("/", "Filter by title") + "\n"
	content += line("esc", "Clear filter") + "\n"
	content += line("q", "Quit") + "\n"
	content += line("ctrl+c", "Force quit") + "\n\n"

	content += theme.Title.Render("Preview") + "\n"
	content += line("j/k, pgup/dn", "Scroll") + "\n"
	content += line("any other", "Back to list") + "\n\n"

	content += theme.Muted.Render("Press any key to close")

	box := theme.ModalBox.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
