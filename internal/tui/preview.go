package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"tnotes/internal/tui/theme"
)

// previewModel is the builtin full-screen markdown preview. Scroll keys
// move the viewport; any other key acknowledges and returns to the list.
type previewModel struct {
	filename string
	vp       viewport.Model
}

func newPreview(filename, body string, width, height int) *previewModel {
	vp := viewport.New(width, max(1, height-3))
	vp.SetContent(renderMarkdown(body, width))
	return &previewModel{filename: filename, vp: vp}
}

// handleKey scrolls on navigation keys and reports whether the preview
// should close.
func (m *previewModel) handleKey(key string) (done bool) {
	switch key {
	case "up", "k":
		m.vp.ScrollUp(1)
	case "down", "j":
		m.vp.ScrollDown(1)
	case "pgup", "ctrl+u":
		m.vp.ScrollUp(m.vp.Height / 2)
	case "pgdown", "ctrl+d":
		m.vp.ScrollDown(m.vp.Height / 2)
	case "g", "home":
		m.vp.GotoTop()
	case "G", "end":
		m.vp.GotoBottom()
	default:
		return true
	}
	return false
}

func (m *previewModel) SetSize(width, height int) {
	m.vp.Width = width
	m.vp.Height = max(1, height-3)
}

func (m *previewModel) View() string {
	title := theme.Title.Render(" " + m.filename + " ")
	footer := theme.Legend.Render("j/k scroll  ·  any other key to return")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.vp.View(), footer)
}

// renderMarkdown colorizes a note body for the terminal. On render
// failure the raw text is shown instead; preview must never take the
// session down.
func renderMarkdown(body string, width int) string {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(width-2, 100)),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return body
	}
	out, err := r.Render(body)
	if err != nil {
		return body
	}
	return out
}
