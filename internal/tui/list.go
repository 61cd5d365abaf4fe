package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tnotes/internal/notes"
	"tnotes/internal/tui/theme"
)

const (
	headerText = " Terminal Notes "
	legendText = "[enter] Open  [n] New  [d] Delete  [p] Preview  [/] Filter  [?] Help  [q] Quit"
	emptyText  = "No notes found. Press 'n' to create a new note."
)

// renderList draws the full list screen: fixed header, separator, command
// legend, then one line per visible note with exactly the cursor row in
// the highlight colors. Pure: no store access, no mutation.
func renderList(records []notes.NoteRecord, cursor, width, height int, th theme.ListTheme, filter string, status string) string {
	var b strings.Builder

	pad := max(0, (width-len(headerText))/2)
	b.WriteString(strings.Repeat(" ", pad) + theme.Header.Render(headerText) + "\n")
	b.WriteString(theme.Separator.Render(strings.Repeat("─", max(1, width))) + "\n")
	b.WriteString("  " + theme.Legend.Render(legendText) + "\n")
	b.WriteString("\n")

	if filter != "" {
		b.WriteString("  " + theme.Muted.Render("filter: ") + filter + "\n")
	}

	if len(records) == 0 {
		b.WriteString("    " + theme.Muted.Render(emptyText) + "\n")
	} else {
		visible := height - 7
		if visible < 1 {
			visible = len(records)
		}
		start := scrollOffset(cursor, len(records), visible)
		for i := start; i < len(records) && i < start+visible; i++ {
			line := fmt.Sprintf("%s (%s)", records[i].Title, records[i].Created)
			line = truncate(line, max(1, width-8))
			if i == cursor {
				b.WriteString("    " + th.Highlight.Render(line) + "\n")
			} else {
				b.WriteString("    " + th.Normal.Render(line) + "\n")
			}
		}
	}

	if status != "" {
		b.WriteString("\n  " + theme.Muted.Render(status) + "\n")
	}

	return b.String()
}

// scrollOffset keeps the cursor row inside the visible window.
func scrollOffset(cursor, count, visible int) int {
	if count <= visible {
		return 0
	}
	start := cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start > count-visible {
		start = count - visible
	}
	return start
}

// truncate clamps a line to the given display width.
func truncate(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	r := []rune(s)
	if maxWidth <= 1 {
		return string(r[:maxWidth])
	}
	for len(r) > 0 && lipgloss.Width(string(r)) > maxWidth-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
