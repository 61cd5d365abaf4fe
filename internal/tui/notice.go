package tui

import (
	"tnotes/internal/tui/theme"
)

// noticeModal displays an error or status message that must be
// acknowledged with a keypress before returning to the list.
type noticeModal struct {
	message string
	isError bool
	width   int
}

func newNotice(message string, isError bool, width int) *noticeModal {
	return &noticeModal{message: message, isError: isError, width: width}
}

func (m *noticeModal) View() string {
	var content string
	if m.isError {
		content += theme.Error.Render("Error") + "\n\n"
	}
	content += m.message + "\n\n"
	content += theme.Muted.Render("Press any key to continue")
	return theme.ModalBox.Width(m.width).Render(content)
}
