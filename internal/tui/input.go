package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tnotes/internal/tui/theme"
)

var (
	inputPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	inputErrorStyle  = theme.Error
	inputBoxStyle    = theme.ModalBox
)

// promptModel wraps bubbles/textinput with validation. An invalid value
// shows an inline error and keeps the prompt open instead of abandoning
// the flow.
type promptModel struct {
	input     textinput.Model
	prompt    string
	validator func(string) error
	errText   string
	width     int
}

// promptResultMsg is sent when input is confirmed or cancelled.
type promptResultMsg struct {
	value     string
	cancelled bool
}

func newPrompt(prompt, placeholder string, validator func(string) error) *promptModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 256
	return &promptModel{
		input:     ti,
		prompt:    prompt,
		validator: validator,
	}
}

func (m *promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *promptModel) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if m.validator != nil {
				if err := m.validator(m.input.Value()); err != nil {
					m.errText = err.Error()
					m.input.SetValue("")
					return nil
				}
			}
			value := m.input.Value()
			return func() tea.Msg {
				return promptResultMsg{value: value}
			}
		case "esc":
			return func() tea.Msg {
				return promptResultMsg{cancelled: true}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Only a keystroke clears the inline error; the cursor blink stream
	// must not wipe it before the user has seen it.
	if _, ok := msg.(tea.KeyMsg); ok {
		m.errText = ""
	}
	return cmd
}

func (m *promptModel) View() string {
	content := inputPromptStyle.Render(m.prompt+": ") + m.input.View() + "\n"
	if m.errText != "" {
		content += inputErrorStyle.Render(m.errText) + "\n"
	}
	content += theme.Muted.Render("[enter] confirm  [esc] cancel")
	return inputBoxStyle.Width(m.width).Render(content)
}

func (m *promptModel) SetWidth(w int) {
	// Border and padding take four columns.
	m.width = w - 4
	m.input.Width = m.width - lipgloss.Width(m.prompt+": ")
}

// nonEmpty builds a validator that rejects values that are empty after
// trimming whitespace.
func nonEmpty(msg string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(msg)
		}
		return nil
	}
}
