// Package tui drives the interactive session: a state machine over the
// cached note list, dispatching to the store and the process gateway and
// re-rendering after every transition.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"tnotes/internal/config"
	"tnotes/internal/gateway"
	"tnotes/internal/logs"
	"tnotes/internal/notes"
	"tnotes/internal/tui/messages"
	"tnotes/internal/tui/theme"
)

type mode int

const (
	modeList mode = iota
	modeCreateTitle
	modeCreateDescription
	modePreview
	modeNotice
)

// AppModel is the root session model. It holds the current mode, a cached
// snapshot of the note list, and the selection cursor. The snapshot is
// never trusted across an editor or pager suspension; it is reloaded from
// the store as soon as control returns.
type AppModel struct {
	cfg       *config.Config
	store     *notes.Store
	listTheme theme.ListTheme

	mode    mode
	records []notes.NoteRecord
	cursor  int

	filterInput textinput.Model
	filterFocus bool
	filterQuery string

	titlePrompt  *promptModel
	descPrompt   *promptModel
	pendingTitle string
	openedNew    bool

	preview *previewModel
	notice  *noticeModal

	showHelp bool
	fatalErr error

	width  int
	height int
	ready  bool
}

// NewAppModel creates the root session model over an already-initialized
// store. initial is the first list snapshot, loaded by the caller so that
// storage failures abort before the UI starts.
func NewAppModel(cfg *config.Config, store *notes.Store, initial []notes.NoteRecord) AppModel {
	fi := textinput.New()
	fi.Prompt = "/"
	fi.Placeholder = "filter titles"
	fi.CharLimit = 64

	return AppModel{
		cfg:         cfg,
		store:       store,
		listTheme:   theme.FromConfig(cfg.Theme),
		records:     initial,
		filterInput: fi,
	}
}

// FatalErr reports the storage error that forced the session to quit, if
// any.
func (m AppModel) FatalErr() error {
	return m.fatalErr
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		if m.titlePrompt != nil {
			m.titlePrompt.SetWidth(msg.Width / 2)
		}
		if m.descPrompt != nil {
			m.descPrompt.SetWidth(msg.Width / 2)
		}
		if m.preview != nil {
			m.preview.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case messages.EditorFinishedMsg:
		// The file may have been rewritten under us; fold a changed
		// title back into the index, then reload the whole snapshot.
		if err := m.store.RefreshMetadata(msg.Filename); err != nil {
			logs.Logger.Printf("metadata refresh for %s failed: %v", msg.Filename, err)
		}
		m.reload()
		if m.fatalErr != nil {
			return m, tea.Quit
		}
		if m.openedNew {
			m.cursor = 0
			m.openedNew = false
		}
		m.clampCursor()
		m.mode = modeList
		return m, nil

	case messages.PagerFinishedMsg:
		m.reload()
		if m.fatalErr != nil {
			return m, tea.Quit
		}
		m.clampCursor()
		m.mode = modeList
		return m, nil

	case promptResultMsg:
		return m.handlePromptResult(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateChild(msg)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.mode {
	case modeNotice:
		m.notice = nil
		m.mode = modeList
		return m, nil

	case modePreview:
		if m.preview.handleKey(msg.String()) {
			m.preview = nil
			m.mode = modeList
		}
		return m, nil

	case modeCreateTitle, modeCreateDescription:
		return m.updateChild(msg)

	case modeList:
		return m.handleListKey(msg)
	}

	return m, nil
}

func (m AppModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterFocus {
		switch msg.String() {
		case "esc":
			m.filterFocus = false
			m.filterQuery = ""
			m.filterInput.SetValue("")
			m.filterInput.Blur()
			m.clampCursor()
			return m, nil
		case "enter":
			m.filterFocus = false
			m.filterInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			m.filterQuery = m.filterInput.Value()
			m.cursor = 0
			m.clampCursor()
			return m, cmd
		}
	}

	visible := m.visibleRecords()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if len(visible) > 0 && m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if len(visible) > 0 && m.cursor < len(visible)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if rec, ok := m.selected(); ok {
			return m, gateway.OpenEditor(m.cfg, rec.Filename, m.store.NotePath(rec.Filename))
		}
		return m, nil

	case "n":
		m.titlePrompt = newPrompt("Title", "note title", nonEmpty("Title cannot be empty"))
		m.titlePrompt.SetWidth(m.width / 2)
		m.mode = modeCreateTitle
		return m, m.titlePrompt.Init()

	case "d":
		if rec, ok := m.selected(); ok {
			if err := m.store.DeleteNote(rec.Filename); err != nil {
				return m.fail(err)
			}
			m.reload()
			if m.fatalErr != nil {
				return m, tea.Quit
			}
			m.clampCursor()
		}
		return m, nil

	case "p":
		if rec, ok := m.selected(); ok {
			return m.openPreview(rec)
		}
		return m, nil

	case "/":
		m.filterFocus = true
		return m, m.filterInput.Focus()

	case "esc":
		if m.filterQuery != "" {
			m.filterQuery = ""
			m.filterInput.SetValue("")
			m.clampCursor()
		}
		return m, nil

	case "?":
		m.showHelp = true
		return m, nil
	}

	return m, nil
}

func (m AppModel) handlePromptResult(msg promptResultMsg) (tea.Model, tea.Cmd) {
	if msg.cancelled {
		m.titlePrompt = nil
		m.descPrompt = nil
		m.mode = modeList
		return m, nil
	}

	switch m.mode {
	case modeCreateTitle:
		m.pendingTitle = strings.TrimSpace(msg.value)
		m.titlePrompt = nil
		m.descPrompt = newPrompt("Description", "one-line description", nonEmpty("Description cannot be empty"))
		m.descPrompt.SetWidth(m.width / 2)
		m.mode = modeCreateDescription
		return m, m.descPrompt.Init()

	case modeCreateDescription:
		description := strings.TrimSpace(msg.value)
		m.descPrompt = nil
		filename, err := m.store.CreateNote(m.pendingTitle, description)
		m.pendingTitle = ""
		if err != nil {
			return m.fail(err)
		}
		// Drop straight into the editor on the fresh note; the list is
		// reloaded when it returns, with the cursor on the newest entry.
		m.openedNew = true
		m.mode = modeList
		return m, gateway.OpenEditor(m.cfg, filename, m.store.NotePath(filename))
	}

	return m, nil
}

func (m AppModel) openPreview(rec notes.NoteRecord) (tea.Model, tea.Cmd) {
	if m.cfg.PreviewCmd != "" && m.cfg.PreviewCmd != config.PreviewBuiltin {
		return m, gateway.OpenPager(m.cfg, rec.Filename, m.store.NotePath(rec.Filename))
	}

	body, err := m.store.ReadNoteBody(rec.Filename)
	if err != nil {
		return m.fail(err)
	}
	m.preview = newPreview(rec.Filename, body, m.width, m.height)
	m.mode = modePreview
	return m, nil
}

// fail routes an operation error: storage loss ends the session, anything
// else is surfaced in the notice modal and acknowledged with a keypress.
func (m AppModel) fail(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, notes.ErrStorageUnavailable) {
		m.fatalErr = err
		return m, tea.Quit
	}
	logs.Logger.Printf("operation failed: %v", err)
	m.notice = newNotice(err.Error(), true, min(m.width-8, 60))
	m.mode = modeNotice
	return m, nil
}

func (m AppModel) updateChild(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeCreateTitle:
		if m.titlePrompt != nil {
			return m, m.titlePrompt.Update(msg)
		}
	case modeCreateDescription:
		if m.descPrompt != nil {
			return m, m.descPrompt.Update(msg)
		}
	case modeList:
		if m.filterFocus {
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// reload replaces the cached snapshot from the store. A storage failure
// here is fatal; the session cannot keep rendering a list it can no
// longer trust.
func (m *AppModel) reload() {
	records, err := m.store.ListNotes()
	if err != nil {
		logs.Logger.Printf("list reload failed: %v", err)
		m.fatalErr = err
		return
	}
	m.records = records
}

// visibleRecords applies the fuzzy title filter to the cached snapshot.
func (m AppModel) visibleRecords() []notes.NoteRecord {
	if m.filterQuery == "" {
		return m.records
	}
	titles := make([]string, len(m.records))
	for i, r := range m.records {
		titles[i] = r.Title
	}
	matches := fuzzy.Find(m.filterQuery, titles)
	visible := make([]notes.NoteRecord, 0, len(matches))
	for _, match := range matches {
		visible = append(visible, m.records[match.Index])
	}
	return visible
}

func (m AppModel) selected() (notes.NoteRecord, bool) {
	visible := m.visibleRecords()
	if len(visible) == 0 || m.cursor < 0 || m.cursor >= len(visible) {
		return notes.NoteRecord{}, false
	}
	return visible[m.cursor], true
}

func (m *AppModel) clampCursor() {
	count := len(m.visibleRecords())
	if count == 0 {
		m.cursor = 0
		return
	}
	if m.cursor > count-1 {
		m.cursor = count - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	switch m.mode {
	case modeCreateTitle:
		if m.titlePrompt != nil {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.titlePrompt.View())
		}
	case modeCreateDescription:
		if m.descPrompt != nil {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.descPrompt.View())
		}
	case modePreview:
		if m.preview != nil {
			return m.preview.View()
		}
	case modeNotice:
		if m.notice != nil {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.notice.View())
		}
	}

	visible := m.visibleRecords()

	var filterLine string
	if m.filterFocus {
		filterLine = m.filterInput.View()
	} else if m.filterQuery != "" {
		filterLine = m.filterQuery + theme.Muted.Render("  (esc clears)")
	}

	status := fmt.Sprintf("%d notes", len(m.records))
	if m.filterQuery != "" {
		status = fmt.Sprintf("%d/%d notes", len(visible), len(m.records))
	}

	return renderList(visible, m.cursor, m.width, m.height, m.listTheme, filterLine, status)
}
