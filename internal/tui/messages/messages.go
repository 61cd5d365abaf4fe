// Package messages holds the tea.Msg types exchanged between the session
// model and the external process gateway.
package messages

// EditorFinishedMsg is delivered when the external editor exits, success
// or failure. The session re-reads the store either way.
type EditorFinishedMsg struct {
	Filename string
	Err      error
}

// PagerFinishedMsg is delivered when the external pager exits.
type PagerFinishedMsg struct {
	Filename string
	Err      error
}
