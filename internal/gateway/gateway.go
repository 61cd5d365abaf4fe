// Package gateway shells out to the external editor and pager. Commands
// are wrapped in tea.ExecProcess so bubbletea releases and restores the
// terminal around the sub-process as a guaranteed transition, and the
// session stays suspended until the process exits.
package gateway

import (
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tnotes/internal/config"
	"tnotes/internal/logs"
	"tnotes/internal/tui/messages"
)

// OpenEditor hands terminal control to the configured editor with the
// note's full path as the last argument. The exit status is reported in
// the resulting message but never treated as fatal.
func OpenEditor(cfg *config.Config, filename, path string) tea.Cmd {
	name, args := splitCommand(cfg.Editor, "nano")
	c := exec.Command(name, append(args, path)...)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		if err != nil {
			logs.Logger.Printf("editor %q exited with error: %v", cfg.Editor, err)
		}
		return messages.EditorFinishedMsg{Filename: filename, Err: err}
	})
}

// OpenPager displays a note through the configured external pager. The
// command runs through the shell with a read gate appended, so the
// session resumes only after the user presses Enter. Without the gate a
// non-blocking command like cat would return before anything is read.
func OpenPager(cfg *config.Config, filename, path string) tea.Cmd {
	c := exec.Command("sh", "-c", pagerScript(cfg.PreviewCmd), "sh", path)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		if err != nil {
			logs.Logger.Printf("pager %q exited with error: %v", cfg.PreviewCmd, err)
		}
		return messages.PagerFinishedMsg{Filename: filename, Err: err}
	})
}

// pagerScript builds the shell line run for a preview. The note path
// arrives as $1 and a trailing read keeps the screen up until Enter.
func pagerScript(cmdLine string) string {
	cmdLine = strings.TrimSpace(cmdLine)
	if cmdLine == "" {
		cmdLine = "cat"
	}
	return cmdLine + ` "$1"; printf '\nPress Enter to return... '; read -r _`
}

// splitCommand splits a configured command line into name and arguments,
// so entries like "code -w" work.
func splitCommand(cmdLine, fallback string) (string, []string) {
	fields := strings.Fields(cmdLine)
	if len(fields) == 0 {
		return fallback, nil
	}
	return fields[0], fields[1:]
}
