package tui

import (
	"github.com/MikeBiancalana/navkit/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

type menuReloadedMsg struct {
	path     string
	document *menu.Document
}

type menuErrorMsg struct {
	path string
	err  error
}

type watcherStoppedMsg struct{}

// waitForMenuChange blocks on the watcher channel and turns the next event
// into a message. The watcher is captured before the closure is returned.
func (m *Model) waitForMenuChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	capturedWatcher := m.watcher
	return func() tea.Msg {
		event, ok := <-capturedWatcher.Changes()
		if !ok {
			return watcherStoppedMsg{}
		}
		if event.Err != nil {
			return menuErrorMsg{path: event.FilePath, err: event.Err}
		}
		return menuReloadedMsg{path: event.FilePath, document: event.Document}
	}
}
