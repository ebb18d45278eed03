package tui

import (
	"github.com/MikeBiancalana/navkit/internal/logger"
	"github.com/MikeBiancalana/navkit/internal/tui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Input Handlers
//
// The open drawer owns all input. While it is closed the host handles
// focus and quitting and forwards the rest to the focused widget.

type hostKeyMap struct {
	Menu   key.Binding
	Focus  key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func (k hostKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Focus, k.Toggle, k.Quit}
}

func (k hostKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var hostKeys = hostKeyMap{
	Menu:   components.DefaultDrawerKeyMap().Trigger,
	Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus panel")),
	Toggle: components.DefaultPanelKeyMap().Toggle,
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// handleKeyPress is the main keyboard input dispatcher
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.handleQuit()
	}

	if m.drawer.IsOpen() {
		return m.forwardToDrawer(msg)
	}

	switch {
	case key.Matches(msg, hostKeys.Quit):
		return m.handleQuit()

	case key.Matches(msg, hostKeys.Menu):
		m.statusBar.Clear()
		return m.forwardToDrawer(msg)

	case key.Matches(msg, hostKeys.Focus):
		m.panelFocused = !m.panelFocused
		m.panel.SetFocused(m.panelFocused)
		logger.Debug("tui: panel focus changed", "focused", m.panelFocused)
		return m, nil
	}

	var cmd tea.Cmd
	m.panel, cmd = m.panel.Update(msg)
	return m, cmd
}

// handleMouse routes clicks to the drawer or the standalone panel
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.drawer.IsOpen() || msg.X < components.TriggerWidth {
		return m.forwardToDrawer(msg)
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.X >= m.dims.PanelOffset {
		m.panel.HandleClick(msg.Y)
	}
	return m, nil
}

func (m *Model) forwardToDrawer(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.drawer, cmd = m.drawer.Update(msg)
	if m.quitting {
		return m.handleQuit()
	}
	m.refreshKeyHints()
	return m, cmd
}

// handleQuit stops the watcher and exits
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.watcher != nil {
		m.watcher.Stop()
	}
	logger.Debug("tui: quitting")
	return m, tea.Quit
}
