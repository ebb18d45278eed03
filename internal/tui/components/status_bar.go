package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))
)

// StatusBar represents the status bar component
type StatusBar struct {
	width   int
	help    help.Model
	keys    help.KeyMap
	message string
	err     error
}

// NewStatusBar creates a new status bar
func NewStatusBar() *StatusBar {
	return &StatusBar{help: help.New()}
}

// SetWidth sets the width of the status bar
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
	sb.help.Width = width - 2
}

// SetKeyMap sets the bindings shown as hints
func (sb *StatusBar) SetKeyMap(keys help.KeyMap) {
	sb.keys = keys
}

// SetMessage shows a transient message in place of the hints
func (sb *StatusBar) SetMessage(msg string) {
	sb.message = msg
	sb.err = nil
}

// SetError shows an error in place of the hints
func (sb *StatusBar) SetError(err error) {
	sb.err = err
	sb.message = ""
}

// Clear drops any message or error
func (sb *StatusBar) Clear() {
	sb.message = ""
	sb.err = nil
}

// Message returns the current message, if any
func (sb *StatusBar) Message() string {
	return sb.message
}

// View renders the status bar
func (sb *StatusBar) View() string {
	var content string
	switch {
	case sb.err != nil:
		content = statusErrorStyle.Render("error: " + sb.err.Error())
	case sb.message != "":
		content = statusMessageStyle.Render(sb.message)
	case sb.keys != nil:
		content = sb.help.View(sb.keys)
	}

	style := statusBarStyle
	if sb.width > 0 {
		style = style.Width(sb.width).MaxWidth(sb.width)
	}
	return style.Render(content)
}
