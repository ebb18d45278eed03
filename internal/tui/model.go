package tui

import (
	"fmt"

	"github.com/MikeBiancalana/navkit/internal/logger"
	"github.com/MikeBiancalana/navkit/internal/menu"
	"github.com/MikeBiancalana/navkit/internal/sync"
	"github.com/MikeBiancalana/navkit/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Minimum terminal dimensions
const (
	MinTerminalWidth  = 40
	MinTerminalHeight = 12
)

// Options configures the host model
type Options struct {
	Title   string       // drawer header; empty uses the drawer default
	Entries []menu.Entry // nil uses the built-in sample menu
	Watcher *sync.Watcher
}

// Model hosts a NavigationDrawer next to a standalone CollapsiblePanel
type Model struct {
	drawer    *components.NavigationDrawer
	panel     *components.CollapsiblePanel
	statusBar *components.StatusBar
	watcher   *sync.Watcher
	actions   menu.Registry
	width     int
	height    int
	dims      PaneDimensions

	panelFocused bool
	quitting     bool
	lastError    error

	// Terminal size validation
	terminalTooSmall bool
}

// NewModel creates the host model. Action names on entries are resolved
// against the built-in registry.
func NewModel(opts Options) *Model {
	m := &Model{
		panel:     components.NewCollapsiblePanel(),
		statusBar: components.NewStatusBar(),
		watcher:   opts.Watcher,
		width:     MinTerminalWidth,
		height:    MinTerminalHeight,
		dims:      CalculatePaneDimensions(MinTerminalWidth, MinTerminalHeight),
	}
	m.actions = m.builtinActions()

	entries := opts.Entries
	if entries == nil {
		entries = menu.DefaultEntries()
	}
	m.logIssues(entries)

	var drawerOpts []components.DrawerOption
	if opts.Title != "" {
		drawerOpts = append(drawerOpts, components.WithDrawerTitle(opts.Title))
	}
	m.drawer = components.NewNavigationDrawer(menu.Resolve(entries, m.actions), drawerOpts...)
	m.refreshKeyHints()

	return m
}

// builtinActions are the callbacks menu files can name
func (m *Model) builtinActions() menu.Registry {
	return menu.Registry{
		"about": func() {
			m.statusBar.SetMessage("navkit: drawer and panel widgets for the terminal")
		},
		"help": func() {
			m.statusBar.SetMessage("m: menu  tab: focus panel  enter: toggle  q: quit")
		},
		"quit": func() {
			m.quitting = true
		},
	}
}

// ActionNames lists the action names a menu file may bind entries to
func ActionNames() []string {
	return (&Model{}).builtinActions().Names()
}

func (m *Model) logIssues(entries []menu.Entry) {
	for _, issue := range menu.Validate(entries) {
		logger.Warn("tui: menu issue", "id", issue.ID, "issue", issue.Message)
	}
}

// Drawer returns the navigation drawer
func (m *Model) Drawer() *components.NavigationDrawer {
	return m.drawer
}

// Panel returns the standalone panel
func (m *Model) Panel() *components.CollapsiblePanel {
	return m.panel
}

// Init starts the menu watcher, if one was supplied
func (m *Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	if err := m.watcher.Start(); err != nil {
		logger.Warn("tui: menu watcher not started", "error", err)
		m.lastError = err
		m.statusBar.SetError(err)
		return nil
	}
	return m.waitForMenuChange()
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case menuReloadedMsg:
		return m.handleMenuReloaded(msg)

	case menuErrorMsg:
		return m.handleMenuError(msg)

	case watcherStoppedMsg:
		return m, nil
	}

	return m, nil
}

// handleWindowSize resizes every component
func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.terminalTooSmall = msg.Width < MinTerminalWidth || msg.Height < MinTerminalHeight

	m.dims = CalculatePaneDimensions(msg.Width, msg.Height)
	m.drawer.SetSize(m.dims.BodyWidth, m.dims.BodyHeight)
	m.panel.SetWidth(m.dims.PanelWidth)
	m.statusBar.SetWidth(msg.Width)
	return m, nil
}

// handleMenuReloaded swaps the drawer menu after the menu file changed
func (m *Model) handleMenuReloaded(msg menuReloadedMsg) (tea.Model, tea.Cmd) {
	logger.Info("tui: menu reloaded", "path", msg.path, "entries", len(msg.document.Items))
	m.logIssues(msg.document.Items)
	m.drawer.SetEntries(menu.Resolve(msg.document.Items, m.actions))
	if msg.document.Title != "" {
		m.drawer.SetTitle(msg.document.Title)
	}
	m.lastError = nil
	m.statusBar.SetMessage(fmt.Sprintf("menu reloaded (%d entries)", len(msg.document.Items)))
	return m, m.waitForMenuChange()
}

// handleMenuError keeps the previous menu and surfaces the error
func (m *Model) handleMenuError(msg menuErrorMsg) (tea.Model, tea.Cmd) {
	logger.Warn("tui: keeping previous menu", "path", msg.path, "error", msg.err)
	m.lastError = msg.err
	m.statusBar.SetError(msg.err)
	return m, m.waitForMenuChange()
}

// refreshKeyHints points the status bar at the bindings that currently apply
func (m *Model) refreshKeyHints() {
	if m.drawer.IsOpen() {
		m.statusBar.SetKeyMap(m.drawer.KeyMap())
		return
	}
	m.statusBar.SetKeyMap(hostKeys)
}

// View renders the drawer (or its trigger), the standalone panel, and the status bar
func (m *Model) View() string {
	if m.terminalTooSmall {
		return m.terminalTooSmallView()
	}

	var body string
	if m.drawer.IsOpen() {
		body = m.drawer.View()
	} else {
		body = lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.drawer.View(),
			lipgloss.NewStyle().PaddingLeft(m.dims.PanelOffset-components.TriggerWidth).Render(m.panel.View()),
		)
	}

	body = lipgloss.NewStyle().Height(m.dims.BodyHeight).MaxHeight(m.dims.BodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar.View())
}

// terminalTooSmallView renders the message when terminal is too small
func (m *Model) terminalTooSmallView() string {
	title := "Terminal Too Small"
	currentSize := fmt.Sprintf("Current: %dx%d", m.width, m.height)
	requiredSize := fmt.Sprintf("Required: %dx%d or larger", MinTerminalWidth, MinTerminalHeight)

	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Align(lipgloss.Center, lipgloss.Center)

	content := fmt.Sprintf("%s\n%s\n%s\nResize your terminal.", title, currentSize, requiredSize)
	return style.Render(content)
}
