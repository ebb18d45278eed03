package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MikeBiancalana/navkit/internal/menu"
	"github.com/MikeBiancalana/navkit/internal/sync"
	"github.com/MikeBiancalana/navkit/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func newSizedModel(t *testing.T, opts Options) *Model {
	t.Helper()
	m := NewModel(opts)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestMinimumTerminalSizeConstants(t *testing.T) {
	if MinTerminalWidth != 40 {
		t.Errorf("Expected MinTerminalWidth to be 40, got %d", MinTerminalWidth)
	}
	if MinTerminalHeight != 12 {
		t.Errorf("Expected MinTerminalHeight to be 12, got %d", MinTerminalHeight)
	}
}

func TestTerminalTooSmallView(t *testing.T) {
	m := NewModel(Options{})
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})

	view := m.View()
	for _, expected := range []string{"Terminal Too Small", "Current: 30x10", "Required: 40x12 or larger"} {
		if !strings.Contains(view, expected) {
			t.Errorf("Expected view to contain '%s', but got view: %s", expected, view)
		}
	}
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel(Options{})

	assert.Nil(t, m.Init(), "no watcher means no startup command")
	assert.False(t, m.Drawer().IsOpen())
	assert.Equal(t, "Menu", m.Drawer().Title())
	assert.Len(t, m.Drawer().Entries(), 3)
	assert.Equal(t, "Options", m.Panel().Title())
	assert.False(t, m.Panel().IsOpen())
}

func TestNewModel_ResolvesActions(t *testing.T) {
	m := NewModel(Options{Title: "Go to"})
	assert.Equal(t, "Go to", m.Drawer().Title())

	about := menu.Find(m.Drawer().Entries(), "3")
	require.NotNil(t, about)
	require.NotNil(t, about.Action, "the about entry should be bound to the built-in action")
}

func TestModel_View(t *testing.T) {
	m := newSizedModel(t, Options{})

	closed := m.View()
	assert.Contains(t, closed, "Options")
	assert.Contains(t, closed, "menu", "status bar shows host hints")
	assert.NotContains(t, closed, "Dashboard")

	m.Update(runes("m"))
	open := m.View()
	assert.Contains(t, open, "Dashboard")
	assert.Contains(t, open, "Custom item A")
	assert.Contains(t, open, "select", "status bar shows drawer hints")
}

func TestModel_DrawerKeyboardFlow(t *testing.T) {
	m := newSizedModel(t, Options{})

	m.Update(runes("m"))
	require.True(t, m.Drawer().IsOpen())

	// panel row, then Dashboard
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Drawer().IsExpanded("1"))
	assert.True(t, m.Drawer().IsOpen())

	// q closes the drawer instead of quitting while it is open
	_, cmd := m.Update(runes("q"))
	assert.Nil(t, cmd)
	assert.False(t, m.Drawer().IsOpen())
	assert.True(t, m.Drawer().IsExpanded("1"))
}

func TestModel_AboutActionSetsStatus(t *testing.T) {
	m := newSizedModel(t, Options{})

	m.Update(runes("m"))
	m.Drawer().SelectEntry("3")

	assert.False(t, m.Drawer().IsOpen())
	assert.Contains(t, m.statusBar.Message(), "navkit")
}

func TestModel_QuitAction(t *testing.T) {
	m := newSizedModel(t, Options{Entries: []menu.Entry{{ID: "q", Label: "Quit", ActionName: "quit"}}})

	m.Update(runes("m"))
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_QuitKey(t *testing.T) {
	m := NewModel(Options{})

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m = NewModel(Options{})
	m.Drawer().Open()
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_PanelFocusAndToggle(t *testing.T) {
	m := newSizedModel(t, Options{})

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Panel().IsOpen(), "unfocused panel ignores enter")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.Panel().IsFocused())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Panel().IsOpen())
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Panel().IsOpen())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, m.Panel().IsFocused())
}

func TestModel_MouseRouting(t *testing.T) {
	m := newSizedModel(t, Options{})

	// standalone panel header sits right of the trigger bar
	m.Update(press(components.TriggerWidth+3, 0))
	assert.True(t, m.Panel().IsOpen())
	assert.False(t, m.Drawer().IsOpen())

	m.Update(press(1, 3))
	assert.True(t, m.Drawer().IsOpen())

	m.Update(press(95, 3))
	assert.False(t, m.Drawer().IsOpen(), "backdrop click closes the drawer")
	assert.True(t, m.Panel().IsOpen(), "drawer clicks never reach the standalone panel")
}

func TestModel_MenuReloaded(t *testing.T) {
	m := newSizedModel(t, Options{})
	m.Drawer().ToggleExpand("1")

	doc := &menu.Document{
		Title: "Reloaded",
		Items: []menu.Entry{
			{ID: "1", Label: "Home", Children: []menu.SubEntry{{ID: "1-1", Label: "Feed"}}},
			{ID: "h", Label: "Help", ActionName: "help"},
		},
	}
	_, cmd := m.Update(menuReloadedMsg{path: "menu.yaml", document: doc})
	assert.Nil(t, cmd, "no watcher means nothing to wait on")

	assert.Equal(t, "Reloaded", m.Drawer().Title())
	require.Len(t, m.Drawer().Entries(), 2)
	assert.True(t, m.Drawer().IsExpanded("1"), "expansion state survives reload")
	assert.NotNil(t, m.Drawer().Entries()[1].Action)
	assert.Contains(t, m.statusBar.Message(), "menu reloaded (2 entries)")
}

func TestModel_MenuError(t *testing.T) {
	m := newSizedModel(t, Options{})

	m.Update(menuErrorMsg{path: "menu.yaml", err: errors.New("bad yaml")})

	assert.EqualError(t, m.lastError, "bad yaml")
	assert.Len(t, m.Drawer().Entries(), 3, "previous menu is kept")
	assert.Contains(t, m.View(), "bad yaml")
}

func TestModel_WatcherIntegration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, menu.Save(path, menu.DefaultDocument()))

	w, err := sync.NewWatcher(path)
	require.NoError(t, err)
	w.SetDebounce(50 * time.Millisecond)

	m := NewModel(Options{Watcher: w})
	cmd := m.Init()
	require.NotNil(t, cmd)
	defer m.handleQuit()

	require.NoError(t, os.WriteFile(path, []byte("title: Live\nitems:\n  - id: z\n    label: Zed\n"), 0644))

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		reloaded, ok := msg.(menuReloadedMsg)
		require.True(t, ok, "expected menuReloadedMsg, got %T", msg)
		m.Update(reloaded)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	assert.Equal(t, "Live", m.Drawer().Title())
	assert.Equal(t, "Zed", m.Drawer().Entries()[0].Label)
}

func TestWaitForMenuChange_StoppedWatcher(t *testing.T) {
	w, err := sync.NewWatcher(filepath.Join(t.TempDir(), "menu.yaml"))
	require.NoError(t, err)

	m := NewModel(Options{Watcher: w})
	cmd := m.waitForMenuChange()
	require.NotNil(t, cmd)

	w.Stop()
	assert.IsType(t, watcherStoppedMsg{}, cmd())
}

func TestInit_WatcherStartFailure(t *testing.T) {
	w, err := sync.NewWatcher(filepath.Join(t.TempDir(), "missing", "menu.yaml"))
	require.NoError(t, err)
	defer w.Stop()

	m := NewModel(Options{Watcher: w})
	assert.Nil(t, m.Init())
	assert.Error(t, m.lastError)
}
