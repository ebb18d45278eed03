package components

import (
	"github.com/charmbracelet/bubbles/key"
)

// PanelKeyMap holds the bindings a focused CollapsiblePanel responds to
type PanelKeyMap struct {
	Toggle key.Binding
}

// DefaultPanelKeyMap returns the standard panel bindings
func DefaultPanelKeyMap() PanelKeyMap {
	return PanelKeyMap{
		Toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle panel")),
	}
}

func (k PanelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle}
}

func (k PanelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DrawerKeyMap holds the NavigationDrawer bindings
type DrawerKeyMap struct {
	Trigger key.Binding
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Close   key.Binding
}

// DefaultDrawerKeyMap returns the standard drawer bindings
func DefaultDrawerKeyMap() DrawerKeyMap {
	return DrawerKeyMap{
		Trigger: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Close:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp shows the bindings that apply while the drawer is open
func (k DrawerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Close}
}

func (k DrawerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Trigger}, k.ShortHelp()}
}
