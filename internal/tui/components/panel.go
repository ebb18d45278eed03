package components

import (
	"strings"

	"github.com/MikeBiancalana/navkit/internal/logger"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Panel defaults
const (
	DefaultPanelTitle   = "Options"
	DefaultPreviewCount = 1
	DefaultItemGap      = 1
)

// PanelOption configures a CollapsiblePanel
type PanelOption func(*CollapsiblePanel)

// WithTitle sets the header text
func WithTitle(title string) PanelOption {
	return func(p *CollapsiblePanel) { p.title = title }
}

// WithItems sets the list shown in the panel
func WithItems(items ...string) PanelOption {
	return func(p *CollapsiblePanel) { p.items = append([]string(nil), items...) }
}

// WithPreviewCount sets how many items show while the panel is closed
func WithPreviewCount(n int) PanelOption {
	return func(p *CollapsiblePanel) { p.previewCount = n }
}

// WithItemGap sets the number of blank lines between items
func WithItemGap(gap int) PanelOption {
	return func(p *CollapsiblePanel) { p.itemGap = gap }
}

// WithInitialOpen sets the starting open state
func WithInitialOpen(open bool) PanelOption {
	return func(p *CollapsiblePanel) { p.open = open }
}

// WithContent sets pre-rendered content shown when the panel is open.
// Ignored when the panel has items.
func WithContent(content string) PanelOption {
	return func(p *CollapsiblePanel) { p.content = content }
}

// CollapsiblePanel is a header that toggles between a preview of its items
// and the full list
type CollapsiblePanel struct {
	title        string
	items        []string
	previewCount int
	itemGap      int
	content      string
	open         bool
	focused      bool
	width        int
	keys         PanelKeyMap
}

// NewCollapsiblePanel creates a panel, closed unless WithInitialOpen(true)
func NewCollapsiblePanel(opts ...PanelOption) *CollapsiblePanel {
	p := &CollapsiblePanel{
		title:        DefaultPanelTitle,
		previewCount: DefaultPreviewCount,
		itemGap:      DefaultItemGap,
		keys:         DefaultPanelKeyMap(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Toggle flips the open state
func (p *CollapsiblePanel) Toggle() {
	p.open = !p.open
	logger.Debug("panel: toggled", "title", p.title, "open", p.open)
}

// IsOpen reports whether the full list is shown
func (p *CollapsiblePanel) IsOpen() bool {
	return p.open
}

// Title returns the header text
func (p *CollapsiblePanel) Title() string {
	return p.title
}

// Items returns a copy of the configured items
func (p *CollapsiblePanel) Items() []string {
	return append([]string(nil), p.items...)
}

// KeyMap returns the panel's bindings for help rendering
func (p *CollapsiblePanel) KeyMap() PanelKeyMap {
	return p.keys
}

// SetFocused sets whether keyboard input toggles this panel
func (p *CollapsiblePanel) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused reports whether the panel has keyboard focus
func (p *CollapsiblePanel) IsFocused() bool {
	return p.focused
}

// SetWidth sets the rendered width. Zero renders at natural width.
func (p *CollapsiblePanel) SetWidth(width int) {
	p.width = width
}

// HeaderHeight is the number of lines occupied by the clickable header
func (p *CollapsiblePanel) HeaderHeight() int {
	return 1
}

// VisibleItems returns the items currently rendered: the preview slice
// while closed, everything while open
func (p *CollapsiblePanel) VisibleItems() []string {
	if p.open {
		return p.Items()
	}
	return p.previewItems()
}

func (p *CollapsiblePanel) previewItems() []string {
	n := p.previewCount
	if n <= 0 {
		return nil
	}
	if n > len(p.items) {
		n = len(p.items)
	}
	return append([]string(nil), p.items[:n]...)
}

// HandleClick processes a left click at row y relative to the panel's top.
// Only the header reacts. Returns whether the click toggled the panel.
func (p *CollapsiblePanel) HandleClick(y int) bool {
	if y < 0 || y >= p.HeaderHeight() {
		return false
	}
	p.Toggle()
	return true
}

// Update handles keyboard input while focused
func (p *CollapsiblePanel) Update(msg tea.Msg) (*CollapsiblePanel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused {
		return p, nil
	}
	if key.Matches(keyMsg, p.keys.Toggle) {
		p.Toggle()
	}
	return p, nil
}

// View renders the panel
func (p *CollapsiblePanel) View() string {
	lines := []string{p.headerView()}

	if body := p.bodyView(); body != "" || (!p.open && len(p.items) == 0 && p.content != "") {
		lines = append(lines, body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (p *CollapsiblePanel) headerView() string {
	hint := "expand"
	if p.open {
		hint = "collapse"
	}

	left := collapseIndicator(p.open) + p.title
	right := "[" + hint + "]"

	style := panelHeaderStyle
	if p.focused {
		style = style.Foreground(SelectedStyle.GetForeground())
	}

	gap := 2
	if p.width > 0 {
		if w := p.width - lipgloss.Width(left) - lipgloss.Width(right); w > gap {
			gap = w
		}
	}

	return style.Render(left+strings.Repeat(" ", gap)) + panelHintStyle.Render(right)
}

// bodyView renders the region below the header. A closed panel without items
// but with content keeps a blank one-line slot.
func (p *CollapsiblePanel) bodyView() string {
	if !p.open {
		if len(p.items) == 0 {
			return ""
		}
		return p.joinItems(p.previewItems(), previewItemStyle)
	}

	var inner string
	switch {
	case len(p.items) > 0:
		inner = p.joinItems(p.items, panelItemStyle)
	case p.content != "":
		inner = p.content
	default:
		return ""
	}

	box := panelBoxStyle
	if p.width > 2 {
		box = box.Width(p.width - 2)
	}
	return box.Render(inner)
}

func (p *CollapsiblePanel) joinItems(items []string, style lipgloss.Style) string {
	if len(items) == 0 {
		return ""
	}

	gap := p.itemGap
	if gap < 0 {
		gap = 0
	}

	rendered := make([]string, len(items))
	for i, item := range items {
		rendered[i] = style.Render(item)
	}
	return strings.Join(rendered, "\n"+strings.Repeat("\n", gap))
}
