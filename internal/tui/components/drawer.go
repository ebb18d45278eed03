package components

import (
	"strings"

	"github.com/MikeBiancalana/navkit/internal/logger"
	"github.com/MikeBiancalana/navkit/internal/menu"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultDrawerTitle = "Menu"

	// TriggerWidth is the width of the trigger bar shown while closed
	TriggerWidth = 5

	// drawerWidthPercent is the share of the screen the open drawer covers
	drawerWidthPercent = 70
	minDrawerWidth     = 24

	closeGlyph  = "✕"
	menuGlyph   = "☰"
	cursorGlyph = "›"

	// cursorGutter is the column left of the embedded panel reserved for
	// the cursor marker, so marking the panel never widens it
	cursorGutter = 1
)

// Lines above the embedded panel in the open drawer
const (
	drawerHeaderRow  = 0
	drawerDividerRow = 1
	drawerPanelRow   = 2
)

// DrawerOption configures a NavigationDrawer
type DrawerOption func(*NavigationDrawer)

// WithDrawerTitle sets the drawer header text
func WithDrawerTitle(title string) DrawerOption {
	return func(d *NavigationDrawer) { d.title = title }
}

// WithPanel replaces the embedded options panel
func WithPanel(panel *CollapsiblePanel) DrawerOption {
	return func(d *NavigationDrawer) { d.panel = panel }
}

// NewOptionsPanel returns the panel embedded in the drawer by default
func NewOptionsPanel() *CollapsiblePanel {
	return NewCollapsiblePanel(
		WithTitle("Options"),
		WithItems("Custom item A", "Custom item B", "Custom item C"),
		WithPreviewCount(1),
		WithItemGap(1),
	)
}

type rowKind int

const (
	rowPanel rowKind = iota
	rowEntry
	rowSubEntry
)

// drawerRow is one cursor stop in the open drawer
type drawerRow struct {
	kind    rowKind
	entryID string
	subID   string
}

// NavigationDrawer is an off-canvas menu opened from a trigger bar. Entries
// with children expand in place; leaf selections close the drawer.
type NavigationDrawer struct {
	title    string
	entries  []menu.Entry
	expanded map[string]bool
	isOpen   bool
	panel    *CollapsiblePanel
	cursor   int
	width    int
	height   int
	keys     DrawerKeyMap
}

// NewNavigationDrawer creates a closed drawer. A nil entries slice selects
// the built-in sample menu.
func NewNavigationDrawer(entries []menu.Entry, opts ...DrawerOption) *NavigationDrawer {
	if entries == nil {
		entries = menu.DefaultEntries()
	}

	d := &NavigationDrawer{
		title:    DefaultDrawerTitle,
		entries:  entries,
		expanded: make(map[string]bool),
		width:    80,
		height:   24,
		keys:     DefaultDrawerKeyMap(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.panel == nil {
		d.panel = NewOptionsPanel()
	}
	d.panel.SetWidth(d.panelWidth())
	return d
}

// Open shows the drawer (trigger click)
func (d *NavigationDrawer) Open() {
	d.isOpen = true
	logger.Debug("drawer: opened", "entries", len(d.entries))
}

// Close hides the drawer (close affordance). Expansion state is kept.
func (d *NavigationDrawer) Close() {
	d.isOpen = false
	logger.Debug("drawer: closed")
}

// ClickBackdrop hides the drawer in response to a click outside it
func (d *NavigationDrawer) ClickBackdrop() {
	d.isOpen = false
	logger.Debug("drawer: closed from backdrop")
}

// IsOpen reports whether the drawer is showing
func (d *NavigationDrawer) IsOpen() bool {
	return d.isOpen
}

// Title returns the header text
func (d *NavigationDrawer) Title() string {
	return d.title
}

// SetTitle replaces the header text
func (d *NavigationDrawer) SetTitle(title string) {
	d.title = title
}

// Entries returns the current menu entries
func (d *NavigationDrawer) Entries() []menu.Entry {
	return d.entries
}

// Panel returns the embedded options panel
func (d *NavigationDrawer) Panel() *CollapsiblePanel {
	return d.panel
}

// KeyMap returns the drawer's bindings for help rendering
func (d *NavigationDrawer) KeyMap() DrawerKeyMap {
	return d.keys
}

// SetEntries swaps the menu, e.g. after the menu file changed. Open and
// expansion state survive; flags for ids no longer present are ignored.
func (d *NavigationDrawer) SetEntries(entries []menu.Entry) {
	if entries == nil {
		entries = menu.DefaultEntries()
	}
	d.entries = entries
	d.clampCursor()
	logger.Debug("drawer: entries replaced", "entries", len(entries))
}

// ToggleExpand flips the expansion flag for an entry id
func (d *NavigationDrawer) ToggleExpand(id string) {
	d.expanded[id] = !d.expanded[id]
	d.clampCursor()
	logger.Debug("drawer: toggled entry", "id", id, "expanded", d.expanded[id])
}

// IsExpanded reports whether the entry's children are shown
func (d *NavigationDrawer) IsExpanded(id string) bool {
	return d.expanded[id]
}

// ExpansionState returns a copy of the per-entry expansion flags
func (d *NavigationDrawer) ExpansionState() map[string]bool {
	state := make(map[string]bool, len(d.expanded))
	for id, v := range d.expanded {
		state[id] = v
	}
	return state
}

// SelectEntry handles a click on a top-level entry. Entries with children
// toggle their expansion and keep the drawer open; leaves run their action
// once and close the drawer. Unknown ids are ignored.
func (d *NavigationDrawer) SelectEntry(id string) {
	entry := menu.Find(d.entries, id)
	if entry == nil {
		logger.Debug("drawer: select ignored for unknown entry", "id", id)
		return
	}

	if entry.HasChildren() {
		d.ToggleExpand(id)
		return
	}

	logger.Debug("drawer: entry selected", "id", id, "label", entry.Label)
	if entry.Action != nil {
		entry.Action()
	}
	d.Close()
}

// SelectSubEntry handles a click on a child entry. Sub-entries carry no
// action, so this only closes the drawer.
func (d *NavigationDrawer) SelectSubEntry(parentID, id string) {
	logger.Debug("drawer: sub-entry selected", "parent", parentID, "id", id)
	d.Close()
}

// Cursor returns the index of the highlighted row
func (d *NavigationDrawer) Cursor() int {
	return d.cursor
}

// SetSize sets the screen area the drawer can cover
func (d *NavigationDrawer) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.panel.SetWidth(d.panelWidth())
}

func (d *NavigationDrawer) bodyWidth() int {
	w := d.width * drawerWidthPercent / 100
	if w < minDrawerWidth {
		w = minDrawerWidth
	}
	if w > d.width {
		w = d.width
	}
	return w
}

func (d *NavigationDrawer) panelWidth() int {
	w := d.bodyWidth() - cursorGutter
	if w < 0 {
		w = 0
	}
	return w
}

// rows lists the cursor stops in display order
func (d *NavigationDrawer) rows() []drawerRow {
	rows := []drawerRow{{kind: rowPanel}}
	for _, entry := range d.entries {
		rows = append(rows, drawerRow{kind: rowEntry, entryID: entry.ID})
		if entry.HasChildren() && d.expanded[entry.ID] {
			for _, sub := range entry.Children {
				rows = append(rows, drawerRow{kind: rowSubEntry, entryID: entry.ID, subID: sub.ID})
			}
		}
	}
	return rows
}

func (d *NavigationDrawer) clampCursor() {
	n := len(d.rows())
	if d.cursor >= n {
		d.cursor = n - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
}

func (d *NavigationDrawer) activate(r drawerRow) {
	switch r.kind {
	case rowPanel:
		d.panel.Toggle()
	case rowEntry:
		d.SelectEntry(r.entryID)
	case rowSubEntry:
		d.SelectSubEntry(r.entryID, r.subID)
	}
}

// Update handles keyboard and mouse input
func (d *NavigationDrawer) Update(msg tea.Msg) (*NavigationDrawer, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		d.handleKey(msg)
	case tea.MouseMsg:
		d.handleMouse(msg)
	}
	return d, nil
}

func (d *NavigationDrawer) handleKey(msg tea.KeyMsg) {
	if !d.isOpen {
		if key.Matches(msg, d.keys.Trigger) {
			d.Open()
		}
		return
	}

	switch {
	case key.Matches(msg, d.keys.Close):
		d.Close()
	case key.Matches(msg, d.keys.Up):
		if d.cursor > 0 {
			d.cursor--
		}
	case key.Matches(msg, d.keys.Down):
		if d.cursor < len(d.rows())-1 {
			d.cursor++
		}
	case key.Matches(msg, d.keys.Select):
		rows := d.rows()
		if d.cursor < len(rows) {
			d.activate(rows[d.cursor])
		}
	}
}

func (d *NavigationDrawer) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	if !d.isOpen {
		if msg.X < TriggerWidth && msg.Y >= 0 && msg.Y < d.triggerHeight() {
			d.Open()
		}
		return
	}

	bodyWidth := d.bodyWidth()
	if msg.X >= bodyWidth {
		d.ClickBackdrop()
		return
	}

	switch {
	case msg.Y == drawerHeaderRow:
		if msg.X >= bodyWidth-3 {
			d.Close()
		}
		return
	case msg.Y == drawerDividerRow:
		return
	}

	panelHeight := lipgloss.Height(d.panelView())
	if msg.Y < drawerPanelRow+panelHeight {
		if d.panel.HandleClick(msg.Y - drawerPanelRow) {
			d.cursor = 0
		}
		return
	}

	// one spacer line separates the panel from the entry list
	index := msg.Y - (drawerPanelRow + panelHeight + 1) + 1
	rows := d.rows()
	if index < 1 || index >= len(rows) {
		return
	}
	d.cursor = index
	d.activate(rows[index])
}

// View renders the trigger bar while closed, the drawer and backdrop while open
func (d *NavigationDrawer) View() string {
	if !d.isOpen {
		return d.triggerView()
	}

	bodyWidth := d.bodyWidth()
	lines := []string{
		d.headerView(bodyWidth),
		drawerDividerStyle.Render(strings.Repeat("─", bodyWidth)),
		d.panelView(),
		"",
	}

	rows := d.rows()
	for i, r := range rows {
		if r.kind == rowPanel {
			continue
		}
		lines = append(lines, d.rowView(r, i == d.cursor, bodyWidth))
	}

	body := lipgloss.NewStyle().
		Width(bodyWidth).
		Height(d.height).
		MaxHeight(d.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	backdropWidth := d.width - bodyWidth
	if backdropWidth <= 0 {
		return body
	}
	backdrop := backdropStyle.Width(backdropWidth).Height(d.height).Render("")
	return lipgloss.JoinHorizontal(lipgloss.Top, body, backdrop)
}

func (d *NavigationDrawer) triggerView() string {
	return triggerStyle.Width(TriggerWidth).Height(d.triggerHeight()).Render(menuGlyph)
}

// triggerHeight is the number of rows the closed trigger bar occupies
func (d *NavigationDrawer) triggerHeight() int {
	height := d.height * 55 / 100
	if height < 3 {
		height = 3
	}
	return height
}

func (d *NavigationDrawer) headerView(width int) string {
	left := " " + d.title
	right := closeGlyph + " "
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return drawerHeaderStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// panelView renders the embedded panel behind the cursor gutter. The header
// line carries the marker when the panel row holds the cursor.
func (d *NavigationDrawer) panelView() string {
	lines := strings.Split(d.panel.View(), "\n")
	for i := range lines {
		gutter := " "
		if i == 0 && d.cursor == 0 {
			gutter = SelectedStyle.Render(cursorGlyph)
		}
		lines[i] = gutter + lines[i]
	}
	return strings.Join(lines, "\n")
}

func (d *NavigationDrawer) rowView(r drawerRow, selected bool, width int) string {
	entry := menu.Find(d.entries, r.entryID)
	if entry == nil {
		return ""
	}

	var line string
	style := drawerEntryStyle
	switch r.kind {
	case rowEntry:
		icon := entry.Icon
		if icon == "" {
			icon = menu.IconDefault
		}
		line = " " + icon + " " + entry.Label
		if entry.HasChildren() {
			indicator := strings.TrimSpace(collapseIndicator(d.expanded[entry.ID]))
			gap := width - lipgloss.Width(line) - lipgloss.Width(indicator) - 1
			if gap < 1 {
				gap = 1
			}
			line += strings.Repeat(" ", gap) + indicator
		}
	case rowSubEntry:
		style = drawerSubEntryStyle
		for _, sub := range entry.Children {
			if sub.ID == r.subID {
				line = "     " + sub.Label
				break
			}
		}
	}

	if selected {
		return SelectedStyle.Render(line)
	}
	return style.Render(line)
}
