package components

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	CollapseIndicatorCollapsed = "▶ "
	CollapseIndicatorExpanded  = "▼ "
)

// collapseIndicator returns the header glyph for an expandable region
func collapseIndicator(expanded bool) string {
	if expanded {
		return CollapseIndicatorExpanded
	}
	return CollapseIndicatorCollapsed
}

var SelectedStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("11")).
	Bold(true)

var (
	accentColor = lipgloss.Color("25")

	panelHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("236")).
				Bold(true)

	panelHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	previewItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				PaddingLeft(2)

	panelItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	panelBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	drawerHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(accentColor).
				Bold(true)

	drawerDividerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	drawerEntryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	drawerSubEntryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("248"))

	backdropStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("234"))

	triggerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(accentColor).
			Bold(true).
			Align(lipgloss.Center)
)
