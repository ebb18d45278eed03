package tui

import "github.com/MikeBiancalana/navkit/internal/tui/components"

// panelGap separates the trigger bar from the standalone panel
const panelGap = 2

// PaneDimensions holds calculated dimensions for the host layout
type PaneDimensions struct {
	// Area shared by the drawer and the standalone panel
	BodyWidth  int
	BodyHeight int

	// Standalone panel, right of the collapsed drawer's trigger bar
	PanelOffset int
	PanelWidth  int

	StatusHeight int // Fixed: 1 line
}

// CalculatePaneDimensions computes pane sizes based on terminal dimensions.
// The drawer overlays the whole body when open; when closed it leaves its
// trigger bar, and the panel takes the rest of the row after a gap.
func CalculatePaneDimensions(termWidth, termHeight int) PaneDimensions {
	dims := PaneDimensions{
		StatusHeight: 1,
		PanelOffset:  components.TriggerWidth + panelGap,
	}

	dims.BodyWidth = termWidth
	dims.BodyHeight = termHeight - dims.StatusHeight

	dims.PanelWidth = termWidth - dims.PanelOffset

	// Ensure non-negative sizes
	if dims.BodyWidth < 0 {
		dims.BodyWidth = 0
	}
	if dims.BodyHeight < 0 {
		dims.BodyHeight = 0
	}
	if dims.PanelWidth < 0 {
		dims.PanelWidth = 0
	}

	return dims
}
