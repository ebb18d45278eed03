package tui_test

import (
	"fmt"

	"github.com/MikeBiancalana/navkit/internal/tui"
)

// ExampleCalculatePaneDimensions demonstrates basic usage of the layout manager
func ExampleCalculatePaneDimensions() {
	dims := tui.CalculatePaneDimensions(80, 24)

	fmt.Printf("Body: %dx%d\n", dims.BodyWidth, dims.BodyHeight)
	fmt.Printf("Panel: width %d at column %d\n", dims.PanelWidth, dims.PanelOffset)
	fmt.Printf("Status bar: height %d\n", dims.StatusHeight)

	// Output:
	// Body: 80x23
	// Panel: width 73 at column 7
	// Status bar: height 1
}
