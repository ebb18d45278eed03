package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusBar_View(t *testing.T) {
	t.Run("shows key hints", func(t *testing.T) {
		sb := NewStatusBar()
		sb.SetWidth(120)
		sb.SetKeyMap(DefaultDrawerKeyMap())

		view := sb.View()
		assert.Contains(t, view, "select")
		assert.Contains(t, view, "close")
	})

	t.Run("message replaces hints", func(t *testing.T) {
		sb := NewStatusBar()
		sb.SetWidth(120)
		sb.SetKeyMap(DefaultDrawerKeyMap())
		sb.SetMessage("About navkit")

		view := sb.View()
		assert.Contains(t, view, "About navkit")
		assert.NotContains(t, view, "select")
		assert.Equal(t, "About navkit", sb.Message())
	})

	t.Run("error wins over message", func(t *testing.T) {
		sb := NewStatusBar()
		sb.SetWidth(120)
		sb.SetMessage("ok")
		sb.SetError(errors.New("menu file broken"))

		view := sb.View()
		assert.Contains(t, view, "menu file broken")
		assert.Empty(t, sb.Message())

		sb.Clear()
		assert.NotContains(t, sb.View(), "menu file broken")
	})

	t.Run("renders without width or keys", func(t *testing.T) {
		sb := NewStatusBar()
		assert.NotPanics(t, func() { _ = sb.View() })
	})
}
