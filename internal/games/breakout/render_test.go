package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestMinScreen(t *testing.T) {
	w, h := MinScreen(New(testConfig()))
	assert.Equal(t, 86, w)
	assert.Equal(t, 43, h)
}

func TestRenderBoard(t *testing.T) {
	c := NewController(testConfig(), 1)
	screen := core.NewScreen(86, 43)

	Render(c, screen)

	assert.Equal(t, '┌', screen.Get(0, 0))
	assert.Equal(t, '┘', screen.Get(85, 41))

	assert.Equal(t, core.Cell{Rune: BrickChar, Color: core.ColorRed}, screen.GetCell(11, 6))
	assert.Equal(t, core.Cell{Rune: BrickChar, Color: core.ColorRed}, screen.GetCell(74, 10))
	assert.Equal(t, core.Cell{Rune: BrickChar, Color: core.ColorOrange}, screen.GetCell(11, 13))
	assert.NotEqual(t, BrickChar, screen.Get(31, 6), "spacing between bricks stays empty")

	assert.Equal(t, core.Cell{Rune: PaddleChar, Color: core.ColorWhite}, screen.GetCell(38, 36))
	assert.Equal(t, PaddleChar, screen.Get(47, 37))
	assert.Equal(t, core.Cell{Rune: BallChar, Color: core.ColorYellow}, screen.GetCell(42, 34))

	status := screen.Row(42)
	assert.Contains(t, status, "Bricks: 6")
	assert.Contains(t, status, "Press SPACE to launch")
}

func TestRenderStatusHints(t *testing.T) {
	c := NewController(testConfig(), 1)
	c.Step(input(core.ActionLaunch), frameDT)
	c.Step(input(core.ActionPause), frameDT)
	screen := core.NewScreen(86, 43)

	Render(c, screen)
	assert.Contains(t, screen.Row(42), "PAUSED")

	c.Model().bricks = nil
	Render(c, screen)
	assert.Contains(t, screen.Row(42), "CLEARED!")
	assert.Contains(t, screen.Row(42), "Bricks: 0")
}

func TestRenderWindowTooSmall(t *testing.T) {
	c := NewController(testConfig(), 1)
	screen := core.NewScreen(40, 12)

	Render(c, screen)

	out := screen.String()
	assert.Contains(t, out, "Window too small")
	assert.Contains(t, out, "Need 86x43")
	assert.NotContains(t, out, string(PaddleChar))
}
