package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

// MinScreen returns the screen size needed to draw the playfield: the scene
// plus a one-cell border and a status line.
func MinScreen(m *Model) (w, h int) {
	scene := m.Config().SceneDims
	return scene.Width + 2, scene.Height + 3
}

// Render draws the controller's current board into dst.
// Scene coordinates map 1:1 to cells, offset by the border.
func Render(c *Controller, dst *core.Screen) {
	dst.Clear()

	m := c.Model()
	minW, minH := MinScreen(m)
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	cfg := m.Config()
	dst.DrawBox(core.NewRect(0, 0, minW, minH-1), core.ColorGray)

	rowPitch := cfg.BrickDims().Height + cfg.BrickSpacing.Height
	for _, b := range m.Bricks() {
		row := 0
		if rowPitch > 0 {
			row = (b.Y - cfg.TopMargin) / rowPitch
		}
		color := core.RowPalette[row%len(core.RowPalette)]
		dst.DrawRect(shift(b), BrickChar, color)
	}

	dst.DrawRect(shift(m.Paddle()), PaddleChar, core.ColorWhite)

	ball := m.Ball()
	bx := int(math.Floor(ball.X)) + 1
	by := int(math.Floor(ball.Y)) + 1
	dst.SetCell(bx, by, BallChar, core.ColorYellow)

	renderStatus(c, dst, minH-1)
}

// shift moves a scene rectangle inside the border.
func shift(r core.Rect) core.Rect {
	r.X++
	r.Y++
	return r
}

func renderStatus(c *Controller, dst *core.Screen, y int) {
	m := c.Model()
	dst.DrawText(1, y, fmt.Sprintf("Bricks: %d", m.BrickCount()))

	var hint string
	switch {
	case m.Cleared():
		hint = "CLEARED! Press R to play again"
	case c.Paused():
		hint = "PAUSED - press P to resume"
	case !m.Ball().Live:
		hint = "Press SPACE to launch"
	}
	if hint != "" {
		dst.DrawTextCentered(y, hint)
	}
}
