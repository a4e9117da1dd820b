// Package breakout implements the simulation core of a breakout game: a
// paddle, a ball and a grid of bricks inside a rectangular playfield.
//
// The core is driven from outside: the caller moves the paddle, launches the
// ball and advances time with Model.OnFrame. Rendering, input and frame timing
// live in the platform layer.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BuildBricks lays out a rows x cols grid of bricks of size dims, separated by
// spacing, with the first brick's top-left corner at (sideMargin, topMargin).
// Bricks are returned in row-major order.
func BuildBricks(rows, cols int, dims, spacing core.Dims, sideMargin, topMargin int) []core.Rect {
	if rows <= 0 || cols <= 0 {
		return nil
	}

	xOffset := spacing.Width + dims.Width
	yOffset := spacing.Height + dims.Height

	bricks := make([]core.Rect, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			x := sideMargin + col*xOffset
			y := topMargin + row*yOffset
			bricks = append(bricks, core.RectFromTopLeft(x, y, dims))
		}
	}
	return bricks
}

// LayoutFor builds the full brick grid described by cfg.
func LayoutFor(cfg config.Game) []core.Rect {
	return BuildBricks(cfg.BrickRows, cfg.BrickCols, cfg.BrickDims(), cfg.BrickSpacing, cfg.SideMargin, cfg.TopMargin)
}
