// Package config provides the YAML-backed game configuration for breakout:
// playfield and brick-grid geometry, paddle and ball parameters, and
// difficulty presets. A Game value is an immutable snapshot; the simulation
// copies it at construction.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game contains the full configuration of one breakout board.
type Game struct {
	// Playfield size. The origin is the top-left corner.
	SceneDims core.Dims `yaml:"scene_dims"`

	BrickCols    int       `yaml:"brick_cols"`
	BrickRows    int       `yaml:"brick_rows"`
	SideMargin   int       `yaml:"side_margin"`
	TopMargin    int       `yaml:"top_margin"`
	BottomMargin int       `yaml:"bottom_margin"`
	BrickDepth   int       `yaml:"brick_depth"`
	BrickSpacing core.Dims `yaml:"brick_spacing"`

	PaddleDims core.Dims `yaml:"paddle_dims"`
	PaddleStep int       `yaml:"paddle_step"` // Cells moved per key press

	BallDims      core.Dims  `yaml:"ball_dims"`
	BallVelocity0 core.FDims `yaml:"ball_velocity_0"` // Units per second

	// MaxBoost bounds the random horizontal boost applied on brick hits.
	MaxBoost int `yaml:"max_boost"`
}

// PaddleTopLeft0 returns the paddle's starting top-left corner: centered
// horizontally, bottom_margin above the bottom of the scene.
func (g Game) PaddleTopLeft0() (x, y int) {
	x = g.SceneDims.Width/2 - g.PaddleDims.Width/2
	y = g.SceneDims.Height - g.BottomMargin - g.PaddleDims.Height
	return x, y
}

// BrickDims returns the size of one brick. Bricks share the scene width left
// over after the side margins and inter-brick spacing.
func (g Game) BrickDims() core.Dims {
	spacing := (g.BrickCols - 1) * g.BrickSpacing.Width
	available := g.SceneDims.Width - 2*g.SideMargin - spacing
	width := 0
	if g.BrickCols > 0 {
		width = available / g.BrickCols
	}
	return core.Dims{Width: width, Height: g.BrickDepth}
}

// Playfield returns the scene bounds as a rectangle.
func (g Game) Playfield() core.Rect {
	return core.RectFromTopLeft(0, 0, g.SceneDims)
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Validate checks that the configuration describes a playable board.
func (g Game) Validate() error {
	var errs []error

	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %d", name, v))
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %d", name, v))
		}
	}

	positive("scene_dims.width", g.SceneDims.Width)
	positive("scene_dims.height", g.SceneDims.Height)
	positive("brick_cols", g.BrickCols)
	positive("brick_rows", g.BrickRows)
	positive("brick_depth", g.BrickDepth)
	positive("paddle_dims.width", g.PaddleDims.Width)
	positive("paddle_dims.height", g.PaddleDims.Height)
	positive("ball_dims.width", g.BallDims.Width)
	positive("ball_dims.height", g.BallDims.Height)
	nonNegative("side_margin", g.SideMargin)
	nonNegative("top_margin", g.TopMargin)
	nonNegative("bottom_margin", g.BottomMargin)
	nonNegative("brick_spacing.width", g.BrickSpacing.Width)
	nonNegative("brick_spacing.height", g.BrickSpacing.Height)
	nonNegative("max_boost", g.MaxBoost)
	nonNegative("paddle_step", g.PaddleStep)

	if len(errs) == 0 {
		if w := g.BrickDims().Width; w <= 0 {
			errs = append(errs, fmt.Errorf("brick grid does not fit the scene width (brick width %d)", w))
		}
		_, paddleY := g.PaddleTopLeft0()
		if paddleY < 0 {
			errs = append(errs, fmt.Errorf("paddle does not fit the scene height (paddle y %d)", paddleY))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
