package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball is the ball's state: bounding box, velocity and whether it is in free
// flight. Ball is a value type; every method returns a new Ball and the
// Model replaces its copy wholesale on each transition.
type Ball struct {
	X, Y     float64    // Top-left corner of the bounding box
	W, H     float64    // Bounding box size
	Velocity core.FDims // Units per second
	Live     bool       // False while the ball rests on the paddle
}

// NewBall returns a non-live ball resting on top of the paddle, horizontally
// centered on it, with the configured launch velocity.
func NewBall(paddle core.Rect, cfg config.Game) Ball {
	w := float64(cfg.BallDims.Width)
	h := float64(cfg.BallDims.Height)
	p := paddle.ToF()
	return Ball{
		X:        p.X + p.W/2 - w/2,
		Y:        p.Y - h,
		W:        w,
		H:        h,
		Velocity: cfg.BallVelocity0,
	}
}

// Rect returns the ball's bounding box.
func (b Ball) Rect() core.FRect {
	return core.FRect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Center returns the center of the bounding box.
func (b Ball) Center() (x, y float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Next returns the ball advanced by velocity*dt.
func (b Ball) Next(dt float64) Ball {
	b.X += b.Velocity.Width * dt
	b.Y += b.Velocity.Height * dt
	return b
}

// HitsBottom reports whether the bottom edge is past the bottom of the scene.
func (b Ball) HitsBottom(cfg config.Game) bool {
	return b.Y+b.H > float64(cfg.SceneDims.Height)
}

// HitsTop reports whether the top edge is above the top of the scene.
func (b Ball) HitsTop(cfg config.Game) bool {
	return b.Y < 0
}

// HitsSide reports whether either side edge is outside the scene.
func (b Ball) HitsSide(cfg config.Game) bool {
	return b.X < 0 || b.X+b.W > float64(cfg.SceneDims.Width)
}

// HitsBlock reports whether the bounding box overlaps r.
func (b Ball) HitsBlock(r core.Rect) bool {
	return b.Rect().Intersects(r.ToF())
}

// DestroyBrick removes the first brick the ball overlaps. It returns the
// remaining bricks and true, or the input slice unchanged and false when the
// ball touches no brick. At most one brick is removed per call.
// The input slice is never modified.
func (b Ball) DestroyBrick(bricks []core.Rect) ([]core.Rect, bool) {
	i := b.FirstBrick(bricks)
	if i < 0 {
		return bricks, false
	}
	rest := make([]core.Rect, 0, len(bricks)-1)
	rest = append(rest, bricks[:i]...)
	rest = append(rest, bricks[i+1:]...)
	return rest, true
}

// FirstBrick returns the index of the first brick the ball overlaps, or -1.
func (b Ball) FirstBrick(bricks []core.Rect) int {
	for i, brick := range bricks {
		if b.HitsBlock(brick) {
			return i
		}
	}
	return -1
}

// ReflectHorizontal returns the ball with its horizontal velocity negated.
func (b Ball) ReflectHorizontal() Ball {
	b.Velocity.Width = -b.Velocity.Width
	return b
}

// ReflectVertical returns the ball with its vertical velocity negated.
func (b Ball) ReflectVertical() Ball {
	b.Velocity.Height = -b.Velocity.Height
	return b
}

// Boost returns the ball with dx added to its horizontal velocity.
func (b Ball) Boost(dx int) Ball {
	b.Velocity.Width += float64(dx)
	return b
}

// Launched returns the ball in free flight.
func (b Ball) Launched() Ball {
	b.Live = true
	return b
}
