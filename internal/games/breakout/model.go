package breakout

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Model owns all mutable game state: the paddle, the ball, the remaining
// bricks and the boost source. It is not safe for concurrent use; the game
// loop that drives it is its only owner.
type Model struct {
	cfg     config.Game
	paddle  core.Rect
	ball    Ball
	bricks  []core.Rect
	booster Booster

	lastEvent Event
}

type options struct {
	seed    uint64
	booster Booster
}

// Option customizes a Model at construction.
type Option func(*options)

// WithSeed seeds the default boost source.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithBooster replaces the default boost source.
func WithBooster(b Booster) Option {
	return func(o *options) {
		o.booster = b
	}
}

// New builds a model from a copy of cfg: the paddle at its starting
// position, a ball resting on it, and the full brick grid.
// New panics if cfg does not validate; configs coming from the config
// package are validated on load.
func New(cfg config.Game, opts ...Option) *Model {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("breakout: %v", err))
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.booster == nil {
		o.booster = NewBoostSource(cfg.MaxBoost, o.seed)
	}

	x, y := cfg.PaddleTopLeft0()
	paddle := core.RectFromTopLeft(x, y, cfg.PaddleDims)

	return &Model{
		cfg:     cfg,
		paddle:  paddle,
		ball:    NewBall(paddle, cfg),
		bricks:  LayoutFor(cfg),
		booster: o.booster,
	}
}

// Launch puts the ball into free flight. Launching a live ball does nothing.
func (m *Model) Launch() {
	m.ball = m.ball.Launched()
}

// PaddleTo moves the paddle's left edge to x. The position is not clamped to
// the playfield. A ball that is not live follows the paddle.
func (m *Model) PaddleTo(x int) {
	m.paddle.X = x
	if !m.ball.Live {
		m.ball = NewBall(m.paddle, m.cfg)
	}
}

// OnFrame advances the simulation by dt seconds.
//
// Collisions are decided against where the ball would be after dt, before it
// moves. The first matching frame rule reflects the ball, destroys a brick or
// resets a lost ball; then the ball moves one step with the updated velocity.
// A lost ball does not move again in the same frame.
func (m *Model) OnFrame(dt float64) {
	if !m.ball.Live || dt <= 0 {
		m.lastEvent = EventIdle
		return
	}

	next := m.ball.Next(dt)

	m.lastEvent = EventMove
	for _, rule := range frameRules {
		if !rule.when(m, next) {
			continue
		}
		rule.effect(m, next)
		m.lastEvent = rule.event
		if rule.halts {
			return
		}
		break
	}

	m.ball = m.ball.Next(dt)
}

// Config returns the configuration the model was built with.
func (m *Model) Config() config.Game {
	return m.cfg
}

// Paddle returns the paddle rectangle.
func (m *Model) Paddle() core.Rect {
	return m.paddle
}

// Ball returns the current ball.
func (m *Model) Ball() Ball {
	return m.ball
}

// Bricks returns a copy of the remaining bricks in layout order.
func (m *Model) Bricks() []core.Rect {
	return slices.Clone(m.bricks)
}

// BrickCount returns the number of remaining bricks.
func (m *Model) BrickCount() int {
	return len(m.bricks)
}

// Cleared reports whether every brick has been destroyed.
func (m *Model) Cleared() bool {
	return len(m.bricks) == 0
}

// LastEvent returns what happened during the most recent OnFrame call.
func (m *Model) LastEvent() Event {
	return m.lastEvent
}
