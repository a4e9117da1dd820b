package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Controller turns per-frame input into Model calls. It is the glue used by
// both the terminal front end and the headless simulator: it clamps paddle
// moves to the playfield, handles pause and restart, and advances the model.
type Controller struct {
	cfg    config.Game
	seed   uint64
	model  *Model
	paused bool
	frames uint64
}

// NewController builds a fresh model from cfg seeded with seed.
func NewController(cfg config.Game, seed uint64) *Controller {
	return &Controller{
		cfg:   cfg,
		seed:  seed,
		model: New(cfg, WithSeed(seed)),
	}
}

// Model returns the model currently being played.
func (c *Controller) Model() *Model {
	return c.model
}

// Paused reports whether the controller is ignoring frames.
func (c *Controller) Paused() bool {
	return c.paused
}

// Frames returns how many frames have been simulated since the last restart.
func (c *Controller) Frames() uint64 {
	return c.frames
}

// Seed returns the seed of the current model's boost source.
func (c *Controller) Seed() uint64 {
	return c.seed
}

// Step applies one frame of input and advances the model by dt seconds.
// It returns the model's event for the frame.
func (c *Controller) Step(in core.InputFrame, dt float64) Event {
	if in.Has(core.ActionRestart) {
		c.restart()
		return EventIdle
	}

	if in.Has(core.ActionPause) {
		c.paused = !c.paused
	}
	if c.paused {
		return EventIdle
	}

	if in.Has(core.ActionLeft) {
		c.nudgePaddle(-c.cfg.PaddleStep)
	}
	if in.Has(core.ActionRight) {
		c.nudgePaddle(c.cfg.PaddleStep)
	}
	if in.Has(core.ActionLaunch) {
		c.model.Launch()
	}

	c.model.OnFrame(dt)
	c.frames++
	return c.model.LastEvent()
}

// restart rebuilds the board with the next seed so replays stay reproducible.
func (c *Controller) restart() {
	c.seed++
	c.model = New(c.cfg, WithSeed(c.seed))
	c.paused = false
	c.frames = 0
}

// nudgePaddle moves the paddle by dx, keeping it inside the playfield.
func (c *Controller) nudgePaddle(dx int) {
	paddle := c.model.Paddle()
	maxX := c.cfg.SceneDims.Width - paddle.W
	c.model.PaddleTo(core.Clamp(paddle.X+dx, 0, core.Max(maxX, 0)))
}

// Autopilot returns input that steers the paddle toward the ball's center
// and launches a resting ball. The simulator uses it to play unattended.
func Autopilot(m *Model) core.InputFrame {
	in := core.NewInputFrame()

	ball := m.Ball()
	if !ball.Live {
		in.Set(core.ActionLaunch)
		return in
	}

	ballX, _ := ball.Center()
	paddle := m.Paddle().ToF()
	paddleX := paddle.X + paddle.W/2

	step := float64(m.Config().PaddleStep)
	switch {
	case ballX < paddleX-step/2:
		in.Set(core.ActionLeft)
	case ballX > paddleX+step/2:
		in.Set(core.ActionRight)
	}
	return in
}
