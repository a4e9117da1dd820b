package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

const frameDT = 1.0 / 60

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestControllerClampsPaddle(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		wantX  int
	}{
		{"left edge", core.ActionLeft, 0},
		{"right edge", core.ActionRight, 74},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController(testConfig(), 1)
			for range 40 {
				c.Step(input(tc.action), frameDT)
			}

			m := c.Model()
			assert.Equal(t, tc.wantX, m.Paddle().X)
			assertTracking(t, m.Ball(), m.Paddle())
		})
	}
}

func TestControllerMovesPaddleByStep(t *testing.T) {
	c := NewController(testConfig(), 1)

	c.Step(input(core.ActionRight), frameDT)
	assert.Equal(t, 39, c.Model().Paddle().X)

	c.Step(input(core.ActionLeft), frameDT)
	c.Step(input(core.ActionLeft), frameDT)
	assert.Equal(t, 35, c.Model().Paddle().X)
}

func TestControllerLaunch(t *testing.T) {
	c := NewController(testConfig(), 1)

	ev := c.Step(input(), frameDT)
	assert.Equal(t, EventIdle, ev)
	assert.False(t, c.Model().Ball().Live)

	ev = c.Step(input(core.ActionLaunch), frameDT)
	assert.Equal(t, EventMove, ev)
	assert.True(t, c.Model().Ball().Live)
	assert.Equal(t, uint64(2), c.Frames())
}

func TestControllerPause(t *testing.T) {
	c := NewController(testConfig(), 1)
	c.Step(input(core.ActionLaunch), frameDT)
	before := c.Model().Ball()

	ev := c.Step(input(core.ActionPause), frameDT)
	require.True(t, c.Paused())
	assert.Equal(t, EventIdle, ev)

	c.Step(input(core.ActionLeft), frameDT)
	c.Step(input(), frameDT)
	assert.Equal(t, before, c.Model().Ball(), "ball is frozen while paused")
	assert.Equal(t, 37, c.Model().Paddle().X, "paddle is frozen while paused")
	assert.Equal(t, uint64(1), c.Frames())

	c.Step(input(core.ActionPause), frameDT)
	assert.False(t, c.Paused())
	assert.NotEqual(t, before, c.Model().Ball())
}

func TestControllerRestart(t *testing.T) {
	c := NewController(testConfig(), 7)
	c.Step(input(core.ActionLaunch), frameDT)
	for range 300 {
		c.Step(Autopilot(c.Model()), frameDT)
	}

	ev := c.Step(input(core.ActionRestart), frameDT)

	assert.Equal(t, EventIdle, ev)
	assert.Equal(t, uint64(8), c.Seed())
	assert.Equal(t, uint64(0), c.Frames())
	assert.False(t, c.Paused())
	m := c.Model()
	assert.Equal(t, 6, m.BrickCount())
	assert.Equal(t, core.NewRect(37, 35, 10, 2), m.Paddle())
	assertTracking(t, m.Ball(), m.Paddle())
}

func TestAutopilot(t *testing.T) {
	m := New(testConfig())
	assert.True(t, Autopilot(m).Has(core.ActionLaunch), "resting ball is launched")

	tests := []struct {
		name  string
		ballX float64
		want  core.Action
	}{
		{"ball far left", 5, core.ActionLeft},
		{"ball far right", 70, core.ActionRight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := New(testConfig())
			m.ball = liveBall(tc.ballX, 20, 3, -4)
			in := Autopilot(m)
			assert.True(t, in.Has(tc.want))
			assert.False(t, in.Has(core.ActionLaunch))
		})
	}

	t.Run("ball above paddle", func(t *testing.T) {
		m := New(testConfig())
		m.ball = liveBall(41, 20, 3, -4)
		in := Autopilot(m)
		assert.False(t, in.Has(core.ActionLeft))
		assert.False(t, in.Has(core.ActionRight))
	})
}

// The launched ball climbs up and to the right from (41, 33) and meets the
// lower-right brick about four seconds in.
func TestEndToEndFirstBrick(t *testing.T) {
	c := NewController(testConfig(), 42)
	c.Step(input(core.ActionLaunch), frameDT)

	var hit bool
	for range 600 {
		if c.Step(input(), frameDT) == EventBrick {
			hit = true
			break
		}
	}

	require.True(t, hit, "ball should reach the bricks")
	m := c.Model()
	assert.Equal(t, 5, m.BrickCount())
	assert.NotContains(t, m.Bricks(), core.NewRect(54, 12, 20, 5))
	assert.Positive(t, m.Ball().Velocity.Height, "ball heads back down")
	assert.True(t, m.Ball().Live)
}

func TestDeterministicReplay(t *testing.T) {
	run := func(seed uint64) []uint64 {
		c := NewController(testConfig(), seed)
		hashes := make([]uint64, 0, 3000)
		for range 3000 {
			c.Step(Autopilot(c.Model()), frameDT)
			snap := c.Snapshot()
			hashes = append(hashes, snap.Hash())
		}
		assert.Less(t, c.Model().BrickCount(), 6)
		return hashes
	}

	first := run(99)
	second := run(99)
	assert.Equal(t, first, second, "same seed and inputs must replay identically")
}
