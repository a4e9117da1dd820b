package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestNewBallRestsOnPaddle(t *testing.T) {
	cfg := testConfig()
	paddle := core.NewRect(37, 35, 10, 2)

	b := NewBall(paddle, cfg)

	assert.Equal(t, 41.0, b.X)
	assert.Equal(t, 33.0, b.Y)
	assert.Equal(t, 2.0, b.W)
	assert.Equal(t, 2.0, b.H)
	assert.Equal(t, cfg.BallVelocity0, b.Velocity)
	assert.False(t, b.Live)
	assertTracking(t, b, paddle)
}

func TestBallNextIsPure(t *testing.T) {
	b := Ball{X: 10, Y: 20, W: 2, H: 2, Velocity: core.FDims{Width: 3, Height: -4}, Live: true}

	n := b.Next(0.5)

	assert.Equal(t, 11.5, n.X)
	assert.Equal(t, 18.0, n.Y)
	assert.True(t, n.Live)
	assert.Equal(t, b.Velocity, n.Velocity)
	assert.Equal(t, 10.0, b.X, "Next must not modify the receiver")
	assert.Equal(t, 20.0, b.Y, "Next must not modify the receiver")
}

func TestBallBoundaryPredicates(t *testing.T) {
	cfg := testConfig() // 84 x 40 scene

	tests := []struct {
		name                string
		x, y                float64
		bottom, top, onSide bool
	}{
		{"inside", 40, 20, false, false, false},
		{"flush with floor", 40, 38, false, false, false},
		{"through floor", 40, 38.5, true, false, false},
		{"flush with ceiling", 40, 0, false, false, false},
		{"through ceiling", 40, -0.1, false, true, false},
		{"through left wall", -0.1, 20, false, false, true},
		{"flush with right wall", 82, 20, false, false, false},
		{"through right wall", 82.1, 20, false, false, true},
		{"top-left corner", -1, -1, false, true, true},
		{"bottom-right corner", 83, 39, true, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{X: tc.x, Y: tc.y, W: 2, H: 2}
			assert.Equal(t, tc.bottom, b.HitsBottom(cfg), "HitsBottom")
			assert.Equal(t, tc.top, b.HitsTop(cfg), "HitsTop")
			assert.Equal(t, tc.onSide, b.HitsSide(cfg), "HitsSide")
		})
	}
}

func TestBallHitsBlock(t *testing.T) {
	block := core.NewRect(12, 10, 5, 5)

	assert.False(t, Ball{X: 10, Y: 10, W: 2, H: 2}.HitsBlock(block), "touching edge is not a hit")
	assert.True(t, Ball{X: 10.5, Y: 10, W: 2, H: 2}.HitsBlock(block))
	assert.False(t, Ball{X: 13, Y: 15, W: 2, H: 2}.HitsBlock(block), "resting on the bottom edge is not a hit")
	assert.True(t, Ball{X: 13, Y: 14.9, W: 2, H: 2}.HitsBlock(block))
}

func TestBallDestroyBrickRemovesFirstOverlap(t *testing.T) {
	bricks := []core.Rect{
		core.NewRect(0, 0, 5, 5),   // far away
		core.NewRect(20, 10, 10, 5), // overlaps
		core.NewRect(25, 12, 10, 5), // also overlaps
	}
	original := append([]core.Rect(nil), bricks...)
	b := Ball{X: 26, Y: 14.5, W: 2, H: 2}

	rest, ok := b.DestroyBrick(bricks)

	require.True(t, ok)
	assert.Equal(t, []core.Rect{bricks[0], bricks[2]}, rest)
	assert.Equal(t, original, bricks, "input slice must not be modified")
	assert.Equal(t, 1, b.FirstBrick(bricks))
}

func TestBallDestroyBrickMiss(t *testing.T) {
	bricks := []core.Rect{core.NewRect(0, 0, 5, 5)}
	b := Ball{X: 50, Y: 50, W: 2, H: 2}

	rest, ok := b.DestroyBrick(bricks)

	assert.False(t, ok)
	assert.Equal(t, bricks, rest)
	assert.Equal(t, -1, b.FirstBrick(bricks))

	rest, ok = b.DestroyBrick(nil)
	assert.False(t, ok)
	assert.Empty(t, rest)
}

func TestBallReflectAndBoost(t *testing.T) {
	b := Ball{Velocity: core.FDims{Width: 3, Height: -4}}

	assert.Equal(t, core.FDims{Width: -3, Height: -4}, b.ReflectHorizontal().Velocity)
	assert.Equal(t, core.FDims{Width: 3, Height: 4}, b.ReflectVertical().Velocity)
	assert.Equal(t, core.FDims{Width: 1, Height: -4}, b.Boost(-2).Velocity)
	assert.Equal(t, core.FDims{Width: 3, Height: -4}, b.Velocity, "receiver must stay unchanged")

	assert.True(t, b.Launched().Live)
	assert.False(t, b.Live)
}

// assertTracking checks the resting-ball invariant: horizontally centered on
// the paddle with its bottom edge on the paddle's top edge.
func assertTracking(t *testing.T, b Ball, paddle core.Rect) {
	t.Helper()
	ballX, _ := b.Center()
	p := paddle.ToF()
	assert.InDelta(t, p.X+p.W/2, ballX, 1e-9, "ball should be centered on the paddle")
	assert.InDelta(t, p.Y, b.Y+b.H, 1e-9, "ball should rest on the paddle's top edge")
	assert.False(t, b.Live)
}
