package breakout

import "math"

// Snapshot is a flat copy of the game state using primitive types only,
// for the simulator's output and for determinism checks.
type Snapshot struct {
	Frames uint64

	PaddleX int
	PaddleY int
	PaddleW int

	BallX    float64
	BallY    float64
	BallVX   float64
	BallVY   float64
	BallLive bool

	// Remaining bricks, flattened as X, Y pairs in layout order.
	BrickCount int
	BrickData  []int

	LastEvent string
}

// Snapshot returns the model's current state.
func (m *Model) Snapshot() Snapshot {
	brickData := make([]int, 0, len(m.bricks)*2)
	for _, b := range m.bricks {
		brickData = append(brickData, b.X, b.Y)
	}

	return Snapshot{
		PaddleX:    m.paddle.X,
		PaddleY:    m.paddle.Y,
		PaddleW:    m.paddle.W,
		BallX:      m.ball.X,
		BallY:      m.ball.Y,
		BallVX:     m.ball.Velocity.Width,
		BallVY:     m.ball.Velocity.Height,
		BallLive:   m.ball.Live,
		BrickCount: len(m.bricks),
		BrickData:  brickData,
		LastEvent:  m.lastEvent.String(),
	}
}

// Snapshot returns the current model's state stamped with the frame count.
func (c *Controller) Snapshot() Snapshot {
	snap := c.model.Snapshot()
	snap.Frames = c.frames
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frames
	h = h*31 + uint64(snap.PaddleX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleY) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleW) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	if snap.BallLive {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.BrickCount) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, r := range snap.LastEvent {
		h = h*31 + uint64(r)
	}

	return h
}
