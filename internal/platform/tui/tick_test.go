package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameClock(t *testing.T) {
	var c frameClock
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Zero(t, c.advance(t0), "first tick has no delta")
	assert.InDelta(t, 0.016, c.advance(t0.Add(16*time.Millisecond)), 1e-9)
	assert.InDelta(t, maxFrameStep.Seconds(), c.advance(t0.Add(2*time.Second)), 1e-9, "stalls are clamped")
	assert.Zero(t, c.advance(t0), "time going backwards restarts the clock")

	c.reset()
	assert.Zero(t, c.advance(t0.Add(time.Hour)))
}
