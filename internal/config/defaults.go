package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors defaults/breakout.yaml
// and is used when the embedded file cannot be parsed.
func Default() Game {
	return Game{
		SceneDims:     core.Dims{Width: 60, Height: 20},
		BrickCols:     10,
		BrickRows:     4,
		SideMargin:    2,
		TopMargin:     2,
		BottomMargin:  1,
		BrickDepth:    1,
		BrickSpacing:  core.Dims{Width: 1, Height: 1},
		PaddleDims:    core.Dims{Width: 9, Height: 1},
		PaddleStep:    2,
		BallDims:      core.Dims{Width: 1, Height: 1},
		BallVelocity0: core.FDims{Width: 9, Height: -12}, // 0.15 / 0.2 cells per frame at 60fps
		MaxBoost:      4,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
