package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyNone   DifficultyPreset = ""
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the selectable presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// Describe returns a one-line summary for menus and help text.
func (p DifficultyPreset) Describe() string {
	switch p {
	case DifficultyEasy:
		return "wide paddle, slow ball, gentle boosts"
	case DifficultyNormal:
		return "configured values"
	case DifficultyHard:
		return "narrow paddle, fast ball, wild boosts"
	default:
		return ""
	}
}

// ParsePreset converts a CLI value into a preset. The empty string means no
// preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyNone, DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyNone, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts paddle width, ball speed and boost range in place.
// Normal and None leave the configuration untouched.
func ApplyPreset(cfg *Game, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.PaddleDims.Width += cfg.PaddleDims.Width / 2
		cfg.BallVelocity0 = cfg.BallVelocity0.Scale(0.75)
		cfg.MaxBoost /= 2
	case DifficultyHard:
		cfg.PaddleDims.Width = max(cfg.PaddleDims.Width*2/3, 1)
		cfg.BallVelocity0 = cfg.BallVelocity0.Scale(1.3)
		cfg.MaxBoost += cfg.MaxBoost / 2
	}
}
