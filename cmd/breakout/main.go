// breakout is a terminal breakout game built around a deterministic
// simulation core.
//
// Usage:
//
//	breakout play      - Play in the terminal
//	breakout sim       - Run the simulation headless and print the final state
//	breakout layout    - Print the brick grid for the effective config
//	breakout config    - Print the effective config as YAML
//
// Global flags:
//
//	--config <path>       - Game config YAML (default search: ~/.breakout, ./configs, built-in)
//	--difficulty <name>   - Preset: easy, normal, hard
//	--seed <value>        - Boost RNG seed
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       uint64
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout in your terminal",
	Long: `Breakout: one paddle, one ball and a wall of bricks, rendered in the
terminal.

Available commands:
  play     - Play interactively
  sim      - Headless run with an autopilot paddle
  layout   - Show the brick grid
  config   - Show the effective configuration

Examples:
  breakout play
  breakout play --difficulty hard --log-file breakout.log
  breakout sim --frames 5000 --seed 42
  breakout layout --config ./my-board.yaml
  breakout config > ~/.breakout/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Boost RNG seed (play: 0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the config file and applies preset on top of it.
func loadGameConfig(preset config.DifficultyPreset) (config.Game, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Game{}, err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.Game{}, fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, nil
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
