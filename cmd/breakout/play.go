package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	flagFPS     int
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play breakout",
	Long: `Start an interactive game.

Controls:
  Left/A, Right/D  - Move the paddle
  Space            - Launch the ball
  P/Esc            - Pause
  R                - Restart with a fresh board
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Without --difficulty a preset selector is shown first.

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --fps 30 --log-file /tmp/breakout.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", tui.DefaultFPS, "Tick rate (frames per second)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if preset == config.DifficultyNone && term.IsTerminal(int(os.Stdin.Fd())) {
		selected, ok, selErr := tui.RunDifficultySelector(width)
		if selErr != nil {
			return fmt.Errorf("difficulty selector: %w", selErr)
		}
		if !ok {
			return nil
		}
		preset = selected
	}

	cfg, err := loadGameConfig(preset)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //#nosec G115 -- seed only
	}
	ctrl := breakout.NewController(cfg, seed)

	if minW, minH := breakout.MinScreen(ctrl.Model()); width < minW || height < minH+1 {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", width, height, minW, minH+1)
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "breakout")
	if err != nil {
		return err
	}
	logger.Info("config", "difficulty", preset, "scene", cfg.SceneDims, "seed", seed)

	if err := tui.Run(ctrl, tui.Options{FPS: flagFPS, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
