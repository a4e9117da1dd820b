package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	flagFrames   int
	flagDT       float64
	flagLaunchAt int
	flagScreen   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run the game without a terminal UI. An autopilot keeps the paddle under
the ball and relaunches it after a miss. The final state and its hash are
printed; the same seed and flags always give the same hash.

Examples:
  breakout sim
  breakout sim --frames 10000 --seed 7 --log-level debug
  breakout sim --dt 0.01 --launch-at 120 --screen`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to simulate")
	simCmd.Flags().Float64Var(&flagDT, "dt", 1.0/60, "Seconds per frame")
	simCmd.Flags().IntVar(&flagLaunchAt, "launch-at", 0, "Frame of the first launch")
	simCmd.Flags().BoolVar(&flagScreen, "screen", false, "Print the final board")
}

// simResult summarizes a headless run.
type simResult struct {
	Snapshot breakout.Snapshot
	Lost     int
	Cleared  bool
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagFrames < 0 || flagDT <= 0 {
		return fmt.Errorf("sim: need frames >= 0 and dt > 0, got %d and %g", flagFrames, flagDT)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := loadGameConfig(preset)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "sim")
	if err != nil {
		return err
	}

	ctrl := breakout.NewController(cfg, flagSeed)
	res := simulate(ctrl, flagFrames, flagDT, flagLaunchAt, func(frame int, ev breakout.Event) {
		m := ctrl.Model()
		switch ev {
		case breakout.EventIdle, breakout.EventMove:
		case breakout.EventBrick:
			logger.Debug("brick destroyed", "frame", frame, "remaining", m.BrickCount())
		default:
			logger.Debug(ev.String(), "frame", frame, "x", m.Ball().X, "y", m.Ball().Y)
		}
	})

	out := cmd.OutOrStdout()
	snap := res.Snapshot
	fmt.Fprintf(out, "seed:     %d\n", flagSeed)
	fmt.Fprintf(out, "frames:   %d\n", snap.Frames)
	fmt.Fprintf(out, "bricks:   %d/%d\n", snap.BrickCount, cfg.BrickRows*cfg.BrickCols)
	fmt.Fprintf(out, "lost:     %d\n", res.Lost)
	fmt.Fprintf(out, "cleared:  %t\n", res.Cleared)
	fmt.Fprintf(out, "paddle:   x=%d y=%d w=%d\n", snap.PaddleX, snap.PaddleY, snap.PaddleW)
	fmt.Fprintf(out, "ball:     x=%.3f y=%.3f vx=%.3f vy=%.3f live=%t\n",
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.BallLive)
	fmt.Fprintf(out, "hash:     %016x\n", snap.Hash())

	if flagScreen {
		w, h := breakout.MinScreen(ctrl.Model())
		screen := core.NewScreen(w, h)
		breakout.Render(ctrl, screen)
		fmt.Fprintln(out, screen.String())
	}

	logger.Info("done", "frames", snap.Frames, "bricks", snap.BrickCount, "lost", res.Lost)
	return nil
}

// simulate runs frames steps driven by the autopilot, holding the first
// launch until launchAt. The run stops early once the board is cleared.
// onEvent, if set, is called after every frame.
func simulate(ctrl *breakout.Controller, frames int, dt float64, launchAt int, onEvent func(frame int, ev breakout.Event)) simResult {
	var res simResult
	for i := range frames {
		in := breakout.Autopilot(ctrl.Model())
		if i < launchAt {
			in = core.NewInputFrame()
		}

		ev := ctrl.Step(in, dt)
		if ev == breakout.EventBallLost {
			res.Lost++
		}
		if onEvent != nil {
			onEvent(i, ev)
		}
		if ctrl.Model().Cleared() {
			res.Cleared = true
			break
		}
	}
	res.Snapshot = ctrl.Snapshot()
	return res
}
