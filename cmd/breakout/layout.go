package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show the brick grid",
	Long:  `Prints every brick of the effective config with its grid cell and rectangle.`,
	Args:  cobra.NoArgs,
	RunE:  runLayout,
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func runLayout(cmd *cobra.Command, args []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := loadGameConfig(preset)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	dims := cfg.BrickDims()
	fmt.Fprintf(out, "scene %dx%d, %d rows x %d cols, brick %dx%d\n",
		cfg.SceneDims.Width, cfg.SceneDims.Height, cfg.BrickRows, cfg.BrickCols, dims.Width, dims.Height)
	fmt.Fprintln(out, brickTable(cfg).Render())
	return nil
}

// brickTable lists the bricks in layout order.
func brickTable(cfg config.Game) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "ROW", "COL", "X", "Y", "W", "H").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, b := range breakout.LayoutFor(cfg) {
		t.Row(
			strconv.Itoa(i),
			strconv.Itoa(i/cfg.BrickCols),
			strconv.Itoa(i%cfg.BrickCols),
			strconv.Itoa(b.X),
			strconv.Itoa(b.Y),
			strconv.Itoa(b.W),
			strconv.Itoa(b.H),
		)
	}
	return t
}
