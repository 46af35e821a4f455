package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wheel/internal/config"
	"github.com/vovakirdan/tui-wheel/internal/platform/tui"
)

var flagScreenshotDir string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Spin the wheel interactively",
	Long: `Open the wheel in the terminal.

Controls:
  Space/Enter  - Spin
  R            - Reset (restores every segment)
  Up/Down      - Scroll the standings
  Ctrl+S       - Save a PNG of the wheel
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Examples:
  wheel play
  wheel play --mode elimination
  wheel play -s Pizza -s Sushi:#4ECDC4 -s Tacos
  wheel play --count 8 --seed 7
  wheel play --config ./team.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	defaultDir := "screenshots"
	if dir := config.UserDir(); dir != "" {
		defaultDir = filepath.Join(dir, "screenshots")
	}
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", defaultDir, "Directory for Ctrl+S screenshots (empty disables)")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger("wheel")

	cfg, err := loadConfig(logger)
	if err != nil {
		fatal("%v", err)
	}
	rt := runtimeConfig()

	w, err := wheelFactory(cfg, rt, logger)()
	if err != nil {
		fatal("%v", err)
	}

	opts := tui.Options{
		Wheel:         w,
		TickRate:      rt.TickRate,
		Layout:        cfg.Render.CompactLayout(),
		ImageLayout:   cfg.Render.Layout(),
		ImageWidth:    cfg.Render.Width,
		ImageHeight:   cfg.Render.Height,
		ScreenshotDir: flagScreenshotDir,
		Logger:        logger,
		Width:         rt.ScreenW,
		Height:        rt.ScreenH,
	}

	if err := tui.Run(opts); err != nil {
		fatal("running wheel: %v", err)
	}
}
