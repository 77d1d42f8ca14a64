package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bullet-dodger/internal/games/dodger"
	"github.com/vovakirdan/bullet-dodger/internal/platform/window"
	"github.com/vovakirdan/bullet-dodger/internal/scene"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Play Bullet Dodger in an 800x600 window.

Controls:
  W/A/S/D, arrows  - Move
  Space/Enter      - Start
  P/Esc            - Pause
  R                - Restart (after game over)
  Q                - Quit

Examples:
  dodger window
  dodger window --scale 1.5 --preset classic`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to 800x600")
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	rc := runtimeConfig(0, 0)

	svc, closeAudio := openAudio(cfg.Audio, logger)
	defer closeAudio()

	game := dodger.New(cfg, rc.Seed, logger)
	ctx := scene.NewContext(svc, logger, nil)
	logger.Info("starting window host", "seed", rc.Seed, "scale", flagScale)

	return window.Run(game.NewStack(), ctx, window.Options{
		Title:    "Bullet Dodger",
		Scale:    flagScale,
		TickRate: rc.TickRate,
		Logger:   logger,
	})
}
