package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bullet-dodger/internal/games/dodger"
	"github.com/vovakirdan/bullet-dodger/internal/platform/tui"
	"github.com/vovakirdan/bullet-dodger/internal/scene"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Bullet Dodger in the terminal.

Controls:
  W/A/S/D, arrows  - Move
  Space/Enter      - Start
  P/Esc            - Pause
  R                - Restart (after game over)
  Q                - Quit
  Ctrl+S           - Save a text screenshot to ~/.dodger/screenshots

Terminals do not report key releases, so a key counts as held for
input.key_hold after each press (or auto-repeat).

Examples:
  dodger play
  dodger play --seed 42 --log ~/.dodger/dodger.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rc := runtimeConfig(width, height)

	svc, closeAudio := openAudio(cfg.Audio, logger)
	defer closeAudio()

	game := dodger.New(cfg, rc.Seed, logger)
	ctx := scene.NewContext(svc, logger, nil)
	logger.Info("starting terminal host", "seed", rc.Seed, "size", []int{width, height})

	return tui.Run(game.NewStack(), ctx, tui.Options{
		Runtime: rc,
		KeyHold: cfg.Input.KeyHold,
		Logger:  logger,
	})
}
