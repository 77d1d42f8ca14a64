package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bullet-dodger/internal/audio"
	"github.com/vovakirdan/bullet-dodger/internal/games/dodger"
	"github.com/vovakirdan/bullet-dodger/internal/platform/snapshot"
	"github.com/vovakirdan/bullet-dodger/internal/scene"
	"github.com/vovakirdan/bullet-dodger/internal/spawn"
)

var (
	flagAutopilot  string
	flagMaxSeconds float64
	flagPNG        string
	flagPNGWidth   int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with an autopilot",
	Long: `Run one game without a display, driven by an autopilot, and print
the result. With the same --seed and settings the run is reproducible:
the printed state hash is identical between runs.

Autopilots:
  none  - Never moves
  flee  - Moves away from the nearest projectile

Examples:
  dodger sim --seed 42
  dodger sim --autopilot flee --max-seconds 120 --png last.png`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagAutopilot, "autopilot", "flee", "Autopilot: none, flee")
	simCmd.Flags().Float64Var(&flagMaxSeconds, "max-seconds", 300, "Stop after this much game time")
	simCmd.Flags().StringVar(&flagPNG, "png", "", "Save the final frame as PNG")
	simCmd.Flags().IntVar(&flagPNGWidth, "png-width", 800, "PNG width in pixels (height keeps 4:3)")
}

func runSim(cmd *cobra.Command, args []string) error {
	pilot, err := dodger.ParseAutopilot(flagAutopilot)
	if err != nil {
		return err
	}
	if flagMaxSeconds <= 0 {
		return fmt.Errorf("--max-seconds must be positive, got %v", flagMaxSeconds)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	rc := runtimeConfig(0, 0)

	game := dodger.New(cfg, rc.Seed, logger)
	stack, gp := game.NewRunStack()
	ctx := scene.NewContext(audio.Nop{}, logger, nil)

	dt := rc.TickDuration()
	for !gp.IsGameOver() && gp.Elapsed() < flagMaxSeconds && !ctx.Quitting() {
		ctx.Input = pilot(gp)
		if err := stack.Tick(ctx, dt); err != nil {
			return fmt.Errorf("tick %d: %w", gp.Snapshot().Ticks, err)
		}
	}

	snap := gp.Snapshot()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run:       %s\n", snap.RunID)
	fmt.Fprintf(out, "seed:      %d\n", rc.Seed)
	fmt.Fprintf(out, "survived:  %.2f s (%d ticks)\n", snap.Elapsed, snap.Ticks)
	fmt.Fprintf(out, "game over: %v\n", snap.GameOver)
	counts := gp.SpawnCounts()
	for _, v := range []spawn.Variant{spawn.VariantBullet, spawn.VariantDrunk, spawn.VariantHoming} {
		fmt.Fprintf(out, "spawned %-8s %d\n", v.String()+":", counts[v])
	}
	fmt.Fprintf(out, "hash:      %016x\n", snap.Hash())

	if flagPNG != "" {
		width := flagPNGWidth
		if width <= 0 {
			width = 800
		}
		if gp.IsGameOver() {
			// Apply the queued game-over overlay before drawing.
			if err := stack.Tick(ctx, dt); err != nil {
				return fmt.Errorf("final tick: %w", err)
			}
		}
		surface := snapshot.New(width, width*3/4)
		if err := stack.Draw(ctx, surface); err != nil {
			return fmt.Errorf("draw final frame: %w", err)
		}
		if err := surface.SavePNG(expandHome(flagPNG)); err != nil {
			return err
		}
		fmt.Fprintf(out, "frame:     %s\n", flagPNG)
	}
	return nil
}
