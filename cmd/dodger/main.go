// dodger is a real-time arcade game: dodge the bullets for as long as
// possible on a wrapped 800x600 arena.
//
// Usage:
//
//	dodger play              - Play in the terminal
//	dodger window            - Play in a native window
//	dodger sim               - Run a headless game with an autopilot
//	dodger config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom config YAML
//	--preset <name>       - Spawner preset: standard, classic
//	--log <path>          - Log file for the terminal host
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagPreset   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Bullet Dodger - dodge the bullets for as long as possible",
	Long: `Bullet Dodger is a minimal arcade game. Bullets enter the arena from
its edges every few seconds, aimed at you. Some wobble, some home in.
Survive as long as you can.

Available commands:
  play     - Play in the terminal
  window   - Play in a native window
  sim      - Run a headless game with an autopilot
  config   - Print the effective configuration

Examples:
  dodger play
  dodger play --preset classic
  dodger window --scale 1.5
  dodger sim --autopilot flee --seed 42 --png run.png
  dodger config > ~/.dodger/config.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (fixed ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Spawner preset: standard, classic")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Log file (terminal host logs nowhere by default)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
