package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bullet-dodger/internal/audio"
	"github.com/vovakirdan/bullet-dodger/internal/audio/beepaudio"
	"github.com/vovakirdan/bullet-dodger/internal/config"
	"github.com/vovakirdan/bullet-dodger/internal/core"
)

// newLogger creates the process logger writing to w at --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodger",
		Level:           level,
	})
	return logger, nil
}

// openLogFile opens --log for appending, or returns io.Discard when unset.
func openLogFile() (io.Writer, func(), error) {
	if flagLogPath == "" {
		return io.Discard, func() {}, nil
	}
	path := expandHome(flagLogPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func expandHome(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// loadConfig loads the configuration and applies --preset.
func loadConfig() (config.Config, error) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(expandHome(flagConfig))
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// runtimeConfig builds the host runtime settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	rc.Seed = rc.ResolveSeed()
	return rc
}

// openAudio starts the speaker. Audio is optional: on failure the game runs
// silently.
func openAudio(cfg config.AudioConfig, logger *log.Logger) (audio.Service, func()) {
	if !cfg.Enabled {
		return audio.Nop{}, func() {}
	}
	b, err := beepaudio.New(cfg)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return audio.Nop{}, func() {}
	}
	return b, b.Close
}
