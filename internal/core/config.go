package core

import "time"

// Arena dimensions in logical units. All wrap-around math is relative to
// these bounds.
const (
	ArenaWidth  = 800.0
	ArenaHeight = 600.0
)

// RuntimeConfig contains configuration passed to hosts at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal host only)
	ScreenH  int   // Screen height in characters (terminal host only)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the fixed timestep in seconds.
func (c RuntimeConfig) TickDuration() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1.0 / float64(rate)
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
