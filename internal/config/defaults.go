package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dodger.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
func DefaultConfig() Config {
	return Config{
		Player: PlayerConfig{
			Speed: 150,
			Size:  18,
		},
		Spawner: SpawnerConfig{
			InitialDelay: 5.0,
			Interval:     5.0,
			SpeedMin:     50,
			SpeedMax:     150,
			SizeMin:      5,
			SizeMax:      15,
			Weights: VariantWeights{
				Bullet: 75,
				Drunk:  15,
				Homing: 10,
			},
		},
		Actors: ActorsConfig{
			DrunkFactor:      80,
			HomingFactor:     50,
			HomingSpeedLimit: 100,
		},
		Simulation: SimulationConfig{
			Workers:          0,
			StrictDirections: false,
		},
		Scenes: ScenesConfig{
			StartMode:                  StartResume,
			GameplayUpdateInBackground: false,
		},
		Input: InputConfig{
			KeyHold: 250 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
