// Package audio is the sound boundary of the game. Scenes fire cues through
// Service and never wait for playback.
package audio

//go:generate mockgen -source=service.go -destination=audiomock/service.go -package=audiomock

// Service plays sound cues. Implementations must return without blocking on
// playback.
type Service interface {
	// PlayExplosion fires the game-over cue.
	PlayExplosion() error
}

// Nop is a Service that plays nothing.
type Nop struct{}

// PlayExplosion does nothing.
func (Nop) PlayExplosion() error {
	return nil
}
