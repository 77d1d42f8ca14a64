// Package beepaudio plays the game's sound cues through the system speaker
// with gopxl/beep. It needs cgo and an audio device.
package beepaudio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/bullet-dodger/internal/audio"
	"github.com/vovakirdan/bullet-dodger/internal/config"
)

// ErrNotInitialized is returned when a cue is played on a closed or never
// opened speaker.
var ErrNotInitialized = errors.New("beepaudio: speaker not initialized")

var _ audio.Service = (*Speaker)(nil)

const (
	explosionDuration = 600 * time.Millisecond
	bufferDuration    = 100 * time.Millisecond
)

// Speaker plays synthesized cues through the system speaker.
type Speaker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// New opens the speaker at the configured sample rate.
func New(cfg config.AudioConfig) (*Speaker, error) {
	b := &Speaker{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
	}
	if err := speaker.Init(b.rate, b.rate.N(bufferDuration)); err != nil {
		return nil, fmt.Errorf("beepaudio: init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return b, nil
}

// PlayExplosion mixes a new explosion into the running output and returns
// immediately.
func (b *Speaker) PlayExplosion() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return ErrNotInitialized
	}

	s := Explosion(b.rate, b.volume)
	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// Close stops playback and releases the speaker.
func (b *Speaker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.initialized = false
}

// Explosion returns a finite explosion cue: decaying noise over a low rumble.
func Explosion(rate beep.SampleRate, volume float64) beep.Streamer {
	s := beep.Take(rate.N(explosionDuration), &explosionGenerator{rate: rate, seed: 1})
	return withVolume(s, volume)
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type explosionGenerator struct {
	rate beep.SampleRate
	pos  int
	seed int64
}

func (g *explosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.rate)

		env := math.Exp(-t * 6)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// Rumble pitch falls from 90 Hz to 40 Hz.
		freq := 40 + 50*math.Exp(-t*4)
		rumble := 0.5 * math.Sin(2*math.Pi*freq*t)

		v := env * (0.5*noise + rumble)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *explosionGenerator) Err() error {
	return nil
}
