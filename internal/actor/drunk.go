package actor

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bullet-dodger/internal/core"
)

// Default motion constants.
const (
	DefaultDrunkFactor  = 80.0
	DefaultHomingFactor = 50.0
	DefaultSpeedLimit   = 100.0
)

// Tuning holds the variant motion constants.
type Tuning struct {
	DrunkFactor  float64 // Wobble amplitude along the direction of travel
	HomingFactor float64 // Acceleration towards the target
	SpeedLimit   float64 // Maximum homing speed

	// StrictDirections makes a zero-length direction an error instead of a
	// zero contribution.
	StrictDirections bool
}

// DefaultTuning returns the stock motion constants.
func DefaultTuning() Tuning {
	return Tuning{
		DrunkFactor:  DefaultDrunkFactor,
		HomingFactor: DefaultHomingFactor,
		SpeedLimit:   DefaultSpeedLimit,
	}
}

// direction normalizes v following the tuning's degenerate-direction policy.
func (t Tuning) direction(v core.Vec2) (core.Vec2, error) {
	n, err := v.Normalize()
	if err != nil {
		if t.StrictDirections {
			return core.Vec2{}, err
		}
		return core.Vec2{}, nil
	}
	return n, nil
}

// DrunkBullet wobbles back and forth along its direction of travel.
type DrunkBullet struct {
	Body
	phase  float64 // Wraps in [0, 2π)
	tuning Tuning
}

// NewDrunkBullet creates a drunk bullet centered at pos with phase zero.
func NewDrunkBullet(pos, dim, vel core.Vec2, tuning Tuning) *DrunkBullet {
	return &DrunkBullet{Body: newBody(pos, dim, vel), tuning: tuning}
}

// Phase returns the current wobble phase.
func (d *DrunkBullet) Phase() float64 {
	return d.phase
}

// Update advances the phase by dt, applies linear motion and adds a wobble
// of normalize(vel) * factor * dt * cos(phase).
func (d *DrunkBullet) Update(dt float64) error {
	dir, err := d.tuning.direction(d.vel)
	if err != nil {
		return fmt.Errorf("drunk bullet: %w", err)
	}

	phase := core.Wrap(d.phase+dt, 2*math.Pi)
	wobble := dir.Scale(d.tuning.DrunkFactor * dt * math.Cos(phase))

	d.phase = phase
	d.Translate(d.vel.Scale(dt))
	d.Translate(wobble)
	return nil
}

// Draw renders the drunk bullet in orange.
func (d *DrunkBullet) Draw(dst core.Surface, mesh *core.MeshBuilder) error {
	return d.drawRect(dst, mesh, core.ColorOrange)
}
