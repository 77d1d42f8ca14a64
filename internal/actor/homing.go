package actor

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/bullet-dodger/internal/core"
)

// HomingBullet accelerates towards the position the player had at its last
// action, never exceeding the speed limit.
//
// The target is written by Action and read by Update. The tick never runs
// those two concurrently for one bullet; the mutex keeps the field safe
// if a host ever does.
type HomingBullet struct {
	Body
	tuning Tuning

	mu     sync.Mutex
	target core.Vec2
}

// NewHomingBullet creates a homing bullet aimed at target.
func NewHomingBullet(pos, dim, vel, target core.Vec2, tuning Tuning) *HomingBullet {
	return &HomingBullet{
		Body:   newBody(pos, dim, vel),
		tuning: tuning,
		target: target,
	}
}

// Target returns the stored target.
func (h *HomingBullet) Target() core.Vec2 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.target
}

// HasAction is always true: the bullet retargets every tick.
func (h *HomingBullet) HasAction() bool {
	return true
}

// Action stores the player's current position as the new target.
func (h *HomingBullet) Action(_ float64, player *Player, _ []Actor) ([]Actor, error) {
	h.mu.Lock()
	h.target = player.Position()
	h.mu.Unlock()
	return nil, nil
}

// Update steers towards the target, clamps the speed and moves.
func (h *HomingBullet) Update(dt float64) error {
	diff := h.Target().Sub(h.pos)
	dir, err := h.tuning.direction(diff)
	if err != nil {
		return fmt.Errorf("homing bullet: %w", err)
	}

	vel := h.vel.Add(dir.Scale(h.tuning.HomingFactor * dt))
	limit := h.tuning.SpeedLimit
	if vel.LenSq() > limit*limit {
		// LenSq > 0 here, so the direction is well defined
		unit, _ := vel.Normalize()
		vel = unit.Scale(limit)
	}

	h.vel = vel
	h.Translate(vel.Scale(dt))
	return nil
}

// Draw renders the homing bullet in sky blue.
func (h *HomingBullet) Draw(dst core.Surface, mesh *core.MeshBuilder) error {
	return h.drawRect(dst, mesh, core.ColorSky)
}

func (h *HomingBullet) clone() *HomingBullet {
	return &HomingBullet{
		Body:   h.Body,
		tuning: h.tuning,
		target: h.Target(),
	}
}
