package actor

import "github.com/vovakirdan/bullet-dodger/internal/core"

// Player is the input-controlled avatar. It has no autonomous motion: the
// gameplay scene sets its velocity from the held directions each tick.
type Player struct {
	Body
	speed float64
}

// NewPlayer creates a player centered at pos.
func NewPlayer(pos core.Vec2, size, speed float64) *Player {
	return &Player{
		Body:  newBody(pos, core.V(size, size), core.Vec2{}),
		speed: speed,
	}
}

// Speed returns the movement speed scalar.
func (p *Player) Speed() float64 {
	return p.speed
}

// Steer sets the velocity from a summed input direction: zero when no
// direction is held, otherwise the normalized direction at full speed.
func (p *Player) Steer(dir core.Vec2) {
	if dir.IsZero() {
		p.SetVelocity(core.Vec2{})
		return
	}
	p.SetVelocity(dir.NormalizeOrZero().Scale(p.speed))
}

// Draw renders the player in bright green.
func (p *Player) Draw(dst core.Surface, mesh *core.MeshBuilder) error {
	return p.drawRect(dst, mesh, core.ColorBrightGreen)
}
