package actor

import "github.com/vovakirdan/bullet-dodger/internal/core"

// Bullet moves in a straight line at constant velocity.
type Bullet struct {
	Body
}

// NewBullet creates a bullet centered at pos.
func NewBullet(pos, dim, vel core.Vec2) *Bullet {
	return &Bullet{Body: newBody(pos, dim, vel)}
}

// Draw renders the bullet in white.
func (b *Bullet) Draw(dst core.Surface, mesh *core.MeshBuilder) error {
	return b.drawRect(dst, mesh, core.ColorWhite)
}
