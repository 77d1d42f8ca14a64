// Package actor implements the moving bodies of the arena: the player and
// the projectile variants that chase it.
//
// Every variant satisfies Actor. Shared state and the default behaviour
// (linear motion, no action) live in Body, which variants embed and
// selectively override.
package actor

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/bullet-dodger/internal/core"
)

// ErrUnknownVariant is returned by Clone for Actor implementations outside
// this package that do not implement Cloner.
var ErrUnknownVariant = errors.New("actor: unknown variant")

// Cloner is implemented by actors defined outside this package so Clone can
// copy them.
type Cloner interface {
	CloneActor() Actor
}

// Actor is the per-tick contract of every moving body.
type Actor interface {
	Position() core.Vec2
	// Bounds is the axis-aligned box of the given dimensions centered on
	// Position.
	Bounds() core.Rect
	Velocity() core.Vec2

	SetPosition(p core.Vec2)
	SetDimensions(d core.Vec2)
	SetVelocity(v core.Vec2)
	// Translate moves the actor by delta.
	Translate(delta core.Vec2)

	// Update advances the actor by dt seconds. On error the actor is left
	// unchanged.
	Update(dt float64) error

	// HasAction reports whether Action must be called each tick.
	HasAction() bool
	// Action runs the actor's per-tick side effect against the player and a
	// read-only snapshot of all enemies. It may return new actors to append.
	// Action and Update of the same actor never run concurrently.
	Action(dt float64, player *Player, enemies []Actor) ([]Actor, error)

	// Draw adds the actor to mesh, or draws it immediately on dst when mesh
	// is nil.
	Draw(dst core.Surface, mesh *core.MeshBuilder) error
}

// Body holds the state shared by all variants and implements the default
// behaviour of the contract.
type Body struct {
	pos core.Vec2
	dim core.Vec2
	vel core.Vec2
}

func newBody(pos, dim, vel core.Vec2) Body {
	return Body{pos: pos, dim: clampDim(dim), vel: vel}
}

// Position returns the center of the actor.
func (b *Body) Position() core.Vec2 {
	return b.pos
}

// Bounds returns the bounding box centered on the position.
func (b *Body) Bounds() core.Rect {
	return core.CenteredRect(b.pos, b.dim)
}

// Dimensions returns the width and height.
func (b *Body) Dimensions() core.Vec2 {
	return b.dim
}

// Velocity returns the current velocity in units per second.
func (b *Body) Velocity() core.Vec2 {
	return b.vel
}

// SetPosition moves the actor to p.
func (b *Body) SetPosition(p core.Vec2) {
	b.pos = p
}

// SetDimensions resizes the actor. Negative components are clamped to zero.
func (b *Body) SetDimensions(d core.Vec2) {
	b.dim = clampDim(d)
}

// SetVelocity replaces the velocity.
func (b *Body) SetVelocity(v core.Vec2) {
	b.vel = v
}

// Translate moves the actor by delta.
func (b *Body) Translate(delta core.Vec2) {
	b.SetPosition(b.pos.Add(delta))
}

// Update applies linear motion.
func (b *Body) Update(dt float64) error {
	b.Translate(b.vel.Scale(dt))
	return nil
}

// HasAction is false by default.
func (b *Body) HasAction() bool {
	return false
}

// Action does nothing by default.
func (b *Body) Action(float64, *Player, []Actor) ([]Actor, error) {
	return nil, nil
}

// drawRect is the shared draw path: batch into mesh or draw immediately.
func (b *Body) drawRect(dst core.Surface, mesh *core.MeshBuilder, c core.Color) error {
	r := b.Bounds()
	if mesh != nil {
		mesh.Rectangle(r, c)
		return nil
	}
	return dst.FillRect(r, c)
}

func clampDim(d core.Vec2) core.Vec2 {
	return core.Vec2{X: max(d.X, 0), Y: max(d.Y, 0)}
}

// Clone returns an independent copy of a, used to stage a tick's updates so
// a failing pass can be discarded without touching live actors.
func Clone(a Actor) (Actor, error) {
	switch v := a.(type) {
	case *Bullet:
		c := *v
		return &c, nil
	case *DrunkBullet:
		c := *v
		return &c, nil
	case *HomingBullet:
		return v.clone(), nil
	case *Player:
		c := *v
		return &c, nil
	case Cloner:
		return v.CloneActor(), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownVariant, a)
	}
}

// Kind names the variant of a for logs and statistics.
func Kind(a Actor) string {
	switch a.(type) {
	case *Bullet:
		return "bullet"
	case *DrunkBullet:
		return "drunk"
	case *HomingBullet:
		return "homing"
	case *Player:
		return "player"
	default:
		return "unknown"
	}
}
