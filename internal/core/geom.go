// Package core provides fundamental types and utilities for the dodger.
// It contains no external dependencies (especially no Bubble Tea or Ebiten)
// to keep simulation logic pure and testable.
package core

import (
	"errors"
	"math"
)

// ErrDegenerateDirection is returned when a zero-length vector is normalized.
var ErrDegenerateDirection = errors.New("core: cannot normalize zero-length vector")

// ErrNonFinite is returned when an actor position becomes NaN or infinite.
var ErrNonFinite = errors.New("core: non-finite position")

// Vec2 is a 2D point or vector in arena units.
type Vec2 struct {
	X, Y float64
}

// V creates a new vector.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector pointing along v.
// A zero-length (or non-finite) v yields ErrDegenerateDirection.
func (v Vec2) Normalize() (Vec2, error) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}, ErrDegenerateDirection
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, nil
}

// NormalizeOrZero returns the unit vector along v, or the zero vector when v
// has no direction.
func (v Vec2) NormalizeOrZero() Vec2 {
	n, err := v.Normalize()
	if err != nil {
		return Vec2{}
	}
	return n
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Rect represents an axis-aligned bounding box used for collision detection.
// The box covers the half-open ranges [X, X+W) and [Y, Y+H).
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect builds the rectangle of size dim centered on pos.
func CenteredRect(pos, dim Vec2) Rect {
	return Rect{
		X: pos.X - dim.X/2,
		Y: pos.Y - dim.Y/2,
		W: dim.X,
		H: dim.Y,
	}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Wrap maps v into [0, size) so that the result is congruent to v modulo size.
// Wrap(-1, 800) == 799 and Wrap(800, 800) == 0.
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	m := math.Mod(v, size)
	if m < 0 {
		m += size
	}
	// -tiny + size rounds up to size
	if m >= size {
		m = 0
	}
	return m
}

// WrapVec wraps both components of p into the arena [0, w) x [0, h).
func WrapVec(p Vec2, w, h float64) Vec2 {
	return Vec2{X: Wrap(p.X, w), Y: Wrap(p.Y, h)}
}
