package dodger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bullet-dodger/internal/core"
)

// Autopilot chooses the held actions for a headless run.
type Autopilot func(gp *Gameplay) core.InputFrame

// ParseAutopilot returns the named autopilot: "none" holds nothing, "flee"
// runs from the nearest enemy.
func ParseAutopilot(name string) (Autopilot, error) {
	switch name {
	case "", "none":
		return Idle, nil
	case "flee":
		return Flee, nil
	default:
		return nil, fmt.Errorf("dodger: unknown autopilot %q (want none or flee)", name)
	}
}

// Idle never moves.
func Idle(*Gameplay) core.InputFrame {
	return core.NewInputFrame()
}

// wrapDelta returns the shortest signed distance from a to b on a ring of
// the given size.
func wrapDelta(a, b, size float64) float64 {
	d := b - a
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

// Flee holds the directions leading away from the nearest enemy, measured
// across the wrapped arena.
func Flee(gp *Gameplay) core.InputFrame {
	frame := core.NewInputFrame()
	p := gp.Player().Position()

	var away core.Vec2
	best := math.Inf(1)
	for _, e := range gp.Enemies() {
		q := e.Position()
		d := core.V(wrapDelta(p.X, q.X, core.ArenaWidth), wrapDelta(p.Y, q.Y, core.ArenaHeight))
		if dist := d.LenSq(); dist < best {
			best = dist
			away = d.Scale(-1)
		}
	}
	if best == math.Inf(1) {
		return frame
	}

	switch {
	case away.X > 0:
		frame.Set(core.ActionRight)
	case away.X < 0:
		frame.Set(core.ActionLeft)
	}
	switch {
	case away.Y > 0:
		frame.Set(core.ActionDown)
	case away.Y < 0:
		frame.Set(core.ActionUp)
	}
	return frame
}
