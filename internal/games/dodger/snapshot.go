package dodger

import (
	"math"

	"github.com/vovakirdan/bullet-dodger/internal/actor"
)

// ActorState is the flattened state of one actor.
type ActorState struct {
	Kind string
	X, Y float64
	VX   float64
	VY   float64
	W, H float64
}

// Snapshot contains the complete state of a run for determinism checks.
type Snapshot struct {
	RunID    string
	Ticks    uint64
	Elapsed  float64
	Timer    float64
	GameOver bool
	Player   ActorState
	Enemies  []ActorState
}

func stateOf(a actor.Actor) ActorState {
	p, v, r := a.Position(), a.Velocity(), a.Bounds()
	return ActorState{
		Kind: actor.Kind(a),
		X:    p.X,
		Y:    p.Y,
		VX:   v.X,
		VY:   v.Y,
		W:    r.W,
		H:    r.H,
	}
}

// Snapshot returns the current run state.
func (g *Gameplay) Snapshot() Snapshot {
	enemies := make([]ActorState, len(g.enemies))
	for i, e := range g.enemies {
		enemies[i] = stateOf(e)
	}
	return Snapshot{
		RunID:    g.id.String(),
		Ticks:    g.ticks,
		Elapsed:  g.total,
		Timer:    g.timer,
		GameOver: g.gameOver,
		Player:   stateOf(g.player),
		Enemies:  enemies,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Ticks
	h = h*31 + math.Float64bits(snap.Elapsed)
	h = h*31 + math.Float64bits(snap.Timer)
	if snap.GameOver {
		h = h*31 + 1
	}
	h = hashActor(h, snap.Player)
	h = h*31 + uint64(len(snap.Enemies))
	for _, e := range snap.Enemies {
		h = hashActor(h, e)
	}
	return h
}

func hashActor(h uint64, a ActorState) uint64 {
	for _, c := range a.Kind {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, f := range [...]float64{a.X, a.Y, a.VX, a.VY, a.W, a.H} {
		h = h*31 + math.Float64bits(f)
	}
	return h
}
