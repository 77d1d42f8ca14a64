// Package spawn generates the projectiles that enter the arena from its
// edges, aimed at the player.
package spawn

import (
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/bullet-dodger/internal/actor"
	"github.com/vovakirdan/bullet-dodger/internal/config"
	"github.com/vovakirdan/bullet-dodger/internal/core"
)

// Variant identifies a projectile kind.
type Variant int

const (
	VariantBullet Variant = iota
	VariantDrunk
	VariantHoming
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantBullet:
		return "bullet"
	case VariantDrunk:
		return "drunk"
	case VariantHoming:
		return "homing"
	default:
		return "unknown"
	}
}

// Edge is a side of the arena.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// edgeInset keeps spawn points one unit inside the arena.
const edgeInset = 1.0

// Spawner creates projectiles with randomized edge, speed, size and variant.
// A Spawner is not safe for concurrent use; the gameplay tick owns it.
type Spawner struct {
	pcg     *rand.PCG
	rng     *rand.Rand
	cfg     config.SpawnerConfig
	tuning  actor.Tuning
	width   float64
	height  float64
	spawned [3]int
}

// pcgStream is the second PCG seed word.
const pcgStream = 0x9e3779b97f4a7c15

// New creates a spawner for a width x height arena seeded with seed.
func New(seed int64, cfg config.SpawnerConfig, tuning actor.Tuning, width, height float64) *Spawner {
	pcg := rand.NewPCG(uint64(seed), pcgStream)
	return &Spawner{
		pcg:    pcg,
		rng:    rand.New(pcg),
		cfg:    cfg,
		tuning: tuning,
		width:  width,
		height: height,
	}
}

// Point picks a uniformly random edge and a uniformly random point along it.
func (s *Spawner) Point() (core.Vec2, Edge) {
	edge := Edge(s.rng.IntN(4))
	switch edge {
	case EdgeTop:
		return core.V(s.rng.Float64()*s.width, edgeInset), edge
	case EdgeBottom:
		return core.V(s.rng.Float64()*s.width, s.height-edgeInset), edge
	case EdgeLeft:
		return core.V(edgeInset, s.rng.Float64()*s.height), edge
	default:
		return core.V(s.width-edgeInset, s.rng.Float64()*s.height), edge
	}
}

// Variant draws a projectile kind by the configured weights.
func (s *Spawner) Variant() Variant {
	w := s.cfg.Weights
	r := s.rng.Float64() * w.Total()
	switch {
	case r < w.Bullet:
		return VariantBullet
	case r < w.Bullet+w.Drunk:
		return VariantDrunk
	case w.Homing > 0:
		return VariantHoming
	case w.Drunk > 0:
		return VariantDrunk
	default:
		return VariantBullet
	}
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Spawn creates one projectile aimed at the player's current position.
// The random draws happen in a fixed order so a seed reproduces a run.
func (s *Spawner) Spawn(player core.Vec2) (actor.Actor, error) {
	pos, _ := s.Point()
	speed := s.uniform(s.cfg.SpeedMin, s.cfg.SpeedMax)
	size := s.uniform(s.cfg.SizeMin, s.cfg.SizeMax)
	variant := s.Variant()

	dir, err := player.Sub(pos).Normalize()
	if err != nil {
		if s.tuning.StrictDirections {
			return nil, fmt.Errorf("spawn: aim at %v: %w", player, err)
		}
		dir = core.Vec2{}
	}

	vel := dir.Scale(speed)
	dim := core.V(size, size)

	var a actor.Actor
	switch variant {
	case VariantDrunk:
		a = actor.NewDrunkBullet(pos, dim, vel, s.tuning)
	case VariantHoming:
		a = actor.NewHomingBullet(pos, dim, vel, player, s.tuning)
	default:
		a = actor.NewBullet(pos, dim, vel)
	}
	s.spawned[variant]++
	return a, nil
}

// Counts returns how many projectiles of each variant were spawned.
func (s *Spawner) Counts() map[Variant]int {
	return map[Variant]int{
		VariantBullet: s.spawned[VariantBullet],
		VariantDrunk:  s.spawned[VariantDrunk],
		VariantHoming: s.spawned[VariantHoming],
	}
}

// Checkpoint is a saved spawner state.
type Checkpoint struct {
	pcg     rand.PCG
	spawned [3]int
}

// Checkpoint saves the random state and counts.
func (s *Spawner) Checkpoint() Checkpoint {
	return Checkpoint{pcg: *s.pcg, spawned: s.spawned}
}

// Rollback restores a state saved by Checkpoint, so a discarded tick leaves
// no trace in later draws or counts.
func (s *Spawner) Rollback(c Checkpoint) {
	*s.pcg = c.pcg
	s.spawned = c.spawned
}
