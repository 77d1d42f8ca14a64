package spawn

import (
	"math"
	"testing"

	"github.com/vovakirdan/bullet-dodger/internal/actor"
	"github.com/vovakirdan/bullet-dodger/internal/config"
	"github.com/vovakirdan/bullet-dodger/internal/core"
)

func newTestSpawner(seed int64) *Spawner {
	cfg := config.DefaultConfig()
	return New(seed, cfg.Spawner, actor.DefaultTuning(), core.ArenaWidth, core.ArenaHeight)
}

func TestVariantDistribution(t *testing.T) {
	const trials = 20000
	s := newTestSpawner(12345)

	counts := map[Variant]int{}
	for i := 0; i < trials; i++ {
		counts[s.Variant()]++
	}

	expected := map[Variant]float64{
		VariantBullet: 0.75,
		VariantDrunk:  0.15,
		VariantHoming: 0.10,
	}
	for v, p := range expected {
		got := float64(counts[v]) / trials
		sigma := math.Sqrt(p * (1 - p) / trials)
		if math.Abs(got-p) > 4*sigma {
			t.Errorf("%s frequency = %.4f, expected %.2f ± %.4f", v, got, p, 4*sigma)
		}
	}
}

func TestClassicWeightsNeverHome(t *testing.T) {
	cfg := config.DefaultConfig()
	config.ApplyPreset(&cfg, config.PresetClassic)
	s := New(1, cfg.Spawner, actor.DefaultTuning(), core.ArenaWidth, core.ArenaHeight)

	drunk := 0
	for i := 0; i < 5000; i++ {
		switch s.Variant() {
		case VariantHoming:
			t.Fatal("classic weights drew a homing bullet")
		case VariantDrunk:
			drunk++
		}
	}
	if drunk == 0 {
		t.Error("classic weights never drew a drunk bullet")
	}
}

func TestSpawnPointOnEdge(t *testing.T) {
	s := newTestSpawner(99)
	seen := map[Edge]bool{}

	for i := 0; i < 1000; i++ {
		p, edge := s.Point()
		seen[edge] = true

		var ok bool
		switch edge {
		case EdgeTop:
			ok = p.Y == 1 && p.X >= 0 && p.X < core.ArenaWidth
		case EdgeBottom:
			ok = p.Y == core.ArenaHeight-1 && p.X >= 0 && p.X < core.ArenaWidth
		case EdgeLeft:
			ok = p.X == 1 && p.Y >= 0 && p.Y < core.ArenaHeight
		case EdgeRight:
			ok = p.X == core.ArenaWidth-1 && p.Y >= 0 && p.Y < core.ArenaHeight
		}
		if !ok {
			t.Fatalf("Point() = %v on edge %d, not on that edge", p, edge)
		}
	}

	if len(seen) != 4 {
		t.Errorf("Point() used %d edges, expected all 4", len(seen))
	}
}

func TestSpawnAimsAtPlayer(t *testing.T) {
	s := newTestSpawner(7)
	player := core.V(400, 300)

	for i := 0; i < 200; i++ {
		a, err := s.Spawn(player)
		if err != nil {
			t.Fatalf("Spawn() error: %v", err)
		}

		speed := a.Velocity().Len()
		if speed < 50 || speed > 150 {
			t.Errorf("speed = %v, expected in [50, 150]", speed)
		}

		r := a.Bounds()
		if r.W < 5 || r.W > 15 || r.W != r.H {
			t.Errorf("size = %vx%v, expected square in [5, 15]", r.W, r.H)
		}

		toPlayer, _ := player.Sub(a.Position()).Normalize()
		heading, _ := a.Velocity().Normalize()
		if dot := toPlayer.X*heading.X + toPlayer.Y*heading.Y; math.Abs(dot-1) > 1e-9 {
			t.Errorf("heading %v not aimed at player (dot %v)", heading, dot)
		}

		if h, ok := a.(*actor.HomingBullet); ok && h.Target() != player {
			t.Errorf("homing target = %v, expected %v", h.Target(), player)
		}
	}

	total := 0
	for _, n := range s.Counts() {
		total += n
	}
	if total != 200 {
		t.Errorf("Counts() total = %d, expected 200", total)
	}
}

func TestSpawnDeterministic(t *testing.T) {
	a := newTestSpawner(42)
	b := newTestSpawner(42)
	player := core.V(123, 456)

	for i := 0; i < 50; i++ {
		x, err := a.Spawn(player)
		if err != nil {
			t.Fatal(err)
		}
		y, err := b.Spawn(player)
		if err != nil {
			t.Fatal(err)
		}
		if x.Position() != y.Position() || x.Velocity() != y.Velocity() || actor.Kind(x) != actor.Kind(y) {
			t.Fatalf("spawn %d differs between identical seeds", i)
		}
	}
}

func TestCheckpointRollback(t *testing.T) {
	s := newTestSpawner(99)
	player := core.V(400, 300)

	cp := s.Checkpoint()
	first, err := s.Spawn(player)
	if err != nil {
		t.Fatalf("Spawn() error: %v", err)
	}
	s.Rollback(cp)

	total := 0
	for _, n := range s.Counts() {
		total += n
	}
	if total != 0 {
		t.Errorf("Counts() after Rollback() sum to %d, expected 0", total)
	}

	again, err := s.Spawn(player)
	if err != nil {
		t.Fatalf("Spawn() error: %v", err)
	}
	if again.Position() != first.Position() || again.Velocity() != first.Velocity() {
		t.Errorf("Spawn() after Rollback() = %v/%v, expected %v/%v",
			again.Position(), again.Velocity(), first.Position(), first.Velocity())
	}
}
